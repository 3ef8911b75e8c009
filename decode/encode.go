package decode

import (
	"github.com/ezrec/irre2/isa"
)

// Encode packs a structured instruction into a 32-bit machine word.
// The instruction's format is taken from the opcode table, so only the
// opcode and the operand fields meaningful for that format are read.
func Encode(in Instruction) (word uint32, err error) {
	info, ok := isa.Lookup(in.Opcode)
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	word = uint32(in.Opcode) << 24

	switch info.Format {
	case isa.FMT_OP:
		// No operands.
	case isa.FMT_OP_REG:
		err = regsValid(in.Args.A)
		word |= uint32(in.Args.A) << 16
	case isa.FMT_OP_IMM24:
		word |= in.Args.Imm & 0xffffff
	case isa.FMT_OP_REG_IMM16:
		err = regsValid(in.Args.A)
		word |= uint32(in.Args.A) << 16
		word |= in.Args.Imm & 0xffff
	case isa.FMT_OP_REG_REG:
		err = regsValid(in.Args.A, in.Args.B)
		word |= uint32(in.Args.A) << 16
		word |= uint32(in.Args.B) << 8
	case isa.FMT_OP_REG_REG_IMM8:
		err = regsValid(in.Args.A, in.Args.B)
		word |= uint32(in.Args.A) << 16
		word |= uint32(in.Args.B) << 8
		word |= uint32(in.Args.V0)
	case isa.FMT_OP_REG_IMM8X2:
		err = regsValid(in.Args.A)
		word |= uint32(in.Args.A) << 16
		word |= uint32(in.Args.V0) << 8
		word |= uint32(in.Args.V1)
	case isa.FMT_OP_REG_REG_REG:
		err = regsValid(in.Args.A, in.Args.B, in.Args.C)
		word |= uint32(in.Args.A) << 16
		word |= uint32(in.Args.B) << 8
		word |= uint32(in.Args.C)
	}

	if err != nil {
		word = 0
	}

	return
}
