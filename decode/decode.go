package decode

import (
	"encoding/binary"

	"github.com/ezrec/irre2/isa"
)

// Operands is a decoded operand tuple. Which fields carry meaning is
// determined by the instruction format:
//
//	FMT_OP              -
//	FMT_OP_REG          A
//	FMT_OP_IMM24        Imm (24-bit)
//	FMT_OP_REG_IMM16    A, Imm (16-bit)
//	FMT_OP_REG_REG      A, B
//	FMT_OP_REG_REG_IMM8 A, B, V0
//	FMT_OP_REG_IMM8X2   A, V0, V1
//	FMT_OP_REG_REG_REG  A, B, C
type Operands struct {
	A, B, C isa.Reg // Register operands.
	Imm     uint32  // 24-bit or 16-bit immediate, zero extended.
	V0, V1  uint8   // 8-bit immediates.
}

// Instruction is a single decoded instruction word.
type Instruction struct {
	Opcode   isa.Opcode
	Format   isa.Format
	Mnemonic string
	Args     Operands
}

// regsValid checks a set of register fields, failing the decode if any
// field is out of range.
func regsValid(regs ...isa.Reg) (err error) {
	for _, r := range regs {
		if !r.Valid() {
			err = ErrRegisterInvalid
			return
		}
	}

	return
}

// Decode decodes a 32-bit machine word into a structured instruction.
// The opcode is the top byte; the remaining 24 bits are split per the
// opcode's format. A register field outside the valid range fails the
// whole decode.
func Decode(word uint32) (in Instruction, err error) {
	op := isa.Opcode(word >> 24)
	info, ok := isa.Lookup(op)
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	a1 := uint8(word >> 16)
	a2 := uint8(word >> 8)
	a3 := uint8(word >> 0)

	in = Instruction{
		Opcode:   op,
		Format:   info.Format,
		Mnemonic: info.Mnemonic,
	}

	switch info.Format {
	case isa.FMT_OP:
		// No operands.
	case isa.FMT_OP_REG:
		in.Args.A = isa.Reg(a1)
		err = regsValid(in.Args.A)
	case isa.FMT_OP_IMM24:
		in.Args.Imm = word & 0xffffff
	case isa.FMT_OP_REG_IMM16:
		in.Args.A = isa.Reg(a1)
		in.Args.Imm = word & 0xffff
		err = regsValid(in.Args.A)
	case isa.FMT_OP_REG_REG:
		in.Args.A = isa.Reg(a1)
		in.Args.B = isa.Reg(a2)
		err = regsValid(in.Args.A, in.Args.B)
	case isa.FMT_OP_REG_REG_IMM8:
		in.Args.A = isa.Reg(a1)
		in.Args.B = isa.Reg(a2)
		in.Args.V0 = a3
		err = regsValid(in.Args.A, in.Args.B)
	case isa.FMT_OP_REG_IMM8X2:
		in.Args.A = isa.Reg(a1)
		in.Args.V0 = a2
		in.Args.V1 = a3
		err = regsValid(in.Args.A)
	case isa.FMT_OP_REG_REG_REG:
		in.Args.A = isa.Reg(a1)
		in.Args.B = isa.Reg(a2)
		in.Args.C = isa.Reg(a3)
		err = regsValid(in.Args.A, in.Args.B, in.Args.C)
	}

	if err != nil {
		in = Instruction{}
	}

	return
}

// DecodeBytes decodes the little-endian instruction word at offset.
func DecodeBytes(data []byte, offset int) (in Instruction, err error) {
	if offset < 0 || offset+isa.INSTRUCTION_SIZE > len(data) {
		err = ErrTruncated
		return
	}

	return Decode(binary.LittleEndian.Uint32(data[offset:]))
}
