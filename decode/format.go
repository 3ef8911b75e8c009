package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/irre2/isa"
)

// hex renders an immediate known to be an address-sized value.
func hex(value uint32) string {
	return fmt.Sprintf("$%x", value)
}

// String renders the instruction in assembly syntax: the mnemonic
// followed by space-joined operand tokens. Register operands use their
// canonical names; 24-bit and 16-bit immediates render as $-prefixed
// hex, 8-bit immediates as decimal. A zero or invalid instruction
// renders as the "???" placeholder.
func (in Instruction) String() string {
	if !in.Opcode.Valid() || in.Mnemonic == "" {
		return "???"
	}

	var args []string

	switch in.Format {
	case isa.FMT_OP:
		// Mnemonic alone.
	case isa.FMT_OP_REG:
		args = []string{in.Args.A.String()}
	case isa.FMT_OP_IMM24:
		args = []string{hex(in.Args.Imm)}
	case isa.FMT_OP_REG_IMM16:
		args = []string{in.Args.A.String(), hex(in.Args.Imm)}
	case isa.FMT_OP_REG_REG:
		args = []string{in.Args.A.String(), in.Args.B.String()}
	case isa.FMT_OP_REG_REG_IMM8:
		args = []string{in.Args.A.String(), in.Args.B.String(), strconv.Itoa(int(in.Args.V0))}
	case isa.FMT_OP_REG_IMM8X2:
		args = []string{in.Args.A.String(), strconv.Itoa(int(in.Args.V0)), strconv.Itoa(int(in.Args.V1))}
	case isa.FMT_OP_REG_REG_REG:
		args = []string{in.Args.A.String(), in.Args.B.String(), in.Args.C.String()}
	default:
		return "???"
	}

	if len(args) == 0 {
		return in.Mnemonic
	}

	return in.Mnemonic + " " + strings.Join(args, " ")
}
