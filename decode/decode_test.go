package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/irre2/isa"
)

func TestDecodeWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word uint32
		in   Instruction
	}){
		{"add", 0x01020300, Instruction{
			Opcode: isa.ADD, Format: isa.FMT_OP_REG_REG_REG, Mnemonic: "add",
			Args: Operands{A: isa.R2, B: isa.R3, C: isa.R0},
		}},
		{"set", 0x0B000100, Instruction{
			Opcode: isa.SET, Format: isa.FMT_OP_REG_IMM16, Mnemonic: "set",
			Args: Operands{A: isa.R0, Imm: 0x0100},
		}},
		{"nop", 0x00000000, Instruction{
			Opcode: isa.NOP, Format: isa.FMT_OP, Mnemonic: "nop",
		}},
		{"jmi", 0x20123456, Instruction{
			Opcode: isa.JMI, Format: isa.FMT_OP_IMM24, Mnemonic: "jmi",
			Args: Operands{Imm: 0x123456},
		}},
		{"jmp", 0x21210000, Instruction{
			Opcode: isa.JMP, Format: isa.FMT_OP_REG, Mnemonic: "jmp",
			Args: Operands{A: isa.LR},
		}},
		{"ldw", 0x0D0124FC, Instruction{
			Opcode: isa.LDW, Format: isa.FMT_OP_REG_REG_IMM8, Mnemonic: "ldw",
			Args: Operands{A: isa.R1, B: isa.SP, V0: 0xFC},
		}},
		{"sia", 0x40050210, Instruction{
			Opcode: isa.SIA, Format: isa.FMT_OP_REG_IMM8X2, Mnemonic: "sia",
			Args: Operands{A: isa.R5, V0: 0x02, V1: 0x10},
		}},
		{"mov", 0x0C011F00, Instruction{
			Opcode: isa.MOV, Format: isa.FMT_OP_REG_REG, Mnemonic: "mov",
			Args: Operands{A: isa.R1, B: isa.R31},
		}},
		{"hlt", 0xFF000000, Instruction{
			Opcode: isa.HLT, Format: isa.FMT_OP, Mnemonic: "hlt",
		}},
	}

	for _, entry := range table {
		in, err := Decode(entry.word)
		assert.NoError(err, entry.name)
		assert.Equal(entry.in, in, entry.name)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint32{0x99000000, 0x11000000, 0xFE123456, 0x7F000000} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrOpcodeUnknown, "word 0x%08x", word)
	}
}

func TestDecodeInvalidRegister(t *testing.T) {
	assert := assert.New(t)

	// Every register position of every register-bearing format must
	// reject field values above 0x24.
	table := [](struct {
		name string
		word uint32
	}){
		{"reg a1", 0x21250000},          // jmp
		{"reg+imm16 a1", 0x0B990100},    // set
		{"reg+reg a1", 0x0C250100},      // mov
		{"reg+reg a2", 0x0C01FF00},      // mov
		{"reg+reg+imm8 a1", 0x0D400104}, // ldw
		{"reg+reg+imm8 a2", 0x0D013004}, // ldw
		{"reg+imm8x2 a1", 0x40250210},   // sia
		{"3reg a1", 0x01250300},         // add
		{"3reg a2", 0x01022600},         // add
		{"3reg a3", 0x010203FF},         // add
	}

	for _, entry := range table {
		in, err := Decode(entry.word)
		assert.ErrorIs(err, ErrRegisterInvalid, entry.name)
		assert.Equal(Instruction{}, in, entry.name)
	}
}

func TestDecodeBytes(t *testing.T) {
	assert := assert.New(t)

	// Little-endian: 0x01020300 is stored 00 03 02 01.
	data := []byte{0x00, 0x03, 0x02, 0x01, 0x00, 0x01, 0x00, 0x0B}

	in, err := DecodeBytes(data, 0)
	assert.NoError(err)
	assert.Equal(isa.ADD, in.Opcode)
	assert.Equal(isa.R2, in.Args.A)

	in, err = DecodeBytes(data, 4)
	assert.NoError(err)
	assert.Equal(isa.SET, in.Opcode)
	assert.Equal(uint32(0x0100), in.Args.Imm)

	_, err = DecodeBytes(data[:3], 0)
	assert.ErrorIs(err, ErrTruncated)

	_, err = DecodeBytes(data, 5)
	assert.ErrorIs(err, ErrTruncated)

	_, err = DecodeBytes(data, -1)
	assert.ErrorIs(err, ErrTruncated)

	_, err = DecodeBytes(nil, 0)
	assert.ErrorIs(err, ErrTruncated)
}

// sampleArgs picks representative operands for a format, exercising
// every field the format encodes.
func sampleArgs(format isa.Format) (args Operands) {
	switch format {
	case isa.FMT_OP_REG:
		args = Operands{A: isa.SP}
	case isa.FMT_OP_IMM24:
		args = Operands{Imm: 0xABCDEF}
	case isa.FMT_OP_REG_IMM16:
		args = Operands{A: isa.R7, Imm: 0xBEEF}
	case isa.FMT_OP_REG_REG:
		args = Operands{A: isa.R1, B: isa.LR}
	case isa.FMT_OP_REG_REG_IMM8:
		args = Operands{A: isa.R2, B: isa.R30, V0: 0x7F}
	case isa.FMT_OP_REG_IMM8X2:
		args = Operands{A: isa.AT, V0: 0x12, V1: 0x08}
	case isa.FMT_OP_REG_REG_REG:
		args = Operands{A: isa.R3, B: isa.R4, C: isa.R5}
	}

	return
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for op, info := range isa.Opcodes() {
		in := Instruction{
			Opcode:   op,
			Format:   info.Format,
			Mnemonic: info.Mnemonic,
			Args:     sampleArgs(info.Format),
		}

		word, err := Encode(in)
		assert.NoError(err, info.Mnemonic)
		assert.Equal(uint8(op), uint8(word>>24), info.Mnemonic)

		back, err := Decode(word)
		assert.NoError(err, info.Mnemonic)
		assert.Equal(in, back, info.Mnemonic)
	}
}

func TestEncodeInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(Instruction{Opcode: isa.Opcode(0x99)})
	assert.ErrorIs(err, ErrOpcodeUnknown)

	_, err = Encode(Instruction{Opcode: isa.MOV, Args: Operands{A: isa.Reg(0x30)}})
	assert.ErrorIs(err, ErrRegisterInvalid)
}
