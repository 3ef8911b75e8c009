package isa

import (
	"fmt"
	"iter"
	"maps"
	"strconv"
)

// Architecture constants. IRRE2 is a fixed-width 32-bit machine.
const (
	WORD_SIZE             = 4 // 32-bit words
	ADDRESS_SIZE          = 4 // 32-bit addresses
	INSTRUCTION_SIZE      = 4 // Fixed 32-bit instructions
	INSTRUCTION_ALIGNMENT = 4 // Instructions are word-aligned
)

var _isa_defines = map[string]string{
	"WORD_SIZE":        fmt.Sprintf("%v", WORD_SIZE),
	"ADDRESS_SIZE":     fmt.Sprintf("%v", ADDRESS_SIZE),
	"INSTRUCTION_SIZE": fmt.Sprintf("%v", INSTRUCTION_SIZE),
}

// Defines for the architecture constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}

// Format is the operand encoding shape of an instruction word.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FMT_OP              = Format(0) // op
	FMT_OP_REG          = Format(1) // op rA
	FMT_OP_IMM24        = Format(2) // op v0
	FMT_OP_REG_IMM16    = Format(3) // op rA v0
	FMT_OP_REG_REG      = Format(4) // op rA rB
	FMT_OP_REG_REG_IMM8 = Format(5) // op rA rB v0
	FMT_OP_REG_IMM8X2   = Format(6) // op rA v0 v1
	FMT_OP_REG_REG_REG  = Format(7) // op rA rB rC
)

// Reg is a register number. The register file has 32 general purpose
// registers followed by 5 special registers; any other value is invalid.
type Reg uint8

const (
	R0  = Reg(0x00)
	R1  = Reg(0x01)
	R2  = Reg(0x02)
	R3  = Reg(0x03)
	R4  = Reg(0x04)
	R5  = Reg(0x05)
	R6  = Reg(0x06)
	R7  = Reg(0x07)
	R8  = Reg(0x08)
	R9  = Reg(0x09)
	R10 = Reg(0x0A)
	R11 = Reg(0x0B)
	R12 = Reg(0x0C)
	R13 = Reg(0x0D)
	R14 = Reg(0x0E)
	R15 = Reg(0x0F)
	R16 = Reg(0x10)
	R17 = Reg(0x11)
	R18 = Reg(0x12)
	R19 = Reg(0x13)
	R20 = Reg(0x14)
	R21 = Reg(0x15)
	R22 = Reg(0x16)
	R23 = Reg(0x17)
	R24 = Reg(0x18)
	R25 = Reg(0x19)
	R26 = Reg(0x1A)
	R27 = Reg(0x1B)
	R28 = Reg(0x1C)
	R29 = Reg(0x1D)
	R30 = Reg(0x1E)
	R31 = Reg(0x1F)

	PC = Reg(0x20) // Program counter.
	LR = Reg(0x21) // Link register (return address).
	AD = Reg(0x22) // Address temporary.
	AT = Reg(0x23) // Arithmetic temporary.
	SP = Reg(0x24) // Stack pointer.
)

// Valid returns true if the register number names a real register.
func (r Reg) Valid() bool {
	return r <= SP
}

// Gpr returns true for the general purpose registers r0-r31.
func (r Reg) Gpr() bool {
	return r <= R31
}

// Special returns true for the special registers pc, lr, ad, at, and sp.
func (r Reg) Special() bool {
	return r >= PC && r <= SP
}

var specialNames = map[Reg]string{
	PC: "pc",
	LR: "lr",
	AD: "ad",
	AT: "at",
	SP: "sp",
}

// String returns the canonical register name, or "???" if the register
// number is invalid.
func (r Reg) String() string {
	if r.Gpr() {
		return "r" + strconv.Itoa(int(r))
	}
	if name, ok := specialNames[r]; ok {
		return name
	}
	return "???"
}

// Opcode is an 8-bit operation selector.
type Opcode uint8

const (
	// Arithmetic and logical operations
	NOP = Opcode(0x00) // No operation
	ADD = Opcode(0x01) // Unsigned addition
	SUB = Opcode(0x02) // Unsigned subtraction
	AND = Opcode(0x03) // Logical and
	ORR = Opcode(0x04) // Logical or
	XOR = Opcode(0x05) // Logical xor
	NOT = Opcode(0x06) // Logical not
	LSH = Opcode(0x07) // Logical shift (bidirectional)
	ASH = Opcode(0x08) // Arithmetic shift (bidirectional)
	TCU = Opcode(0x09) // Test compare unsigned
	TCS = Opcode(0x0A) // Test compare signed

	// Data movement
	SET = Opcode(0x0B) // Set register to immediate
	MOV = Opcode(0x0C) // Move register to register

	// Memory operations
	LDW = Opcode(0x0D) // Load word
	STW = Opcode(0x0E) // Store word
	LDB = Opcode(0x0F) // Load byte
	STB = Opcode(0x10) // Store byte

	// Control flow
	JMI = Opcode(0x20) // Jump immediate
	JMP = Opcode(0x21) // Jump register
	BVE = Opcode(0x24) // Branch if equal
	BVN = Opcode(0x25) // Branch if not equal
	CAL = Opcode(0x2A) // Call
	RET = Opcode(0x2B) // Return

	// Extended arithmetic
	MUL = Opcode(0x30) // Multiply
	DIV = Opcode(0x31) // Divide (unsigned)
	MOD = Opcode(0x32) // Modulus (unsigned)

	// Advanced operations
	SIA = Opcode(0x40) // Shift and add
	SUP = Opcode(0x41) // Set upper half-word
	SXT = Opcode(0x42) // Sign extend lower half-word
	SEQ = Opcode(0x43) // Set if equal

	// System operations
	INT = Opcode(0xF0) // Interrupt
	SND = Opcode(0xFD) // Send to device
	HLT = Opcode(0xFF) // Halt
)

// Info is the static metadata bound to an opcode.
type Info struct {
	Mnemonic string
	Format   Format
}

var opcodeInfo = map[Opcode]Info{
	NOP: {"nop", FMT_OP},
	ADD: {"add", FMT_OP_REG_REG_REG},
	SUB: {"sub", FMT_OP_REG_REG_REG},
	AND: {"and", FMT_OP_REG_REG_REG},
	ORR: {"orr", FMT_OP_REG_REG_REG},
	XOR: {"xor", FMT_OP_REG_REG_REG},
	NOT: {"not", FMT_OP_REG_REG},
	LSH: {"lsh", FMT_OP_REG_REG_REG},
	ASH: {"ash", FMT_OP_REG_REG_REG},
	TCU: {"tcu", FMT_OP_REG_REG_REG},
	TCS: {"tcs", FMT_OP_REG_REG_REG},
	SET: {"set", FMT_OP_REG_IMM16},
	MOV: {"mov", FMT_OP_REG_REG},
	LDW: {"ldw", FMT_OP_REG_REG_IMM8},
	STW: {"stw", FMT_OP_REG_REG_IMM8},
	LDB: {"ldb", FMT_OP_REG_REG_IMM8},
	STB: {"stb", FMT_OP_REG_REG_IMM8},
	JMI: {"jmi", FMT_OP_IMM24},
	JMP: {"jmp", FMT_OP_REG},
	BVE: {"bve", FMT_OP_REG_REG_IMM8},
	BVN: {"bvn", FMT_OP_REG_REG_IMM8},
	CAL: {"cal", FMT_OP_REG},
	RET: {"ret", FMT_OP},
	MUL: {"mul", FMT_OP_REG_REG_REG},
	DIV: {"div", FMT_OP_REG_REG_REG},
	MOD: {"mod", FMT_OP_REG_REG_REG},
	SIA: {"sia", FMT_OP_REG_IMM8X2},
	SUP: {"sup", FMT_OP_REG_IMM16},
	SXT: {"sxt", FMT_OP_REG_REG},
	SEQ: {"seq", FMT_OP_REG_REG_IMM8},
	INT: {"int", FMT_OP_IMM24},
	SND: {"snd", FMT_OP_REG_REG_REG},
	HLT: {"hlt", FMT_OP},
}

// Lookup returns the metadata for an opcode. ok is false for the 8-bit
// values that do not encode an instruction.
func Lookup(op Opcode) (info Info, ok bool) {
	info, ok = opcodeInfo[op]
	return
}

// Valid returns true if the opcode has a table entry.
func (op Opcode) Valid() bool {
	_, ok := opcodeInfo[op]
	return ok
}

// String returns the opcode mnemonic, or "???" for an invalid opcode.
func (op Opcode) String() string {
	info, ok := opcodeInfo[op]
	if !ok {
		return "???"
	}
	return info.Mnemonic
}

// Opcodes iterates over all defined opcodes and their metadata.
func Opcodes() iter.Seq2[Opcode, Info] {
	return maps.All(opcodeInfo)
}

// Branch classification sets. Membership is fixed, never computed.
var branchOpcodes = map[Opcode]bool{
	JMI: true,
	JMP: true,
	BVE: true,
	BVN: true,
	CAL: true,
	RET: true,
}

var conditionalBranches = map[Opcode]bool{
	BVE: true,
	BVN: true,
}

// IsBranch returns true if the opcode transfers control.
func IsBranch(op Opcode) bool {
	return branchOpcodes[op]
}

// IsConditionalBranch returns true if the opcode may fall through.
func IsConditionalBranch(op Opcode) bool {
	return conditionalBranches[op]
}

// IsCall returns true if the opcode is a function call.
func IsCall(op Opcode) bool {
	return op == CAL
}

// IsReturn returns true if the opcode is a function return.
func IsReturn(op Opcode) bool {
	return op == RET
}
