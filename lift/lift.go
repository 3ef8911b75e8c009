// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lift

import (
	"github.com/ezrec/irre2/decode"
	"github.com/ezrec/irre2/isa"
)

// Lifted is the result of lifting one instruction: the semantic
// operation sequence and the advisory control-flow edges.
type Lifted struct {
	Ops   []Op
	Edges []Edge
}

// seq accumulates an operation sequence and allocates local marks.
type seq struct {
	ops  []Op
	next Mark
}

func (s *seq) emit(op Op) {
	s.ops = append(s.ops, op)
}

func (s *seq) mark() (m Mark) {
	m = s.next
	s.next++
	return
}

func reg(r isa.Reg) Expr {
	return RegExpr{Reg: r}
}

func con(value uint32) Expr {
	return ConstExpr{Value: value}
}

func bin(op BinOp, l, r Expr) Expr {
	return BinExpr{Op: op, L: l, R: r}
}

func un(op UnOp, x Expr) Expr {
	return UnExpr{Op: op, X: x}
}

// Binary ALU opcodes. All are unsigned; the ISA has no signed divide.
var aluOps = map[isa.Opcode]BinOp{
	isa.ADD: BIN_ADD,
	isa.SUB: BIN_SUB,
	isa.MUL: BIN_MUL,
	isa.DIV: BIN_UDIV,
	isa.MOD: BIN_UMOD,
	isa.AND: BIN_AND,
	isa.ORR: BIN_OR,
	isa.XOR: BIN_XOR,
}

// Lift translates one decoded instruction into its semantic operation
// sequence. labels may be nil, in which case immediate jumps fall back
// to a direct jump to the constant address. Lift never fails: any
// internal fault degrades to a single Unimplemented op.
func Lift(in decode.Instruction, addr uint32, labels Labels) (out Lifted) {
	defer func() {
		if recover() != nil {
			out = Lifted{
				Ops:   []Op{Unimplemented{}},
				Edges: Edges(in, addr),
			}
		}
	}()

	s := &seq{}
	s.lift(in, addr, labels)

	out = Lifted{
		Ops:   s.ops,
		Edges: Edges(in, addr),
	}

	return
}

func (s *seq) lift(in decode.Instruction, addr uint32, labels Labels) {
	args := in.Args

	switch in.Opcode {
	case isa.ADD, isa.SUB, isa.MUL, isa.DIV, isa.MOD, isa.AND, isa.ORR, isa.XOR:
		// rA := rB OP rC
		s.emit(SetReg{Dst: args.A, Src: bin(aluOps[in.Opcode], reg(args.B), reg(args.C))})

	case isa.NOT:
		s.emit(SetReg{Dst: args.A, Src: un(UN_NOT, reg(args.B))})

	case isa.LSH:
		s.liftShift(args, BIN_SHR)
	case isa.ASH:
		s.liftShift(args, BIN_SAR)

	case isa.SET:
		s.emit(SetReg{Dst: args.A, Src: con(args.Imm)})

	case isa.MOV:
		s.emit(SetReg{Dst: args.A, Src: reg(args.B)})

	case isa.SUP:
		// rA := (rA & 0xFFFF) | (imm16 << 16); the low half-word is
		// preserved.
		s.emit(SetReg{Dst: args.A, Src: bin(BIN_OR,
			bin(BIN_AND, reg(args.A), con(0xFFFF)),
			bin(BIN_SHL, con(args.Imm), con(16)))})

	case isa.SXT:
		// Sign extend the low 16 bits of rB: shift the sign bit to the
		// top, then arithmetic shift back down.
		s.emit(SetReg{Dst: args.A, Src: bin(BIN_SAR,
			bin(BIN_SHL, reg(args.B), con(16)),
			con(16))})

	case isa.LDW:
		s.emit(SetReg{Dst: args.A, Src: LoadExpr{Size: 4, Addr: s.effective(args)}})
	case isa.STW:
		s.emit(Store{Size: 4, Addr: s.effective(args), Val: reg(args.A)})
	case isa.LDB:
		s.emit(SetReg{Dst: args.A, Src: un(UN_ZEXT, LoadExpr{Size: 1, Addr: s.effective(args)})})
	case isa.STB:
		s.emit(Store{Size: 1, Addr: s.effective(args), Val: reg(args.A)})

	case isa.JMI:
		if labels != nil {
			if label, ok := labels.Ensure(args.Imm); ok {
				s.emit(GotoLabel{L: label})
				return
			}
		}
		s.emit(Jump{Target: con(args.Imm)})

	case isa.JMP:
		s.emit(Jump{Target: reg(args.A)})

	case isa.BVE:
		s.liftBranch(args, BIN_EQ)
	case isa.BVN:
		s.liftBranch(args, BIN_NE)

	case isa.CAL:
		s.emit(Call{Target: reg(args.A)})

	case isa.RET:
		// pc := lr; lr := 0. The return target is lr's value before
		// the clear, so capture it in the address temporary first.
		s.emit(SetReg{Dst: isa.AD, Src: reg(isa.LR)})
		s.emit(SetReg{Dst: isa.LR, Src: con(0)})
		s.emit(Ret{Target: reg(isa.AD)})

	case isa.TCU:
		s.liftCompare(args, BIN_UGT, BIN_ULT)
	case isa.TCS:
		s.liftCompare(args, BIN_SGT, BIN_SLT)

	case isa.SEQ:
		s.emit(SetReg{Dst: args.A, Src: bin(BIN_EQ, reg(args.B), con(uint32(args.V0)))})

	case isa.SIA:
		// rA := rA + (v0 << v1)
		s.emit(SetReg{Dst: args.A, Src: bin(BIN_ADD,
			reg(args.A),
			bin(BIN_SHL, con(uint32(args.V0)), con(uint32(args.V1))))})

	case isa.NOP:
		s.emit(Nop{})

	case isa.HLT:
		s.emit(NoRet{})

	case isa.INT:
		s.emit(SysCall{Code: con(args.Imm)})

	default:
		// SND and anything without modeled semantics.
		s.emit(Unimplemented{})
	}
}

// effective computes rB + offset for the memory operations.
func (s *seq) effective(args decode.Operands) Expr {
	return bin(BIN_ADD, reg(args.B), con(uint32(args.V0)))
}

// liftShift emits the two-way branch on the sign of rC required by the
// bidirectional shifts: rC >= 0 shifts left, rC < 0 shifts right by
// -rC. The shift direction is data dependent, so both arms are always
// present in the sequence.
func (s *seq) liftShift(args decode.Operands, right BinOp) {
	left := s.mark()
	neg := s.mark()
	done := s.mark()

	s.emit(If{
		Cond: bin(BIN_SGE, reg(args.C), con(0)),
		Then: left,
		Else: neg,
	})

	s.emit(MarkLabel{M: left})
	s.emit(SetReg{Dst: args.A, Src: bin(BIN_SHL, reg(args.B), reg(args.C))})
	s.emit(Goto{To: done})

	s.emit(MarkLabel{M: neg})
	s.emit(SetReg{Dst: args.A, Src: bin(right, reg(args.B), un(UN_NEG, reg(args.C)))})

	s.emit(MarkLabel{M: done})
}

// liftBranch emits a conditional indirect branch: compare rB against
// the immediate, jump through rA when the condition holds, fall
// through otherwise.
func (s *seq) liftBranch(args decode.Operands, cmp BinOp) {
	taken := s.mark()
	fall := s.mark()

	s.emit(If{
		Cond: bin(cmp, reg(args.B), con(uint32(args.V0))),
		Then: taken,
		Else: fall,
	})

	s.emit(MarkLabel{M: taken})
	s.emit(Jump{Target: reg(args.A)})

	s.emit(MarkLabel{M: fall})
}

// liftCompare emits the three-way compare rA := (rB > rC) - (rB < rC),
// yielding -1, 0, or +1 as two boolean comparisons subtracted.
func (s *seq) liftCompare(args decode.Operands, gt, lt BinOp) {
	s.emit(SetReg{Dst: args.A, Src: bin(BIN_SUB,
		bin(gt, reg(args.B), reg(args.C)),
		bin(lt, reg(args.B), reg(args.C)))})
}
