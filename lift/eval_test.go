package lift

import (
	"github.com/ezrec/irre2/isa"
)

// machine is a tiny effect interpreter over lifted sequences, used by
// the tests to check semantic properties without a full emulator.
type machine struct {
	regs map[isa.Reg]uint32
	mem  map[uint32]byte

	jumped   bool
	returned bool
	called   bool
	halted   bool
	target   uint32 // jump/call/return target, when one was taken
	syscall  *uint32
	unimpl   bool
	label    *Label // host label taken by a GotoLabel
}

func newMachine() *machine {
	return &machine{
		regs: map[isa.Reg]uint32{},
		mem:  map[uint32]byte{},
	}
}

// run executes one lifted sequence to completion or until control
// leaves the instruction.
func (m *machine) run(ops []Op) {
	marks := map[Mark]int{}
	for n, op := range ops {
		if ml, ok := op.(MarkLabel); ok {
			marks[ml.M] = n
		}
	}

	pc := 0
	for pc < len(ops) {
		switch op := ops[pc].(type) {
		case SetReg:
			m.regs[op.Dst] = m.eval(op.Src)
		case Store:
			addr := m.eval(op.Addr)
			val := m.eval(op.Val)
			for n := range op.Size {
				m.mem[addr+uint32(n)] = byte(val >> (8 * n))
			}
		case If:
			if m.eval(op.Cond) != 0 {
				pc = marks[op.Then]
			} else {
				pc = marks[op.Else]
			}
		case MarkLabel:
			// Position marker only.
		case Goto:
			pc = marks[op.To]
		case GotoLabel:
			label := op.L
			m.label = &label
			return
		case Jump:
			m.jumped = true
			m.target = m.eval(op.Target)
			return
		case Call:
			m.called = true
			m.target = m.eval(op.Target)
			return
		case Ret:
			m.returned = true
			m.target = m.eval(op.Target)
			return
		case SysCall:
			code := m.eval(op.Code)
			m.syscall = &code
		case Nop:
			// No effect.
		case NoRet:
			m.halted = true
			return
		case Unimplemented:
			m.unimpl = true
		}
		pc++
	}
}

func b2i(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (m *machine) eval(expr Expr) uint32 {
	switch expr := expr.(type) {
	case RegExpr:
		return m.regs[expr.Reg]
	case ConstExpr:
		return expr.Value
	case UnExpr:
		x := m.eval(expr.X)
		switch expr.Op {
		case UN_NOT:
			return ^x
		case UN_NEG:
			return -x
		case UN_ZEXT:
			return x
		}
	case BinExpr:
		l := m.eval(expr.L)
		r := m.eval(expr.R)
		switch expr.Op {
		case BIN_ADD:
			return l + r
		case BIN_SUB:
			return l - r
		case BIN_MUL:
			return l * r
		case BIN_UDIV:
			return l / r
		case BIN_UMOD:
			return l % r
		case BIN_AND:
			return l & r
		case BIN_OR:
			return l | r
		case BIN_XOR:
			return l ^ r
		case BIN_SHL:
			return l << (r & 0x1f)
		case BIN_SHR:
			return l >> (r & 0x1f)
		case BIN_SAR:
			return uint32(int32(l) >> (r & 0x1f))
		case BIN_EQ:
			return b2i(l == r)
		case BIN_NE:
			return b2i(l != r)
		case BIN_UGT:
			return b2i(l > r)
		case BIN_ULT:
			return b2i(l < r)
		case BIN_SGT:
			return b2i(int32(l) > int32(r))
		case BIN_SLT:
			return b2i(int32(l) < int32(r))
		case BIN_SGE:
			return b2i(int32(l) >= int32(r))
		}
	case LoadExpr:
		addr := m.eval(expr.Addr)
		value := uint32(0)
		for n := range expr.Size {
			value |= uint32(m.mem[addr+uint32(n)]) << (8 * n)
		}
		return value
	}

	panic("unknown expression")
}
