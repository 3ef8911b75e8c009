package lift

import (
	"github.com/ezrec/irre2/isa"
)

// BinOp is a binary IR operator.
type BinOp int

//go:generate go tool stringer -linecomment -type=BinOp
const (
	BIN_ADD  = BinOp(0)  // +
	BIN_SUB  = BinOp(1)  // -
	BIN_MUL  = BinOp(2)  // *
	BIN_UDIV = BinOp(3)  // /u
	BIN_UMOD = BinOp(4)  // %u
	BIN_AND  = BinOp(5)  // &
	BIN_OR   = BinOp(6)  // |
	BIN_XOR  = BinOp(7)  // ^
	BIN_SHL  = BinOp(8)  // <<
	BIN_SHR  = BinOp(9)  // >>u
	BIN_SAR  = BinOp(10) // >>s
	BIN_EQ   = BinOp(11) // ==
	BIN_NE   = BinOp(12) // !=
	BIN_UGT  = BinOp(13) // >u
	BIN_ULT  = BinOp(14) // <u
	BIN_SGT  = BinOp(15) // >s
	BIN_SLT  = BinOp(16) // <s
	BIN_SGE  = BinOp(17) // >=s
)

// UnOp is a unary IR operator.
type UnOp int

//go:generate go tool stringer -linecomment -type=UnOp
const (
	UN_NOT  = UnOp(0) // ~
	UN_NEG  = UnOp(1) // -
	UN_ZEXT = UnOp(2) // zext
)

// Expr is an IR expression tree node. Comparison operators yield 0 or 1
// in a full word; all arithmetic is 32-bit.
type Expr interface {
	isExpr()
}

// RegExpr reads a register.
type RegExpr struct {
	Reg isa.Reg
}

// ConstExpr is a 32-bit constant.
type ConstExpr struct {
	Value uint32
}

// BinExpr applies a binary operator.
type BinExpr struct {
	Op   BinOp
	L, R Expr
}

// UnExpr applies a unary operator.
type UnExpr struct {
	Op UnOp
	X  Expr
}

// LoadExpr reads Size bytes of memory at Addr.
type LoadExpr struct {
	Size int
	Addr Expr
}

func (RegExpr) isExpr()   {}
func (ConstExpr) isExpr() {}
func (BinExpr) isExpr()   {}
func (UnExpr) isExpr()    {}
func (LoadExpr) isExpr()  {}

// Mark is a label local to a single lifted operation sequence, used for
// intra-instruction control flow (the bidirectional shifts and the
// conditional branches).
type Mark int

// Label is an opaque handle into the host's label table.
type Label int

// Op is a single primitive effect in a lifted sequence.
type Op interface {
	isOp()
}

// SetReg assigns Src to a register.
type SetReg struct {
	Dst isa.Reg
	Src Expr
}

// Store writes Size bytes of Val to memory at Addr.
type Store struct {
	Size      int
	Addr, Val Expr
}

// If transfers to Then when Cond is nonzero, Else otherwise.
type If struct {
	Cond       Expr
	Then, Else Mark
}

// MarkLabel binds a local mark to the current position in the sequence.
type MarkLabel struct {
	M Mark
}

// Goto transfers to a local mark.
type Goto struct {
	To Mark
}

// GotoLabel transfers to a host-labeled address.
type GotoLabel struct {
	L Label
}

// Jump transfers to a computed address.
type Jump struct {
	Target Expr
}

// Call performs a function call to a computed address.
type Call struct {
	Target Expr
}

// Ret returns to a computed address.
type Ret struct {
	Target Expr
}

// SysCall raises a system call with the given code.
type SysCall struct {
	Code Expr
}

// Nop has no effect.
type Nop struct{}

// NoRet terminates control flow; the path does not continue.
type NoRet struct{}

// Unimplemented marks an instruction with no modeled semantics.
type Unimplemented struct{}

func (SetReg) isOp()        {}
func (Store) isOp()         {}
func (If) isOp()            {}
func (MarkLabel) isOp()     {}
func (Goto) isOp()          {}
func (GotoLabel) isOp()     {}
func (Jump) isOp()          {}
func (Call) isOp()          {}
func (Ret) isOp()           {}
func (SysCall) isOp()       {}
func (Nop) isOp()           {}
func (NoRet) isOp()         {}
func (Unimplemented) isOp() {}

// Labels is the host's jump label table, injected into Lift for
// immediate jump targets. Implementations must be idempotent: asking
// for the same address again returns the same handle. Ownership and
// locking belong to the host.
type Labels interface {
	// Ensure returns the label handle for a code address, creating an
	// entry if the address has none yet. ok is false when the host
	// cannot label the address.
	Ensure(addr uint32) (label Label, ok bool)
}
