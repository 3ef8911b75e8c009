package lift

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders a lifted operation sequence as a printable tree, one
// branch per op with its expression operands as children.
func Tree(ops []Op) treeprint.Tree {
	tree := treeprint.New()

	for _, op := range ops {
		addOp(tree, op)
	}

	return tree
}

func addOp(tree treeprint.Tree, op Op) {
	switch op := op.(type) {
	case SetReg:
		addExpr(tree.AddBranch(fmt.Sprintf("set %v", op.Dst)), op.Src)
	case Store:
		branch := tree.AddBranch(fmt.Sprintf("store.%d", op.Size))
		addExpr(branch.AddBranch("addr"), op.Addr)
		addExpr(branch.AddBranch("value"), op.Val)
	case If:
		addExpr(tree.AddBranch(fmt.Sprintf("if -> m%d else m%d", op.Then, op.Else)), op.Cond)
	case MarkLabel:
		tree.AddNode(fmt.Sprintf("m%d:", op.M))
	case Goto:
		tree.AddNode(fmt.Sprintf("goto m%d", op.To))
	case GotoLabel:
		tree.AddNode(fmt.Sprintf("goto label %d", op.L))
	case Jump:
		addExpr(tree.AddBranch("jump"), op.Target)
	case Call:
		addExpr(tree.AddBranch("call"), op.Target)
	case Ret:
		addExpr(tree.AddBranch("ret"), op.Target)
	case SysCall:
		addExpr(tree.AddBranch("syscall"), op.Code)
	case Nop:
		tree.AddNode("nop")
	case NoRet:
		tree.AddNode("noret")
	case Unimplemented:
		tree.AddNode("unimplemented")
	default:
		tree.AddNode(fmt.Sprintf("%T", op))
	}
}

func addExpr(tree treeprint.Tree, expr Expr) {
	switch expr := expr.(type) {
	case RegExpr:
		tree.AddNode(expr.Reg.String())
	case ConstExpr:
		tree.AddNode(fmt.Sprintf("$%x", expr.Value))
	case BinExpr:
		branch := tree.AddBranch(expr.Op.String())
		addExpr(branch, expr.L)
		addExpr(branch, expr.R)
	case UnExpr:
		addExpr(tree.AddBranch(expr.Op.String()), expr.X)
	case LoadExpr:
		addExpr(tree.AddBranch(fmt.Sprintf("load.%d", expr.Size)), expr.Addr)
	default:
		tree.AddNode(fmt.Sprintf("%T", expr))
	}
}
