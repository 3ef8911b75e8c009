package lift

import (
	"github.com/ezrec/irre2/decode"
	"github.com/ezrec/irre2/isa"
)

// EdgeKind classifies an advisory control-flow edge.
type EdgeKind int

//go:generate go tool stringer -linecomment -type=EdgeKind
const (
	EDGE_JUMP     = EdgeKind(0) // jump
	EDGE_INDIRECT = EdgeKind(1) // indirect
	EDGE_FALL     = EdgeKind(2) // fall
	EDGE_CALL     = EdgeKind(3) // call
	EDGE_RETURN   = EdgeKind(4) // return
)

// Edge is an advisory successor edge for the host's graph builder.
// Target is meaningful only when Static is true.
type Edge struct {
	Kind   EdgeKind
	Target uint32
	Static bool
}

// Edges classifies the control-flow successors of an instruction at a
// given address. Non-branch instructions have no advisory edges; the
// conditional branches always report both the taken (indirect) edge and
// the fall-through edge, whether or not the condition is statically
// resolvable.
func Edges(in decode.Instruction, addr uint32) (edges []Edge) {
	if !isa.IsBranch(in.Opcode) {
		return
	}

	switch in.Opcode {
	case isa.JMI:
		edges = []Edge{{Kind: EDGE_JUMP, Target: in.Args.Imm, Static: true}}
	case isa.JMP:
		edges = []Edge{{Kind: EDGE_INDIRECT}}
	case isa.BVE, isa.BVN:
		edges = []Edge{
			{Kind: EDGE_INDIRECT},
			{Kind: EDGE_FALL, Target: addr + isa.INSTRUCTION_SIZE, Static: true},
		}
	case isa.CAL:
		edges = []Edge{{Kind: EDGE_CALL}}
	case isa.RET:
		edges = []Edge{{Kind: EDGE_RETURN}}
	}

	return
}
