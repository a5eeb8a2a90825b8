// Package optim collects structural network rewrites that do not change
// semantics: flattening and factoring associative And/Xor chains, and
// recognizing Mux patterns hidden inside And/Or logic.
//
// Grounded on original_source/src/optim.rs, optim/logic_sharing.rs and
// optim/infer_gates.rs.
package optim

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

func isAnd(g gate.Gate) bool {
	return g.Kind() == gate.KindAnd || (g.Kind() == gate.KindNary && g.NaryKind() == gate.NaryAnd)
}

func isXor(g gate.Gate) bool {
	return g.Kind() == gate.KindXor || (g.Kind() == gate.KindNary && g.NaryKind() == gate.NaryXor)
}

// mergeDependencies inlines g's dependencies that are themselves
// associative gates of the same kind (per pred), up to maxSize total
// operands. ret is the network under construction; s's variable
// references point into it, since earlier nodes have already been
// flattened.
func mergeDependencies(ret *network.Network, g gate.Gate, maxSize int, pred func(gate.Gate) bool) []signal.Signal {
	deps := g.Dependencies()
	var out []signal.Signal
	remaining := len(deps)
	for _, s := range deps {
		remaining--
		if !s.IsVar() || s.IsInverted() {
			out = append(out, s)
			continue
		}
		prevGate := ret.Gate(s.Var())
		prevDeps := prevGate.Dependencies()
		if pred(prevGate) && len(out)+len(prevDeps)+remaining <= maxSize {
			out = append(out, prevDeps...)
		} else {
			out = append(out, s)
		}
	}
	return out
}

// FlattenNary completely flattens chains of And (resp. Xor) gates into
// single N-ary gates, capping each merged gate at maxSize operands so
// two large disjoint chains don't blow up quadratically when combined.
func FlattenNary(aig *network.Network, maxSize int) *network.Network {
	ret := network.New()
	ret.AddInputs(aig.NbInputs())

	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		var merged gate.Gate
		switch {
		case isAnd(g):
			merged = gate.Nary(mergeDependencies(ret, g, maxSize, isAnd), gate.NaryAnd)
		case isXor(g):
			merged = gate.Nary(mergeDependencies(ret, g, maxSize, isXor), gate.NaryXor)
		default:
			merged = g
		}
		ret.Add(merged)
	}
	for o := 0; o < aig.NbOutputs(); o++ {
		ret.AddOutput(aig.Output(o))
	}

	ret.Cleanup()
	ret.Deduplicate()
	return ret
}
