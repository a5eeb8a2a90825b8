// Package atpg generates stuck-at test patterns: a random-pattern
// probing loop backed by the multi-pattern simulator, a SAT fallback
// for faults random patterns miss, and greedy set-cover compression of
// the resulting pattern set.
//
// Grounded on original_source/src/atpg.rs.
package atpg

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
)

// ExposeDff turns a sequential network into a combinational one ATPG
// can analyze directly: each flip-flop's output becomes a new primary
// input (replacing the flip-flop with a Buf of that input so internal
// references still resolve), and its data/enable/reset signals become
// new primary outputs (enable/reset are skipped when constant, since a
// constant enable/reset carries no test information). New I/O are
// appended in flip-flop order, after the network's original I/O.
func ExposeDff(aig *network.Network) *network.Network {
	ret := network.New()
	ret.AddInputs(aig.NbInputs())
	for i := 0; i < aig.NbOutputs(); i++ {
		ret.AddOutput(aig.Output(i))
	}

	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		if g.Kind() != gate.KindDff {
			ret.Add(g)
			continue
		}
		d, en, res := g.Ternary()
		newInput := ret.AddInput()
		ret.Add(gate.Buf(newInput))
		ret.AddOutput(d)
		if !en.IsConstant() {
			ret.AddOutput(en)
		}
		if !res.IsConstant() {
			ret.AddOutput(res)
		}
	}

	ret.Check()
	return ret
}
