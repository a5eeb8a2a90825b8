// Package unroll turns a sequential network into a combinational one by
// replaying it over a fixed number of clock steps, replacing each
// flip-flop with the mux/and pair its next-state formula describes and
// giving every step its own fresh set of primary inputs.
//
// Grounded on original_source/src/equiv.rs's unroll/extend_aig_helper.
package unroll

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// Unroll replays aig over nbSteps clock cycles and returns a purely
// combinational network with nbSteps times as many inputs and outputs.
// Step 0 starts every flip-flop at its reset value (0); later steps
// compute ! res & (en ? d : ff) against the previous step's signals,
// matching the Dff next-state formula pkg/sim uses.
func Unroll(aig *network.Network, nbSteps int) *network.Network {
	ret := network.New()

	var tPrev map[signal.Signal]signal.Signal
	for step := 0; step < nbSteps; step++ {
		t := make(map[signal.Signal]signal.Signal)

		for i := 0; i < aig.NbNodes(); i++ {
			g := aig.Gate(uint32(i))
			if g.Kind() != gate.KindDff {
				continue
			}
			d, en, res := g.Ternary()
			ff := aig.Node(uint32(i))
			var unrolled signal.Signal
			if step == 0 {
				unrolled = signal.Zero()
			} else {
				mx := ret.Mux(tPrev[en], tPrev[d], tPrev[ff])
				unrolled = ret.And(mx, tPrev[res].Not())
			}
			t[ff] = unrolled
			t[ff.Not()] = unrolled.Not()
		}

		network.Extend(ret, aig, t, false)

		for o := 0; o < aig.NbOutputs(); o++ {
			ret.AddOutput(t[aig.Output(o)])
		}
		tPrev = t
	}

	if ret.NbInputs() != aig.NbInputs()*uint32(nbSteps) {
		panic("unroll: unexpected input count")
	}
	if ret.NbOutputs() != aig.NbOutputs()*nbSteps {
		panic("unroll: unexpected output count")
	}
	return ret
}
