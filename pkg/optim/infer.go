package optim

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
)

// muxPattern builds the raw (non-canonical) 3-And pattern that a Mux
// hiding inside And logic takes: !(s & !a) & !(!s & !b).
func muxPattern() *network.Network {
	pattern := network.New()
	s := pattern.AddInput()
	a := pattern.AddInput()
	b := pattern.AddInput()
	x0 := pattern.Add(gate.And(s, a.Not()))
	x1 := pattern.Add(gate.And(s.Not(), b.Not()))
	o := pattern.Add(gate.And(x0.Not(), x1.Not()))
	pattern.AddOutput(o)
	return pattern
}

// InferXorMux rewrites every node matching the hidden-Mux And pattern
// into an explicit Mux gate, then sweeps and canonicalizes. This also
// recovers Xor gates built purely out of And/Or logic, since Mux(s,!s,x)
// degenerates appropriately under canonicalization.
func InferXorMux(aig *network.Network) *network.Network {
	ret := aig.Clone()

	pattern := muxPattern()
	m := newMatcher(pattern)
	for i := 0; i < ret.NbNodes(); i++ {
		v, ok := m.matches(ret, i)
		if !ok {
			continue
		}
		ret.Replace(uint32(i), gate.Mux(v[0], v[1], v[2]))
	}

	ret.Cleanup()
	ret.MakeCanonical()
	return ret
}
