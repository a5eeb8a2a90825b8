package optim

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// pairKey identifies an unordered pair of signals for the factoring
// occurrence count; signal.Signal is comparable so a 2-array works as a
// map key once ordered consistently by the caller.
type pairKey [2]signal.Signal

// factoring tracks, for each gate being factored, the current list of
// its not-yet-merged operand signals.
type factoring struct {
	gates [][]signal.Signal
}

// findBestPair returns the pair of signals that co-occurs in the most
// gates, or ok=false if no gate has more than one remaining operand.
func (f *factoring) findBestPair() (pairKey, bool) {
	count := make(map[pairKey]int)
	var order []pairKey
	for _, v := range f.gates {
		for i := 0; i < len(v); i++ {
			for j := i + 1; j < len(v); j++ {
				k := pairKey{v[i], v[j]}
				if signal.Less(k[1], k[0]) {
					k[0], k[1] = k[1], k[0]
				}
				if _, ok := count[k]; !ok {
					order = append(order, k)
				}
				count[k]++
			}
		}
	}
	if len(order) == 0 {
		return pairKey{}, false
	}
	best := order[0]
	for _, k := range order[1:] {
		if count[k] > count[best] {
			best = k
		}
	}
	return best, true
}

// replacePair merges every occurrence of pair's two signals, in any
// gate that contains both, into the single signal merged.
func (f *factoring) replacePair(pair pairKey, merged signal.Signal) {
	for i, v := range f.gates {
		hasA, hasB := false, false
		for _, s := range v {
			if s == pair[0] {
				hasA = true
			}
			if s == pair[1] {
				hasB = true
			}
		}
		if !hasA || !hasB {
			continue
		}
		var kept []signal.Signal
		for _, s := range v {
			if s != pair[0] && s != pair[1] {
				kept = append(kept, s)
			}
		}
		f.gates[i] = append(kept, merged)
	}
}

// factorGates greedily rewrites every gate matching pred into a tree of
// binary gates built by builder, sharing as many common input pairs as
// possible across gates.
func factorGates(aig *network.Network, pred func(gate.Gate) bool, builder func(a, b signal.Signal) gate.Gate) *network.Network {
	if !aig.IsTopoSorted() {
		panic("optim: factorGates requires a topologically sorted network")
	}
	ret := network.New()
	ret.AddInputs(aig.NbInputs())

	var inds []uint32
	f := factoring{}
	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		if pred(g) && len(g.Dependencies()) > 1 {
			deps := append([]signal.Signal(nil), g.Dependencies()...)
			f.gates = append(f.gates, deps)
			inds = append(inds, uint32(i))
			ret.Add(gate.Buf(signal.Zero()))
		} else {
			ret.Add(g)
		}
	}
	for o := 0; o < aig.NbOutputs(); o++ {
		ret.AddOutput(aig.Output(o))
	}

	for {
		pair, ok := f.findBestPair()
		if !ok {
			break
		}
		newSig := ret.Add(builder(pair[0], pair[1]))
		f.replacePair(pair, newSig)
	}

	for k, i := range inds {
		g := f.gates[k]
		if len(g) != 1 {
			panic("optim: factoring left more than one operand")
		}
		ret.Replace(i, gate.Buf(g[0]))
	}

	ret.TopoSort()
	ret.Deduplicate()
	return ret
}

// FactorNary factors shared input pairs out of large And/Xor gates into
// a tree of binary gates, reducing gate count when fan-ins overlap. No
// delay optimization is attempted: pairs are chosen purely by frequency.
func FactorNary(aig *network.Network) *network.Network {
	aig1 := factorGates(aig, isAnd, gate.And)
	aig2 := factorGates(aig1, isXor, gate.Xor)
	return aig2
}

// ShareLogic flattens associative And/Xor chains and then factors out
// their shared input pairs, the combination the spec calls logic
// sharing. limit bounds FlattenNary's merged gate size.
func ShareLogic(aig *network.Network, limit int) *network.Network {
	return FactorNary(FlattenNary(aig, limit))
}
