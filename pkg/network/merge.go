package network

import "github.com/aignet/aignet/pkg/signal"

// Extend copies every input and combinational gate of src into dst,
// returning the translation table from src's signals to the
// corresponding signal in dst. If sameInputs is true, src's inputs are
// assumed to already exist in dst at the same indices (used to overlay
// two networks sharing one input vector, as pkg/equiv.Difference does);
// otherwise fresh inputs are appended to dst for each of src's inputs
// (used when unrolling a sequential network, where each timestep gets
// its own input vector). Dff gates in src are skipped: callers that
// need to model sequential state (pkg/unroll) populate t with the
// flip-flop's replacement signal before calling Extend.
func Extend(dst, src *Network, t map[signal.Signal]signal.Signal, sameInputs bool) {
	if !src.IsTopoSorted() {
		panic("network: source must be topologically sorted")
	}
	if sameInputs && dst.NbInputs() != src.NbInputs() {
		panic("network: mismatched input count for shared-input extend")
	}

	t[signal.Zero()] = signal.Zero()
	t[signal.One()] = signal.One()
	for i := uint32(0); i < src.NbInputs(); i++ {
		var sa signal.Signal
		if sameInputs {
			sa = dst.Input(i)
		} else {
			sa = dst.AddInput()
		}
		sb := src.Input(i)
		t[sb] = sa
		t[sb.Not()] = sa.Not()
	}

	remap := func(s signal.Signal) signal.Signal {
		v, ok := t[s]
		if !ok {
			panic("network: extend encountered an untranslated signal")
		}
		return v
	}
	for i := 0; i < src.NbNodes(); i++ {
		g := src.Gate(uint32(i))
		if !g.IsComb() {
			continue
		}
		s := dst.Add(g.Remap(remap))
		b := src.Node(uint32(i))
		t[b] = s
		t[b.Not()] = s.Not()
	}
}
