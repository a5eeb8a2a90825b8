package network

import (
	"github.com/aignet/aignet/internal/prng"
	"github.com/aignet/aignet/pkg/signal"
)

// Shuffle randomly permutes node order (seeded, deterministic), then
// topologically re-sorts. Invalidates all signals.
//
// Returns the old-variable-index -> new-signal translation table: the
// shuffle's permutation composed with the final TopoSort's translation,
// so it maps each node index from before the call to its signal after.
func (n *Network) Shuffle(seed uint64) []signal.Signal {
	src := prng.New(seed)
	order := make([]uint32, n.NbNodes())
	for i := range order {
		order[i] = uint32(i)
	}
	prng.Shuffle(src, len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	first := n.remap(order)
	second := n.TopoSort()
	for i, s := range first {
		first[i] = s.RemapOrder(second)
	}
	return first
}
