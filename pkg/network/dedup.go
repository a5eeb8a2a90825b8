package network

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/signal"
)

// MakeCanonical deduplicates the network and puts every gate into
// canonical form (And, Xor, Mux, Maj, Dff, or a large Nary And/Xor;
// everything else is simplified away). Invalidates all signals.
//
// Returns the old-variable-index -> new-signal translation table.
func (n *Network) MakeCanonical() []signal.Signal { return n.dedup(true) }

// Deduplicate removes duplicate logic without canonicalizing gate
// shapes. Invalidates all signals.
//
// Returns the old-variable-index -> new-signal translation table.
func (n *Network) Deduplicate() []signal.Signal { return n.dedup(false) }

// dedup replaces each node by a simplified version or an existing
// equivalent node. Requires the network to already be topologically
// sorted (flip-flops are the exception: they are deduplicated first,
// since they aren't subject to sort ordering).
func (n *Network) dedup(makeCanonical bool) []signal.Signal {
	if !n.IsTopoSorted() {
		panic("network: dedup requires a topologically sorted network")
	}
	translation := make([]signal.Signal, n.NbNodes())
	for i := range translation {
		translation[i] = signal.FromVar(uint32(i))
	}

	seen := make(map[string]signal.Signal)
	var newNodes []gate.Gate

	dedupNode := func(g gate.Gate) signal.Signal {
		var norm gate.Normalization
		if makeCanonical {
			norm = g.MakeCanonical()
		} else {
			norm = gate.NormNode(g, false)
		}
		if norm.IsCopy() {
			return norm.Copy()
		}
		gg, inv := norm.Node()
		if existing, ok := seen[gg.Key()]; ok {
			return existing.Xor(inv)
		}
		nodeS := signal.FromVar(uint32(len(newNodes)))
		seen[gg.Key()] = nodeS
		newNodes = append(newNodes, gg)
		return nodeS.Xor(inv)
	}

	// Dedup flip-flops first; their dependencies are not yet remapped.
	for i := 0; i < n.NbNodes(); i++ {
		g := n.Gate(uint32(i))
		if !g.IsComb() {
			translation[i] = dedupNode(g)
		}
	}

	// Remap and dedup combinational gates in topological order.
	for i := 0; i < n.NbNodes(); i++ {
		g := n.Gate(uint32(i)).RemapOrder(translation)
		if g.IsComb() {
			translation[i] = dedupNode(g)
		}
	}

	// Flip-flops reference combinational gates for their data/enable/reset
	// inputs, which are only now renumbered; remap them last.
	for i, g := range newNodes {
		if !g.IsComb() {
			newNodes[i] = g.RemapOrder(translation)
		}
	}

	n.nodes = newNodes
	n.remapOutputs(translation)
	log.WithField("before", len(translation)).WithField("after", len(newNodes)).Debug("dedup")
	n.Check()
	return translation
}
