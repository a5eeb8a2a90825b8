package network

import "github.com/aignet/aignet/pkg/signal"

// TopoSort reorders the network so that every combinational gate's
// variable dependencies precede it. Flip-flops are kept first (in their
// original relative order) since they are exempt from the sort and must
// never move relative to each other. Ordering may change even if the
// network was already sorted.
//
// Returns the old-variable-index -> new-signal translation table.
// Panics if the combinational part of the network contains a cycle.
func (n *Network) TopoSort() []signal.Signal {
	countDeps := make([]uint32, n.NbNodes())
	for _, g := range n.nodes {
		if g.IsComb() {
			for _, v := range g.Vars() {
				countDeps[v]++
			}
		}
	}

	visited := make([]bool, n.NbNodes())
	for i, g := range n.nodes {
		if !g.IsComb() {
			visited[i] = true
		}
	}

	var toVisit []uint32
	for v := 0; v < n.NbNodes(); v++ {
		if countDeps[v] == 0 && !visited[v] {
			toVisit = append(toVisit, uint32(v))
		}
	}

	var revOrder []uint32
	for len(toVisit) > 0 {
		v := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		revOrder = append(revOrder, v)
		g := n.Gate(v)
		if g.IsComb() {
			for _, d := range g.Vars() {
				countDeps[d]--
				if countDeps[d] == 0 {
					toVisit = append(toVisit, d)
				}
			}
		}
	}

	for i := n.NbNodes() - 1; i >= 0; i-- {
		if !n.Gate(uint32(i)).IsComb() {
			revOrder = append(revOrder, uint32(i))
		}
	}

	if len(revOrder) != n.NbNodes() {
		panic("network: unable to find a valid topological sort: there must be a combinational loop")
	}
	order := make([]uint32, len(revOrder))
	for i, v := range revOrder {
		order[len(revOrder)-1-i] = v
	}

	return n.remap(order)
}
