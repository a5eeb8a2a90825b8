package network

import "github.com/aignet/aignet/pkg/signal"

// Cleanup removes logic that does not feed any output, invalidating all
// signals. Returns the old-variable-index -> new-signal translation
// table; removed nodes map to the zero signal.
func (n *Network) Cleanup() []signal.Signal {
	visited := make([]bool, n.NbNodes())
	var toVisit []uint32
	for o := 0; o < n.NbOutputs(); o++ {
		out := n.Output(o)
		if out.IsVar() {
			toVisit = append(toVisit, out.Var())
		}
	}
	for len(toVisit) > 0 {
		node := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		toVisit = append(toVisit, n.Gate(node).Vars()...)
	}

	var order []uint32
	for i, v := range visited {
		if v {
			order = append(order, uint32(i))
		}
	}
	log.WithField("kept", len(order)).WithField("total", n.NbNodes()).Debug("cleanup")
	return n.remap(order)
}
