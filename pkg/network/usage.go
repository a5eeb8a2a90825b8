package network

// GateIsOutput returns, for each internal variable index, whether some
// primary output is bound to that variable (regardless of polarity).
func GateIsOutput(n *Network) []bool {
	ret := make([]bool, n.NbNodes())
	for o := 0; o < n.NbOutputs(); o++ {
		out := n.Output(o)
		if out.IsVar() {
			ret[out.Var()] = true
		}
	}
	return ret
}

// GateUsers returns, for each internal variable index, the list of gate
// indices that use it as a dependency — the reverse adjacency list the
// incremental simulator walks to propagate a touched value forward.
func GateUsers(n *Network) [][]uint32 {
	ret := make([][]uint32, n.NbNodes())
	for i := 0; i < n.NbNodes(); i++ {
		for _, v := range n.Gate(uint32(i)).Vars() {
			ret[v] = append(ret[v], uint32(i))
		}
	}
	return ret
}

// CountGateUsage returns, for each internal variable index, how many
// gate dependencies reference it — its fan-out within the network,
// excluding primary outputs. Used by the fault model to recognize
// single-use nodes whose input- and output-stuck-at faults coincide.
func CountGateUsage(n *Network) []int {
	ret := make([]int, n.NbNodes())
	for i := 0; i < n.NbNodes(); i++ {
		for _, v := range n.Gate(uint32(i)).Vars() {
			ret[v]++
		}
	}
	return ret
}
