// Package network implements Network, the gate-inverter-graph
// representation every pass in this engine operates on: primary inputs,
// a topologically-orderable list of gates, and primary outputs.
//
// Grounded on original_source/src/network/network.rs, split across
// several files the way the teacher's SAT solver package splits its own
// concerns (lit_mapping.go, constraints.go, search.go, solve.go, dict.go):
// this file holds the struct and basic accessors/mutation, sort.go holds
// topo_sort, dedup.go holds deduplicate/make_canonical, cleanup.go holds
// cleanup, shuffle.go holds shuffle, stats.go holds the Stats report.
package network

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/signal"
)

var log = logrus.WithField("pkg", "network")

// Network is a logic network represented as a gate-inverter graph: a
// count of primary inputs, an ordered list of gates (each referenced by
// its position as an internal variable), and a list of primary outputs.
type Network struct {
	nbInputs uint32
	nodes    []gate.Gate
	outputs  []signal.Signal
}

// New returns an empty network.
func New() *Network { return &Network{} }

// Clone returns an independent deep copy: mutating the copy never
// affects the original, matching the derived Clone impl the Rust
// Network relies on for passes like infer_xor_mux that speculatively
// rewrite a scratch copy before committing it back.
func (n *Network) Clone() *Network {
	nodes := make([]gate.Gate, len(n.nodes))
	copy(nodes, n.nodes)
	outputs := make([]signal.Signal, len(n.outputs))
	copy(outputs, n.outputs)
	return &Network{nbInputs: n.nbInputs, nodes: nodes, outputs: outputs}
}

// NbInputs returns the number of primary inputs.
func (n *Network) NbInputs() uint32 { return n.nbInputs }

// NbOutputs returns the number of primary outputs.
func (n *Network) NbOutputs() int { return len(n.outputs) }

// NbNodes returns the number of gates.
func (n *Network) NbNodes() int { return len(n.nodes) }

// Input returns the signal referencing primary input i.
func (n *Network) Input(i uint32) signal.Signal {
	if i >= n.nbInputs {
		panic(fmt.Sprintf("network: input index %d out of bounds (nb_inputs=%d)", i, n.nbInputs))
	}
	return signal.FromInput(i)
}

// Output returns the signal assigned to output i.
func (n *Network) Output(i int) signal.Signal {
	if i < 0 || i >= len(n.outputs) {
		panic(fmt.Sprintf("network: output index %d out of bounds (nb_outputs=%d)", i, len(n.outputs)))
	}
	return n.outputs[i]
}

// Node returns the signal referencing internal variable i.
func (n *Network) Node(i uint32) signal.Signal { return signal.FromVar(i) }

// Gate returns the gate at internal variable index i.
func (n *Network) Gate(i uint32) gate.Gate { return n.nodes[i] }

// AddInput appends a new primary input and returns its signal.
func (n *Network) AddInput() signal.Signal {
	n.nbInputs++
	return n.Input(n.nbInputs - 1)
}

// AddInputs appends nb new primary inputs.
func (n *Network) AddInputs(nb uint32) { n.nbInputs += nb }

// AddOutput appends a new primary output bound to s.
func (n *Network) AddOutput(s signal.Signal) { n.outputs = append(n.outputs, s) }

// And adds a canonical 2-input And gate.
func (n *Network) And(a, b signal.Signal) signal.Signal { return n.AddCanonical(gate.And(a, b)) }

// Xor adds a canonical 2-input Xor gate.
func (n *Network) Xor(a, b signal.Signal) signal.Signal { return n.AddCanonical(gate.Xor(a, b)) }

// Dff adds a canonical D flip-flop gate.
func (n *Network) Dff(data, enable, reset signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Dff(data, enable, reset))
}

// And3 adds a canonical 3-input And gate.
func (n *Network) And3(a, b, c signal.Signal) signal.Signal {
	return n.AddCanonical(gate.And3(a, b, c))
}

// Xor3 adds a canonical 3-input Xor gate.
func (n *Network) Xor3(a, b, c signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Xor3(a, b, c))
}

// Mux adds a canonical multiplexer gate.
func (n *Network) Mux(s, a, b signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Mux(s, a, b))
}

// Maj adds a canonical 3-input majority gate.
func (n *Network) Maj(a, b, c signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Maj(a, b, c))
}

// Or adds a 2-input Or gate, built from And by De Morgan's law (the
// network has no native Or2 gate kind).
func (n *Network) Or(a, b signal.Signal) signal.Signal { return n.And(a.Not(), b.Not()).Not() }

// Or3 adds a 3-input Or gate, built from And3 by De Morgan's law.
func (n *Network) Or3(a, b, c signal.Signal) signal.Signal {
	return n.And3(a.Not(), b.Not(), c.Not()).Not()
}

// AndN adds a canonical N-ary And gate.
func (n *Network) AndN(v []signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Nary(v, gate.NaryAnd))
}

// OrN adds a canonical N-ary Or gate.
func (n *Network) OrN(v []signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Nary(v, gate.NaryOr))
}

// XorN adds a canonical N-ary Xor gate.
func (n *Network) XorN(v []signal.Signal) signal.Signal {
	return n.AddCanonical(gate.Nary(v, gate.NaryXor))
}

// AddCanonical normalizes g and adds it, returning the (possibly
// pre-existing, possibly constant) signal it reduces to.
func (n *Network) AddCanonical(g gate.Gate) signal.Signal {
	norm := g.MakeCanonical()
	if norm.IsCopy() {
		return norm.Copy()
	}
	gg, inv := norm.Node()
	return n.Add(gg).Xor(inv)
}

// Add appends gate g verbatim and returns its signal.
func (n *Network) Add(g gate.Gate) signal.Signal {
	l := signal.FromVar(uint32(len(n.nodes)))
	n.nodes = append(n.nodes, g)
	return l
}

// Replace overwrites the gate at internal variable index i.
func (n *Network) Replace(i uint32, g gate.Gate) signal.Signal {
	n.nodes[i] = g
	return signal.FromVar(i)
}

// IsComb reports whether every gate in the network is combinational.
func (n *Network) IsComb() bool {
	for _, g := range n.nodes {
		if !g.IsComb() {
			return false
		}
	}
	return true
}

// IsTopoSorted reports whether every combinational gate's variable
// dependencies precede it in node order. Flip-flops are exempt.
func (n *Network) IsTopoSorted() bool {
	for i, g := range n.nodes {
		if !g.IsComb() {
			continue
		}
		for _, v := range g.Vars() {
			if v >= uint32(i) {
				return false
			}
		}
	}
	return true
}

// remapOutputs applies a translation table to every output signal.
func (n *Network) remapOutputs(translation []signal.Signal) {
	for i, s := range n.outputs {
		n.outputs[i] = s.RemapOrder(translation)
	}
}

// remap reorders nodes according to order (old index -> position in
// order) and returns the translation table (old variable index -> new
// signal) used, so callers can propagate it to anything referencing the
// old numbering. There may be holes in order's image: unreferenced
// nodes map to the zero Signal.
func (n *Network) remap(order []uint32) []signal.Signal {
	translation := make([]signal.Signal, n.NbNodes())
	for newI, oldI := range order {
		translation[oldI] = signal.FromVar(uint32(newI))
	}

	newNodes := make([]gate.Gate, 0, len(order))
	for _, oldI := range order {
		g := n.Gate(oldI)
		if !translation[oldI].IsVar() || translation[oldI].Var() != uint32(len(newNodes)) {
			panic("network: inconsistent remap order")
		}
		newNodes = append(newNodes, g.RemapOrder(translation))
	}
	n.nodes = newNodes
	n.remapOutputs(translation)
	return translation
}

// Check asserts the network's internal consistency: every gate
// dependency and output signal refers to an in-bounds input/variable,
// and the network remains topologically sorted.
func (n *Network) Check() {
	for i := 0; i < n.NbNodes(); i++ {
		for _, v := range n.Gate(uint32(i)).Dependencies() {
			if !n.IsValid(v) {
				panic(fmt.Sprintf("network: invalid signal %s in gate %d", v, i))
			}
		}
	}
	for i := 0; i < n.NbOutputs(); i++ {
		if !n.IsValid(n.Output(i)) {
			panic(fmt.Sprintf("network: invalid output %d: %s", i, n.Output(i)))
		}
	}
	if !n.IsTopoSorted() {
		panic("network: not topologically sorted")
	}
}

// IsValid reports whether s refers to an in-bounds input or variable of
// this network. Constants are always valid.
func (n *Network) IsValid(s signal.Signal) bool {
	switch {
	case s.IsInput():
		return s.Input() < n.nbInputs
	case s.IsVar():
		return s.Var() < uint32(n.NbNodes())
	default:
		return true
	}
}

func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network with %d inputs, %d outputs:\n", n.nbInputs, len(n.outputs))
	for i := 0; i < n.NbNodes(); i++ {
		fmt.Fprintf(&b, "\t%s = %s\n", n.Node(uint32(i)), n.Gate(uint32(i)))
	}
	for i := 0; i < n.NbOutputs(); i++ {
		fmt.Fprintf(&b, "\to%d = %s\n", i, n.Output(i))
	}
	return b.String()
}
