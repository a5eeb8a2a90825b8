package sim

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// SimpleSimulator simulates a network directly against its gate
// representation, 64 patterns at a time (one bit per lane). Simple to
// write and reasonably efficient; the incremental simulator builds on
// top of it for fast per-fault evaluation.
type SimpleSimulator struct {
	aig         *network.Network
	inputValues []uint64
	nodeValues  []uint64
}

// polToWord turns a signal's inversion bit into an all-ones or
// all-zeros mask for bitwise XOR against a lane word.
func polToWord(s signal.Signal) uint64 {
	if s.IsInverted() {
		return ^uint64(0)
	}
	return 0
}

func maj(a, b, c uint64) uint64 { return (b & c) | (a & (b | c)) }

func mux(s, a, b uint64) uint64 { return (s & a) | (^s & b) }

// NewSimpleSimulator captures aig, which must already be topologically
// sorted.
func NewSimpleSimulator(aig *network.Network) *SimpleSimulator {
	if !aig.IsTopoSorted() {
		panic("sim: network must be topologically sorted")
	}
	return &SimpleSimulator{
		aig:         aig,
		inputValues: make([]uint64, aig.NbInputs()),
		nodeValues:  make([]uint64, aig.NbNodes()),
	}
}

// Clone returns an independent copy sharing the same network pointer.
func (s *SimpleSimulator) Clone() *SimpleSimulator {
	cp := &SimpleSimulator{
		aig:         s.aig,
		inputValues: make([]uint64, len(s.inputValues)),
		nodeValues:  make([]uint64, len(s.nodeValues)),
	}
	copy(cp.inputValues, s.inputValues)
	copy(cp.nodeValues, s.nodeValues)
	return cp
}

// Run simulates the network over multiple 64-lane timesteps and returns
// the per-timestep output values.
func (s *SimpleSimulator) Run(inputValues [][]uint64) [][]uint64 {
	return s.RunWithFaults(inputValues, nil)
}

// RunWithFaults simulates the network over multiple 64-lane timesteps
// with a set of stuck-at faults injected, returning the per-timestep
// output values.
func (s *SimpleSimulator) RunWithFaults(inputValues [][]uint64, faults []Fault) [][]uint64 {
	s.check()
	s.Reset()
	var ret [][]uint64
	for i, v := range inputValues {
		if i != 0 {
			s.runDff()
		}
		s.CopyInputs(v)
		s.runCombWithFaults(faults)
		ret = append(ret, s.outputValues())
	}
	return ret
}

// Reset clears all input and node state.
func (s *SimpleSimulator) Reset() {
	s.inputValues = make([]uint64, s.aig.NbInputs())
	s.nodeValues = make([]uint64, s.aig.NbNodes())
}

func (s *SimpleSimulator) check() {
	if !s.aig.IsTopoSorted() {
		panic("sim: network must be topologically sorted")
	}
	if len(s.inputValues) != int(s.aig.NbInputs()) || len(s.nodeValues) != s.aig.NbNodes() {
		panic("sim: simulator state does not match network size")
	}
}

func (s *SimpleSimulator) getValue(sig signal.Signal) uint64 {
	switch {
	case sig == signal.Zero():
		return 0
	case sig == signal.One():
		return ^uint64(0)
	case sig.IsInput():
		return s.inputValues[sig.Input()] ^ polToWord(sig)
	default:
		return s.nodeValues[sig.Var()] ^ polToWord(sig)
	}
}

// CopyInputs loads a fresh set of 64-lane input values.
func (s *SimpleSimulator) CopyInputs(inputs []uint64) {
	if len(inputs) != len(s.inputValues) {
		panic("sim: wrong number of inputs")
	}
	copy(s.inputValues, inputs)
}

func (s *SimpleSimulator) runDff() {
	next := make([]uint64, len(s.nodeValues))
	copy(next, s.nodeValues)
	for i := 0; i < s.aig.NbNodes(); i++ {
		g := s.aig.Gate(uint32(i))
		if g.Kind() != gate.KindDff {
			continue
		}
		d, en, res := g.Ternary()
		dv := s.getValue(d)
		env := s.getValue(en)
		resv := s.getValue(res)
		prevv := s.nodeValues[i]
		next[i] = ^resv & ((env & dv) | (^env & prevv))
	}
	s.nodeValues = next
}

// RunComb evaluates every combinational gate (and leaves flip-flops at
// their current state), without faults. Exported for the incremental
// simulator's initial pass.
func (s *SimpleSimulator) RunComb() { s.runCombWithFaults(nil) }

func (s *SimpleSimulator) runGate(i int) uint64 {
	return s.evalGate(s.aig.Gate(uint32(i)), i)
}

// evalGate computes g's output from the simulator's current state. i is
// only consulted for the Dff case, which simply holds its prior value
// mid-cycle.
func (s *SimpleSimulator) evalGate(g gate.Gate, i int) uint64 {
	switch g.Kind() {
	case gate.KindAnd:
		a, b := g.And2()
		return s.getValue(a) & s.getValue(b)
	case gate.KindXor:
		a, b := g.And2()
		return s.getValue(a) ^ s.getValue(b)
	case gate.KindAnd3:
		a, b, c := g.Ternary()
		return s.getValue(a) & s.getValue(b) & s.getValue(c)
	case gate.KindXor3:
		a, b, c := g.Ternary()
		return s.getValue(a) ^ s.getValue(b) ^ s.getValue(c)
	case gate.KindMaj:
		a, b, c := g.Ternary()
		return maj(s.getValue(a), s.getValue(b), s.getValue(c))
	case gate.KindMux:
		sel, a, b := g.Ternary()
		return mux(s.getValue(sel), s.getValue(a), s.getValue(b))
	case gate.KindDff:
		return s.nodeValues[i]
	case gate.KindNary:
		switch g.NaryKind() {
		case gate.NaryAnd:
			return s.computeAndN(g.NaryInputs(), false, false)
		case gate.NaryOr:
			return s.computeAndN(g.NaryInputs(), true, true)
		case gate.NaryNand:
			return s.computeAndN(g.NaryInputs(), false, true)
		case gate.NaryNor:
			return s.computeAndN(g.NaryInputs(), true, false)
		case gate.NaryXor:
			return s.computeXorN(g.NaryInputs(), false)
		case gate.NaryXnor:
			return s.computeXorN(g.NaryInputs(), true)
		}
	case gate.KindBuf:
		return s.getValue(g.BufSignal())
	}
	panic("sim: unknown gate kind")
}

// RunGateWithInputStuck evaluates gate i as if its input at position
// input were pinned to value, leaving every other input at its current
// simulated value. Used by the incremental simulator to seed an
// input-stuck-at fault.
func (s *SimpleSimulator) RunGateWithInputStuck(i, input int, value bool) uint64 {
	patched := s.aig.Gate(uint32(i)).RemapInput(input, signal.FromBool(value))
	return s.evalGate(patched, i)
}

func lanesOf(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

func (s *SimpleSimulator) runCombWithFaults(faults []Fault) {
	for i := 0; i < s.aig.NbNodes(); i++ {
		g := s.aig.Gate(uint32(i))
		for _, f := range faults {
			if f.Kind == InputStuckAt && f.Gate == i {
				g = g.RemapInput(f.Input, signal.FromBool(f.Value))
			}
		}
		s.nodeValues[i] = s.evalGate(g, i)
		for _, f := range faults {
			if f.Kind == OutputStuckAt && f.Gate == i {
				s.nodeValues[i] = lanesOf(f.Value)
			}
		}
	}
}

func (s *SimpleSimulator) computeAndN(v []signal.Signal, invIn, invOut bool) uint64 {
	ret := ^uint64(0)
	for _, sig := range v {
		ret &= s.getValue(sig.Xor(invIn))
	}
	if invOut {
		return ^ret
	}
	return ret
}

func (s *SimpleSimulator) computeXorN(v []signal.Signal, invOut bool) uint64 {
	ret := uint64(0)
	for _, sig := range v {
		ret ^= s.getValue(sig)
	}
	if invOut {
		return ^ret
	}
	return ret
}

func (s *SimpleSimulator) outputValues() []uint64 {
	ret := make([]uint64, s.aig.NbOutputs())
	for o := 0; o < s.aig.NbOutputs(); o++ {
		ret[o] = s.getValue(s.aig.Output(o))
	}
	return ret
}
