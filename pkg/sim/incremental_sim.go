package sim

import (
	"container/heap"

	"github.com/aignet/aignet/pkg/network"
)

// intHeap is a min-heap of gate indices, used as the incremental
// simulator's update queue: the lowest-index dirty gate is always
// processed first, which respects the network's topological order
// since every gate's dependencies have a strictly lower index.
type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// IncrementalSimulator evaluates stuck-at faults against a baseline
// simulation by only recomputing the gates a fault's effect actually
// reaches, instead of re-running the whole network per fault.
type IncrementalSimulator struct {
	isOutput    []bool
	gateUsers   [][]uint32
	sim         *SimpleSimulator
	incrSim     *SimpleSimulator
	updateQueue intHeap
	touched     []int
	isTouched   []bool
}

// NewIncrementalSimulator captures aig, which must already be
// topologically sorted.
func NewIncrementalSimulator(aig *network.Network) *IncrementalSimulator {
	s := NewSimpleSimulator(aig)
	return &IncrementalSimulator{
		isOutput:  network.GateIsOutput(aig),
		gateUsers: network.GateUsers(aig),
		sim:       s,
		incrSim:   s.Clone(),
		isTouched: make([]bool, aig.NbNodes()),
	}
}

// reset restores incrSim to match the baseline sim over every gate the
// last fault run touched, and clears the touched-set bookkeeping.
func (s *IncrementalSimulator) reset() {
	for _, v := range s.touched {
		s.incrSim.nodeValues[v] = s.sim.nodeValues[v]
		s.isTouched[v] = false
	}
	if s.updateQueue.Len() != 0 {
		panic("sim: update queue not drained before reset")
	}
	s.touched = s.touched[:0]
}

// RunInitial simulates the baseline pattern with no fault injected, and
// seeds the incremental simulator's starting state from it.
func (s *IncrementalSimulator) RunInitial(inputValues []uint64) {
	s.sim.Reset()
	s.sim.CopyInputs(inputValues)
	s.sim.RunComb()
	s.incrSim = s.sim.Clone()
}

// updateGate records that gate i now evaluates to value, and enqueues
// every gate that uses i if this is the first time it was touched this
// fault run.
func (s *IncrementalSimulator) updateGate(i int, value uint64) {
	old := s.incrSim.nodeValues[i]
	if old == value {
		return
	}
	if !s.isTouched[i] {
		s.isTouched[i] = true
		s.touched = append(s.touched, i)
	}
	s.incrSim.nodeValues[i] = value
	for _, j := range s.gateUsers[i] {
		j := int(j)
		if !s.isTouched[j] {
			s.isTouched[j] = true
			heap.Push(&s.updateQueue, j)
			s.touched = append(s.touched, j)
		}
	}
}

// runIncremental propagates a single fault's effect through the network,
// recomputing only the gates it reaches, lowest index first.
func (s *IncrementalSimulator) runIncremental(fault Fault) {
	switch fault.Kind {
	case OutputStuckAt:
		s.updateGate(fault.Gate, lanesOf(fault.Value))
	case InputStuckAt:
		value := s.incrSim.RunGateWithInputStuck(fault.Gate, fault.Input, fault.Value)
		s.updateGate(fault.Gate, value)
	}
	for s.updateQueue.Len() != 0 {
		i := heap.Pop(&s.updateQueue).(int)
		s.updateGate(i, s.incrSim.runGate(i))
	}
}

// outputModified returns, per simulated lane, whether any primary
// output differs between the faulted and baseline runs.
func (s *IncrementalSimulator) outputModified() uint64 {
	var ret uint64
	for _, i := range s.touched {
		if s.isOutput[i] {
			ret |= s.incrSim.nodeValues[i] ^ s.sim.nodeValues[i]
		}
	}
	return ret
}

// DetectsFault reports, per simulated lane, whether fault changes some
// primary output relative to the fault-free run captured by RunInitial.
func (s *IncrementalSimulator) DetectsFault(fault Fault) uint64 {
	s.runIncremental(fault)
	ret := s.outputModified()
	s.reset()
	return ret
}
