// Package sim implements bit-parallel network simulation, an
// incremental simulator for fast fault evaluation, and the stuck-at
// fault model.
//
// Grounded on original_source/src/sim.rs, src/sim/simple_sim.rs,
// src/sim/incremental_sim.rs, src/sim/fault.rs.
package sim

import (
	"fmt"
	"sort"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
)

// FaultKind tags a Fault's location.
type FaultKind int

const (
	// OutputStuckAt pins a gate's output to a fixed value.
	OutputStuckAt FaultKind = iota
	// InputStuckAt pins one of a gate's inputs to a fixed value.
	InputStuckAt
)

// Fault is a single stuck-at fault: either a gate's output, or one of
// its inputs, pinned to a constant.
type Fault struct {
	Kind  FaultKind
	Gate  int
	Input int // only meaningful when Kind == InputStuckAt
	Value bool
}

func (f Fault) String() string {
	if f.Kind == OutputStuckAt {
		return fmt.Sprintf("Gate %d output stuck at %d", f.Gate, b2i(f.Value))
	}
	return fmt.Sprintf("Gate %d input %d stuck at %d", f.Gate, f.Input, b2i(f.Value))
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func less(a, b Fault) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Gate != b.Gate {
		return a.Gate < b.Gate
	}
	if a.Input != b.Input {
		return a.Input < b.Input
	}
	return !a.Value && b.Value
}

// AllFaults returns every possible stuck-at fault in the network.
func AllFaults(aig *network.Network) []Fault {
	var ret []Fault
	for g := 0; g < aig.NbNodes(); g++ {
		for _, v := range []bool{false, true} {
			ret = append(ret, Fault{Kind: OutputStuckAt, Gate: g, Value: v})
		}
		nbDeps := len(aig.Gate(uint32(g)).Dependencies())
		for input := 0; input < nbDeps; input++ {
			for _, v := range []bool{false, true} {
				ret = append(ret, Fault{Kind: InputStuckAt, Gate: g, Input: input, Value: v})
			}
		}
	}
	return ret
}

// AllUniqueFaults returns every stuck-at fault that is not redundant
// with another fault in the network (see RedundantFaults). This is the
// fault set ATPG targets by default.
func AllUniqueFaults(aig *network.Network) []Fault {
	all := AllFaults(aig)
	redundant := make(map[Fault]bool)
	for _, f := range RedundantFaults(aig) {
		redundant[f] = true
	}
	ret := all[:0:0]
	for _, f := range all {
		if !redundant[f] {
			ret = append(ret, f)
		}
	}
	return ret
}

// RedundantFaults lists the faults that are covered by some other fault
// in the network: a single-use variable's input-stuck-at fault is
// redundant with the driving gate's output-stuck-at fault, any input of
// a Xor-like or Buf-like gate is redundant with its output stuck-at
// fault, and for an And-like gate the value that forces the gate
// (respecting Or/Nor's inverted inputs) is redundant too.
func RedundantFaults(aig *network.Network) []Fault {
	usage := network.CountGateUsage(aig)

	var ret []Fault
	for g := 0; g < aig.NbNodes(); g++ {
		gg := aig.Gate(uint32(g))
		deps := gg.Dependencies()
		for input, s := range deps {
			singleUse := s.IsVar() && usage[s.Var()] <= 1
			for _, value := range []bool{false, true} {
				if singleUse {
					ret = append(ret, Fault{Kind: InputStuckAt, Gate: g, Input: input, Value: value})
				}
				if gg.IsXorLike() || gg.IsBufLike() {
					ret = append(ret, Fault{Kind: InputStuckAt, Gate: g, Input: input, Value: value})
					if singleUse {
						ret = append(ret, Fault{Kind: OutputStuckAt, Gate: int(s.Var()), Value: value})
					}
				}
				if gg.IsAndLike() {
					inputInv := gg.Kind() == gate.KindNary && (gg.NaryKind() == gate.NaryOr || gg.NaryKind() == gate.NaryNor)
					if value == inputInv {
						ret = append(ret, Fault{Kind: InputStuckAt, Gate: g, Input: input, Value: value})
						if singleUse {
							ret = append(ret, Fault{Kind: OutputStuckAt, Gate: int(s.Var()), Value: value})
						}
					}
				}
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool { return less(ret[i], ret[j]) })
	return dedupFaults(ret)
}

func dedupFaults(v []Fault) []Fault {
	if len(v) == 0 {
		return v
	}
	out := v[:1]
	for _, f := range v[1:] {
		if f != out[len(out)-1] {
			out = append(out, f)
		}
	}
	return out
}

// HasDuplicateGate reports whether two faults in the list share the
// same gate index.
func HasDuplicateGate(faults []Fault) bool {
	gates := make([]int, len(faults))
	for i, f := range faults {
		gates[i] = f.Gate
	}
	sort.Ints(gates)
	for i := 1; i < len(gates); i++ {
		if gates[i-1] == gates[i] {
			return true
		}
	}
	return false
}
