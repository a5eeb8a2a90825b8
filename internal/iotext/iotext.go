// Package iotext holds the signal-naming helpers shared by the .bench
// and .blif readers/writers, mirroring the teacher's original
// io::utils module.
//
// Grounded on original_source/src/io/utils.rs.
package iotext

import (
	"sort"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// SigToString is the ad-hoc signal-naming convention both textual
// formats use: the reserved constant names, or a node/input reference
// with a "_n" suffix marking an inverted use.
func SigToString(s signal.Signal) string {
	if s == signal.One() {
		return "vdd"
	}
	if s == signal.Zero() {
		return "gnd"
	}
	base := s.WithoutInversion().String()
	if s.IsInverted() {
		return base + "_n"
	}
	return base
}

// InvertedSignals returns, in sorted order, every signal referenced
// inverted somewhere in aig (as a dependency, or as an output) that
// isn't already handled by a Buf gate (which exports its own
// inversion directly as a NOT line).
func InvertedSignals(aig *network.Network) []signal.Signal {
	seen := make(map[signal.Signal]bool)
	var ret []signal.Signal
	add := func(s signal.Signal) {
		if s.IsInverted() && !s.IsConstant() {
			u := s.Not()
			if !seen[u] {
				seen[u] = true
				ret = append(ret, u)
			}
		}
	}

	for o := 0; o < aig.NbOutputs(); o++ {
		add(aig.Output(o))
	}
	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		if g.Kind() == gate.KindBuf {
			continue
		}
		for _, s := range g.Dependencies() {
			add(s)
		}
	}

	sort.Slice(ret, func(i, j int) bool { return signal.Less(ret[i], ret[j]) })
	return ret
}
