package optim

import (
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// matcher finds a correspondence between signals in a small pattern
// network and signals in a host network, starting from an anchor gate.
// A pattern signal can be reused (so i0&i1 matches both xi&xj and
// xi&xi), but each pattern signal matches exactly one host signal.
// Variable-length patterns (an arbitrary fan-in count, a chain of
// unknown length) are not supported.
type matcher struct {
	matches []signal.Signal
	pattern *network.Network
}

// newMatcher builds a matcher from a single-output, non-inverted
// pattern network.
func newMatcher(pattern *network.Network) *matcher {
	if pattern.NbOutputs() != 1 {
		panic("optim: pattern must have exactly one output")
	}
	if pattern.Output(0).IsInverted() {
		panic("optim: pattern output must not be inverted")
	}
	m := &matcher{
		matches: make([]signal.Signal, pattern.NbInputs()+uint32(pattern.NbNodes())),
		pattern: pattern,
	}
	m.reset()
	return m
}

// matches runs the pattern matching algorithm against node i of aig. On
// success it returns the host signal matched to each pattern input, in
// pattern input order.
func (m *matcher) matches(aig *network.Network, i int) ([]signal.Signal, bool) {
	ok := m.tryMatch(m.pattern.Output(0), aig, signal.FromVar(uint32(i)))
	var ret []signal.Signal
	if ok {
		for j := uint32(0); j < m.pattern.NbInputs(); j++ {
			ret = append(ret, m.getMatch(signal.FromInput(j)))
		}
	}
	m.reset()
	return ret, ok
}

func (m *matcher) tryMatch(repr signal.Signal, aig *network.Network, s signal.Signal) bool {
	existing := m.getMatch(repr)
	if existing != signal.Placeholder() {
		return existing == s
	}
	m.setMatch(repr, s)

	switch {
	case repr.IsVar():
		if !s.IsVar() {
			return false
		}
		if s.IsInverted() != repr.IsInverted() {
			return false
		}
		gRepr := m.pattern.Gate(repr.Var())
		g := aig.Gate(s.Var())
		if !gateTypeMatches(gRepr, g) {
			return false
		}
		reprDeps := gRepr.Dependencies()
		deps := g.Dependencies()
		for k := range reprDeps {
			if !m.tryMatch(reprDeps[k], aig, deps[k]) {
				return false
			}
		}
		return true
	case repr.IsInput():
		return true
	default:
		return repr == s
	}
}

// gateTypeMatches reports whether two gates have the same shape: same
// kind, and for N-ary gates the same family and operand count.
func gateTypeMatches(a, b gate.Gate) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() == gate.KindNary {
		return a.NaryKind() == b.NaryKind() && len(a.NaryInputs()) == len(b.NaryInputs())
	}
	return true
}

func (m *matcher) index(repr signal.Signal) uint32 {
	if repr.IsInput() {
		return repr.Input()
	}
	return m.pattern.NbInputs() + repr.Var()
}

func (m *matcher) getMatch(repr signal.Signal) signal.Signal {
	if repr.IsConstant() {
		return repr
	}
	v := m.matches[m.index(repr)]
	if v == signal.Placeholder() {
		return v
	}
	return v.Xor(repr.IsInverted())
}

func (m *matcher) setMatch(repr, val signal.Signal) {
	if repr.IsConstant() {
		panic("optim: cannot match a constant pattern signal")
	}
	m.matches[m.index(repr)] = val.Xor(repr.IsInverted())
}

func (m *matcher) reset() {
	for i := range m.matches {
		m.matches[i] = signal.Placeholder()
	}
}
