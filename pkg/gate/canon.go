package gate

import (
	"sort"

	"github.com/aignet/aignet/pkg/signal"
)

// Normalization is the result of normalizing a Gate: either a direct copy
// of an existing signal (the gate simplified away entirely) or a
// canonical Gate plus an output inversion.
type Normalization struct {
	isCopy bool
	copy   signal.Signal
	gate   Gate
	inv    bool
}

// NormCopy builds a Normalization that collapses to an existing signal.
func NormCopy(s signal.Signal) Normalization { return Normalization{isCopy: true, copy: s} }

// NormNode builds a Normalization holding a gate and its output inversion.
func NormNode(g Gate, inv bool) Normalization { return Normalization{gate: g, inv: inv} }

// IsCopy reports whether this normalization collapsed to a plain signal.
func (n Normalization) IsCopy() bool { return n.isCopy }

// Copy returns the collapsed signal; only valid when IsCopy().
func (n Normalization) Copy() signal.Signal { return n.copy }

// Node returns the gate and its output inversion; only valid when !IsCopy().
func (n Normalization) Node() (Gate, bool) { return n.gate, n.inv }

// IsCanonical reports whether n is already in canonical form.
func (n Normalization) IsCanonical() bool {
	if n.isCopy {
		return true
	}
	return n.gate.IsCanonical()
}

// MakeCanonical runs the normalization algorithm to a fixed point.
func (n Normalization) MakeCanonical() Normalization {
	if n.isCopy {
		return n
	}
	g, inv := n.gate, n.inv
	switch g.kind {
	case KindAnd:
		return makeAnd(g.deps[0], g.deps[1], inv)
	case KindXor:
		return makeXor(g.deps[0], g.deps[1], inv)
	case KindAnd3:
		return makeAnd3(g.deps[0], g.deps[1], g.deps[2], inv)
	case KindXor3:
		return makeXor3(g.deps[0], g.deps[1], g.deps[2], inv)
	case KindMux:
		return makeMux(g.deps[0], g.deps[1], g.deps[2], inv)
	case KindMaj:
		return makeMaj(g.deps[0], g.deps[1], g.deps[2], inv)
	case KindDff:
		return makeDff(g.deps[0], g.deps[1], g.deps[2], inv)
	case KindBuf:
		return NormCopy(g.deps[0].Xor(inv))
	case KindNary:
		switch g.nty {
		case NaryAnd:
			return makeAndN(g.nary, inv)
		case NaryNand:
			return makeAndN(g.nary, !inv)
		case NaryXor:
			return makeXorN(g.nary, inv)
		case NaryXnor:
			return makeXorN(g.nary, !inv)
		case NaryOr:
			return makeAndN(invertAll(g.nary), !inv)
		case NaryNor:
			return makeAndN(invertAll(g.nary), inv)
		}
	}
	panic("make_canonical of invalid gate")
}

// MakeCanonical builds and immediately normalizes a gate's Normalization.
func (g Gate) MakeCanonical() Normalization { return NormNode(g, false).MakeCanonical() }

// IsCanonical reports whether g is already in canonical form, per the gate
// kind's specific rules (sorted, non-constant operands, fixed polarity
// conventions).
func (g Gate) IsCanonical() bool {
	switch g.kind {
	case KindAnd:
		a, b := g.deps[0], g.deps[1]
		return sorted2(a, b) && !a.IsConstant()
	case KindXor:
		a, b := g.deps[0], g.deps[1]
		return sorted2(a, b) && !a.IsConstant() && noInv2(a, b)
	case KindAnd3:
		a, b, c := g.deps[0], g.deps[1], g.deps[2]
		return sorted3(a, b, c) && !a.IsConstant()
	case KindXor3:
		a, b, c := g.deps[0], g.deps[1], g.deps[2]
		return sorted3(a, b, c) && !a.IsConstant() && noInv3(a, b, c)
	case KindMaj:
		a, b, c := g.deps[0], g.deps[1], g.deps[2]
		return sorted3(a, b, c) && !a.IsConstant() && !a.Pol()
	case KindMux:
		s, a, b := g.deps[0], g.deps[1], g.deps[2]
		return signal.Ind(s) != signal.Ind(a) &&
			signal.Ind(s) != signal.Ind(b) &&
			signal.Ind(a) != signal.Ind(b) &&
			!s.Pol() && !b.Pol() &&
			!a.IsConstant() && !b.IsConstant() && !s.IsConstant()
	case KindDff:
		d, en, res := g.deps[0], g.deps[1], g.deps[2]
		return en != signal.Zero() && d != signal.Zero() && res != signal.One()
	case KindNary:
		if g.nty == NaryAnd {
			return sortedN(g.nary) && len(g.nary) > 3 && !g.nary[0].IsConstant()
		}
		if g.nty == NaryXor {
			return sortedN(g.nary) && len(g.nary) > 3 && !g.nary[0].IsConstant() && noInvN(g.nary)
		}
		return false
	case KindBuf:
		return false
	default:
		return false
	}
}

func invertAll(v []signal.Signal) []signal.Signal {
	out := make([]signal.Signal, len(v))
	for i, s := range v {
		out[i] = s.Not()
	}
	return out
}

func sorted2(a, b signal.Signal) bool { return signal.Ind(a) < signal.Ind(b) }

func sorted3(a, b, c signal.Signal) bool {
	return signal.Ind(a) < signal.Ind(b) && signal.Ind(b) < signal.Ind(c)
}

func sortedN(v []signal.Signal) bool {
	for i := 1; i < len(v); i++ {
		if signal.Ind(v[i-1]) >= signal.Ind(v[i]) {
			return false
		}
	}
	return true
}

func noInv2(a, b signal.Signal) bool { return !a.Pol() && !b.Pol() }

func noInv3(a, b, c signal.Signal) bool { return !a.Pol() && !b.Pol() && !c.Pol() }

func noInvN(v []signal.Signal) bool {
	for _, s := range v {
		if s.Pol() {
			return false
		}
	}
	return true
}

func sort2(a, b signal.Signal) (signal.Signal, signal.Signal) {
	if signal.Less(b, a) {
		return b, a
	}
	return a, b
}

func sort3(a, b, c signal.Signal) (signal.Signal, signal.Signal, signal.Signal) {
	i0, i1, i2 := a, b, c
	i1, i2 = sort2(i1, i2)
	i0, i1 = sort2(i0, i1)
	i1, i2 = sort2(i1, i2)
	return i0, i1, i2
}

func makeAnd(a, b signal.Signal, inv bool) Normalization {
	i0, i1 := sort2(a, b)
	switch {
	case i0 == signal.Zero() || i0 == i1.Not():
		return NormCopy(signal.Zero().Xor(inv))
	case i0 == signal.One() || i0 == i1:
		return NormCopy(i1.Xor(inv))
	default:
		return NormNode(And(i0, i1), inv)
	}
}

func makeXor(a, b signal.Signal, inv bool) Normalization {
	newInv := a.Pol() != b.Pol()
	newInv = newInv != inv
	i0, i1 := sort2(a.WithoutInversion(), b.WithoutInversion())
	switch {
	case i0 == signal.Zero():
		return NormCopy(i1.Xor(newInv))
	case i0 == i1:
		return NormCopy(signal.FromBool(newInv))
	default:
		return NormNode(Xor(i0, i1), newInv)
	}
}

func makeAnd3(a, b, c signal.Signal, inv bool) Normalization {
	i0, i1, i2 := sort3(a, b, c)
	switch {
	case i0 == signal.Zero() || i0 == i1.Not() || i2 == i1.Not():
		return NormCopy(signal.Zero().Xor(inv))
	case i0 == signal.One() || i0 == i1:
		return makeAnd(i1, i2, inv)
	case i1 == i2:
		return makeAnd(i0, i1, inv)
	default:
		return NormNode(And3(i0, i1, i2), inv)
	}
}

func makeXor3(a, b, c signal.Signal, inv bool) Normalization {
	newInv := a.Pol() != b.Pol()
	newInv = newInv != c.Pol()
	newInv = newInv != inv
	i0, i1, i2 := sort3(a.WithoutInversion(), b.WithoutInversion(), c.WithoutInversion())
	switch {
	case i0 == signal.Zero():
		return makeXor(i1, i2, newInv)
	case i0 == i1:
		return NormCopy(i2.Xor(newInv))
	case i1 == i2:
		return NormCopy(i0.Xor(newInv))
	default:
		return NormNode(Xor3(i0, i1, i2), newInv)
	}
}

func makeMux(s, a, b signal.Signal, inv bool) Normalization {
	switch {
	case s.Pol():
		return makeMux(s.Not(), b, a, inv)
	case b.Pol():
		return makeMux(s, a.Not(), b.Not(), !inv)
	case s == signal.Zero() || a == b:
		return NormCopy(b.Xor(inv))
	case s == a || a == signal.One():
		// s ? 1 : b == s | b == !(!s & !b)
		return makeAnd(s.Not(), b.Not(), !inv)
	case s == a.Not() || a == signal.Zero():
		// s ? 0 : b == !s & b
		return makeAnd(s.Not(), b, inv)
	case s == b || b == signal.Zero():
		// s ? a : 0 == s & a
		return makeAnd(s, a, inv)
	case s == b.Not() || b == signal.One():
		// s ? a : 1 == !s | a == !(s & !a)
		return makeAnd(s, a.Not(), !inv)
	case a == b.Not():
		// s ? !b : b == s ^ b
		return makeXor(s, b, inv)
	default:
		return NormNode(Mux(s, a, b), inv)
	}
}

func makeMaj(a, b, c signal.Signal, inv bool) Normalization {
	i0, i1, i2 := sort3(a, b, c)
	switch {
	case i0 == i1.Not() || i1 == i2:
		return NormCopy(i2.Xor(inv))
	case i1 == i2.Not() || i0 == i1:
		return NormCopy(i0.Xor(inv))
	case i0.Pol():
		// Self-duality: flipping every input and the output preserves the
		// function, and the sort order is unaffected since it compares
		// indices, not polarity — so this terminates.
		return makeMaj(i0.Not(), i1.Not(), i2.Not(), !inv)
	case i0 == signal.Zero():
		return makeAnd(i1, i2, inv)
	default:
		return NormNode(Maj(i0, i1, i2), inv)
	}
}

func makeDff(d, en, res signal.Signal, inv bool) Normalization {
	if d == signal.Zero() || en == signal.Zero() || res == signal.One() {
		return NormCopy(signal.Zero().Xor(inv))
	}
	return NormNode(Dff(d, en, res), inv)
}

func makeAndN(v []signal.Signal, inv bool) Normalization {
	vs := make([]signal.Signal, 0, len(v))
	for _, s := range v {
		if s != signal.One() {
			vs = append(vs, s)
		}
	}
	sortSignals(vs)
	vs = dedupSorted(vs)
	for i := 1; i < len(vs); i++ {
		if vs[i-1] == vs[i].Not() {
			return NormCopy(signal.Zero().Xor(inv))
		}
	}
	switch {
	case len(vs) == 0:
		return NormCopy(signal.One().Xor(inv))
	case vs[0] == signal.Zero():
		return NormCopy(signal.Zero().Xor(inv))
	case len(vs) == 1:
		return NormCopy(vs[0].Xor(inv))
	case len(vs) == 2:
		return makeAnd(vs[0], vs[1], inv)
	case len(vs) == 3:
		return makeAnd3(vs[0], vs[1], vs[2], inv)
	default:
		return NormNode(Nary(vs, NaryAnd), inv)
	}
}

func makeXorN(v []signal.Signal, inv bool) Normalization {
	vs := make([]signal.Signal, len(v))
	copy(vs, v)
	pol := inv
	for _, s := range vs {
		pol = pol != s.Pol()
	}
	for i := range vs {
		vs[i] = vs[i].WithoutInversion()
	}
	filtered := vs[:0:0]
	for _, s := range vs {
		if s != signal.Zero() {
			filtered = append(filtered, s)
		}
	}
	sortSignals(filtered)

	dd := make([]signal.Signal, 0, len(filtered))
	for _, s := range filtered {
		if len(dd) > 0 && dd[len(dd)-1] == s {
			dd = dd[:len(dd)-1]
		} else {
			dd = append(dd, s)
		}
	}

	switch {
	case len(dd) == 0:
		return NormCopy(signal.Zero().Xor(pol))
	case len(dd) == 1:
		return NormCopy(dd[0].Xor(pol))
	case len(dd) == 2:
		return makeXor(dd[0], dd[1], pol)
	case len(dd) == 3:
		return makeXor3(dd[0], dd[1], dd[2], pol)
	default:
		return NormNode(Nary(dd, NaryXor), pol)
	}
}

func sortSignals(v []signal.Signal) {
	sort.Slice(v, func(i, j int) bool { return signal.Less(v[i], v[j]) })
}

func dedupSorted(v []signal.Signal) []signal.Signal {
	if len(v) == 0 {
		return v
	}
	out := v[:1]
	for _, s := range v[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
