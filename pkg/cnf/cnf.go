// Package cnf translates a combinational network to conjunctive normal
// form via Tseitin encoding, and proves Boolean properties about it
// using the go-air/gini SAT solver.
//
// Grounded on original_source/src/equiv.rs's to_cnf/prove.
package cnf

import (
	"sort"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

// Clause is a disjunction of signal literals.
type Clause []signal.Signal

// ToCNF translates a combinational network into an equisatisfiable set
// of clauses: one set of Tseitin clauses per gate, relating its output
// variable to its inputs. Xor3 and N-ary Xor/Xnor gates introduce fresh
// synthetic variables beyond the network's own node indices to encode
// their cascaded 2-input Xor chain. Panics if aig is not combinational.
func ToCNF(aig *network.Network) []Clause {
	if !aig.IsComb() {
		panic("cnf: network must be combinational")
	}

	var ret []Clause
	nextVar := uint32(aig.NbNodes())

	for i := 0; i < aig.NbNodes(); i++ {
		n := aig.Node(uint32(i))
		g := aig.Gate(uint32(i))
		switch g.Kind() {
		case gate.KindAnd:
			a, b := g.And2()
			ret = append(ret,
				Clause{a, n.Not()},
				Clause{b, n.Not()},
				Clause{a.Not(), b.Not(), n})
		case gate.KindXor:
			a, b := g.And2()
			ret = append(ret,
				Clause{a, b, n.Not()},
				Clause{a.Not(), b.Not(), n.Not()},
				Clause{a.Not(), b, n},
				Clause{a, b.Not(), n})
		case gate.KindAnd3:
			a, b, c := g.Ternary()
			ret = append(ret,
				Clause{a, n.Not()},
				Clause{b, n.Not()},
				Clause{c, n.Not()},
				Clause{a.Not(), b.Not(), c.Not(), n})
		case gate.KindXor3:
			a, b, c := g.Ternary()
			v := signal.FromVar(nextVar)
			nextVar++
			ret = append(ret,
				Clause{a, b, v.Not()},
				Clause{a.Not(), b.Not(), v.Not()},
				Clause{a.Not(), b, v},
				Clause{a, b.Not(), v},
				Clause{v, c, n.Not()},
				Clause{v.Not(), c.Not(), n.Not()},
				Clause{v.Not(), c, n},
				Clause{v, c.Not(), n})
		case gate.KindMux:
			s, a, b := g.Ternary()
			ret = append(ret,
				Clause{s.Not(), a.Not(), n},
				Clause{s.Not(), a, n.Not()},
				Clause{s, b.Not(), n},
				Clause{s, b, n.Not()},
				Clause{a, b, n.Not()},
				Clause{a.Not(), b.Not(), n})
		case gate.KindMaj:
			a, b, c := g.Ternary()
			ret = append(ret,
				Clause{a.Not(), b.Not(), n},
				Clause{b.Not(), c.Not(), n},
				Clause{a.Not(), c.Not(), n},
				Clause{a, b, n.Not()},
				Clause{b, c, n.Not()},
				Clause{a, c, n.Not()})
		case gate.KindBuf:
			s := g.BufSignal()
			ret = append(ret, Clause{s, n.Not()}, Clause{s.Not(), n})
		case gate.KindNary:
			switch g.NaryKind() {
			case gate.NaryAnd:
				ret = appendAndClauses(ret, g.NaryInputs(), n, false, false)
			case gate.NaryOr:
				ret = appendAndClauses(ret, g.NaryInputs(), n, true, true)
			case gate.NaryNand:
				ret = appendAndClauses(ret, g.NaryInputs(), n, false, true)
			case gate.NaryNor:
				ret = appendAndClauses(ret, g.NaryInputs(), n, true, false)
			case gate.NaryXor:
				ret, nextVar = appendXorClauses(ret, &nextVar, g.NaryInputs(), n, false)
			case gate.NaryXnor:
				ret, nextVar = appendXorClauses(ret, &nextVar, g.NaryInputs(), n, true)
			}
		default:
			panic("cnf: unsupported gate kind")
		}
	}

	return cleanup(ret)
}

func appendAndClauses(ret []Clause, v []signal.Signal, n signal.Signal, invIn, invOut bool) []Clause {
	for _, s := range v {
		ret = append(ret, Clause{s.Xor(invIn), n.Not().Xor(invOut)})
	}
	c := make(Clause, 0, len(v)+1)
	c = append(c, n.Xor(invOut))
	for _, s := range v {
		c = append(c, s.Not().Xor(invIn))
	}
	return append(ret, c)
}

func appendXorClauses(ret []Clause, nextVar *uint32, v []signal.Signal, n signal.Signal, invOut bool) ([]Clause, uint32) {
	if len(v) == 0 {
		return append(ret, Clause{n.Not().Xor(invOut)}), *nextVar
	}
	a := v[0]
	for i := 1; i < len(v); i++ {
		b := v[i]
		nv := signal.FromVar(*nextVar)
		*nextVar++
		ret = append(ret,
			Clause{a, b, nv.Not()},
			Clause{a.Not(), b.Not(), nv.Not()},
			Clause{a.Not(), b, nv},
			Clause{a, b.Not(), nv})
		a = nv
	}
	ret = append(ret, Clause{a, n.Not().Xor(invOut)}, Clause{a.Not(), n.Xor(invOut)})
	return ret, *nextVar
}

// cleanup drops constant literals from each clause, sorts and
// deduplicates the remaining literals, and removes any clause that is
// trivially satisfied by a constant-one literal.
func cleanup(clauses []Clause) []Clause {
	ret := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		filtered := c[:0:0]
		trivial := false
		for _, s := range c {
			if s == signal.One() {
				trivial = true
			}
			if s == signal.Zero() {
				continue
			}
			filtered = append(filtered, s)
		}
		if trivial {
			continue
		}
		sort.Slice(filtered, func(i, j int) bool { return signal.Less(filtered[i], filtered[j]) })
		deduped := filtered[:0:0]
		for i, s := range filtered {
			if i == 0 || s != filtered[i-1] {
				deduped = append(deduped, s)
			}
		}
		ret = append(ret, deduped)
	}
	return ret
}
