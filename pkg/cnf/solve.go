package cnf

import (
	"sort"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Prove searches for an input assignment that drives aig's single
// output to 1. It returns the witness and true if one exists, or nil
// and false if the output is unsatisfiable. aig must have exactly one
// output and be combinational. A non-nil error means the oracle could
// not reach a decision at all (spec.md §5: "the core propagates an
// error indicating 'unable to solve SAT'"), distinct from a clean
// unsatisfiable result.
func Prove(aig *network.Network) ([]bool, bool, error) {
	if aig.NbOutputs() != 1 {
		panic("cnf: prove requires a single-output network")
	}
	out := aig.Output(0)
	if out == signal.One() {
		return make([]bool, aig.NbInputs()), true, nil
	}
	if out == signal.Zero() {
		return nil, false, nil
	}

	clauses := ToCNF(aig)

	seen := make(map[signal.Signal]bool)
	var all []signal.Signal
	addSeen := func(s signal.Signal) {
		u := s.WithoutInversion()
		if !seen[u] {
			seen[u] = true
			all = append(all, u)
		}
	}
	for _, c := range clauses {
		for _, s := range c {
			addSeen(s)
		}
	}
	for i := uint32(0); i < aig.NbInputs(); i++ {
		addSeen(signal.FromInput(i))
	}
	sort.Slice(all, func(i, j int) bool { return signal.Less(all[i], all[j]) })

	g := gini.New()
	lits := make(map[signal.Signal]z.Lit, len(all))
	for _, s := range all {
		lits[s] = g.Lit()
	}
	litOf := func(s signal.Signal) z.Lit {
		l := lits[s.WithoutInversion()]
		if s.IsInverted() {
			return l.Not()
		}
		return l
	}

	for _, c := range clauses {
		for _, s := range c {
			g.Add(litOf(s))
		}
		g.Add(z.LitNull)
	}
	g.Add(litOf(out))
	g.Add(z.LitNull)

	switch g.Solve() {
	case unsatisfiable:
		return nil, false, nil
	case satisfiable:
		witness := make([]bool, aig.NbInputs())
		for i := uint32(0); i < aig.NbInputs(); i++ {
			witness[i] = g.Value(litOf(signal.FromInput(i)))
		}
		return witness, true, nil
	default:
		return nil, false, aigerr.NewSolverError("solver returned an indeterminate result")
	}
}
