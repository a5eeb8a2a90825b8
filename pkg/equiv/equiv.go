// Package equiv checks combinational and bounded-sequential equivalence
// between two networks by building a miter network (xor the outputs,
// or them together) and proving its single output unsatisfiable.
//
// Grounded on original_source/src/equiv.rs's difference/
// check_equivalence_comb/check_equivalence_bounded.
package equiv

import (
	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/cnf"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
	"github.com/aignet/aignet/pkg/unroll"
)

// Difference builds a single-output combinational network whose output
// is 1 exactly when a and b disagree on some primary output for some
// input assignment. a and b must be combinational, with matching input
// and output counts.
func Difference(a, b *network.Network) *network.Network {
	if !a.IsComb() || !b.IsComb() {
		panic("equiv: both networks must be combinational")
	}
	if a.NbInputs() != b.NbInputs() {
		panic("equiv: input count mismatch")
	}
	if a.NbOutputs() != b.NbOutputs() {
		panic("equiv: output count mismatch")
	}

	eq := network.New()
	eq.AddInputs(a.NbInputs())

	ta := make(map[signal.Signal]signal.Signal)
	network.Extend(eq, a, ta, true)
	tb := make(map[signal.Signal]signal.Signal)
	network.Extend(eq, b, tb, true)

	outputs := make([]signal.Signal, a.NbOutputs())
	for i := 0; i < a.NbOutputs(); i++ {
		sa := ta[a.Output(i)]
		sb := tb[b.Output(i)]
		outputs[i] = eq.Xor(sa, sb)
	}
	eq.AddOutput(eq.OrN(outputs))
	return eq
}

// CheckEquivalenceComb proves that a and b are combinationally
// equivalent. A nil error return means they always agree; otherwise the
// error carries a counterexample input assignment. If optimize is set,
// the miter network is deduplicated and swept before proving, which can
// make the SAT call much faster for large networks.
func CheckEquivalenceComb(a, b *network.Network, optimize bool) error {
	diff := Difference(a, b)
	if optimize {
		diff.MakeCanonical()
		diff.Cleanup()
	}
	witness, ok, err := cnf.Prove(diff)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return &aigerr.EquivalenceFailure{Vectors: [][]bool{witness}}
}

// CheckEquivalenceBounded proves that a and b, both sequential with
// matching input/output counts, behave identically over nbSteps clock
// cycles starting from reset. A nil error means they agree throughout;
// otherwise the error carries one counterexample input vector per step.
func CheckEquivalenceBounded(a, b *network.Network, nbSteps int, optimize bool) error {
	if a.NbInputs() != b.NbInputs() {
		panic("equiv: input count mismatch")
	}
	if a.NbOutputs() != b.NbOutputs() {
		panic("equiv: output count mismatch")
	}

	au := unroll.Unroll(a, nbSteps)
	bu := unroll.Unroll(b, nbSteps)

	err := CheckEquivalenceComb(au, bu, optimize)
	if err == nil {
		return nil
	}
	failure, ok := err.(*aigerr.EquivalenceFailure)
	if !ok {
		return err
	}
	flat := failure.Vectors[0]
	if len(flat) != int(a.NbInputs())*nbSteps {
		panic("equiv: unexpected witness length")
	}
	steps := make([][]bool, nbSteps)
	nbIn := int(a.NbInputs())
	for step := 0; step < nbSteps; step++ {
		steps[step] = flat[step*nbIn : (step+1)*nbIn]
	}
	return &aigerr.EquivalenceFailure{Vectors: steps}
}
