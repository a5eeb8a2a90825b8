package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
	"github.com/aignet/aignet/pkg/sim"
)

func TestBasic(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	x1 := aig.Xor(i0, i1)
	x2 := aig.And(i0, i2)
	x3 := aig.And(x2, i1.Not())
	aig.AddOutput(x1)
	aig.AddOutput(x3)

	assert.Equal(t, [][]bool{{false, false}}, sim.Simulate(aig, [][]bool{{false, false, false}}))
	assert.Equal(t, [][]bool{{true, false}}, sim.Simulate(aig, [][]bool{{true, false, false}}))
	assert.Equal(t, [][]bool{{true, true}}, sim.Simulate(aig, [][]bool{{true, false, true}}))
	assert.Equal(t, [][]bool{{false, false}}, sim.Simulate(aig, [][]bool{{true, true, true}}))
}

func TestDff(t *testing.T) {
	aig := network.New()
	d := aig.AddInput()
	en := aig.AddInput()
	res := aig.AddInput()
	x := aig.Dff(d, en, res)
	aig.AddOutput(x)

	pattern := [][]bool{
		{false, false, false},
		{false, true, false},
		{true, true, false},
		{true, false, false},
		{true, false, true},
		{false, false, false},
	}
	expected := [][]bool{
		{false}, {false}, {false}, {true}, {true}, {false},
	}
	assert.Equal(t, expected, sim.Simulate(aig, pattern))
}

func TestNary(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	i3 := aig.AddInput()
	ops := []signal.Signal{i0, i1, i2, i3}

	x0 := aig.AddCanonical(gate.Nary(ops, gate.NaryAnd))
	x1 := aig.AddCanonical(gate.Nary(ops, gate.NaryXor))
	x2 := aig.AddCanonical(gate.Nary(ops, gate.NaryOr))
	x3 := aig.AddCanonical(gate.Nary(ops, gate.NaryNand))
	x4 := aig.AddCanonical(gate.Nary(ops, gate.NaryNor))
	x5 := aig.AddCanonical(gate.Nary(ops, gate.NaryXnor))
	for _, x := range []signal.Signal{x0, x1, x2, x3, x4, x5} {
		aig.AddOutput(x)
	}

	pattern := [][]bool{
		{false, false, false, false},
		{true, false, false, false},
		{false, true, false, false},
		{false, false, true, false},
		{false, false, false, true},
		{true, true, true, true},
	}
	expected := [][]bool{
		{false, false, false, true, true, true},
		{false, true, true, true, false, false},
		{false, true, true, true, false, false},
		{false, true, true, true, false, false},
		{false, true, true, true, false, false},
		{true, false, true, false, false, true},
	}
	assert.Equal(t, expected, sim.Simulate(aig, pattern))
}

func buildComb(t *testing.T) *network.Network {
	t.Helper()
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	a := aig.And(i0, i1)
	aig.AddOutput(aig.And(a, i2))
	return aig
}

func TestSimulateCombWithFaults(t *testing.T) {
	aig := buildComb(t)
	out := sim.SimulateComb(aig, []bool{true, true, true})
	assert.Equal(t, []bool{true}, out)

	faults := []sim.Fault{{Kind: sim.OutputStuckAt, Gate: 1, Value: false}}
	stuck := sim.SimulateCombWithFaults(aig, []bool{true, true, true}, faults)
	assert.Equal(t, []bool{false}, stuck)
}

func TestIncrementalSimulatorMatchesDirect(t *testing.T) {
	aig := buildComb(t)
	faults := sim.AllFaults(aig)

	incr := sim.NewIncrementalSimulator(aig)
	in := []uint64{^uint64(0), ^uint64(0), ^uint64(0)}
	incr.RunInitial(in)

	direct := sim.NewSimpleSimulator(aig)
	for _, f := range faults {
		got := incr.DetectsFault(f)
		want := uint64(0)
		outs := direct.RunWithFaults([][]uint64{in}, []sim.Fault{f})
		baseline := direct.Run([][]uint64{in})
		if outs[0][0] != baseline[0][0] {
			want = ^uint64(0)
		}
		assert.Equal(t, want, got, "fault %s", f)
	}
}

func TestAllUniqueFaultsIsSubsetOfAllFaults(t *testing.T) {
	aig := buildComb(t)
	all := sim.AllFaults(aig)
	unique := sim.AllUniqueFaults(aig)
	assert.LessOrEqual(t, len(unique), len(all))

	allSet := make(map[sim.Fault]bool, len(all))
	for _, f := range all {
		allSet[f] = true
	}
	for _, f := range unique {
		assert.True(t, allSet[f])
	}
}
