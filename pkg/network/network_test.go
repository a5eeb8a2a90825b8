package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

func TestBasic(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	x := aig.Xor(i0, i1)
	aig.AddOutput(x)

	assert.EqualValues(t, 2, aig.NbInputs())
	assert.Equal(t, 1, aig.NbOutputs())
	assert.Equal(t, 1, aig.NbNodes())
	assert.True(t, aig.IsComb())
	assert.True(t, aig.IsTopoSorted())

	assert.Equal(t, i0, aig.Input(0))
	assert.Equal(t, i1, aig.Input(1))
	assert.Equal(t, x, aig.Output(0))
}

func TestDff(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	c0 := signal.Zero()
	c1 := signal.One()

	require.Equal(t, signal.FromVar(0), aig.Dff(i0, i1, i2))
	require.Equal(t, signal.FromVar(1), aig.Dff(i0, i1, c0))
	assert.Equal(t, c0, aig.Dff(c0, i1, i2))
	assert.Equal(t, c0, aig.Dff(i0, c0, i2))
	assert.Equal(t, c0, aig.Dff(i0, i1, c1))
	assert.False(t, aig.IsComb())
	assert.True(t, aig.IsTopoSorted())
}

func TestCleanup(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	x0 := aig.And(i0, i1)
	x1 := aig.And(i0.Not(), i1.Not()).Not()
	_ = aig.And(x0, i1)
	x3 := aig.And(x1.Not(), i1.Not()).Not()
	aig.AddOutput(x3)

	translation := aig.Cleanup()
	require.Len(t, translation, 4)
	assert.Equal(t, 2, aig.NbNodes())
	assert.Equal(t, 1, aig.NbOutputs())
	assert.Equal(t, []signal.Signal{
		signal.Zero(),
		signal.FromVar(0),
		signal.Zero(),
		signal.FromVar(1),
	}, translation)
}

func TestDedup(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	x0 := aig.And(i0, i1)
	x0s := aig.And(i0, i1)
	x1 := aig.And(x0, i2)
	x1s := aig.And(x0s, i2)
	aig.AddOutput(x1)
	aig.AddOutput(x1s)

	aig.MakeCanonical()
	assert.Equal(t, 2, aig.NbNodes())
}

func TestTopoSort(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	x0 := gate.Dff(i2, signal.One(), signal.Zero())
	x1 := gate.Dff(i1, signal.One(), signal.Zero())
	x2 := gate.Dff(i0, signal.One(), signal.Zero())
	x3 := gate.Dff(i2, i1, signal.Zero())
	aig.Add(x0)
	aig.Add(x1)
	aig.Add(x2)
	aig.Add(x3)

	aig.TopoSort()
	require.Equal(t, 4, aig.NbNodes())
	assert.Equal(t, x0.Key(), aig.Gate(0).Key())
	assert.Equal(t, x1.Key(), aig.Gate(1).Key())
	assert.Equal(t, x2.Key(), aig.Gate(2).Key())
	assert.Equal(t, x3.Key(), aig.Gate(3).Key())
}

func TestShuffleDeterministic(t *testing.T) {
	build := func() *network.Network {
		aig := network.New()
		i0 := aig.AddInput()
		i1 := aig.AddInput()
		i2 := aig.AddInput()
		a := aig.And(i0, i1)
		b := aig.And(a, i2)
		aig.AddOutput(b)
		return aig
	}

	a, b := build(), build()
	a.Shuffle(42)
	b.Shuffle(42)
	assert.Equal(t, network.ComputeStats(a), network.ComputeStats(b))
	for i := 0; i < a.NbNodes(); i++ {
		assert.Equal(t, a.Gate(uint32(i)).Key(), b.Gate(uint32(i)).Key())
	}
}

func TestCheckPanicsOnInvalidSignal(t *testing.T) {
	aig := network.New()
	aig.AddInput()
	aig.Add(gate.Buf(signal.FromVar(5)))
	assert.Panics(t, func() { aig.Check() })
}
