package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/cnf"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
	"github.com/aignet/aignet/pkg/sim"
)

func TestProveSatisfiableAnd(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	aig.AddOutput(aig.And(i0, i1))

	witness, ok, err := cnf.Prove(aig)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, witness, 2)
	out := sim.SimulateComb(aig, witness)
	assert.Equal(t, []bool{true}, out)
}

func TestProveUnsatisfiableConstantZero(t *testing.T) {
	aig := network.New()
	aig.AddInput()
	aig.AddOutput(signal.Zero())

	_, ok, err := cnf.Prove(aig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProveConstantOne(t *testing.T) {
	aig := network.New()
	aig.AddInput()
	aig.AddOutput(signal.One())

	witness, ok, err := cnf.Prove(aig)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []bool{false}, witness)
}

func TestProveXorIsSatisfiable(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	aig.AddOutput(aig.Xor(i0, i1))

	witness, ok, err := cnf.Prove(aig)
	require.NoError(t, err)
	require.True(t, ok)
	out := sim.SimulateComb(aig, witness)
	assert.Equal(t, []bool{true}, out)
}

func TestToCNFNaryXor(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	i3 := aig.AddInput()
	aig.AddOutput(aig.XorN([]signal.Signal{i0, i1, i2, i3}))

	witness, ok, err := cnf.Prove(aig)
	require.NoError(t, err)
	require.True(t, ok)
	out := sim.SimulateComb(aig, witness)
	assert.Equal(t, []bool{true}, out)
}
