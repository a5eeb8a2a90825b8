package unroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/sim"
	"github.com/aignet/aignet/pkg/unroll"
)

func TestUnrollShapeAndComb(t *testing.T) {
	aig := network.New()
	d := aig.AddInput()
	en := aig.AddInput()
	res := aig.AddInput()
	x := aig.Dff(d, en, res)
	aig.AddOutput(x)

	u := unroll.Unroll(aig, 3)
	require.True(t, u.IsComb())
	assert.EqualValues(t, 9, u.NbInputs())
	assert.Equal(t, 3, u.NbOutputs())
}

func TestUnrollMatchesSequentialSimulation(t *testing.T) {
	aig := network.New()
	d := aig.AddInput()
	en := aig.AddInput()
	res := aig.AddInput()
	x := aig.Dff(d, en, res)
	aig.AddOutput(x)

	pattern := [][]bool{
		{false, false, false},
		{true, true, false},
		{true, false, false},
	}
	seqOut := sim.Simulate(aig, pattern)

	u := unroll.Unroll(aig, len(pattern))
	var flatIn []bool
	for _, step := range pattern {
		flatIn = append(flatIn, step...)
	}
	combOut := sim.SimulateComb(u, flatIn)

	require.Len(t, combOut, len(pattern))
	for i, step := range seqOut {
		assert.Equal(t, step[0], combOut[i], "step %d", i)
	}
}
