package atpg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/atpg"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/sim"
	"github.com/aignet/aignet/pkg/signal"
)

func smallComb() *network.Network {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	o := aig.And(aig.And(i0, i1), i2.Not())
	aig.AddOutput(o)
	return aig
}

func TestExposeDffAddsInputsAndOutputs(t *testing.T) {
	seq := network.New()
	clk := seq.AddInput()
	d := seq.Add(gate.Dff(clk, signal.One(), signal.Zero()))
	seq.AddOutput(d)

	comb := atpg.ExposeDff(seq)
	assert.True(t, comb.IsComb())
	assert.Equal(t, seq.NbInputs()+1, comb.NbInputs())
	assert.Equal(t, seq.NbOutputs()+1, comb.NbOutputs())
}

func TestGenerateCombTestPatternsCoversAllUniqueFaults(t *testing.T) {
	aig := smallComb()
	patterns, err := atpg.GenerateCombTestPatterns(aig, 42, false)
	require.NoError(t, err)
	require.NotEmpty(t, patterns)

	faults := sim.AllUniqueFaults(aig)
	detection := make([]bool, len(faults))
	for _, p := range patterns {
		det := sim.DetectsFaults(aig, p, faults)
		for i, d := range det {
			detection[i] = detection[i] || d
		}
	}
	for i, d := range detection {
		assert.True(t, d, "fault %v was not detected by the generated pattern set", faults[i])
	}
}

func TestGenerateCombTestPatternsCompressesBelowRawFaultCount(t *testing.T) {
	aig := smallComb()
	patterns, err := atpg.GenerateCombTestPatterns(aig, 7, true)
	require.NoError(t, err)
	faults := sim.AllFaults(aig)
	assert.LessOrEqual(t, len(patterns), len(faults))
}

func TestReportCombTestPatternsDoesNotPanicOnFullCoverage(t *testing.T) {
	aig := smallComb()
	generated, err := atpg.GenerateCombTestPatterns(aig, 1, false)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		atpg.ReportCombTestPatterns(aig, generated, false)
	})
}
