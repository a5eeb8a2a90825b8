package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/optim"
	"github.com/aignet/aignet/pkg/signal"
)

func TestMergeRedundantDffCollapsesDuplicates(t *testing.T) {
	aig := network.New()
	clk := aig.AddInput()
	en := aig.AddInput()
	d0 := aig.Add(gate.Dff(clk, en, signal.Zero()))
	d1 := aig.Add(gate.Dff(clk, en, signal.Zero()))
	aig.AddOutput(d0)
	aig.AddOutput(d1)
	aig.TopoSort()
	require.Equal(t, 2, aig.NbNodes())

	merged := optim.MergeRedundantDff(aig)
	assert.Equal(t, 1, merged.NbNodes())
	assert.Equal(t, merged.Output(0), merged.Output(1))
}

func TestMergeRedundantDffLeavesDistinctFlopsAlone(t *testing.T) {
	aig := network.New()
	clk := aig.AddInput()
	en := aig.AddInput()
	d0 := aig.Add(gate.Dff(clk, en, signal.Zero()))
	d1 := aig.Add(gate.Dff(clk, en, signal.One()))
	aig.AddOutput(d0)
	aig.AddOutput(d1)
	aig.TopoSort()

	merged := optim.MergeRedundantDff(aig)
	assert.Equal(t, 2, merged.NbNodes())
}
