package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aignet/aignet/pkg/equiv"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/optim"
	"github.com/aignet/aignet/pkg/signal"
)

func TestFactorNarySharedPairIsPreserved(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	i3 := aig.AddInput()
	i4 := aig.AddInput()
	x0 := aig.Add(gate.Nary([]signal.Signal{i0, i1, i2}, gate.NaryAnd))
	x1 := aig.Add(gate.Nary([]signal.Signal{i0, i1, i2, i3}, gate.NaryAnd))
	x2 := aig.Add(gate.Nary([]signal.Signal{i1, i2, i4}, gate.NaryAnd))
	aig.AddOutput(x0)
	aig.AddOutput(x1)
	aig.AddOutput(x2)

	factored := optim.FactorNary(aig)
	assert.Equal(t, 3, factored.NbOutputs())
	assert.NoError(t, equiv.CheckEquivalenceComb(aig, factored, false))
}

func TestShareLogicPreservesSemantics(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	i2 := aig.AddInput()
	i3 := aig.AddInput()
	x0 := aig.And(i0, i1)
	x1 := aig.And(x0, i2)
	x2 := aig.And(x1, i3)
	x3 := aig.Xor(i0, i1)
	x4 := aig.Xor(x3, i2)
	aig.AddOutput(x2)
	aig.AddOutput(x4)

	shared := optim.ShareLogic(aig, 64)
	assert.NoError(t, equiv.CheckEquivalenceComb(aig, shared, false))
}
