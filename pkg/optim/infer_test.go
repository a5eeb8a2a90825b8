package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aignet/aignet/pkg/equiv"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/optim"
)

func TestInferXorMuxFindsHiddenMux(t *testing.T) {
	aig := network.New()
	s := aig.AddInput()
	a := aig.AddInput()
	b := aig.AddInput()
	x0 := aig.Add(gate.And(s, a.Not()))
	x1 := aig.Add(gate.And(s.Not(), b.Not()))
	o := aig.Add(gate.And(x0.Not(), x1.Not()))
	aig.AddOutput(o)

	inferred := optim.InferXorMux(aig)
	assert.NoError(t, equiv.CheckEquivalenceComb(aig, inferred, false))

	foundMux := false
	for i := 0; i < inferred.NbNodes(); i++ {
		if inferred.Gate(uint32(i)).Kind() == gate.KindMux {
			foundMux = true
		}
	}
	assert.True(t, foundMux)
}

func TestInferXorMuxLeavesUnmatchedLogicAlone(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	aig.AddOutput(aig.And(i0, i1))

	inferred := optim.InferXorMux(aig)
	assert.NoError(t, equiv.CheckEquivalenceComb(aig, inferred, false))
}
