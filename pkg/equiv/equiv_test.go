package equiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/equiv"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

func TestEquivAnd(t *testing.T) {
	a := network.New()
	l1 := a.AddInput()
	l2 := a.AddInput()
	a.AddOutput(a.And(l1, l2))

	b := network.New()
	b.AddInput()
	b.AddInput()
	b.AddOutput(b.And(l1, l2))

	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, false))
	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, true))
}

func TestNotEquivAndZero(t *testing.T) {
	a := network.New()
	l1 := a.AddInput()
	l2 := a.AddInput()
	a.AddOutput(a.And(l1, l2))

	b := network.New()
	b.AddInput()
	b.AddInput()
	b.AddOutput(signal.Zero())

	err := equiv.CheckEquivalenceComb(a, b, false)
	require.Error(t, err)
	ne, ok := err.(*aigerr.EquivalenceFailure)
	require.True(t, ok)
	assert.Equal(t, [][]bool{{true, true}}, ne.Vectors)
}

func TestNotEquivAndOr(t *testing.T) {
	a := network.New()
	l1 := a.AddInput()
	l2 := a.AddInput()
	a.AddOutput(a.And(l1, l2))

	b := network.New()
	l1b := b.AddInput()
	l2b := b.AddInput()
	b.AddOutput(b.Or(l1b, l2b))

	assert.Error(t, equiv.CheckEquivalenceComb(a, b, false))
}

func TestNotEquivOneZero(t *testing.T) {
	a := network.New()
	a.AddInput()
	a.AddInput()
	a.AddOutput(signal.One())

	b := network.New()
	b.AddInput()
	b.AddInput()
	b.AddOutput(signal.Zero())

	assert.Error(t, equiv.CheckEquivalenceComb(a, b, false))
}

func TestEquivXor(t *testing.T) {
	a := network.New()
	l1 := a.AddInput()
	l2 := a.AddInput()
	a1 := a.And(l1, l2.Not())
	a2 := a.And(l1.Not(), l2)
	a.AddOutput(a.Or(a1, a2))

	b := network.New()
	l1b := b.AddInput()
	l2b := b.AddInput()
	b.AddOutput(b.Xor(l1b, l2b))

	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, false))
	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, true))
}

func TestEquivAnd3(t *testing.T) {
	a := network.New()
	l1 := a.AddInput()
	l2 := a.AddInput()
	l3 := a.AddInput()
	a.AddOutput(a.And(a.And(l1, l2), l3))

	b := network.New()
	l1b := b.AddInput()
	l2b := b.AddInput()
	l3b := b.AddInput()
	b.AddOutput(b.And3(l1b, l2b, l3b))

	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, false))
	assert.NoError(t, equiv.CheckEquivalenceComb(a, b, true))
}

func TestEquivXorN(t *testing.T) {
	for nb := 0; nb < 8; nb++ {
		a := network.New()
		ao := signal.Zero()
		for i := 0; i < nb; i++ {
			ao = a.Xor(ao, a.AddInput())
		}
		a.AddOutput(ao)

		b := network.New()
		var v []signal.Signal
		for i := 0; i < nb; i++ {
			v = append(v, b.AddInput())
		}
		b.AddOutput(b.XorN(v))

		assert.NoError(t, equiv.CheckEquivalenceComb(a, b, false), "nb=%d", nb)
	}
}

func TestCheckEquivalenceBoundedDetectsDifference(t *testing.T) {
	a := network.New()
	d := a.AddInput()
	en := a.AddInput()
	res := a.AddInput()
	a.AddOutput(a.Dff(d, en, res))

	b := network.New()
	d2 := b.AddInput()
	en2 := b.AddInput()
	res2 := b.AddInput()
	b.AddOutput(b.Dff(d2.Not(), en2, res2))

	assert.NoError(t, equiv.CheckEquivalenceBounded(a, b, 1, false))

	err := equiv.CheckEquivalenceBounded(a, b, 2, false)
	require.Error(t, err)
	seq, ok := err.(*aigerr.EquivalenceFailure)
	require.True(t, ok)
	assert.Len(t, seq.Vectors, 2)
	for _, step := range seq.Vectors {
		assert.Len(t, step, 3)
	}
}
