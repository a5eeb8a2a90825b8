package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aignet/aignet/pkg/signal"
)

func TestConstants(t *testing.T) {
	assert.True(t, signal.Zero().IsConstant())
	assert.True(t, signal.One().IsConstant())
	assert.False(t, signal.Zero().IsInverted())
	assert.True(t, signal.One().IsInverted())
	assert.Equal(t, signal.One(), signal.Zero().Not())
	assert.Equal(t, signal.Zero(), signal.One().Not())
}

func TestVarRoundTrip(t *testing.T) {
	type tc struct {
		Name string
		Var  uint32
	}
	for _, tt := range []tc{
		{"var 0", 0},
		{"var 1", 1},
		{"var large", 1 << 20},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := signal.FromVar(tt.Var)
			assert.True(t, s.IsVar())
			assert.False(t, s.IsInput())
			assert.False(t, s.IsConstant())
			assert.Equal(t, tt.Var, s.Var())
			assert.Equal(t, tt.Var, s.Not().Var())
			assert.True(t, s.Not().IsInverted())
		})
	}
}

func TestInputRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 42, 1 << 20} {
		s := signal.FromInput(v)
		assert.True(t, s.IsInput())
		assert.False(t, s.IsVar())
		assert.Equal(t, v, s.Input())
		assert.Equal(t, v, s.Not().Input())
	}
}

func TestXorComposesInversion(t *testing.T) {
	s := signal.FromVar(3)
	assert.Equal(t, s, s.Xor(false))
	assert.Equal(t, s.Not(), s.Xor(true))
	assert.Equal(t, s, s.Xor(true).Xor(true))
}

func TestWithoutInversion(t *testing.T) {
	s := signal.FromVar(5).Not()
	assert.True(t, s.IsInverted())
	w := s.WithoutInversion()
	assert.False(t, w.IsInverted())
	assert.Equal(t, s.Var(), w.Var())
}

func TestRemapOrder(t *testing.T) {
	table := []signal.Signal{signal.FromVar(10), signal.FromVar(11).Not()}
	assert.Equal(t, signal.FromVar(10), signal.FromVar(0).RemapOrder(table))
	assert.Equal(t, signal.FromVar(11), signal.FromVar(1).Not().RemapOrder(table))
	in := signal.FromInput(4)
	assert.Equal(t, in, in.RemapOrder(table))
	assert.Equal(t, signal.Zero(), signal.Zero().RemapOrder(table))
}

func TestOrdering(t *testing.T) {
	assert.True(t, signal.Less(signal.Zero(), signal.One()))
	assert.True(t, signal.Less(signal.One(), signal.FromVar(0)))
	assert.Equal(t, uint32(0), signal.Ind(signal.Zero()))
	assert.Equal(t, uint32(0), signal.Ind(signal.One()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", signal.Zero().String())
	assert.Equal(t, "1", signal.One().String())
	assert.Equal(t, "x0", signal.FromVar(0).String())
	assert.Equal(t, "!x0", signal.FromVar(0).Not().String())
	assert.Equal(t, "i2", signal.FromInput(2).String())
}
