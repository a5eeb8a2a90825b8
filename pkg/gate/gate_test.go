package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/signal"
)

func TestAndIsCanonical(t *testing.T) {
	l0, l1 := signal.Zero(), signal.One()
	i0, i1 := signal.FromVar(0), signal.FromVar(1)

	assert.True(t, gate.And(i0, i1).IsCanonical())
	assert.True(t, gate.And(i0, i1.Not()).IsCanonical())
	assert.True(t, gate.And(i0.Not(), i1).IsCanonical())
	assert.True(t, gate.And(i0.Not(), i1.Not()).IsCanonical())

	assert.False(t, gate.And(i1, i0).IsCanonical())
	assert.False(t, gate.And(l0, i1).IsCanonical())
	assert.False(t, gate.And(l1, i1).IsCanonical())
	assert.False(t, gate.And(i0, i0).IsCanonical())
	assert.False(t, gate.And(i0, i0.Not()).IsCanonical())
}

func TestXorIsCanonical(t *testing.T) {
	l0 := signal.Zero()
	i0, i1 := signal.FromVar(0), signal.FromVar(1)

	assert.True(t, gate.Xor(i0, i1).IsCanonical())
	assert.False(t, gate.Xor(i1, i0).IsCanonical())
	assert.False(t, gate.Xor(i0, i1.Not()).IsCanonical())
	assert.False(t, gate.Xor(i0.Not(), i1).IsCanonical())
	assert.False(t, gate.Xor(l0, i1).IsCanonical())
	assert.False(t, gate.Xor(i0, i0).IsCanonical())
}

func TestMajIsCanonical(t *testing.T) {
	l0, l1 := signal.Zero(), signal.One()
	i0, i1, i2 := signal.FromVar(0), signal.FromVar(1), signal.FromVar(2)

	assert.True(t, gate.Maj(i0, i1, i2).IsCanonical())
	assert.True(t, gate.Maj(i0, i1.Not(), i2).IsCanonical())
	assert.True(t, gate.Maj(i0, i1.Not(), i2.Not()).IsCanonical())

	assert.False(t, gate.Maj(i0, i2, i1).IsCanonical())
	assert.False(t, gate.Maj(i1, i0, i2).IsCanonical())
	assert.False(t, gate.Maj(l0, i1, i2).IsCanonical())
	assert.False(t, gate.Maj(l1, i1, i2).IsCanonical())
	assert.False(t, gate.Maj(i0.Not(), i1, i2).IsCanonical())
	assert.False(t, gate.Maj(i0, i0, i2).IsCanonical())
	assert.False(t, gate.Maj(i0, i2, i2).IsCanonical())
}

func TestMuxIsCanonical(t *testing.T) {
	l0, l1 := signal.Zero(), signal.One()
	i0, i1, i2 := signal.FromVar(0), signal.FromVar(1), signal.FromVar(2)

	assert.True(t, gate.Mux(i2, i1, i0).IsCanonical())
	assert.True(t, gate.Mux(i2, i1.Not(), i0).IsCanonical())

	assert.False(t, gate.Mux(i2, i1, i0.Not()).IsCanonical())
	assert.False(t, gate.Mux(i2.Not(), i1, i0).IsCanonical())
	assert.False(t, gate.Mux(l0, i1, i0).IsCanonical())
	assert.False(t, gate.Mux(i2, l0, i0).IsCanonical())
	assert.False(t, gate.Mux(i2, i1, l0).IsCanonical())
	assert.False(t, gate.Mux(l1, i1, i0).IsCanonical())
	assert.False(t, gate.Mux(i2, i2, i0).IsCanonical())
	assert.False(t, gate.Mux(i0, i2, i2).IsCanonical())
}

// checkCanonization mirrors the source project's property test: a gate
// and its output-inverted twin must canonicalize to complementary forms.
func checkCanonization(t *testing.T, g gate.Gate) {
	t.Helper()
	c0 := gate.NormNode(g, false).MakeCanonical()
	c1 := gate.NormNode(g, true).MakeCanonical()
	assert.True(t, c0.IsCanonical())
	assert.True(t, c1.IsCanonical())

	switch {
	case c0.IsCopy() && c1.IsCopy():
		assert.Equal(t, c0.Copy(), c1.Copy().Not())
	case !c0.IsCopy() && !c1.IsCopy():
		g0, i0 := c0.Node()
		g1, i1 := c1.Node()
		assert.Equal(t, g0.Key(), g1.Key())
		assert.Equal(t, i0, !i1)
	default:
		t.Fatalf("canonicalization of complements produced different shapes: %v vs %v", c0, c1)
	}
}

func TestMakeCanonicalComplementSymmetry(t *testing.T) {
	vars := []signal.Signal{signal.Zero(), signal.One()}
	for i := uint32(0); i < 4; i++ {
		vars = append(vars, signal.FromVar(i), signal.FromVar(i).Not())
	}

	for _, i0 := range vars {
		checkCanonization(t, gate.Buf(i0))
		for _, i1 := range vars {
			checkCanonization(t, gate.And(i0, i1))
			checkCanonization(t, gate.Xor(i0, i1))
			for _, i2 := range vars {
				checkCanonization(t, gate.Mux(i0, i1, i2))
				checkCanonization(t, gate.Maj(i0, i1, i2))
				checkCanonization(t, gate.And3(i0, i1, i2))
				checkCanonization(t, gate.Xor3(i0, i1, i2))
				checkCanonization(t, gate.Dff(i0, i1, i2))
			}
		}
	}

	for _, kind := range []gate.NaryKind{gate.NaryAnd, gate.NaryNand, gate.NaryOr, gate.NaryNor, gate.NaryXor, gate.NaryXnor} {
		checkCanonization(t, gate.Nary(nil, kind))
		checkCanonization(t, gate.Nary(vars[:4], kind))
	}
}

func TestMakeCanonicalSimplifications(t *testing.T) {
	i0, i1 := signal.FromVar(0), signal.FromVar(1)

	n := gate.And(i0, i0.Not()).MakeCanonical()
	assert := assert.New(t)
	assert.True(n.IsCopy())
	assert.Equal(signal.Zero(), n.Copy())

	n = gate.Xor(i0, i0).MakeCanonical()
	assert.True(n.IsCopy())
	assert.Equal(signal.Zero(), n.Copy())

	n = gate.Mux(signal.Zero(), i0, i1).MakeCanonical()
	assert.True(n.IsCopy())
	assert.Equal(i1, n.Copy())

	n = gate.Dff(signal.Zero(), i0, i1).MakeCanonical()
	assert.True(n.IsCopy())
	assert.Equal(signal.Zero(), n.Copy())
}
