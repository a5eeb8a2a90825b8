package bench_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/bench"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

const example = `INPUT(i0)
INPUT(i1)
x0 = AND(i0, i1)
x1 = NAND(i0, i1)
x2 = OR(i0, i1)
x3 = NOR(i0, i1)
x4 = XOR(i0, i1)
x5 = BUF(i0)
x6 = NOT(i1)
x7 = NOT(vdd)
x8 = BUF(gnd)
OUTPUT(x0)
OUTPUT(x1)
OUTPUT(x2)
OUTPUT(x3)
OUTPUT(x4)
OUTPUT(x5)
OUTPUT(x6)`

func TestReadBenchSimple(t *testing.T) {
	aig, err := bench.ReadBench(strings.NewReader(example))
	require.NoError(t, err)
	assert.EqualValues(t, 2, aig.NbInputs())
	assert.Equal(t, 7, aig.NbOutputs())
	assert.Equal(t, 9, aig.NbNodes())
}

func TestReadBenchUndeclaredInput(t *testing.T) {
	_, err := bench.ReadBench(strings.NewReader("INPUT(i0)\nx0 = BUF(i1)\nOUTPUT(x0)"))
	require.Error(t, err)
	var pe *aigerr.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestReadBenchUnknownGate(t *testing.T) {
	_, err := bench.ReadBench(strings.NewReader("INPUT(i0)\nx0 = FROB(i0)\nOUTPUT(x0)"))
	require.Error(t, err)
}

func TestWriteBenchRejectsDffWithEnable(t *testing.T) {
	aig := network.New()
	clk := aig.AddInput()
	en := aig.AddInput()
	d := aig.Add(gate.Dff(clk, en, signal.Zero()))
	aig.AddOutput(d)

	var buf bytes.Buffer
	err := bench.WriteBench(&buf, aig)
	require.Error(t, err)
	var ug *aigerr.UnsupportedGate
	assert.ErrorAs(t, err, &ug)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	aig := network.New()
	i0 := aig.AddInput()
	i1 := aig.AddInput()
	aig.AddOutput(aig.And(i0, i1))

	var buf bytes.Buffer
	require.NoError(t, bench.WriteBench(&buf, aig))

	back, err := bench.ReadBench(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, aig.NbInputs(), back.NbInputs())
	assert.Equal(t, aig.NbOutputs(), back.NbOutputs())
}
