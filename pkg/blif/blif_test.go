package blif_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/blif"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

const example = `# .blif file
  .model test_file # Comment
 .inputs a b c
 .outputs e \
 f g # Comment # and more

 .names a b e
 00 1  # Comment

 .names c b \
   f
 01 1

 .names g \
`

func TestReadBlifBasic(t *testing.T) {
	aig, err := blif.ReadBlif(strings.NewReader(example))
	require.NoError(t, err)
	assert.EqualValues(t, 3, aig.NbInputs())
	assert.Equal(t, 3, aig.NbOutputs())
	assert.Equal(t, 3, aig.NbNodes())
}

func TestReadBlifThenWriteDoesNotError(t *testing.T) {
	aig, err := blif.ReadBlif(strings.NewReader(example))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, blif.WriteBlif(&buf, aig))
	assert.Contains(t, buf.String(), ".model aignet")
}

func TestReadBlifUndefinedOutput(t *testing.T) {
	_, err := blif.ReadBlif(strings.NewReader(".model m\n.inputs a\n.outputs z\n.end\n"))
	require.Error(t, err)
	var pe *aigerr.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestReadBlifDoubleModelRejected(t *testing.T) {
	_, err := blif.ReadBlif(strings.NewReader(".model a\n.model b\n.inputs x\n.outputs x\n"))
	require.Error(t, err)
}

func TestWriteBlifLatchWithEnableUsesFlop(t *testing.T) {
	aig := network.New()
	clk := aig.AddInput()
	en := aig.AddInput()
	d := aig.Add(gate.Dff(clk, en, signal.Zero()))
	aig.AddOutput(d)

	var buf bytes.Buffer
	require.NoError(t, blif.WriteBlif(&buf, aig))
	assert.Contains(t, buf.String(), ".flop")
}

func TestWriteBlifPlainLatchUsesLatchDirective(t *testing.T) {
	aig := network.New()
	clk := aig.AddInput()
	d := aig.Add(gate.Dff(clk, signal.One(), signal.Zero()))
	aig.AddOutput(d)

	var buf bytes.Buffer
	require.NoError(t, blif.WriteBlif(&buf, aig))
	assert.Contains(t, buf.String(), ".latch")
	assert.NotContains(t, buf.String(), ".flop")
}
