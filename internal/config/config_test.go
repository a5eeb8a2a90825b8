package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aignet/aignet/internal/config"
)

func TestLoadMissingFileReturnsZeroDefaults(t *testing.T) {
	d, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, d.EffortOr(1))
	assert.EqualValues(t, 42, d.SeedOr(42))
	assert.Equal(t, 7, d.NumRandomOr(7))
}

func TestLoadParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aignet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effort: 3\nseed: 99\nnum_random: 128\n"), 0o644))

	d, err := config.Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 3, d.EffortOr(1))
	assert.EqualValues(t, 99, d.SeedOr(1))
	assert.Equal(t, 128, d.NumRandomOr(1))
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effort: [not a number\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
