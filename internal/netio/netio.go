// Package netio dispatches network file reads and writes to pkg/bench or
// pkg/blif by file extension, the way cmd.rs's read_network_file/
// write_network_file pick a format for the CLI's show/optimize/simulate/
// atpg/check-equivalence subcommands.
package netio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/aignet/aignet/pkg/bench"
	"github.com/aignet/aignet/pkg/blif"
	"github.com/aignet/aignet/pkg/network"
)

// ReadNetworkFile reads a .bench or .blif file, picked by extension.
func ReadNetworkFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open network file %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bench":
		aig, err := bench.ReadBench(f)
		return aig, errors.Wrapf(err, "failed to parse %s", path)
	case ".blif":
		aig, err := blif.ReadBlif(f)
		return aig, errors.Wrapf(err, "failed to parse %s", path)
	default:
		return nil, errors.Errorf("unrecognized network file extension %q (expected .bench or .blif)", filepath.Ext(path))
	}
}

// WriteNetworkFile writes a .bench or .blif file, picked by extension.
func WriteNetworkFile(path string, aig *network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create network file %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bench":
		return errors.Wrapf(bench.WriteBench(f, aig), "failed to write %s", path)
	case ".blif":
		return errors.Wrapf(blif.WriteBlif(f, aig), "failed to write %s", path)
	default:
		return errors.Errorf("unrecognized network file extension %q (expected .bench or .blif)", filepath.Ext(path))
	}
}
