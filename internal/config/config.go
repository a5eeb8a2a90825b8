// Package config loads an optional YAML defaults file for the aignet CLI,
// supplying fallback values for flags the user didn't set explicitly.
//
// Nothing in spec.md requires persistent configuration; this exists
// because every teacher-style CLI ships one, grounded on the YAML
// metadata-file pattern of cmd/operator-cli/bundle/generate.go
// (AnnotationMetadata marshaled/unmarshaled with gopkg.in/yaml.v2).
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Defaults holds the subset of CLI flags a config file may override.
// Zero values mean "not set"; a flag explicitly passed on the command
// line always wins over whatever is loaded here.
type Defaults struct {
	Effort    *uint64 `yaml:"effort,omitempty"`
	Seed      *uint64 `yaml:"seed,omitempty"`
	NumRandom *int    `yaml:"num_random,omitempty"`
}

// Load reads and parses a YAML defaults file at path. A missing file is
// not an error: it returns a zero Defaults, since the config file is
// optional.
func Load(path string) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return d, nil
}

// EffortOr returns d.Effort if set, else fallback.
func (d Defaults) EffortOr(fallback uint64) uint64 {
	if d.Effort != nil {
		return *d.Effort
	}
	return fallback
}

// SeedOr returns d.Seed if set, else fallback.
func (d Defaults) SeedOr(fallback uint64) uint64 {
	if d.Seed != nil {
		return *d.Seed
	}
	return fallback
}

// NumRandomOr returns d.NumRandom if set, else fallback.
func (d Defaults) NumRandomOr(fallback int) int {
	if d.NumRandom != nil {
		return *d.NumRandom
	}
	return fallback
}
