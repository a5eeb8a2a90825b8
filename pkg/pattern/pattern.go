// Package pattern reads and writes the persisted test-pattern format used
// by the simulate and atpg subcommands: one bit vector per timestep,
// patterns separated by a blank line.
//
// Unlike .bench and .blif, this format has no surviving reference
// implementation in original_source (cmd.rs calls read_pattern_file and
// write_pattern_file, but the module that defined them was not part of the
// retrieved sources). The layout here follows spec.md's prose description
// and the call-site shapes in cmd.rs: a pattern is a sequence of one or
// more timesteps, each a bit vector one entry per input (or, for a
// simulation result, per output).
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aignet/aignet/pkg/aigerr"
)

var log = logrus.WithField("pkg", "pattern")

// Pattern is one test vector: a sequence of timesteps, each a bit vector.
// A purely combinational pattern has exactly one timestep.
type Pattern [][]bool

// Single wraps a flat bit vector as a one-timestep Pattern, matching the
// way the comb test pattern generator's output is persisted (atpg.rs wraps
// each comb pattern as vec![p.clone()] before writing it out).
func Single(bits []bool) Pattern {
	return Pattern{bits}
}

// IsComb reports whether p spans a single timestep.
func (p Pattern) IsComb() bool {
	return len(p) == 1
}

// Flatten returns the bits of a single-timestep pattern. It panics if p
// spans more than one timestep; callers that might receive sequential
// patterns should range over p directly instead.
func (p Pattern) Flatten() []bool {
	if len(p) != 1 {
		panic("pattern: Flatten requires a single-timestep pattern")
	}
	return p[0]
}

// ReadPatternFile parses the blank-line-separated, one-line-per-timestep
// format described in spec.md: each non-blank line is a whitespace
// separated run of '0'/'1' characters.
func ReadPatternFile(r io.Reader) ([]Pattern, error) {
	scanner := bufio.NewScanner(r)
	var patterns []Pattern
	var current Pattern
	lineNo := 0

	flush := func() {
		if len(current) > 0 {
			patterns = append(patterns, current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}

		fields := strings.Fields(line)
		bits := make([]bool, len(fields))
		for i, f := range fields {
			switch f {
			case "0":
				bits[i] = false
			case "1":
				bits[i] = true
			default:
				return nil, aigerr.NewParseError(lineNo, "expected 0 or 1, got %q", f)
			}
		}
		current = append(current, bits)
	}
	if err := scanner.Err(); err != nil {
		return nil, aigerr.NewParseError(lineNo, "reading input: %s", err)
	}
	flush()

	log.WithField("patterns", len(patterns)).Debug("parsed pattern file")
	return patterns, nil
}

// WritePatternFile writes patterns in the standard polarity: '1' means
// true, '0' means false.
func WritePatternFile(w io.Writer, patterns []Pattern) error {
	return writePatternFile(w, patterns, false)
}

// WritePatternFileReversed writes patterns with inverted polarity, the
// convention the equivalence-failure printer uses ('1' means false).
// Readers make no assumption about which polarity produced a file: the
// bits are read back literally either way, and it is up to the caller to
// know which convention it asked for.
func WritePatternFileReversed(w io.Writer, patterns []Pattern) error {
	return writePatternFile(w, patterns, true)
}

func writePatternFile(w io.Writer, patterns []Pattern, reverse bool) error {
	bw := bufio.NewWriter(w)
	for i, p := range patterns {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		for _, step := range p {
			for j, b := range step {
				if j > 0 {
					fmt.Fprint(bw, " ")
				}
				bit := b != reverse
				if bit {
					fmt.Fprint(bw, "1")
				} else {
					fmt.Fprint(bw, "0")
				}
			}
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}
