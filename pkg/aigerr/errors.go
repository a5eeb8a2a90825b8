// Package aigerr defines the error kinds the core surfaces to callers,
// per the error handling design: structural invariant violations,
// textual parse failures, unsupported-gate writer failures, and SAT
// oracle failures. Contextual wrapping uses github.com/pkg/errors so
// Cause() keeps working across package boundaries.
package aigerr

import "fmt"

// StructuralError reports a network invariant violation: an out-of-range
// signal, a failed topological sort, or a combinational cycle.
// Network.Check does not return it; Check panics on a violation.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string { return "structural error: " + e.Message }

// NewStructuralError builds a StructuralError with a formatted message.
func NewStructuralError(format string, args ...interface{}) error {
	return &StructuralError{Message: fmt.Sprintf(format, args...)}
}

// ParseError reports a textual IO failure at a specific line of a
// .bench/.blif/pattern file.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// NewParseError builds a ParseError with a formatted message.
func NewParseError(line int, format string, args ...interface{}) error {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// UnsupportedGate reports that a writer cannot represent a gate kind in
// the chosen output format (e.g. an enabled/reset Dff in .bench).
type UnsupportedGate struct {
	Kind   string
	Reason string
}

func (e *UnsupportedGate) Error() string {
	return fmt.Sprintf("unsupported gate %s: %s", e.Kind, e.Reason)
}

// SolverError reports that the SAT oracle failed to return a decision.
type SolverError struct {
	Message string
}

func (e *SolverError) Error() string { return "solver error: " + e.Message }

// NewSolverError builds a SolverError with a formatted message.
func NewSolverError(format string, args ...interface{}) error {
	return &SolverError{Message: fmt.Sprintf(format, args...)}
}

// EquivalenceFailure is not a software fault: it is the successful
// result of an equivalence check that found a counter-example. Vectors
// holds one input assignment per clock cycle (length 1 for purely
// combinational checks).
type EquivalenceFailure struct {
	Vectors [][]bool
}

func (e *EquivalenceFailure) Error() string {
	return fmt.Sprintf("networks are not equivalent over %d cycle(s)", len(e.Vectors))
}
