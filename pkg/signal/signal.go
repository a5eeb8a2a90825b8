// Package signal defines Signal, the 32-bit tagged reference used
// everywhere in a logic network: a constant, a primary input, or an
// internal variable, each optionally inverted.
//
// Bit layout of the 32-bit word:
//
//	bit 0:      inversion
//	bits 1..30: index (index 0 means constant)
//	bit 31:     input tag (set for a primary input, clear for a variable
//	            or constant)
//
// An input is stored as the ones'-complement of its index so that
// Signal's total order keeps inputs grouped together and the placeholder
// signal (all index bits set) sorts below every real input.
package signal

import "fmt"

// Signal is a 32-bit tagged reference to a constant, primary input, or
// internal variable, carrying one inversion bit. The zero value is the
// constant zero signal.
type Signal struct {
	raw uint32
}

const (
	invBit   = 1
	inputTag = 1 << 31
	indShift = 1
	indMask  = 0x7fff_ffff // bits 1..31 before the tag is removed
)

// Zero is the constant zero signal.
func Zero() Signal { return Signal{raw: 0} }

// One is the constant one signal.
func One() Signal { return Signal{raw: 1} }

// Placeholder is reserved for the gate pattern matcher (pkg/optim); it is
// never a valid input or variable reference in a real network.
func Placeholder() Signal { return Signal{raw: 0x8000_0000} }

// FromVar builds the signal referencing internal variable v.
func FromVar(v uint32) Signal { return fromInd(v + 1) }

// FromInput builds the signal referencing primary input v.
func FromInput(v uint32) Signal { return fromInd(^v) }

func fromInd(v uint32) Signal { return Signal{raw: v << indShift} }

// FromBool returns the constant signal for b.
func FromBool(b bool) Signal {
	if b {
		return One()
	}
	return Zero()
}

// Var returns the internal variable index; panics if !IsVar().
func (s Signal) Var() uint32 {
	if !s.IsVar() {
		panic(fmt.Sprintf("signal %s is not a variable", s))
	}
	return s.ind() - 1
}

// Input returns the primary input index; panics if !IsInput().
func (s Signal) Input() uint32 {
	if !s.IsInput() {
		panic(fmt.Sprintf("signal %s is not an input", s))
	}
	return ^s.ind() & ^uint32(inputTag)
}

// ind returns the internal index: 0 for a constant, var()+1 otherwise, or
// the ones'-complement encoding for an input.
func (s Signal) ind() uint32 {
	return s.raw >> indShift
}

// IsConstant reports whether s is the constant zero or one.
func (s Signal) IsConstant() bool { return s.ind() == 0 }

// IsInput reports whether s references a primary input.
func (s Signal) IsInput() bool { return s.raw&inputTag != 0 }

// IsVar reports whether s references an internal variable.
func (s Signal) IsVar() bool { return !s.IsInput() && !s.IsConstant() }

// WithoutInversion clears the inversion bit.
func (s Signal) WithoutInversion() Signal { return Signal{raw: s.raw &^ invBit} }

// IsInverted reports whether s carries the inversion bit. False for
// constant zero, true for constant one.
func (s Signal) IsInverted() bool { return s.raw&invBit != 0 }

// Pol is a shorter alias for IsInverted, matching the canonicalization
// rules' "pol(a)" notation.
func (s Signal) Pol() bool { return s.IsInverted() }

// Raw returns the internal 32-bit representation.
func (s Signal) Raw() uint32 { return s.raw }

// Not returns the complement of s.
func (s Signal) Not() Signal { return Signal{raw: s.raw ^ invBit} }

// Xor composes the inversion bit of s with an external boolean.
func (s Signal) Xor(b bool) Signal {
	if b {
		return s.Not()
	}
	return s
}

// Less gives the total, stable ordering required by canonicalization: by
// raw index first is wrong (inputs and variables must not interleave
// arbitrarily), so Signal compares by the full raw word, which already
// groups constants, then variables in index order, then inputs in
// descending index order (because of the ones'-complement encoding), with the unindexed bit
// (inversion) as the final tiebreak.
func Less(a, b Signal) bool { return a.raw < b.raw }

// Ind exposes the internal index ordering key used by the canonicalization
// rules ("a.ind() < b.ind()"); unlike Less it ignores the input/variable
// kind split and only compares magnitude of the index field.
func Ind(s Signal) uint32 { return s.ind() }

// RemapOrder applies a translation table (old variable index -> new
// signal) to s, leaving inputs and constants untouched.
func (s Signal) RemapOrder(t []Signal) Signal {
	if !s.IsVar() {
		return s
	}
	return t[s.Var()].Xor(s.IsInverted())
}

func (s Signal) String() string {
	if s.IsConstant() {
		if s.IsInverted() {
			return "1"
		}
		return "0"
	}
	prefix := ""
	if s.IsInverted() {
		prefix = "!"
	}
	if s == Placeholder() {
		return prefix + "##"
	}
	if s.IsInput() {
		return fmt.Sprintf("%si%d", prefix, s.Input())
	}
	return fmt.Sprintf("%sx%d", prefix, s.Var())
}
