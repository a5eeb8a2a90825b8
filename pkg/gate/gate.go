// Package gate defines the closed set of logic-gate variants used by a
// Network, and their canonicalization rules.
//
// Grounded on original_source/src/network/gates.rs: Gate is a tagged sum
// type over its dependency signals, matching spec.md §3/§4.B exactly.
package gate

import (
	"fmt"
	"strings"

	"github.com/aignet/aignet/pkg/signal"
)

// NaryKind enumerates the N-ary gate families.
type NaryKind int

const (
	NaryAnd NaryKind = iota
	NaryOr
	NaryNand
	NaryNor
	NaryXor
	NaryXnor
)

func (k NaryKind) String() string {
	switch k {
	case NaryAnd:
		return "And"
	case NaryOr:
		return "Or"
	case NaryNand:
		return "Nand"
	case NaryNor:
		return "Nor"
	case NaryXor:
		return "Xor"
	case NaryXnor:
		return "Xnor"
	default:
		return "?"
	}
}

// Kind tags which variant a Gate holds.
type Kind int

const (
	KindAnd Kind = iota
	KindXor
	KindAnd3
	KindXor3
	KindMux
	KindMaj
	KindDff
	KindNary
	KindBuf
)

// Gate is a logic gate: a tagged variant over its dependency signals.
// The zero value is not a valid Gate; always build one through a
// constructor.
type Gate struct {
	kind Kind
	deps [3]signal.Signal // And, Xor use deps[0:2]; ternary gates use all 3
	nary []signal.Signal
	nty  NaryKind
}

func And(a, b signal.Signal) Gate   { return Gate{kind: KindAnd, deps: [3]signal.Signal{a, b}} }
func Xor(a, b signal.Signal) Gate   { return Gate{kind: KindXor, deps: [3]signal.Signal{a, b}} }
func And3(a, b, c signal.Signal) Gate {
	return Gate{kind: KindAnd3, deps: [3]signal.Signal{a, b, c}}
}
func Xor3(a, b, c signal.Signal) Gate {
	return Gate{kind: KindXor3, deps: [3]signal.Signal{a, b, c}}
}
func Mux(s, a, b signal.Signal) Gate {
	return Gate{kind: KindMux, deps: [3]signal.Signal{s, a, b}}
}
func Maj(a, b, c signal.Signal) Gate {
	return Gate{kind: KindMaj, deps: [3]signal.Signal{a, b, c}}
}
func Dff(d, en, res signal.Signal) Gate {
	return Gate{kind: KindDff, deps: [3]signal.Signal{d, en, res}}
}
func Buf(s signal.Signal) Gate { return Gate{kind: KindBuf, deps: [3]signal.Signal{s}} }
func Nary(sigs []signal.Signal, kind NaryKind) Gate {
	cp := make([]signal.Signal, len(sigs))
	copy(cp, sigs)
	return Gate{kind: KindNary, nary: cp, nty: kind}
}

// Kind returns the gate's tag.
func (g Gate) Kind() Kind { return g.kind }

// NaryKind returns the N-ary family; only meaningful when Kind() == KindNary.
func (g Gate) NaryKind() NaryKind { return g.nty }

// And2 returns the two dependency signals of an And/Xor gate.
func (g Gate) And2() (a, b signal.Signal) { return g.deps[0], g.deps[1] }

// Ternary returns the three dependency signals of a ternary-shaped gate
// (And3, Xor3, Mux, Maj, Dff).
func (g Gate) Ternary() (a, b, c signal.Signal) { return g.deps[0], g.deps[1], g.deps[2] }

// BufSignal returns the single dependency of a Buf gate.
func (g Gate) BufSignal() signal.Signal { return g.deps[0] }

// NaryInputs returns the operand list of an N-ary gate.
func (g Gate) NaryInputs() []signal.Signal { return g.nary }

// Dependencies returns every signal feeding this gate, in the order they
// appear in the variant.
func (g Gate) Dependencies() []signal.Signal {
	switch g.kind {
	case KindAnd, KindXor:
		return []signal.Signal{g.deps[0], g.deps[1]}
	case KindAnd3, KindXor3, KindMux, KindMaj, KindDff:
		return []signal.Signal{g.deps[0], g.deps[1], g.deps[2]}
	case KindNary:
		return g.nary
	case KindBuf:
		return []signal.Signal{g.deps[0]}
	default:
		return nil
	}
}

// Vars returns the internal variable indices among the dependencies.
func (g Gate) Vars() []uint32 {
	deps := g.Dependencies()
	ret := make([]uint32, 0, len(deps))
	for _, s := range deps {
		if s.IsVar() {
			ret = append(ret, s.Var())
		}
	}
	return ret
}

// IsComb reports whether the gate is combinational (every gate but Dff).
func (g Gate) IsComb() bool { return g.kind != KindDff }

// CombVars returns Vars() for a combinational gate, or nil for a Dff.
func (g Gate) CombVars() []uint32 {
	if !g.IsComb() {
		return nil
	}
	return g.Vars()
}

// Remap returns a copy of g with every dependency signal passed through f.
func (g Gate) Remap(f func(signal.Signal) signal.Signal) Gate {
	switch g.kind {
	case KindAnd:
		return And(f(g.deps[0]), f(g.deps[1]))
	case KindXor:
		return Xor(f(g.deps[0]), f(g.deps[1]))
	case KindAnd3:
		return And3(f(g.deps[0]), f(g.deps[1]), f(g.deps[2]))
	case KindXor3:
		return Xor3(f(g.deps[0]), f(g.deps[1]), f(g.deps[2]))
	case KindMux:
		return Mux(f(g.deps[0]), f(g.deps[1]), f(g.deps[2]))
	case KindMaj:
		return Maj(f(g.deps[0]), f(g.deps[1]), f(g.deps[2]))
	case KindDff:
		return Dff(f(g.deps[0]), f(g.deps[1]), f(g.deps[2]))
	case KindBuf:
		return Buf(f(g.deps[0]))
	case KindNary:
		ns := make([]signal.Signal, len(g.nary))
		for i, s := range g.nary {
			ns[i] = f(s)
		}
		return Gate{kind: KindNary, nary: ns, nty: g.nty}
	default:
		panic("remap of invalid gate")
	}
}

// RemapOrder applies a variable-order translation table to every
// dependency of g.
func (g Gate) RemapOrder(t []signal.Signal) Gate {
	return g.Remap(func(s signal.Signal) signal.Signal { return s.RemapOrder(t) })
}

// RemapInput rewrites only the dependency at the given position,
// leaving the rest unchanged — used to build an input stuck-at fault
// network (pkg/atpg).
func (g Gate) RemapInput(pos int, s signal.Signal) Gate {
	i := 0
	return g.Remap(func(orig signal.Signal) signal.Signal {
		defer func() { i++ }()
		if i == pos {
			return s
		}
		return orig
	})
}

func (g Gate) String() string {
	switch g.kind {
	case KindAnd:
		return fmt.Sprintf("%s & %s", g.deps[0], g.deps[1])
	case KindXor:
		return fmt.Sprintf("%s ^ %s", g.deps[0], g.deps[1])
	case KindAnd3:
		return fmt.Sprintf("%s & %s & %s", g.deps[0], g.deps[1], g.deps[2])
	case KindXor3:
		return fmt.Sprintf("%s ^ %s ^ %s", g.deps[0], g.deps[1], g.deps[2])
	case KindMux:
		return fmt.Sprintf("%s ? %s : %s", g.deps[0], g.deps[1], g.deps[2])
	case KindMaj:
		return fmt.Sprintf("Maj(%s, %s, %s)", g.deps[0], g.deps[1], g.deps[2])
	case KindDff:
		s := fmt.Sprintf("Dff(%s", g.deps[0])
		if g.deps[1] != signal.One() {
			s += fmt.Sprintf(", en=%s", g.deps[1])
		}
		if g.deps[2] != signal.Zero() {
			s += fmt.Sprintf(", res=%s", g.deps[2])
		}
		return s + ")"
	case KindBuf:
		return g.deps[0].String()
	case KindNary:
		sep := " & "
		inv := false
		switch g.nty {
		case NaryOr:
			sep = " | "
		case NaryNor:
			sep = " | "
			inv = true
		case NaryNand:
			inv = true
		case NaryXor:
			sep = " ^ "
		case NaryXnor:
			sep = " ^ "
			inv = true
		}
		parts := make([]string, len(g.nary))
		for i, s := range g.nary {
			parts[i] = s.String()
		}
		body := strings.Join(parts, sep)
		if inv {
			return "!(" + body + ")"
		}
		return body
	default:
		return "?"
	}
}
