// Package bench reads and writes the ISCAS .bench format: a line-based
// netlist of INPUT/OUTPUT declarations and named gate statements.
//
// Grounded on original_source/src/io/bench.rs.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aignet/aignet/internal/iotext"
	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
)

var log = logrus.WithField("pkg", "bench")

type gateKind int

const (
	gateInput gateKind = iota
	gateDff
	gateBuf
	gateNot
	gateAnd
	gateOr
	gateNand
	gateNor
	gateXor
	gateVdd
	gateVss
)

type statement struct {
	name string
	kind gateKind
	deps []string
	line int
}

type namedOutput struct {
	name string
	line int
}

// ReadBench parses a .bench netlist into a Network.
func ReadBench(r io.Reader) (*network.Network, error) {
	var statements []statement
	var outputs []namedOutput

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		t := strings.TrimSpace(scanner.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}

		parts := tokenize(t)
		switch {
		case len(parts) == 2 && parts[0] == "INPUT":
			statements = append(statements, statement{name: parts[1], kind: gateInput, line: lineNo})
		case len(parts) == 2 && parts[0] == "OUTPUT":
			outputs = append(outputs, namedOutput{name: parts[1], line: lineNo})
		case len(parts) < 2:
			return nil, aigerr.NewParseError(lineNo, "too few items on the line")
		default:
			kind, err := parseGateKind(parts[1])
			if err != nil {
				return nil, aigerr.NewParseError(lineNo, "%s", err)
			}
			deps := append([]string(nil), parts[2:]...)
			statements = append(statements, statement{name: parts[0], kind: kind, deps: deps, line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, aigerr.NewParseError(lineNo, "reading input: %s", err)
	}

	return aigFromStatements(statements, outputs)
}

// tokenize splits a statement line on '=', '(', ',', ')' and drops
// empty fields, matching the grammar's free-form whitespace handling.
func tokenize(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == '=' || r == '(' || r == ',' || r == ')'
	})
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseGateKind(s string) (gateKind, error) {
	switch strings.ToUpper(s) {
	case "AND":
		return gateAnd, nil
	case "OR":
		return gateOr, nil
	case "NAND":
		return gateNand, nil
	case "NOR":
		return gateNor, nil
	case "XOR":
		return gateXor, nil
	case "BUF", "BUFF":
		return gateBuf, nil
	case "NOT":
		return gateNot, nil
	case "DFF":
		return gateDff, nil
	case "VDD":
		return gateVdd, nil
	case "GND":
		return gateVss, nil
	default:
		return 0, fmt.Errorf("unknown gate type %s", s)
	}
}

func aigFromStatements(statements []statement, outputs []namedOutput) (*network.Network, error) {
	ret := network.New()
	nameToSig := make(map[string]signal.Signal, len(statements))
	var nodeInd uint32

	for _, s := range statements {
		switch s.kind {
		case gateInput:
			nameToSig[s.name] = ret.AddInput()
		case gateNand, gateOr:
			nameToSig[s.name] = signal.FromVar(nodeInd).Not()
			nodeInd++
		default:
			nameToSig[s.name] = signal.FromVar(nodeInd)
			nodeInd++
		}
	}

	if _, ok := nameToSig["vdd"]; !ok {
		nameToSig["vdd"] = signal.One()
	}
	if _, ok := nameToSig["gnd"]; !ok {
		nameToSig["gnd"] = signal.Zero()
	}

	for _, s := range statements {
		for _, d := range s.deps {
			if _, ok := nameToSig[d]; !ok {
				return nil, aigerr.NewParseError(s.line, "gate input %s is not generated anywhere", d)
			}
		}
		var wantDeps int
		switch s.kind {
		case gateInput, gateVdd, gateVss:
			wantDeps = 0
		case gateDff, gateBuf, gateNot:
			wantDeps = 1
		default:
			continue
		}
		if len(s.deps) != wantDeps {
			return nil, aigerr.NewParseError(s.line, "gate %s expects %d input(s), got %d", s.name, wantDeps, len(s.deps))
		}
	}
	for _, o := range outputs {
		if _, ok := nameToSig[o.name]; !ok {
			return nil, aigerr.NewParseError(o.line, "output %s is not generated anywhere", o.name)
		}
	}

	for _, s := range statements {
		if s.kind == gateInput {
			continue
		}
		sigs := make([]signal.Signal, len(s.deps))
		nsigs := make([]signal.Signal, len(s.deps))
		for i, d := range s.deps {
			sigs[i] = nameToSig[d]
			nsigs[i] = nameToSig[d].Not()
		}
		switch s.kind {
		case gateDff:
			ret.Add(gate.Dff(sigs[0], signal.One(), signal.Zero()))
		case gateBuf:
			ret.Add(gate.Buf(sigs[0]))
		case gateNot:
			ret.Add(gate.Buf(sigs[0].Not()))
		case gateVdd:
			ret.Add(gate.Buf(signal.One()))
		case gateVss:
			ret.Add(gate.Buf(signal.Zero()))
		case gateAnd, gateNand:
			ret.Add(gate.Nary(sigs, gate.NaryAnd))
		case gateOr, gateNor:
			ret.Add(gate.Nary(nsigs, gate.NaryAnd))
		case gateXor:
			ret.Add(gate.Nary(sigs, gate.NaryXor))
		}
	}
	for _, o := range outputs {
		ret.AddOutput(nameToSig[o.name])
	}

	ret.TopoSort()
	log.WithField("nodes", ret.NbNodes()).Debug("parsed .bench netlist")
	return ret, nil
}

// WriteBench writes aig in ISCAS .bench format. A Dff with a
// non-trivial enable or reset cannot be represented and is rejected.
func WriteBench(w io.Writer, aig *network.Network) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# .bench (ISCAS) file")
	fmt.Fprintln(bw, "# generated by aignet")
	for i := uint32(0); i < aig.NbInputs(); i++ {
		fmt.Fprintf(bw, "INPUT(%s)\n", signal.FromInput(i))
		fmt.Fprintf(bw, "%s_n = NOT(%s)\n", signal.FromInput(i), signal.FromInput(i))
	}
	fmt.Fprintln(bw)
	for i := 0; i < aig.NbOutputs(); i++ {
		fmt.Fprintf(bw, "OUTPUT(%s)\n", iotext.SigToString(aig.Output(i)))
	}
	fmt.Fprintln(bw)

	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		deps := g.Dependencies()
		rep := make([]string, len(deps))
		for j, d := range deps {
			rep[j] = iotext.SigToString(d)
		}
		joined := strings.Join(rep, ", ")

		var line string
		switch g.Kind() {
		case gate.KindAnd, gate.KindAnd3:
			line = fmt.Sprintf("AND(%s)", joined)
		case gate.KindNary:
			switch g.NaryKind() {
			case gate.NaryAnd:
				line = fmt.Sprintf("AND(%s)", joined)
			case gate.NaryXor:
				line = fmt.Sprintf("XOR(%s)", joined)
			default:
				return &aigerr.UnsupportedGate{Kind: g.String(), Reason: "bench supports only AND/XOR n-ary gates"}
			}
		case gate.KindXor, gate.KindXor3:
			line = fmt.Sprintf("XOR(%s)", joined)
		case gate.KindDff:
			d, en, res := g.Ternary()
			if en != signal.One() || res != signal.Zero() {
				return &aigerr.UnsupportedGate{Kind: "Dff", Reason: "only flip-flops without enable or reset are representable in .bench"}
			}
			line = fmt.Sprintf("DFF(%s)", iotext.SigToString(d))
		case gate.KindMux:
			line = fmt.Sprintf("MUX(%s)", joined)
		case gate.KindMaj:
			line = fmt.Sprintf("MAJ(%s)", joined)
		case gate.KindBuf:
			line = fmt.Sprintf("BUF(%s)", joined)
		default:
			return &aigerr.UnsupportedGate{Kind: g.String(), Reason: "gate kind has no .bench representation"}
		}

		nodeName := signal.FromVar(uint32(i)).String()
		fmt.Fprintf(bw, "%s = %s\n", nodeName, line)
		fmt.Fprintf(bw, "%s_n = NOT(%s)\n", nodeName, nodeName)
	}

	return bw.Flush()
}
