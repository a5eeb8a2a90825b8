// Package blif reads and writes the small subset of the .blif format
// this engine needs: a single model, a single clock, .names-based
// combinational logic, and .latch/.flop flip-flops.
//
// Grounded on original_source/src/io/blif.rs.
package blif

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

var log = logrus.WithField("pkg", "blif")

type stmtKind int

const (
	stmtModel stmtKind = iota
	stmtEnd
	stmtExdc
	stmtInputs
	stmtOutputs
	stmtLatch
	stmtNames
	stmtCube
)

type statement struct {
	kind  stmtKind
	line  int
	names []string // .inputs/.outputs/.names arguments; .names's last entry is its output
	a, b  string    // .latch input, output
	text  string    // raw cube text
}

func readSingleStatement(tokens []string, line int) (statement, error) {
	switch tokens[0] {
	case ".model":
		if len(tokens) < 2 {
			return statement{}, aigerr.NewParseError(line, ".model requires a name")
		}
		return statement{kind: stmtModel, line: line}, nil
	case ".inputs":
		return statement{kind: stmtInputs, line: line, names: append([]string(nil), tokens[1:]...)}, nil
	case ".outputs":
		return statement{kind: stmtOutputs, line: line, names: append([]string(nil), tokens[1:]...)}, nil
	case ".latch":
		if len(tokens) < 3 {
			return statement{}, aigerr.NewParseError(line, ".latch requires an input and an output")
		}
		return statement{kind: stmtLatch, line: line, a: tokens[1], b: tokens[2]}, nil
	case ".names":
		return statement{kind: stmtNames, line: line, names: append([]string(nil), tokens[1:]...)}, nil
	case ".end":
		return statement{kind: stmtEnd, line: line}, nil
	case ".exdc":
		return statement{kind: stmtExdc, line: line}, nil
	default:
		if strings.HasPrefix(tokens[0], ".") {
			return statement{}, aigerr.NewParseError(line, "%s construct is not supported", tokens[0])
		}
		return statement{kind: stmtCube, line: line, text: strings.Join(tokens, " ")}, nil
	}
}

// readStatements tokenizes the file into a flat statement list,
// joining backslash-continued lines and treating everything after the
// first '#' on a physical line as a comment.
func readStatements(r io.Reader) ([]statement, error) {
	var ret []statement
	var ss strings.Builder

	scanner := bufio.NewScanner(r)
	lineNo := 0
	flush := func() error {
		t := strings.TrimSpace(ss.String())
		ss.Reset()
		if t == "" {
			return nil
		}
		tokens := strings.Fields(t)
		if len(tokens) == 0 {
			return nil
		}
		st, err := readSingleStatement(tokens, lineNo)
		if err != nil {
			return err
		}
		ret = append(ret, st)
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		commentPos := strings.IndexByte(line, '#')
		ss.WriteByte(' ')
		if commentPos >= 0 {
			ss.WriteString(line[:commentPos])
		} else {
			ss.WriteString(line)
		}

		buffered := ss.String()
		isContinuation := commentPos < 0 && strings.HasSuffix(buffered, "\\")
		if isContinuation {
			ss.Reset()
			ss.WriteString(buffered[:len(buffered)-1])
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, aigerr.NewParseError(lineNo, "reading input: %s", err)
	}
	if strings.TrimSpace(ss.String()) != "" {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func buildNameToSig(statements []statement) (map[string]signal.Signal, error) {
	foundModel := false
	ret := make(map[string]signal.Signal)
	var varIndex, inputIndex uint32

	define := func(name string, s signal.Signal, line int) error {
		if _, ok := ret[name]; ok {
			return aigerr.NewParseError(line, "%s is defined twice", name)
		}
		ret[name] = s
		return nil
	}

statements:
	for _, st := range statements {
		switch st.kind {
		case stmtModel:
			if foundModel {
				return nil, aigerr.NewParseError(st.line, "multiple models in the same file are not supported")
			}
			foundModel = true
		case stmtEnd:
			if !foundModel {
				return nil, aigerr.NewParseError(st.line, "end statement before the end of the model")
			}
		case stmtExdc:
			break statements
		case stmtInputs:
			for _, name := range st.names {
				s := signal.FromInput(inputIndex)
				inputIndex++
				if err := define(name, s, st.line); err != nil {
					return nil, err
				}
			}
		case stmtOutputs:
			// Nothing to do: outputs reference signals defined elsewhere.
		case stmtLatch:
			s := signal.FromVar(varIndex)
			varIndex++
			if err := define(st.b, s, st.line); err != nil {
				return nil, err
			}
		case stmtNames:
			if len(st.names) == 0 {
				return nil, aigerr.NewParseError(st.line, ".names statement with no output")
			}
			s := signal.FromVar(varIndex)
			varIndex++
			if err := define(st.names[len(st.names)-1], s, st.line); err != nil {
				return nil, err
			}
		case stmtCube:
			// Nothing to do here: cubes are resolved once gates exist.
		}
	}
	return ret, nil
}

type pendingNames struct {
	stmtIndex int
	nodeIndex uint32
}

func buildNetwork(statements []statement, nameToSig map[string]signal.Signal) (*network.Network, error) {
	ret := network.New()
	var pending []pendingNames

statements:
	for i, st := range statements {
		switch st.kind {
		case stmtInputs:
			ret.AddInputs(uint32(len(st.names)))
		case stmtOutputs:
			for _, name := range st.names {
				s, ok := nameToSig[name]
				if !ok {
					return nil, aigerr.NewParseError(st.line, "%s is not defined", name)
				}
				ret.AddOutput(s)
			}
		case stmtLatch:
			s, ok := nameToSig[st.a]
			if !ok {
				return nil, aigerr.NewParseError(st.line, "%s is not defined", st.a)
			}
			ret.Add(gate.Dff(s, signal.One(), signal.Zero()))
		case stmtNames:
			deps := make([]signal.Signal, 0, len(st.names)-1)
			for _, name := range st.names[:len(st.names)-1] {
				s, ok := nameToSig[name]
				if !ok {
					return nil, aigerr.NewParseError(st.line, "%s is not defined", name)
				}
				deps = append(deps, s)
			}
			pending = append(pending, pendingNames{stmtIndex: i, nodeIndex: uint32(ret.NbNodes())})
			ret.Add(gate.Nary(deps, gate.NaryAnd))
		case stmtExdc:
			break statements
		case stmtModel, stmtEnd, stmtCube:
			// Nothing to do.
		}
	}

	// Cube lines trailing a .names statement describe the actual
	// function; the placeholder gate added above gets replaced here.
	for _, p := range pending {
		inputs := ret.Gate(p.nodeIndex).Dependencies()

		var cubes []string
		for j := p.stmtIndex + 1; j < len(statements); j++ {
			if statements[j].kind != stmtCube {
				break
			}
			cubes = append(cubes, statements[j].text)
		}

		var cubeGates []gate.Gate
		var polarities []bool
		for _, c := range cubes {
			t := strings.Fields(c)
			var cubeInputs, cubePol string
			switch len(t) {
			case 2:
				cubeInputs, cubePol = t[0], t[1]
			case 1:
				cubeInputs, cubePol = "", t[0]
			default:
				return nil, aigerr.NewParseError(0, "invalid cube: %s", c)
			}
			if len(cubeInputs) != len(inputs) {
				return nil, aigerr.NewParseError(0, "invalid cube: %s has %d inputs, expected %d", c, len(cubeInputs), len(inputs))
			}

			var deps []signal.Signal
			for k := 0; k < len(cubeInputs); k++ {
				switch cubeInputs[k] {
				case '0':
					deps = append(deps, inputs[k].Not())
				case '1':
					deps = append(deps, inputs[k])
				case '-':
					// don't-care: no literal contributed
				default:
					return nil, aigerr.NewParseError(0, "invalid cube: %s", c)
				}
			}

			var pol bool
			switch cubePol {
			case "0":
				pol = false
			case "1":
				pol = true
			default:
				return nil, aigerr.NewParseError(0, "invalid cube: %s", c)
			}
			polarities = append(polarities, pol)

			var g gate.Gate
			if pol {
				switch len(deps) {
				case 0:
					g = gate.Buf(signal.One())
				case 1:
					g = gate.Buf(deps[0])
				default:
					g = gate.Nary(deps, gate.NaryAnd)
				}
			} else {
				switch len(deps) {
				case 0:
					g = gate.Buf(signal.Zero())
				case 1:
					g = gate.Buf(deps[0].Not())
				default:
					g = gate.Nary(deps, gate.NaryNand)
				}
			}
			cubeGates = append(cubeGates, g)
		}

		switch len(cubeGates) {
		case 0:
			ret.Replace(p.nodeIndex, gate.Buf(signal.Zero()))
		case 1:
			ret.Replace(p.nodeIndex, cubeGates[0])
		default:
			for _, pol := range polarities {
				if pol != polarities[0] {
					return nil, aigerr.NewParseError(0, "inconsistent polarities in cubes")
				}
			}
			deps := make([]signal.Signal, len(cubeGates))
			for i, g := range cubeGates {
				deps[i] = ret.Add(g)
			}
			if polarities[0] {
				ret.Replace(p.nodeIndex, gate.Nary(deps, gate.NaryOr))
			} else {
				ret.Replace(p.nodeIndex, gate.Nary(deps, gate.NaryAnd))
			}
		}
	}

	ret.TopoSort()
	return ret, nil
}

// ReadBlif parses a .blif netlist into a Network. Only a single model,
// a single clock, .names-described combinational logic, and plain
// .latch flip-flops are supported; everything from .exdc onward is
// ignored.
func ReadBlif(r io.Reader) (*network.Network, error) {
	statements, err := readStatements(r)
	if err != nil {
		return nil, err
	}
	nameToSig, err := buildNameToSig(statements)
	if err != nil {
		return nil, err
	}
	ret, err := buildNetwork(statements, nameToSig)
	if err != nil {
		return nil, err
	}
	log.WithField("nodes", ret.NbNodes()).Debug("parsed .blif netlist")
	return ret, nil
}

func writeBlifCube(bw *bufio.Writer, mask, numVars int, val bool) {
	for i := 0; i < numVars; i++ {
		if (mask>>uint(i))&1 != 0 {
			bw.WriteByte('1')
		} else {
			bw.WriteByte('0')
		}
	}
	if val {
		fmt.Fprintln(bw, " 1")
	} else {
		fmt.Fprintln(bw, " 0")
	}
}

// WriteBlif writes aig as a single-model .blif netlist. A Dff with a
// non-trivial enable or reset is written with ABC's ".flop" extension
// instead of a plain ".latch".
func WriteBlif(w io.Writer, aig *network.Network) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# .blif file")
	fmt.Fprintln(bw, "# Generated by aignet")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, ".model aignet")
	fmt.Fprintln(bw)

	fmt.Fprint(bw, ".inputs")
	for i := uint32(0); i < aig.NbInputs(); i++ {
		fmt.Fprintf(bw, " %s", signal.FromInput(i))
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw)

	fmt.Fprint(bw, ".outputs")
	for i := 0; i < aig.NbOutputs(); i++ {
		fmt.Fprintf(bw, " %s", iotext.SigToString(aig.Output(i)))
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw)

	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		if g.Kind() != gate.KindDff {
			continue
		}
		d, en, res := g.Ternary()
		if en != signal.One() || res != signal.Zero() {
			fmt.Fprintf(bw, ".flop D=%s Q=x%d init=0", iotext.SigToString(d), i)
			if en != signal.One() {
				fmt.Fprintf(bw, " E=%s", en)
			}
			if res != signal.Zero() {
				fmt.Fprintf(bw, " R=%s", res)
			}
			fmt.Fprintln(bw)
		} else {
			fmt.Fprintf(bw, ".latch %s x%d 0\n", iotext.SigToString(d), i)
		}
	}
	fmt.Fprintln(bw)

	for i := 0; i < aig.NbNodes(); i++ {
		g := aig.Gate(uint32(i))
		if !g.IsComb() {
			continue
		}

		fmt.Fprint(bw, ".names")
		if g.Kind() == gate.KindBuf {
			fmt.Fprintf(bw, " %s", iotext.SigToString(g.BufSignal().WithoutInversion()))
		} else {
			for _, s := range g.Dependencies() {
				fmt.Fprintf(bw, " %s", iotext.SigToString(s))
			}
		}
		fmt.Fprintf(bw, " x%d\n", i)

		switch g.Kind() {
		case gate.KindAnd:
			fmt.Fprintln(bw, "11 1")
		case gate.KindXor:
			fmt.Fprintln(bw, "10 1")
			fmt.Fprintln(bw, "01 1")
		case gate.KindAnd3:
			fmt.Fprintln(bw, "111 1")
		case gate.KindXor3:
			fmt.Fprintln(bw, "111 1")
			fmt.Fprintln(bw, "100 1")
			fmt.Fprintln(bw, "010 1")
			fmt.Fprintln(bw, "001 1")
		case gate.KindMux:
			fmt.Fprintln(bw, "11- 1")
			fmt.Fprintln(bw, "0-1 1")
		case gate.KindMaj:
			fmt.Fprintln(bw, "11- 1")
			fmt.Fprintln(bw, "-11 1")
			fmt.Fprintln(bw, "1-1 1")
		case gate.KindNary:
			nv := g.NaryInputs()
			switch g.NaryKind() {
			case gate.NaryAnd, gate.NaryNand, gate.NaryNor, gate.NaryOr:
				inputInv := g.NaryKind() == gate.NaryNor || g.NaryKind() == gate.NaryOr
				outputInv := g.NaryKind() == gate.NaryOr || g.NaryKind() == gate.NaryNand
				for range nv {
					if inputInv {
						bw.WriteByte('0')
					} else {
						bw.WriteByte('1')
					}
				}
				if outputInv {
					fmt.Fprintln(bw, " 0")
				} else {
					fmt.Fprintln(bw, " 1")
				}
			case gate.NaryXor, gate.NaryXnor:
				for mask := 0; mask < (1 << len(nv)); mask++ {
					parity := popcount(mask)%2 != 0
					val := parity
					if g.NaryKind() == gate.NaryXnor {
						val = !parity
					}
					if val {
						writeBlifCube(bw, mask, len(nv), val)
					}
				}
			default:
				return &aigerr.UnsupportedGate{Kind: g.String(), Reason: "nary kind has no .blif representation"}
			}
		case gate.KindBuf:
			if g.BufSignal().IsInverted() {
				fmt.Fprintln(bw, "0 1")
			} else {
				fmt.Fprintln(bw, "1 1")
			}
		default:
			return &aigerr.UnsupportedGate{Kind: g.String(), Reason: "gate kind has no .blif representation"}
		}
	}

	for _, s := range iotext.InvertedSignals(aig) {
		fmt.Fprintf(bw, ".names %s %s_n\n", s, s)
		fmt.Fprintln(bw, "0 1")
	}

	fmt.Fprintln(bw, ".names vdd")
	fmt.Fprintln(bw, "1")
	fmt.Fprintln(bw, ".names gnd")

	return bw.Flush()
}

func popcount(mask int) int {
	n := 0
	for mask != 0 {
		n += mask & 1
		mask >>= 1
	}
	return n
}
