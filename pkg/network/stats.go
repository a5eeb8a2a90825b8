package network

import (
	"fmt"
	"strings"

	"github.com/aignet/aignet/pkg/gate"
)

// Stats counts inputs, outputs, and gates by shape.
//
// Grounded on original_source/src/network/stats.rs.
type Stats struct {
	NbInputs  int
	NbOutputs int
	NbAnd     int
	NbAnd3    int
	NbAndN    int
	NbXor     int
	NbXor3    int
	NbXorN    int
	NbMux     int
	NbMaj     int
	NbBuf     int
	NbDff     int
}

// NbGates returns the total gate count, including Dff.
func (s Stats) NbGates() int {
	return s.NbAnd + s.NbAnd3 + s.NbAndN + s.NbXor + s.NbXor3 + s.NbXorN +
		s.NbMux + s.NbMaj + s.NbBuf + s.NbDff
}

func (s Stats) String() string {
	var b strings.Builder
	b.WriteString("Stats:\n")
	fmt.Fprintf(&b, "  Inputs: %d\n", s.NbInputs)
	fmt.Fprintf(&b, "  Outputs: %d\n", s.NbOutputs)
	fmt.Fprintf(&b, "  Gates: %d\n", s.NbGates())
	fmt.Fprintf(&b, "  Dff: %d\n", s.NbDff)
	writeIfNonZero(&b, "And2", s.NbAnd)
	writeIfNonZero(&b, "And3", s.NbAnd3)
	writeIfNonZero(&b, "Andn", s.NbAndN)
	writeIfNonZero(&b, "Xor2", s.NbXor)
	writeIfNonZero(&b, "Xor3", s.NbXor3)
	writeIfNonZero(&b, "Xorn", s.NbXorN)
	writeIfNonZero(&b, "Mux", s.NbMux)
	writeIfNonZero(&b, "Maj", s.NbMaj)
	writeIfNonZero(&b, "Buf", s.NbBuf)
	return b.String()
}

func writeIfNonZero(b *strings.Builder, label string, v int) {
	if v != 0 {
		fmt.Fprintf(b, "  %s: %d\n", label, v)
	}
}

// ComputeStats tallies the gate-shape breakdown of n.
func ComputeStats(n *Network) Stats {
	s := Stats{NbInputs: int(n.NbInputs()), NbOutputs: n.NbOutputs()}
	for i := 0; i < n.NbNodes(); i++ {
		g := n.Gate(uint32(i))
		switch g.Kind() {
		case gate.KindAnd:
			s.NbAnd++
		case gate.KindAnd3:
			s.NbAnd3++
		case gate.KindXor:
			s.NbXor++
		case gate.KindXor3:
			s.NbXor3++
		case gate.KindMux:
			s.NbMux++
		case gate.KindMaj:
			s.NbMaj++
		case gate.KindBuf:
			s.NbBuf++
		case gate.KindDff:
			s.NbDff++
		case gate.KindNary:
			switch g.NaryKind() {
			case gate.NaryAnd, gate.NaryOr, gate.NaryNand, gate.NaryNor:
				s.NbAndN++
			case gate.NaryXor, gate.NaryXnor:
				s.NbXorN++
			}
		}
	}
	return s
}
