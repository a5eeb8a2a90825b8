package sim

import "github.com/aignet/aignet/pkg/network"

// DetectsFaultsMulti runs a 64-lane pattern batch against aig (which
// must be combinational) and reports, for each fault, a 64-bit mask of
// which lanes produce a different primary output than the golden
// simulation. Built on IncrementalSimulator so each fault only costs a
// touched-node replay rather than a full resimulation.
func DetectsFaultsMulti(aig *network.Network, inputValues []uint64, faults []Fault) []uint64 {
	incr := NewIncrementalSimulator(aig)
	incr.RunInitial(inputValues)

	ret := make([]uint64, len(faults))
	for i, f := range faults {
		ret[i] = incr.DetectsFault(f)
	}
	return ret
}

// DetectsFaults is the single-pattern, bool-slice convenience form of
// DetectsFaultsMulti.
func DetectsFaults(aig *network.Network, inputValues []bool, faults []Fault) []bool {
	word := boolsToWords([][]bool{inputValues})[0]
	multi := DetectsFaultsMulti(aig, word, faults)
	ret := make([]bool, len(faults))
	for i, m := range multi {
		ret[i] = m&1 != 0
	}
	return ret
}
