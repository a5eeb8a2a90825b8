package sim

import "github.com/aignet/aignet/pkg/network"

func boolToWord(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

func boolsToWords(values [][]bool) [][]uint64 {
	ret := make([][]uint64, len(values))
	for t, v := range values {
		row := make([]uint64, len(v))
		for i, b := range v {
			row[i] = boolToWord(b)
		}
		ret[t] = row
	}
	return ret
}

func wordsToBools(values [][]uint64) [][]bool {
	ret := make([][]bool, len(values))
	for t, v := range values {
		row := make([]bool, len(v))
		for i, w := range v {
			row[i] = w != 0
		}
		ret[t] = row
	}
	return ret
}

// Simulate runs a network over multiple timesteps and returns its
// output values.
func Simulate(aig *network.Network, inputValues [][]bool) [][]bool {
	s := NewSimpleSimulator(aig)
	return wordsToBools(s.Run(boolsToWords(inputValues)))
}

// SimulateComb runs a combinational network for a single pattern and
// returns its output values. Panics if aig is not combinational.
func SimulateComb(aig *network.Network, inputValues []bool) []bool {
	if !aig.IsComb() {
		panic("sim: network is not combinational")
	}
	out := Simulate(aig, [][]bool{inputValues})
	return out[0]
}

// SimulateWithFaults runs a network over multiple timesteps with a set
// of stuck-at faults injected, and returns its output values.
func SimulateWithFaults(aig *network.Network, inputValues [][]bool, faults []Fault) [][]bool {
	s := NewSimpleSimulator(aig)
	return wordsToBools(s.RunWithFaults(boolsToWords(inputValues), faults))
}

// SimulateCombWithFaults runs a combinational network for a single
// pattern with faults injected. Panics if aig is not combinational.
func SimulateCombWithFaults(aig *network.Network, inputValues []bool, faults []Fault) []bool {
	if !aig.IsComb() {
		panic("sim: network is not combinational")
	}
	out := SimulateWithFaults(aig, [][]bool{inputValues}, faults)
	return out[0]
}
