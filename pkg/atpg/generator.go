package atpg

import (
	"github.com/sirupsen/logrus"

	"github.com/aignet/aignet/internal/prng"
	"github.com/aignet/aignet/pkg/cnf"
	"github.com/aignet/aignet/pkg/equiv"
	"github.com/aignet/aignet/pkg/gate"
	"github.com/aignet/aignet/pkg/network"
	"github.com/aignet/aignet/pkg/signal"
	"github.com/aignet/aignet/pkg/sim"
)

var log = logrus.WithField("pkg", "atpg")

type logFields = logrus.Fields

// findPatternDetectingFault looks for a single input vector that
// detects fault in aig, by building the miter between aig and a copy
// with the fault forced in and proving it unsatisfiable is false.
// Gates outside the fault's logic cone get deduplicated away by
// MakeCanonical/Cleanup on the miter, so this stays cheap even though
// it conceptually duplicates the whole network.
func findPatternDetectingFault(aig *network.Network, f sim.Fault) ([]bool, bool, error) {
	if !aig.IsComb() {
		panic("atpg: findPatternDetectingFault requires a combinational network")
	}

	faulty := aig.Clone()
	switch f.Kind {
	case sim.OutputStuckAt:
		faulty.Replace(uint32(f.Gate), gate.Buf(signal.FromBool(f.Value)))
	case sim.InputStuckAt:
		g := aig.Gate(uint32(f.Gate)).RemapInput(f.Input, signal.FromBool(f.Value))
		faulty.Replace(uint32(f.Gate), g)
	}

	diff := equiv.Difference(aig, faulty)
	diff.MakeCanonical()
	diff.Cleanup()
	pattern, ok, err := cnf.Prove(diff)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return pattern, true, nil
}

// TestPatternGenerator accumulates a set of input patterns against a
// combinational network and tracks, fault by fault, which patterns
// detect it. Patterns are appended 64 at a time (one simulator batch),
// except for AddSinglePattern which appends one at a time.
type TestPatternGenerator struct {
	aig               *network.Network
	faults            []sim.Fault
	patterns          [][]bool
	patternDetections [][]bool
	detection         []bool
	rng               prng.Source
}

// NewTestPatternGenerator initializes a generator from a topologically
// sorted network, a fault list, and a deterministic seed.
func NewTestPatternGenerator(aig *network.Network, faults []sim.Fault, seed uint64) *TestPatternGenerator {
	if !aig.IsTopoSorted() {
		panic("atpg: TestPatternGenerator requires a topologically sorted network")
	}
	return &TestPatternGenerator{
		aig:       aig,
		faults:    faults,
		detection: make([]bool, len(faults)),
		rng:       prng.New(seed),
	}
}

func (g *TestPatternGenerator) NbFaults() int { return len(g.faults) }

func (g *TestPatternGenerator) NbPatterns() int { return len(g.patterns) }

func (g *TestPatternGenerator) NbDetected() int {
	n := 0
	for _, d := range g.detection {
		if d {
			n++
		}
	}
	return n
}

// Patterns returns the current pattern set.
func (g *TestPatternGenerator) Patterns() [][]bool { return g.patterns }

// extendVec appends 64 boolean vectors to v, one per bit of each word
// in added (lane i of added[j] becomes element j of the i-th vector).
func extendVec(v *[][]bool, added []uint64) {
	for i := 0; i < 64; i++ {
		vec := make([]bool, len(added))
		for j, d := range added {
			vec[j] = (d>>uint(i))&1 != 0
		}
		*v = append(*v, vec)
	}
}

// GetFaults returns the faults (and their original indices) that
// still need detecting, or all of them when checkAlreadyDetected.
func (g *TestPatternGenerator) GetFaults(checkAlreadyDetected bool) ([]sim.Fault, []int) {
	var faults []sim.Fault
	var indices []int
	for i, f := range g.faults {
		if checkAlreadyDetected || !g.detection[i] {
			faults = append(faults, f)
			indices = append(indices, i)
		}
	}
	return faults, indices
}

// AddSinglePattern adds one pattern, simulating it alone.
func (g *TestPatternGenerator) AddSinglePattern(pattern []bool, checkAlreadyDetected bool) {
	faults, indices := g.GetFaults(checkAlreadyDetected)
	detected := sim.DetectsFaults(g.aig, pattern, faults)
	det := make([]bool, g.NbFaults())
	for k, i := range indices {
		g.detection[i] = g.detection[i] || detected[k]
		det[i] = detected[k]
	}
	g.patterns = append(g.patterns, pattern)
	g.patternDetections = append(g.patternDetections, det)
}

// AddRandomPatternsFrom adds pattern plus 63 small random variations
// of it: mostly zero changes, with roughly one bit in sixteen flipped,
// and the first lane forced to be pattern itself unmodified.
func (g *TestPatternGenerator) AddRandomPatternsFrom(pattern []bool, checkAlreadyDetected bool) {
	const numRounds = 4
	patterns := make([]uint64, len(pattern))
	for i, b := range pattern {
		var val uint64
		if b {
			val = ^uint64(0)
		}
		change := ^uint64(0)
		for r := 0; r < numRounds; r++ {
			change &= g.rng.Uint64()
		}
		change &^= 1
		val ^= change
		patterns[i] = val
	}
	g.AddPatterns(patterns, checkAlreadyDetected)
}

// AddPatterns adds a 64-lane batch of patterns, one uint64 per input.
func (g *TestPatternGenerator) AddPatterns(patterns []uint64, checkAlreadyDetected bool) {
	faults, indices := g.GetFaults(checkAlreadyDetected)
	detected := sim.DetectsFaultsMulti(g.aig, patterns, faults)
	det := make([]uint64, g.NbFaults())
	for k, i := range indices {
		g.detection[i] = g.detection[i] || detected[k] != 0
		det[i] = detected[k]
	}
	extendVec(&g.patterns, patterns)
	extendVec(&g.patternDetections, det)
}

// AddRandomPatterns generates and adds one fully random 64-lane batch.
func (g *TestPatternGenerator) AddRandomPatterns(checkAlreadyDetected bool) {
	pattern := make([]uint64, g.aig.NbInputs())
	for i := range pattern {
		pattern[i] = g.rng.Uint64()
	}
	g.AddPatterns(pattern, checkAlreadyDetected)
}

// Check verifies the generator's internal bookkeeping is consistent.
func (g *TestPatternGenerator) Check() {
	if len(g.patterns) != len(g.patternDetections) {
		panic("atpg: pattern/detection length mismatch")
	}
	for _, p := range g.patterns {
		if len(p) != int(g.aig.NbInputs()) {
			panic("atpg: pattern width mismatch")
		}
	}
	for _, d := range g.patternDetections {
		if len(d) != g.NbFaults() {
			panic("atpg: detection width mismatch")
		}
	}
	if len(g.detection) != g.NbFaults() {
		panic("atpg: detection vector length mismatch")
	}
}

// CompressPatterns reduces the pattern set to a minimal one still
// detecting every fault the original set detected: a greedy
// minimum-set-cover, repeatedly picking the pattern that detects the
// most not-yet-covered faults.
func (g *TestPatternGenerator) CompressPatterns() {
	remainingToDetect := g.NbDetected()

	faultToPatterns := make([][]int, g.NbFaults())
	for f := 0; f < g.NbFaults(); f++ {
		for p := 0; p < g.NbPatterns(); p++ {
			if g.patternDetections[p][f] {
				faultToPatterns[f] = append(faultToPatterns[f], p)
			}
		}
	}

	patternToFaults := make([][]int, g.NbPatterns())
	for p := 0; p < g.NbPatterns(); p++ {
		for f := 0; f < g.NbFaults(); f++ {
			if g.patternDetections[p][f] {
				patternToFaults[p] = append(patternToFaults[p], f)
			}
		}
	}

	nbDetectedByPattern := make([]int, g.NbPatterns())
	for p, fs := range patternToFaults {
		nbDetectedByPattern[p] = len(fs)
	}

	var selected []int
	for remainingToDetect > 0 {
		best := -1
		for p, n := range nbDetectedByPattern {
			if best == -1 || n > nbDetectedByPattern[best] {
				best = p
			}
		}
		if nbDetectedByPattern[best] <= 0 {
			panic("atpg: compression stalled before covering all detected faults")
		}
		selected = append(selected, best)
		remainingToDetect -= nbDetectedByPattern[best]

		for _, f := range patternToFaults[best] {
			for _, p := range faultToPatterns[f] {
				nbDetectedByPattern[p]--
			}
			faultToPatterns[f] = nil
		}
		if nbDetectedByPattern[best] != 0 {
			panic("atpg: compression left a detection count inconsistent")
		}
	}

	log.WithField("selected", len(selected)).WithField("from", g.NbPatterns()).
		Info("compressed pattern set")

	newPatterns := make([][]bool, len(selected))
	newDetections := make([][]bool, len(selected))
	for i, p := range selected {
		newPatterns[i] = g.patterns[p]
		newDetections[i] = g.patternDetections[p]
	}
	g.patterns = newPatterns
	g.patternDetections = newDetections
}

// DetectFaults runs the random-pattern probing loop until coverage
// stalls, then falls back to a SAT solve for every fault random
// patterns never hit. Returns an error if the SAT oracle fails to reach
// a decision for some fault.
func (g *TestPatternGenerator) DetectFaults() error {
	for {
		before := g.NbDetected()
		g.AddRandomPatterns(true)
		after := g.NbDetected()
		if after == g.NbFaults() {
			break
		}
		if float64(after-before) < 0.01*float64(g.NbFaults()) {
			break
		}
	}
	log.WithFields(logFields{
		"patterns":  g.NbPatterns(),
		"detected":  g.NbDetected(),
		"faults":    g.NbFaults(),
		"coverage%": coveragePct(g.NbDetected(), g.NbFaults()),
	}).Info("random pattern generation done")

	unobservable := 0
	for i := 0; i < g.NbFaults(); i++ {
		if g.detection[i] {
			continue
		}
		pattern, ok, err := findPatternDetectingFault(g.aig, g.faults[i])
		if err != nil {
			return err
		}
		if ok {
			g.AddRandomPatternsFrom(pattern, false)
		} else {
			unobservable++
		}
	}
	log.WithFields(logFields{
		"patterns":     g.NbPatterns(),
		"detected":     g.NbDetected(),
		"faults":       g.NbFaults(),
		"coverage%":    coveragePct(g.NbDetected(), g.NbFaults()),
		"unobservable": unobservable,
	}).Info("test pattern generation done")
	return nil
}

func coveragePct(detected, faults int) float64 {
	if faults == 0 {
		return 100.0
	}
	return 100.0 * float64(detected) / float64(faults)
}

// GenerateCombTestPatterns generates random patterns, then falls back
// to SAT search for the faults random patterns missed, and finally
// compresses the result to a minimal pattern set. aig must be
// combinational. Returns an error if the SAT oracle fails to reach a
// decision for some fault.
func GenerateCombTestPatterns(aig *network.Network, seed uint64, withRedundantFaults bool) ([][]bool, error) {
	if !aig.IsComb() {
		panic("atpg: GenerateCombTestPatterns requires a combinational network")
	}
	faults := sim.AllFaults(aig)
	uniqueFaults := sim.AllUniqueFaults(aig)

	log.WithFields(logFields{
		"inputs":       aig.NbInputs(),
		"outputs":      aig.NbOutputs(),
		"faults":       len(faults),
		"uniqueFaults": len(uniqueFaults),
	}).Info("analyzing network for test pattern generation")

	used := uniqueFaults
	if withRedundantFaults {
		used = faults
	}

	gen := NewTestPatternGenerator(aig, used, seed)
	if err := gen.DetectFaults(); err != nil {
		return nil, err
	}
	gen.Check()
	gen.CompressPatterns()
	gen.Check()

	log.WithFields(logFields{
		"patterns":  gen.NbPatterns(),
		"detected":  gen.NbDetected(),
		"faults":    gen.NbFaults(),
		"coverage%": coveragePct(gen.NbDetected(), gen.NbFaults()),
	}).Info("kept final pattern set")
	return gen.patterns, nil
}

// ReportCombTestPatterns evaluates an externally supplied pattern set
// against aig's fault model and logs the coverage obtained. aig must
// be combinational.
func ReportCombTestPatterns(aig *network.Network, patterns [][]bool, withRedundantFaults bool) {
	if !aig.IsComb() {
		panic("atpg: ReportCombTestPatterns requires a combinational network")
	}
	faults := sim.AllFaults(aig)
	uniqueFaults := sim.AllUniqueFaults(aig)

	log.WithFields(logFields{
		"inputs":       aig.NbInputs(),
		"outputs":      aig.NbOutputs(),
		"faults":       len(faults),
		"uniqueFaults": len(uniqueFaults),
	}).Info("analyzing network for test pattern report")

	used := uniqueFaults
	if withRedundantFaults {
		used = faults
	}

	gen := NewTestPatternGenerator(aig, used, 0)
	for _, pattern := range patterns {
		gen.AddSinglePattern(pattern, false)
	}

	log.WithFields(logFields{
		"patterns":  gen.NbPatterns(),
		"detected":  gen.NbDetected(),
		"faults":    gen.NbFaults(),
		"coverage%": coveragePct(gen.NbDetected(), gen.NbFaults()),
	}).Info("test pattern report done")
}
