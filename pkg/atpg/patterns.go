package atpg

import "github.com/aignet/aignet/internal/prng"

// GenerateRandomSeqPatterns produces nbPatterns independent sequences of
// nbTimesteps random input vectors, each of length nbInputs, driven by a
// deterministic seed.
func GenerateRandomSeqPatterns(nbInputs, nbTimesteps, nbPatterns int, seed uint64) [][][]bool {
	rng := prng.New(seed)
	ret := make([][][]bool, nbPatterns)
	for p := 0; p < nbPatterns; p++ {
		steps := make([][]bool, nbTimesteps)
		for t := 0; t < nbTimesteps; t++ {
			step := make([]bool, nbInputs)
			for i := 0; i < nbInputs; i++ {
				step[i] = rng.Uint64()&1 != 0
			}
			steps[t] = step
		}
		ret[p] = steps
	}
	return ret
}

// GenerateRandomCombPatterns is GenerateRandomSeqPatterns specialized to
// a single timestep.
func GenerateRandomCombPatterns(nbInputs, nbPatterns int, seed uint64) [][]bool {
	seq := GenerateRandomSeqPatterns(nbInputs, 1, nbPatterns, seed)
	ret := make([][]bool, len(seq))
	for i, p := range seq {
		ret[i] = p[0]
	}
	return ret
}
