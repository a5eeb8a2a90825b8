package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aignet/aignet/internal/config"
	"github.com/aignet/aignet/internal/netio"
	"github.com/aignet/aignet/pkg/atpg"
	"github.com/aignet/aignet/pkg/pattern"
)

func newAtpgCmd() *cobra.Command {
	var output string
	var seed uint64
	var numCycles int
	var numRandom int

	cmd := &cobra.Command{
		Use:   "atpg NETWORK",
		Short: "Generate test patterns for a logic network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			defaults, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = defaults.SeedOr(seed)
			}
			if !cmd.Flags().Changed("num-random") && defaults.NumRandom != nil {
				numRandom = *defaults.NumRandom
			}

			aig, err := netio.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}

			cyclesSet := cmd.Flags().Changed("num-cycles")
			randomSet := cmd.Flags().Changed("num-random")

			var patterns []pattern.Pattern
			if !cyclesSet && !randomSet {
				if !aig.IsComb() {
					fmt.Println("Exposing flip-flops for a sequential network")
					aig = atpg.ExposeDff(aig)
				}
				combPatterns, err := atpg.GenerateCombTestPatterns(aig, seed, false)
				if err != nil {
					return err
				}
				patterns = make([]pattern.Pattern, len(combPatterns))
				for i, p := range combPatterns {
					patterns[i] = pattern.Single(p)
				}
			} else {
				fmt.Println("Generating only random patterns for multiple cycles")
				nbTimesteps := numCycles
				if nbTimesteps == 0 {
					nbTimesteps = 1
				}
				nbPatterns := numRandom
				if nbPatterns == 0 {
					nbPatterns = 4 * (int(aig.NbInputs()) + 1)
				}
				seqPatterns := atpg.GenerateRandomSeqPatterns(int(aig.NbInputs()), nbTimesteps, nbPatterns, seed)
				patterns = make([]pattern.Pattern, len(seqPatterns))
				for i, p := range seqPatterns {
					patterns[i] = pattern.Pattern(p)
				}
			}

			outFile, err := os.Create(output)
			if err != nil {
				return err
			}
			defer outFile.Close()
			if err := pattern.WritePatternFile(outFile, patterns); err != nil {
				return err
			}
			log.WithField("patterns", len(patterns)).Info("wrote test patterns")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for test patterns")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for test pattern generation")
	cmd.Flags().IntVarP(&numCycles, "num-cycles", "c", 0, "number of clock cycles for sequential random patterns")
	cmd.Flags().IntVarP(&numRandom, "num-random", "r", 0, "number of random patterns to generate")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
