package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aignet/aignet/internal/netio"
	"github.com/aignet/aignet/pkg/atpg"
	"github.com/aignet/aignet/pkg/pattern"
	"github.com/aignet/aignet/pkg/sim"
)

func newSimulateCmd() *cobra.Command {
	var input, output string
	var exposeFF bool

	cmd := &cobra.Command{
		Use:   "simulate NETWORK",
		Short: "Simulate a logic network over a pattern file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aig, err := netio.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}
			if exposeFF {
				aig = atpg.ExposeDff(aig)
			}

			inFile, err := os.Open(input)
			if err != nil {
				return err
			}
			defer inFile.Close()
			patterns, err := pattern.ReadPatternFile(inFile)
			if err != nil {
				return err
			}

			outputs := make([]pattern.Pattern, len(patterns))
			for i, p := range patterns {
				outputs[i] = sim.Simulate(aig, p)
			}

			outFile, err := os.Create(output)
			if err != nil {
				return err
			}
			defer outFile.Close()
			return pattern.WritePatternFile(outFile, outputs)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input patterns file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for output patterns")
	cmd.Flags().BoolVar(&exposeFF, "expose-ff", false, "expose flip-flops as primary inputs")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
