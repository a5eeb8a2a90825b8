package main

import (
	"github.com/spf13/cobra"

	"github.com/aignet/aignet/internal/config"
	"github.com/aignet/aignet/internal/netio"
	"github.com/aignet/aignet/pkg/optim"
)

func newOptimizeCmd() *cobra.Command {
	var output string
	var effort uint64
	var seed uint64

	cmd := &cobra.Command{
		Use:   "optimize FILE",
		Short: "Shuffle, clean up and structurally optimize a logic network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			defaults, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("effort") {
				effort = defaults.EffortOr(effort)
			}
			seedSet := cmd.Flags().Changed("seed")
			if !seedSet && defaults.Seed != nil {
				seed = *defaults.Seed
				seedSet = true
			}

			aig, err := netio.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}
			if seedSet {
				aig.Shuffle(seed)
			}
			aig.Cleanup()
			aig.MakeCanonical()
			aig = optim.ShareLogic(aig, 64)
			for i := uint64(0); i < effort; i++ {
				aig = optim.InferXorMux(aig)
				aig = optim.MergeRedundantDff(aig)
				aig = optim.ShareLogic(aig, 64)
			}
			return netio.WriteNetworkFile(output, aig)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for the optimized network")
	cmd.Flags().Uint64Var(&effort, "effort", 1, "number of optimization rounds")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for randomized passes (shuffle)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
