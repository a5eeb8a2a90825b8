package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aignet/aignet/internal/netio"
	"github.com/aignet/aignet/pkg/aigerr"
	"github.com/aignet/aignet/pkg/equiv"
)

func newCheckEquivalenceCmd() *cobra.Command {
	var numCycles int
	var satOnly bool

	cmd := &cobra.Command{
		Use:     "check-equivalence FILE1 FILE2",
		Aliases: []string{"equiv"},
		Short:   "Check whether two logic networks are equivalent",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aig1, err := netio.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}
			aig2, err := netio.ReadNetworkFile(args[1])
			if err != nil {
				return err
			}

			if aig1.NbInputs() != aig2.NbInputs() {
				fmt.Printf("Different number of inputs: %d vs %d. Networks are not equivalent\n", aig1.NbInputs(), aig2.NbInputs())
				os.Exit(1)
			}
			if aig1.NbOutputs() != aig2.NbOutputs() {
				fmt.Printf("Different number of outputs: %d vs %d. Networks are not equivalent\n", aig1.NbOutputs(), aig2.NbOutputs())
				os.Exit(1)
			}

			err = equiv.CheckEquivalenceBounded(aig1, aig2, numCycles, !satOnly)
			isComb := aig1.IsComb() && aig2.IsComb()

			var failure *aigerr.EquivalenceFailure
			if err != nil {
				if e, ok := err.(*aigerr.EquivalenceFailure); ok {
					failure = e
				} else {
					return err
				}
			}

			if failure != nil {
				fmt.Println("Networks are not equivalent")
				fmt.Println("Test pattern:")
				for i, step := range failure.Vectors {
					fmt.Printf("%d: ", i+1)
					for _, b := range step {
						if b {
							fmt.Print("0")
						} else {
							fmt.Print("1")
						}
					}
					fmt.Println()
				}
				os.Exit(1)
			}

			if isComb {
				fmt.Println("Networks are equivalent")
			} else {
				fmt.Printf("Networks are equivalent up to %d cycles\n", numCycles)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numCycles, "num-cycles", "c", 1, "number of clock cycles considered")
	cmd.Flags().BoolVar(&satOnly, "sat-only", false, "use only the SAT solver, skipping internal optimizations")

	return cmd
}
