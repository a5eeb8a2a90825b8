package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aignet/aignet/internal/netio"
	"github.com/aignet/aignet/pkg/network"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print statistics about a logic network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aig, err := netio.ReadNetworkFile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(network.ComputeStats(aig))
			return nil
		},
	}
}
