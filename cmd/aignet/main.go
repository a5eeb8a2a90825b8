package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aignet",
		Short: "aignet",
		Long:  `A CLI tool to show, optimize, simulate, test and compare logic networks.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "optional YAML file of CLI defaults")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newOptimizeCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newAtpgCmd())
	rootCmd.AddCommand(newCheckEquivalenceCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
