// Package cli is the startlabx command line: the API server plus the
// maintenance commands that share its configuration and storage wiring.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "startlabx",
	Short: "STARTLABX equity and cap table service",
	Long: `STARTLABX manages equity offers between startups and professionals,
the cap table each accepted offer feeds, and the vesting, dilution and exit
calculators built on top of it. Configuration is read from the environment
(and a .env file when present).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExpireOffersCmd())
	rootCmd.AddCommand(newTokenCmd())
}

// Execute runs the root command; with no subcommand it serves the API.
func Execute() {
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
