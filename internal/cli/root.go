// Package cli implements the cobra commands of todoctl, the operator tool
// shipped next to the API server image.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
)

// verbose switches logging to debug level for every subcommand.
var verbose bool

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoctl",
		Short: "Operator tooling for the ephemeral TODO list service",
		Long: `todoctl gates the API on memcached readiness and validates the
Compose and Kubernetes descriptors that run it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newWaitCacheCommand())
	rootCmd.AddCommand(newCheckManifestsCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
