package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "ghapitest",
	Short:   "Test GitHub API rate limits with different request patterns",
	Version: version,
	Long: `ghapitest drives timed request sequences (burst, sustained, delayed)
against the GitHub API, records per-request telemetry including the
X-RateLimit-* headers, and reports latency and rate-limit consumption.

A personal access token is read from the GITHUB_TOKEN environment variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	RootCmd.PersistentFlags().String("base-url", "", "API base URL (default https://api.github.com)")
	RootCmd.PersistentFlags().String("endpoint", "", "endpoint path to probe (default /users/octocat)")
	RootCmd.PersistentFlags().Duration("timeout", 0, "per-request timeout (default 30s)")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	RootCmd.AddCommand(burstCmd)
	RootCmd.AddCommand(sustainedCmd)
	RootCmd.AddCommand(delayedCmd)
	RootCmd.AddCommand(planCmd)
	RootCmd.AddCommand(checkCmd)
}
