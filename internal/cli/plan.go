package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0reilly/github-api-rate-limit-tester/internal/config"
	"github.com/0reilly/github-api-rate-limit-tester/internal/pattern"
)

var planCmd = &cobra.Command{
	Use:   "plan [FILE]",
	Short: "Run a full test plan from a YAML file",
	Long: `Run every pattern of a YAML test plan in order and report combined
and per-pattern metrics. Without a file, the stock plan runs: a burst of
10, a sustained run of 20 at 500ms intervals, and a delayed run of 15
starting at 1s and backing off by 500ms per request.

Example:
  ghapitest plan testplan.yaml --csv results.csv --html report.html`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan := config.DefaultPlan()
		if len(args) == 1 {
			loaded, err := config.LoadPlan(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading plan: %v\n", err)
				os.Exit(1)
			}
			plan = loaded
		}

		sess, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// The plan's settings win unless overridden on the command line.
		if flag := cmd.Flags().Lookup("base-url"); flag == nil || !flag.Changed {
			if plan.Settings.BaseURL != "" {
				sess.settings.BaseURL = plan.Settings.BaseURL
			}
		}
		if flag := cmd.Flags().Lookup("endpoint"); flag == nil || !flag.Changed {
			if plan.Settings.Endpoint != "" {
				sess.settings.Endpoint = plan.Settings.Endpoint
			}
		}
		if flag := cmd.Flags().Lookup("timeout"); flag == nil || !flag.Changed {
			if plan.Settings.Timeout != 0 {
				sess.settings.Timeout = plan.Settings.Timeout
			}
		}
		if plan.Settings.UserAgent != "" {
			sess.settings.UserAgent = plan.Settings.UserAgent
		}

		configs := make([]pattern.Config, 0, len(plan.Patterns))
		for _, spec := range plan.Patterns {
			configs = append(configs, spec.Config())
		}

		ctx, cancel := interruptibleContext()
		defer cancel()

		if err := sess.execute(ctx, plan.Name, configs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addOutputFlags(planCmd)
}
