package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/0reilly/github-api-rate-limit-tester/internal/pattern"
)

var burstCmd = &cobra.Command{
	Use:   "burst",
	Short: "Issue requests back-to-back with no delay",
	Long: `Issue a number of requests in quick succession with no inter-request
delay, to observe how the API responds to a burst of traffic.

Example:
  ghapitest burst --count 10 --csv results.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		runSession(cmd, "burst pattern test", []pattern.Config{pattern.Burst(count)})
	},
}

var sustainedCmd = &cobra.Command{
	Use:   "sustained",
	Short: "Issue requests at a fixed interval",
	Long: `Issue requests at regular intervals, modeling steady sustained
traffic.

Example:
  ghapitest sustained --count 20 --interval 500ms`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		interval, _ := cmd.Flags().GetDuration("interval")
		runSession(cmd, "sustained pattern test", []pattern.Config{pattern.Sustained(count, interval)})
	},
}

var delayedCmd = &cobra.Command{
	Use:   "delayed",
	Short: "Issue requests with linearly increasing delays",
	Long: `Issue requests with a delay that grows linearly per request,
modeling a client backing off.

Example:
  ghapitest delayed --count 15 --initial-delay 1s --delay-increment 500ms`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		initial, _ := cmd.Flags().GetDuration("initial-delay")
		increment, _ := cmd.Flags().GetDuration("delay-increment")
		runSession(cmd, "delayed pattern test", []pattern.Config{pattern.Delayed(count, initial, increment)})
	},
}

// runSession is the shared entry point of the single-pattern commands.
func runSession(cmd *cobra.Command, name string, configs []pattern.Config) {
	sess, err := newSession(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := interruptibleContext()
	defer cancel()

	if err := sess.execute(ctx, name, configs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	burstCmd.Flags().Int("count", 10, "number of requests to issue")
	addOutputFlags(burstCmd)

	sustainedCmd.Flags().Int("count", 20, "number of requests to issue")
	sustainedCmd.Flags().Duration("interval", 500*time.Millisecond, "delay between requests")
	addOutputFlags(sustainedCmd)

	delayedCmd.Flags().Int("count", 15, "number of requests to issue")
	delayedCmd.Flags().Duration("initial-delay", time.Second, "delay before the first request")
	delayedCmd.Flags().Duration("delay-increment", 500*time.Millisecond, "how much the delay grows per request")
	addOutputFlags(delayedCmd)
}
