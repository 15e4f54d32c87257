package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/0reilly/github-api-rate-limit-tester/internal/http"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the current rate-limit quota without spending budget",
	Long: `Query the /rate_limit endpoint, which does not count against the
core quota, and print the current limit, remaining budget, and reset time.

Example:
  ghapitest check`,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		client := http.NewClient(
			http.WithBaseURL(sess.settings.BaseURL),
			http.WithTimeout(time.Duration(sess.settings.Timeout)),
			http.WithToken(sess.token),
			http.WithHeader("Accept", "application/vnd.github.v3+json"),
			http.WithHeader("User-Agent", sess.settings.UserAgent),
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(sess.settings.Timeout))
		defer cancel()

		resp, err := client.Do(ctx, http.NewGet("/rate_limit"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !resp.IsSuccess() {
			fmt.Fprintf(os.Stderr, "Error: %s\n", describeFailure(resp))
			os.Exit(1)
		}

		quota := parseCoreQuota(resp.BodyString())
		fmt.Printf("Core rate limit: %d\n", quota.Limit)
		fmt.Printf("Used:            %d\n", quota.Used)
		fmt.Printf("Remaining:       %d\n", quota.Remaining)
		fmt.Printf("Resets at:       %s\n", quota.Reset.Format(time.RFC1123))
	},
}

// coreQuota is the core section of the /rate_limit response.
type coreQuota struct {
	Limit     int64
	Used      int64
	Remaining int64
	Reset     time.Time
}

// parseCoreQuota extracts the core quota from a /rate_limit response body.
func parseCoreQuota(body string) coreQuota {
	core := gjson.Get(body, "resources.core")
	return coreQuota{
		Limit:     core.Get("limit").Int(),
		Used:      core.Get("used").Int(),
		Remaining: core.Get("remaining").Int(),
		Reset:     time.Unix(core.Get("reset").Int(), 0),
	}
}

// describeFailure summarizes an error response, preferring the API's own
// message field when the body is JSON.
func describeFailure(resp *http.Response) string {
	if msg := gjson.Get(resp.BodyString(), "message"); msg.Exists() {
		return fmt.Sprintf("%s: %s", resp.Status, msg.String())
	}
	return resp.Status
}
