package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/0reilly/github-api-rate-limit-tester/internal/config"
	"github.com/0reilly/github-api-rate-limit-tester/internal/http"
	"github.com/0reilly/github-api-rate-limit-tester/internal/output"
	"github.com/0reilly/github-api-rate-limit-tester/internal/pattern"
	"github.com/0reilly/github-api-rate-limit-tester/internal/report"
	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// tokenEnvVar names the environment variable the access token is read from.
const tokenEnvVar = "GITHUB_TOKEN"

// session holds everything one invocation needs to drive runs and emit
// results.
type session struct {
	settings  config.Settings
	token     string
	verbose   bool
	noColor   bool
	csvPath   string
	htmlPath  string
	format    output.OutputFormat
	formatter *output.Formatter
}

// newSession resolves flags, the token, and defaults into a session.
func newSession(cmd *cobra.Command) (*session, error) {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		return nil, fmt.Errorf("%s environment variable is required", tokenEnvVar)
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	csvPath, _ := cmd.Flags().GetString("csv")
	htmlPath, _ := cmd.Flags().GetString("html")
	formatName, _ := cmd.Flags().GetString("format")

	if !noColor && !output.IsTerminal() {
		noColor = true
	}

	format := output.FormatText
	if formatName != "" {
		parsed, err := output.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
		format = parsed
	}

	settings := config.Settings{
		BaseURL:  baseURL,
		Endpoint: endpoint,
		Timeout:  config.Duration(timeout),
	}
	applySettingsDefaults(&settings)

	return &session{
		settings:  settings,
		token:     token,
		verbose:   verbose,
		noColor:   noColor,
		csvPath:   csvPath,
		htmlPath:  htmlPath,
		format:    format,
		formatter: output.NewFormatter(verbose, noColor),
	}, nil
}

func applySettingsDefaults(s *config.Settings) {
	if s.BaseURL == "" {
		s.BaseURL = config.DefaultBaseURL
	}
	if s.Endpoint == "" {
		s.Endpoint = config.DefaultEndpoint
	}
	if s.Timeout == 0 {
		s.Timeout = config.Duration(config.DefaultTimeout)
	}
	if s.UserAgent == "" {
		s.UserAgent = config.DefaultUserAgent
	}
}

// driver builds the pattern driver for this session.
func (s *session) driver() *pattern.Driver {
	client := http.NewClient(
		http.WithBaseURL(s.settings.BaseURL),
		http.WithTimeout(time.Duration(s.settings.Timeout)),
		http.WithToken(s.token),
		http.WithHeader("Accept", "application/vnd.github.v3+json"),
		http.WithHeader("User-Agent", s.settings.UserAgent),
	)
	return pattern.NewDriver(client, pattern.WithEndpoint(s.settings.Endpoint))
}

// execute drives the given configs in order and emits all requested
// outputs. A cancelled run still reports whatever was recorded.
func (s *session) execute(ctx context.Context, name string, configs []pattern.Config) error {
	driver := s.driver()
	runs := make([]*telemetry.RunResult, 0, len(configs))

	var runErr error
	for _, cfg := range configs {
		if s.format == output.FormatText {
			fmt.Printf("Testing %s pattern with %d requests...\n", cfg.Pattern, cfg.Count)
		}

		result, err := driver.Run(ctx, cfg)
		if result != nil {
			runs = append(runs, result)
			if s.format == output.FormatText {
				for _, rec := range result.Records() {
					fmt.Println(s.formatter.FormatRecord(rec, cfg.Count))
				}
			}
		}
		if err != nil {
			if _, ok := err.(*pattern.ValidationError); ok {
				return err
			}
			// Interrupted mid-session: keep the partial telemetry, stop
			// driving further runs.
			runErr = err
			break
		}
	}

	if err := s.emit(name, runs); err != nil {
		return err
	}
	return runErr
}

// emit writes the summary plus any CSV/HTML artifacts.
func (s *session) emit(name string, runs []*telemetry.RunResult) error {
	overall := telemetry.Aggregate(runs...)
	byPattern := telemetry.Compare(runs...)

	switch s.format {
	case output.FormatText:
		fmt.Println()
		fmt.Print(s.formatter.FormatSummary("Test Summary", overall))
		if len(byPattern) > 1 {
			fmt.Println()
			fmt.Print(s.formatter.FormatComparison(byPattern))
		}
	default:
		doc := output.MetricsDocument{Name: name, Overall: overall}
		if len(byPattern) > 1 {
			doc.ByPattern = byPattern
		}
		data, err := output.MarshalMetrics(doc, s.format)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	if s.csvPath != "" {
		if err := output.SaveCSV(s.csvPath, runs...); err != nil {
			return err
		}
		if s.format == output.FormatText {
			fmt.Printf("Results saved to %s\n", s.csvPath)
		}
	}

	if s.htmlPath != "" {
		if err := report.GenerateHTML(name, runs, s.htmlPath); err != nil {
			return err
		}
		if s.format == output.FormatText {
			fmt.Printf("Report saved to %s\n", s.htmlPath)
		}
	}

	return nil
}

// addOutputFlags registers the output flags shared by all run commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "write per-request telemetry to a CSV file")
	cmd.Flags().String("html", "", "write an HTML report with charts")
	cmd.Flags().String("format", "text", "summary output format: text, json, or yaml")
}

// interruptibleContext returns a context cancelled on SIGINT/SIGTERM so an
// interrupted session still reports its partial telemetry.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
