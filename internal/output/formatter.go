package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// Formatter renders telemetry records and aggregate metrics as text.
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{Verbose: verbose, NoColor: noColor, scheme: scheme}
}

// FormatRecord formats one record as a progress line.
func (f *Formatter) FormatRecord(rec telemetry.Record, total int) string {
	icon := SuccessIcon(f.NoColor)
	detail := fmt.Sprintf("%d", rec.StatusCode)
	if rec.Error != "" {
		icon = ErrorIcon(f.NoColor)
		detail = rec.Error
	} else if !rec.Success {
		icon = ErrorIcon(f.NoColor)
	}

	line := fmt.Sprintf("  %s request %d/%d: %s (%dms)",
		icon, rec.Sequence+1, total, detail, rec.Latency.Milliseconds())

	if f.Verbose && rec.RateLimitRemaining != nil {
		line += fmt.Sprintf(" remaining=%d", *rec.RateLimitRemaining)
	}
	return line
}

// FormatSummary renders the aggregate metrics in the layout of the classic
// text report: request counts, latency statistics, status-code histogram,
// and rate-limit consumption.
func (f *Formatter) FormatSummary(title string, m telemetry.Metrics) string {
	var buf strings.Builder

	f.heading(&buf, title)

	buf.WriteString(fmt.Sprintf("Total Requests:      %d\n", m.Count))
	buf.WriteString(fmt.Sprintf("Successful Requests: %d\n", m.SuccessCount))
	buf.WriteString(fmt.Sprintf("Failed Requests:     %d\n", m.Count-m.SuccessCount))
	buf.WriteString(fmt.Sprintf("Success Rate:        %s\n", f.successRate(m.SuccessRate)))
	buf.WriteString("\n")

	f.heading(&buf, "Performance Metrics")
	if m.Latency == nil {
		buf.WriteString("No latency data recorded.\n")
	} else {
		buf.WriteString(fmt.Sprintf("Average Response Time: %s\n", formatMillis(m.Latency.Mean)))
		buf.WriteString(fmt.Sprintf("Minimum Response Time: %s\n", formatMillis(m.Latency.Min)))
		buf.WriteString(fmt.Sprintf("Maximum Response Time: %s\n", formatMillis(m.Latency.Max)))
		buf.WriteString(fmt.Sprintf("Response Time Std Dev: %s\n", formatMillis(m.Latency.StdDev)))
		if f.Verbose {
			buf.WriteString(fmt.Sprintf("p50/p90/p95/p99:       %s / %s / %s / %s\n",
				formatMillis(m.Latency.P50), formatMillis(m.Latency.P90),
				formatMillis(m.Latency.P95), formatMillis(m.Latency.P99)))
		}
	}
	buf.WriteString("\n")

	f.heading(&buf, "Status Code Distribution")
	codes := make([]int, 0, len(m.StatusCodes))
	for code := range m.StatusCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		buf.WriteString(fmt.Sprintf("Status %s: %d requests\n", f.statusCode(code), m.StatusCodes[code]))
	}
	if m.TransportFailures > 0 {
		buf.WriteString(fmt.Sprintf("Transport failures: %d requests\n", m.TransportFailures))
	}

	if m.FinalRemaining != nil {
		buf.WriteString("\n")
		f.heading(&buf, "Rate Limit Analysis")
		buf.WriteString(fmt.Sprintf("Final Rate Limit Remaining: %d\n", *m.FinalRemaining))
		if m.UsagePercent != nil {
			buf.WriteString(fmt.Sprintf("Rate Limit Usage: %.2f%%\n", *m.UsagePercent))
		}
	}

	return buf.String()
}

// FormatComparison renders per-pattern metrics side by side.
func (f *Formatter) FormatComparison(byPattern map[telemetry.Pattern]telemetry.Metrics) string {
	var buf strings.Builder

	f.heading(&buf, "Pattern Comparison")
	buf.WriteString(fmt.Sprintf("%-12s %10s %14s %14s %14s\n",
		"PATTERN", "REQUESTS", "SUCCESS RATE", "AVG LATENCY", "MAX LATENCY"))

	// Stable order: burst, sustained, delayed, then anything else.
	order := []telemetry.Pattern{telemetry.PatternBurst, telemetry.PatternSustained, telemetry.PatternDelayed}
	seen := make(map[telemetry.Pattern]bool, len(order))
	for _, p := range order {
		seen[p] = true
		if m, ok := byPattern[p]; ok {
			buf.WriteString(f.comparisonRow(p, m))
		}
	}
	extra := make([]telemetry.Pattern, 0)
	for p := range byPattern {
		if !seen[p] {
			extra = append(extra, p)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, p := range extra {
		buf.WriteString(f.comparisonRow(p, byPattern[p]))
	}

	return buf.String()
}

func (f *Formatter) comparisonRow(p telemetry.Pattern, m telemetry.Metrics) string {
	avg, max := "n/a", "n/a"
	if m.Latency != nil {
		avg = formatMillis(m.Latency.Mean)
		max = formatMillis(m.Latency.Max)
	}
	return fmt.Sprintf("%-12s %10d %14s %14s %14s\n",
		string(p), m.Count, fmt.Sprintf("%.2f%%", m.SuccessRate*100), avg, max)
}

func (f *Formatter) heading(buf *strings.Builder, text string) {
	buf.WriteString(f.scheme.Heading.Sprint(text))
	buf.WriteString("\n")
	buf.WriteString(strings.Repeat("-", len(text)))
	buf.WriteString("\n")
}

func (f *Formatter) successRate(rate float64) string {
	text := fmt.Sprintf("%.2f%%", rate*100)
	switch {
	case rate >= 0.99:
		return f.scheme.StatusOK.Sprint(text)
	case rate >= 0.9:
		return f.scheme.StatusWarn.Sprint(text)
	default:
		return f.scheme.StatusError.Sprint(text)
	}
}

func (f *Formatter) statusCode(code int) string {
	text := fmt.Sprintf("%d", code)
	switch {
	case code >= 200 && code < 300:
		return f.scheme.StatusOK.Sprint(text)
	case code >= 300 && code < 400:
		return f.scheme.StatusWarn.Sprint(text)
	default:
		return f.scheme.StatusError.Sprint(text)
	}
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
}
