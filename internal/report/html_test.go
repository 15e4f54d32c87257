package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

func sampleRuns() []*telemetry.RunResult {
	remaining := int64(4999)
	limit := int64(5000)
	return []*telemetry.RunResult{
		telemetry.NewRunResult(
			telemetry.RunConfig{Pattern: telemetry.PatternBurst, Count: 2},
			[]telemetry.Record{
				{
					Sequence: 0, Pattern: telemetry.PatternBurst,
					Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
					Latency:   15 * time.Millisecond, StatusCode: 200, Success: true,
					RateLimitRemaining: &remaining, RateLimitLimit: &limit,
				},
				{
					Sequence: 1, Pattern: telemetry.PatternBurst,
					Timestamp: time.Date(2024, 3, 1, 12, 0, 1, 0, time.UTC),
					Latency:   80 * time.Millisecond, StatusCode: 429,
				},
			},
		),
	}
}

func TestGenerateHTMLString(t *testing.T) {
	html, err := GenerateHTMLString("Rate limit probe", sampleRuns())
	if err != nil {
		t.Fatalf("GenerateHTMLString returned error: %v", err)
	}

	for _, want := range []string{
		"Rate limit probe",
		"latencyChart",
		"statusChart",
		"successChart",
		"rateLimitChart",
		"chart.js",
		`"latencyMs":15`,
		`"status":"429"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestGenerateHTMLString_EmptyRuns(t *testing.T) {
	html, err := GenerateHTMLString("empty", nil)
	if err != nil {
		t.Fatalf("GenerateHTMLString returned error: %v", err)
	}
	if !strings.Contains(html, "empty") {
		t.Error("HTML missing report name")
	}
	if strings.Contains(html, "NaN") {
		t.Error("HTML leaks NaN for an empty record set")
	}
}

func TestGenerateHTML_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	if err := GenerateHTML("probe", sampleRuns(), path); err != nil {
		t.Fatalf("GenerateHTML returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("file does not look like an HTML document")
	}
}
