package output

import (
	"strings"
	"testing"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

func sampleMetrics() telemetry.Metrics {
	remaining := int64(4990)
	usage := 0.2
	return telemetry.Metrics{
		Count:        10,
		SuccessCount: 8,
		SuccessRate:  0.8,
		Latency: &telemetry.LatencyStats{
			Count:  10,
			Min:    10 * time.Millisecond,
			Max:    120 * time.Millisecond,
			Mean:   45 * time.Millisecond,
			StdDev: 12 * time.Millisecond,
		},
		StatusCodes:       map[int]int64{200: 8, 429: 1},
		TransportFailures: 1,
		FinalRemaining:    &remaining,
		UsagePercent:      &usage,
	}
}

func TestFormatter_FormatSummary(t *testing.T) {
	f := NewFormatter(false, true)

	report := f.FormatSummary("Test Summary", sampleMetrics())

	for _, want := range []string{
		"Total Requests:      10",
		"Successful Requests: 8",
		"Failed Requests:     2",
		"80.00%",
		"Average Response Time: 45.00 ms",
		"Status 200: 8 requests",
		"Status 429: 1 requests",
		"Transport failures: 1 requests",
		"Final Rate Limit Remaining: 4990",
		"Rate Limit Usage: 0.20%",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatter_FormatSummary_NoData(t *testing.T) {
	f := NewFormatter(false, true)

	report := f.FormatSummary("Test Summary", telemetry.Metrics{StatusCodes: map[int]int64{}})

	if !strings.Contains(report, "No latency data recorded.") {
		t.Errorf("report missing no-data marker:\n%s", report)
	}
	if strings.Contains(report, "NaN") {
		t.Errorf("report leaks NaN:\n%s", report)
	}
}

func TestFormatter_FormatRecord(t *testing.T) {
	f := NewFormatter(false, true)

	ok := f.FormatRecord(telemetry.Record{Sequence: 0, StatusCode: 200, Success: true, Latency: 12 * time.Millisecond}, 5)
	if !strings.Contains(ok, "request 1/5") || !strings.Contains(ok, "200") {
		t.Errorf("line = %q", ok)
	}

	failed := f.FormatRecord(telemetry.Record{Sequence: 2, Error: "timeout"}, 5)
	if !strings.Contains(failed, "timeout") {
		t.Errorf("line = %q", failed)
	}
}

func TestFormatter_FormatComparison(t *testing.T) {
	f := NewFormatter(false, true)

	byPattern := map[telemetry.Pattern]telemetry.Metrics{
		telemetry.PatternSustained: {Count: 20, SuccessCount: 20, SuccessRate: 1.0},
		telemetry.PatternBurst:     {Count: 10, SuccessCount: 8, SuccessRate: 0.8},
	}

	table := f.FormatComparison(byPattern)

	burstIdx := strings.Index(table, "burst")
	sustainedIdx := strings.Index(table, "sustained")
	if burstIdx == -1 || sustainedIdx == -1 {
		t.Fatalf("table missing patterns:\n%s", table)
	}
	if burstIdx > sustainedIdx {
		t.Errorf("burst should come before sustained:\n%s", table)
	}
	if !strings.Contains(table, "n/a") {
		t.Errorf("table should mark missing latency as n/a:\n%s", table)
	}
}

func TestMarshalMetrics_JSONAndYAML(t *testing.T) {
	doc := MetricsDocument{Name: "probe", Overall: sampleMetrics()}

	jsonOut, err := MarshalMetrics(doc, FormatJSON)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	if !strings.Contains(string(jsonOut), `"successRate": 0.8`) {
		t.Errorf("json output missing success rate:\n%s", jsonOut)
	}

	yamlOut, err := MarshalMetrics(doc, FormatYAML)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	if !strings.Contains(string(yamlOut), "successRate: 0.8") {
		t.Errorf("yaml output missing success rate:\n%s", yamlOut)
	}

	if _, err := MarshalMetrics(doc, FormatText); err == nil {
		t.Error("expected error for text format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) = %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
