// Package report generates a self-contained HTML report with charts from
// recorded runs.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// ReportData contains everything the HTML template renders.
type ReportData struct {
	Name        string
	GeneratedAt string
	Overall     telemetry.Metrics
	ByPattern   map[telemetry.Pattern]telemetry.Metrics

	// RecordsJSON feeds the Chart.js panels.
	RecordsJSON template.JS
}

// chartRecord is the per-record shape exported to the charts.
type chartRecord struct {
	Sequence  int     `json:"sequence"`
	Pattern   string  `json:"pattern"`
	Timestamp string  `json:"timestamp"`
	LatencyMs float64 `json:"latencyMs"`
	Status    string  `json:"status"`
	Success   bool    `json:"success"`
	Remaining *int64  `json:"remaining"`
}

// GenerateHTML renders the report and writes it to a file.
func GenerateHTML(name string, runs []*telemetry.RunResult, outputPath string) error {
	html, err := GenerateHTMLString(name, runs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}

// GenerateHTMLString renders the report and returns it as a string.
func GenerateHTMLString(name string, runs []*telemetry.RunResult) (string, error) {
	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	recordsJSON, err := convertRecordsJSON(runs)
	if err != nil {
		return "", fmt.Errorf("failed to convert records: %w", err)
	}

	data := ReportData{
		Name:        name,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Overall:     telemetry.Aggregate(runs...),
		ByPattern:   telemetry.Compare(runs...),
		RecordsJSON: template.JS(recordsJSON),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func convertRecordsJSON(runs []*telemetry.RunResult) (string, error) {
	records := make([]chartRecord, 0)
	for _, run := range runs {
		for _, rec := range run.Records() {
			status := "transport-failure"
			if rec.StatusCode > 0 {
				status = fmt.Sprintf("%d", rec.StatusCode)
			}
			records = append(records, chartRecord{
				Sequence:  len(records),
				Pattern:   string(rec.Pattern),
				Timestamp: rec.Timestamp.Format(time.RFC3339),
				LatencyMs: float64(rec.Latency) / float64(time.Millisecond),
				Status:    status,
				Success:   rec.Success,
				Remaining: rec.RateLimitRemaining,
			})
		}
	}

	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"millis": func(d time.Duration) string {
			return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
		},
		"percent": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v*100)
		},
	}
}
