package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// csvHeader lists every record attribute, one column each.
var csvHeader = []string{
	"sequence",
	"pattern",
	"timestamp",
	"latency_ms",
	"status_code",
	"success",
	"rate_limit_remaining",
	"rate_limit_limit",
	"rate_limit_reset",
	"error",
}

// WriteCSV writes one row per record across all runs, in run order.
// Absent optional values are written as empty cells, keeping a real zero
// distinguishable from a missing header.
func WriteCSV(w io.Writer, runs ...*telemetry.RunResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, run := range runs {
		for _, rec := range run.Records() {
			if err := cw.Write(csvRow(rec)); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the records of all runs to a file.
func SaveCSV(path string, runs ...*telemetry.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, runs...)
}

func csvRow(rec telemetry.Record) []string {
	statusCode := ""
	if rec.StatusCode > 0 {
		statusCode = strconv.Itoa(rec.StatusCode)
	}

	remaining, limit, reset := "", "", ""
	if rec.RateLimitRemaining != nil {
		remaining = strconv.FormatInt(*rec.RateLimitRemaining, 10)
	}
	if rec.RateLimitLimit != nil {
		limit = strconv.FormatInt(*rec.RateLimitLimit, 10)
	}
	if rec.RateLimitReset != nil {
		reset = strconv.FormatInt(rec.RateLimitReset.Unix(), 10)
	}

	return []string{
		strconv.Itoa(rec.Sequence),
		string(rec.Pattern),
		rec.Timestamp.Format(time.RFC3339Nano),
		strconv.FormatFloat(float64(rec.Latency)/float64(time.Millisecond), 'f', 3, 64),
		statusCode,
		strconv.FormatBool(rec.Success),
		remaining,
		limit,
		reset,
		rec.Error,
	}
}
