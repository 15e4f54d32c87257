package telemetry

import (
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// LatencyStats describes the latency distribution over a set of records.
//
// Min, Max, Mean, and StdDev (population) are exact; percentiles come from
// an HDR histogram and are accurate to three significant figures.
type LatencyStats struct {
	Count  int64         `json:"count" yaml:"count"`
	Min    time.Duration `json:"min" yaml:"min"`
	Max    time.Duration `json:"max" yaml:"max"`
	Mean   time.Duration `json:"mean" yaml:"mean"`
	StdDev time.Duration `json:"stdDev" yaml:"stdDev"`
	P50    time.Duration `json:"p50" yaml:"p50"`
	P90    time.Duration `json:"p90" yaml:"p90"`
	P95    time.Duration `json:"p95" yaml:"p95"`
	P99    time.Duration `json:"p99" yaml:"p99"`
}

// RatePoint is one observation of the remaining rate-limit budget.
type RatePoint struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Remaining int64     `json:"remaining" yaml:"remaining"`
}

// Metrics are the aggregate statistics derived from one or more runs.
//
// A nil Latency is the explicit "no data" marker for a record set with no
// latency measurements; it is never a zeroed struct.
type Metrics struct {
	Count        int     `json:"count" yaml:"count"`
	SuccessCount int     `json:"successCount" yaml:"successCount"`
	SuccessRate  float64 `json:"successRate" yaml:"successRate"`

	Latency *LatencyStats `json:"latency,omitempty" yaml:"latency,omitempty"`

	// StatusCodes counts completed requests per HTTP status; requests that
	// never completed are counted separately in TransportFailures.
	StatusCodes       map[int]int64 `json:"statusCodes" yaml:"statusCodes"`
	TransportFailures int64         `json:"transportFailures" yaml:"transportFailures"`

	// RateTrend is the ordered sequence of remaining-budget observations,
	// one per record that carried the remaining header.
	RateTrend []RatePoint `json:"rateTrend,omitempty" yaml:"rateTrend,omitempty"`

	// FinalRemaining is the last observed remaining budget; UsagePercent is
	// how much of the advertised limit the observations span consumed. Both
	// are nil when no rate-limit headers were seen.
	FinalRemaining *int64   `json:"finalRemaining,omitempty" yaml:"finalRemaining,omitempty"`
	UsagePercent   *float64 `json:"usagePercent,omitempty" yaml:"usagePercent,omitempty"`
}

// Aggregate computes Metrics over the records of all given runs, preserving
// each run's record order. It never mutates its inputs, performs no I/O, and
// is idempotent: the same runs always produce identical Metrics.
//
// Edge case: zero records yields SuccessRate 0, a nil Latency, and empty
// histograms, never a NaN or a division by zero.
func Aggregate(runs ...*RunResult) Metrics {
	m := Metrics{StatusCodes: make(map[int]int64)}

	var latencies []time.Duration
	var firstLimit *int64

	for _, run := range runs {
		for _, rec := range run.Records() {
			m.Count++
			if rec.Success {
				m.SuccessCount++
			}

			if rec.StatusCode > 0 {
				m.StatusCodes[rec.StatusCode]++
			} else {
				m.TransportFailures++
			}

			// Transport failures that were timed up to the point of
			// failure still contribute; a record with no measurement
			// (latency 0) is excluded.
			if rec.Latency > 0 {
				latencies = append(latencies, rec.Latency)
			}

			if rec.RateLimitRemaining != nil {
				remaining := *rec.RateLimitRemaining
				m.RateTrend = append(m.RateTrend, RatePoint{
					Timestamp: rec.Timestamp,
					Remaining: remaining,
				})
				m.FinalRemaining = &remaining
			}
			if firstLimit == nil && rec.RateLimitLimit != nil {
				limit := *rec.RateLimitLimit
				firstLimit = &limit
			}
		}
	}

	if m.Count > 0 {
		m.SuccessRate = float64(m.SuccessCount) / float64(m.Count)
	}

	m.Latency = computeLatencyStats(latencies)

	if m.FinalRemaining != nil && firstLimit != nil && *firstLimit > 0 {
		used := 100 - float64(*m.FinalRemaining)/float64(*firstLimit)*100
		m.UsagePercent = &used
	}

	return m
}

// Compare groups the given runs by pattern and aggregates each group,
// answering "which pattern performs best" side by side.
func Compare(runs ...*RunResult) map[Pattern]Metrics {
	grouped := make(map[Pattern][]*RunResult)
	for _, run := range runs {
		p := run.Config().Pattern
		grouped[p] = append(grouped[p], run)
	}

	out := make(map[Pattern]Metrics, len(grouped))
	for p, group := range grouped {
		out[p] = Aggregate(group...)
	}
	return out
}

func computeLatencyStats(latencies []time.Duration) *LatencyStats {
	if len(latencies) == 0 {
		return nil
	}

	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)

	min, max := latencies[0], latencies[0]
	var sum float64
	for _, d := range latencies {
		micros := d.Microseconds()
		if micros < histogramMin {
			micros = histogramMin
		}
		if micros > histogramMax {
			micros = histogramMax
		}
		hist.RecordValue(micros)

		sum += float64(d)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	mean := sum / float64(len(latencies))
	var variance float64
	for _, d := range latencies {
		diff := float64(d) - mean
		variance += diff * diff
	}
	variance /= float64(len(latencies))

	return &LatencyStats{
		Count:  int64(len(latencies)),
		Min:    min,
		Max:    max,
		Mean:   time.Duration(mean),
		StdDev: time.Duration(math.Sqrt(variance)),
		P50:    time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:    time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:    time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:    time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}
