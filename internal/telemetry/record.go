package telemetry

import (
	"time"
)

// Pattern names the timing strategy that produced a record.
type Pattern string

const (
	// PatternBurst issues requests back-to-back with no delay.
	PatternBurst Pattern = "burst"

	// PatternSustained issues requests at a fixed interval.
	PatternSustained Pattern = "sustained"

	// PatternDelayed issues requests with a linearly increasing delay.
	PatternDelayed Pattern = "delayed"
)

// Record captures the outcome of a single issued request.
//
// Exactly one of StatusCode and Error is populated: a request that reached
// the server (at any status, including 429 and auth errors) carries a status
// code and no error; a transport-level failure carries an error and no
// status code.
type Record struct {
	// Sequence is the 0-indexed position of the request within its run.
	// Strictly increasing within a run.
	Sequence int `json:"sequence"`

	// Pattern is the timing strategy that scheduled this request.
	Pattern Pattern `json:"pattern"`

	// Timestamp is when the request was issued.
	Timestamp time.Time `json:"timestamp"`

	// Latency is the wall-clock time from issue to completion (or to the
	// point of transport failure).
	Latency time.Duration `json:"latency"`

	// StatusCode is the HTTP status, or 0 when the request never completed.
	StatusCode int `json:"statusCode,omitempty"`

	// Success is true when the server answered 200.
	Success bool `json:"success"`

	// Rate-limit headers are optional: nil means the header was absent,
	// which is distinct from a real remaining budget of zero.
	RateLimitRemaining *int64     `json:"rateLimitRemaining,omitempty"`
	RateLimitLimit     *int64     `json:"rateLimitLimit,omitempty"`
	RateLimitReset     *time.Time `json:"rateLimitReset,omitempty"`

	// Error describes a transport-level failure. Empty for any request
	// that produced an HTTP response.
	Error string `json:"error,omitempty"`
}

// RunConfig records the pattern parameters a run was driven with.
// Interval applies to sustained runs; InitialDelay and DelayIncrement to
// delayed runs.
type RunConfig struct {
	Pattern        Pattern       `json:"pattern"`
	Count          int           `json:"count"`
	Interval       time.Duration `json:"interval,omitempty"`
	InitialDelay   time.Duration `json:"initialDelay,omitempty"`
	DelayIncrement time.Duration `json:"delayIncrement,omitempty"`
}

// RunResult is the outcome of one driver invocation: the configuration the
// run was driven with plus its records in issuance order. Results are
// immutable after construction; both the constructor and the accessor copy
// the record slice so no caller can mutate a result through aliasing.
type RunResult struct {
	config  RunConfig
	records []Record
}

// NewRunResult builds an immutable result from the given records.
func NewRunResult(config RunConfig, records []Record) *RunResult {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &RunResult{config: config, records: copied}
}

// Config returns the pattern configuration the run was driven with.
func (r *RunResult) Config() RunConfig {
	return r.config
}

// Records returns the run's records in issuance order.
func (r *RunResult) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records in the run.
func (r *RunResult) Len() int {
	return len(r.records)
}
