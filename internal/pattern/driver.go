package pattern

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/http"
	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// DefaultEndpoint is the cheap, always-available endpoint probed when no
// other endpoint is configured.
const DefaultEndpoint = "/users/octocat"

// Driver issues one request per tick of a schedule and records a telemetry
// record per request. A driver owns no shared state; each Run accumulates
// into its own result, so distinct drivers may run in parallel.
type Driver struct {
	client   *http.Client
	endpoint string
	sleep    func(time.Duration)
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithEndpoint sets the path probed on every request.
func WithEndpoint(endpoint string) DriverOption {
	return func(d *Driver) {
		d.endpoint = endpoint
	}
}

// WithSleep replaces the inter-request sleep. Tests use this to run
// schedules without real waiting.
func WithSleep(sleep func(time.Duration)) DriverOption {
	return func(d *Driver) {
		d.sleep = sleep
	}
}

// NewDriver creates a driver issuing requests through the given client.
func NewDriver(client *http.Client, options ...DriverOption) *Driver {
	d := &Driver{
		client:   client,
		endpoint: DefaultEndpoint,
		sleep:    time.Sleep,
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// Run executes one pattern run and returns its result.
//
// The run always proceeds through all Count scheduled requests regardless
// of individual failures: a transport error or an error status (401, 403,
// 429, ...) is absorbed into that request's record and the run continues.
// Only configuration validation can fail before any I/O happens.
//
// Cancellation is checked at request boundaries only, never mid-request.
// A cancelled run returns the valid partial result accumulated so far
// together with the context's error.
func (d *Driver) Run(ctx context.Context, cfg Config) (*telemetry.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schedule := cfg.Schedule()
	records := make([]telemetry.Record, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return telemetry.NewRunResult(cfg.RunConfig(), records), err
		}

		if wait := schedule.Wait(i); wait > 0 {
			d.sleep(wait)
			// Still a request boundary: a cancellation that arrived during
			// the wait must not issue one more request.
			if err := ctx.Err(); err != nil {
				return telemetry.NewRunResult(cfg.RunConfig(), records), err
			}
		}

		records = append(records, d.issue(ctx, schedule.Pattern(), i))
	}

	return telemetry.NewRunResult(cfg.RunConfig(), records), nil
}

// RunBurst issues count requests back-to-back.
func (d *Driver) RunBurst(ctx context.Context, count int) (*telemetry.RunResult, error) {
	return d.Run(ctx, Burst(count))
}

// RunSustained issues count requests spaced by interval.
func (d *Driver) RunSustained(ctx context.Context, count int, interval time.Duration) (*telemetry.RunResult, error) {
	return d.Run(ctx, Sustained(count, interval))
}

// RunDelayed issues count requests with linearly increasing delays.
func (d *Driver) RunDelayed(ctx context.Context, count int, initial, increment time.Duration) (*telemetry.RunResult, error) {
	return d.Run(ctx, Delayed(count, initial, increment))
}

// issue performs one request and converts the outcome into a record.
// Exactly one attempt; retry behavior is what runs measure, not a feature
// of the driver.
func (d *Driver) issue(ctx context.Context, p telemetry.Pattern, seq int) telemetry.Record {
	rec := telemetry.Record{
		Sequence:  seq,
		Pattern:   p,
		Timestamp: time.Now(),
	}

	resp, err := d.client.Do(ctx, http.NewGet(d.endpoint))
	if err != nil {
		// Transport failure: no status code, latency up to the failure.
		rec.Latency = time.Since(rec.Timestamp)
		rec.Error = err.Error()
		return rec
	}

	rec.Latency = resp.ResponseTime
	rec.StatusCode = resp.StatusCode
	rec.Success = resp.StatusCode == nethttp.StatusOK

	rl := resp.RateLimit()
	rec.RateLimitLimit = rl.Limit
	rec.RateLimitRemaining = rl.Remaining
	rec.RateLimitReset = rl.Reset

	return rec
}
