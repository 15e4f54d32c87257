package pattern

import (
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// Config describes one pattern run. Interval applies to sustained runs;
// InitialDelay and DelayIncrement to delayed runs.
type Config struct {
	Pattern        telemetry.Pattern `json:"pattern" yaml:"pattern"`
	Count          int               `json:"count" yaml:"count"`
	Interval       time.Duration     `json:"interval,omitempty" yaml:"interval,omitempty"`
	InitialDelay   time.Duration     `json:"initialDelay,omitempty" yaml:"initialDelay,omitempty"`
	DelayIncrement time.Duration     `json:"delayIncrement,omitempty" yaml:"delayIncrement,omitempty"`
}

// Burst configures a run of count back-to-back requests.
func Burst(count int) Config {
	return Config{Pattern: telemetry.PatternBurst, Count: count}
}

// Sustained configures a run of count requests spaced by interval.
func Sustained(count int, interval time.Duration) Config {
	return Config{Pattern: telemetry.PatternSustained, Count: count, Interval: interval}
}

// Delayed configures a run of count requests with linearly increasing
// delays, starting at initial and growing by increment per request.
func Delayed(count int, initial, increment time.Duration) Config {
	return Config{
		Pattern:        telemetry.PatternDelayed,
		Count:          count,
		InitialDelay:   initial,
		DelayIncrement: increment,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error on field '" + e.Field + "': " + e.Message
}

// Validate checks the configuration before any request is issued.
// Invalid configurations fail fast; they are never discovered mid-run.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return &ValidationError{Field: "count", Message: "count must be >= 1"}
	}

	switch c.Pattern {
	case telemetry.PatternBurst:
		// no timing parameters

	case telemetry.PatternSustained:
		if c.Interval < 0 {
			return &ValidationError{Field: "interval", Message: "interval must be >= 0"}
		}

	case telemetry.PatternDelayed:
		if c.InitialDelay < 0 {
			return &ValidationError{Field: "initialDelay", Message: "initialDelay must be >= 0"}
		}
		if c.DelayIncrement < 0 {
			return &ValidationError{Field: "delayIncrement", Message: "delayIncrement must be >= 0"}
		}

	default:
		return &ValidationError{Field: "pattern", Message: "unknown pattern: " + string(c.Pattern)}
	}

	return nil
}

// Schedule builds the timing strategy for this configuration.
// The configuration must have passed Validate.
func (c *Config) Schedule() Schedule {
	switch c.Pattern {
	case telemetry.PatternSustained:
		return sustainedSchedule{interval: c.Interval}
	case telemetry.PatternDelayed:
		return delayedSchedule{initial: c.InitialDelay, increment: c.DelayIncrement}
	default:
		return burstSchedule{}
	}
}

// RunConfig converts the configuration into the value recorded on results.
func (c *Config) RunConfig() telemetry.RunConfig {
	return telemetry.RunConfig{
		Pattern:        c.Pattern,
		Count:          c.Count,
		Interval:       c.Interval,
		InitialDelay:   c.InitialDelay,
		DelayIncrement: c.DelayIncrement,
	}
}
