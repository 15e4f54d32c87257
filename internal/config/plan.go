// Package config provides parsing and validation of YAML test plans.
package config

import (
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/pattern"
	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// Plan is the root configuration for a test session: global settings plus
// the ordered list of pattern runs to drive.
//
// Example YAML:
//
//	name: "Rate limit probe"
//	settings:
//	  baseUrl: https://api.github.com
//	  endpoint: /users/octocat
//	  timeout: 30s
//	patterns:
//	  - pattern: burst
//	    count: 10
//	  - pattern: sustained
//	    count: 20
//	    interval: 500ms
type Plan struct {
	// Name of the test session (for reporting).
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Settings contains global HTTP settings for all runs.
	Settings Settings `json:"settings,omitempty" yaml:"settings,omitempty"`

	// Patterns are the runs to execute, in order.
	Patterns []PatternSpec `json:"patterns" yaml:"patterns"`
}

// Settings contains global HTTP settings.
type Settings struct {
	// BaseURL of the API under test. Defaults to the public GitHub API.
	BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`

	// Endpoint is the path probed on each request.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Timeout is the per-request timeout.
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// UserAgent sent on every request.
	UserAgent string `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
}

// PatternSpec describes one pattern run in a plan.
type PatternSpec struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Count   int    `json:"count" yaml:"count"`

	// Interval between requests (sustained).
	Interval Duration `json:"interval,omitempty" yaml:"interval,omitempty"`

	// InitialDelay and DelayIncrement (delayed).
	InitialDelay   Duration `json:"initialDelay,omitempty" yaml:"initialDelay,omitempty"`
	DelayIncrement Duration `json:"delayIncrement,omitempty" yaml:"delayIncrement,omitempty"`
}

// Config converts the spec into a driver configuration.
func (s PatternSpec) Config() pattern.Config {
	return pattern.Config{
		Pattern:        telemetry.Pattern(s.Pattern),
		Count:          s.Count,
		Interval:       time.Duration(s.Interval),
		InitialDelay:   time.Duration(s.InitialDelay),
		DelayIncrement: time.Duration(s.DelayIncrement),
	}
}

// Defaults for plan settings.
const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultEndpoint  = "/users/octocat"
	DefaultUserAgent = "GitHub-API-Tester/1.0"
	DefaultTimeout   = 30 * time.Second
)

// DefaultPlan mirrors the tester's stock session: a burst of 10, a
// sustained run of 20 at half-second intervals, and a delayed run of 15
// starting at one second and backing off by half a second per request.
func DefaultPlan() *Plan {
	return &Plan{
		Name: "GitHub API rate limit test",
		Settings: Settings{
			BaseURL:   DefaultBaseURL,
			Endpoint:  DefaultEndpoint,
			Timeout:   Duration(DefaultTimeout),
			UserAgent: DefaultUserAgent,
		},
		Patterns: []PatternSpec{
			{Pattern: string(telemetry.PatternBurst), Count: 10},
			{Pattern: string(telemetry.PatternSustained), Count: 20, Interval: Duration(500 * time.Millisecond)},
			{Pattern: string(telemetry.PatternDelayed), Count: 15, InitialDelay: Duration(time.Second), DelayIncrement: Duration(500 * time.Millisecond)},
		},
	}
}

// applyDefaults fills in unset settings.
func (p *Plan) applyDefaults() {
	if p.Settings.BaseURL == "" {
		p.Settings.BaseURL = DefaultBaseURL
	}
	if p.Settings.Endpoint == "" {
		p.Settings.Endpoint = DefaultEndpoint
	}
	if p.Settings.Timeout == 0 {
		p.Settings.Timeout = Duration(DefaultTimeout)
	}
	if p.Settings.UserAgent == "" {
		p.Settings.UserAgent = DefaultUserAgent
	}
}

// Duration is a time.Duration that unmarshals from JSON/YAML strings like
// "30s" or "500ms".
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
