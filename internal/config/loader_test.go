package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

const validPlanYAML = `
name: "Rate limit probe"
settings:
  baseUrl: https://api.github.com
  endpoint: /users/octocat
  timeout: 10s
patterns:
  - pattern: burst
    count: 10
  - pattern: sustained
    count: 20
    interval: 500ms
  - pattern: delayed
    count: 15
    initialDelay: 1s
    delayIncrement: 500ms
`

func TestParsePlan_Valid(t *testing.T) {
	plan, err := ParsePlan([]byte(validPlanYAML))
	if err != nil {
		t.Fatalf("ParsePlan returned error: %v", err)
	}

	if plan.Name != "Rate limit probe" {
		t.Errorf("Name = %q", plan.Name)
	}
	if plan.Settings.Timeout != Duration(10*time.Second) {
		t.Errorf("Timeout = %v, want 10s", plan.Settings.Timeout)
	}
	if len(plan.Patterns) != 3 {
		t.Fatalf("len(Patterns) = %d, want 3", len(plan.Patterns))
	}

	sustained := plan.Patterns[1].Config()
	if sustained.Pattern != telemetry.PatternSustained {
		t.Errorf("Pattern = %s, want sustained", sustained.Pattern)
	}
	if sustained.Interval != 500*time.Millisecond {
		t.Errorf("Interval = %v, want 500ms", sustained.Interval)
	}

	delayed := plan.Patterns[2].Config()
	if delayed.InitialDelay != time.Second || delayed.DelayIncrement != 500*time.Millisecond {
		t.Errorf("delayed config = %+v", delayed)
	}

	// User agent was not given and must default.
	if plan.Settings.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", plan.Settings.UserAgent)
	}
}

func TestParsePlan_DefaultsApplied(t *testing.T) {
	plan, err := ParsePlan([]byte("patterns:\n  - pattern: burst\n    count: 1\n"))
	if err != nil {
		t.Fatalf("ParsePlan returned error: %v", err)
	}

	if plan.Settings.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", plan.Settings.BaseURL, DefaultBaseURL)
	}
	if plan.Settings.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %q, want %q", plan.Settings.Endpoint, DefaultEndpoint)
	}
	if plan.Settings.Timeout != Duration(DefaultTimeout) {
		t.Errorf("Timeout = %v, want %v", plan.Settings.Timeout, DefaultTimeout)
	}
}

func TestParsePlan_SchemaRejectsUnknownPattern(t *testing.T) {
	_, err := ParsePlan([]byte("patterns:\n  - pattern: chaotic\n    count: 1\n"))
	if err == nil {
		t.Fatal("expected schema error for unknown pattern")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error = %v, want schema violation", err)
	}
}

func TestParsePlan_SchemaRejectsMissingCount(t *testing.T) {
	_, err := ParsePlan([]byte("patterns:\n  - pattern: burst\n"))
	if err == nil {
		t.Fatal("expected schema error for missing count")
	}
}

func TestParsePlan_SchemaRejectsEmptyPatterns(t *testing.T) {
	_, err := ParsePlan([]byte("patterns: []\n"))
	if err == nil {
		t.Fatal("expected schema error for empty patterns")
	}
}

func TestParsePlan_SchemaRejectsUnknownField(t *testing.T) {
	_, err := ParsePlan([]byte("patterns:\n  - pattern: burst\n    count: 1\n    retries: 3\n"))
	if err == nil {
		t.Fatal("expected schema error for unknown field")
	}
}

func TestParsePlan_InvalidYAML(t *testing.T) {
	_, err := ParsePlan([]byte("patterns: [\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParsePlan_BadDuration(t *testing.T) {
	_, err := ParsePlan([]byte("patterns:\n  - pattern: sustained\n    count: 3\n    interval: half-a-second\n"))
	if err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestLoadPlan_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(path, []byte(validPlanYAML), 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan returned error: %v", err)
	}
	if len(plan.Patterns) != 3 {
		t.Errorf("len(Patterns) = %d, want 3", len(plan.Patterns))
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultPlan_IsValid(t *testing.T) {
	plan := DefaultPlan()
	if err := plan.Validate(); err != nil {
		t.Errorf("DefaultPlan().Validate() = %v", err)
	}
	if len(plan.Patterns) != 3 {
		t.Errorf("len(Patterns) = %d, want 3", len(plan.Patterns))
	}
}
