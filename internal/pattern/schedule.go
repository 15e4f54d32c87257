package pattern

import (
	"time"

	"github.com/0reilly/github-api-rate-limit-tester/internal/telemetry"
)

// Schedule defines a timing strategy for a request sequence.
type Schedule interface {
	// Pattern returns the pattern name records are tagged with.
	Pattern() telemetry.Pattern

	// Wait returns the delay observed before issuing request i (0-indexed).
	Wait(i int) time.Duration
}

// burstSchedule issues requests back-to-back.
type burstSchedule struct{}

func (burstSchedule) Pattern() telemetry.Pattern { return telemetry.PatternBurst }
func (burstSchedule) Wait(int) time.Duration     { return 0 }

// sustainedSchedule waits a constant interval between requests. There is
// no wait before the first request.
type sustainedSchedule struct {
	interval time.Duration
}

func (sustainedSchedule) Pattern() telemetry.Pattern { return telemetry.PatternSustained }

func (s sustainedSchedule) Wait(i int) time.Duration {
	if i == 0 {
		return 0
	}
	return s.interval
}

// delayedSchedule waits initial + i*increment before request i, modeling a
// linearly increasing backoff.
type delayedSchedule struct {
	initial   time.Duration
	increment time.Duration
}

func (delayedSchedule) Pattern() telemetry.Pattern { return telemetry.PatternDelayed }

func (s delayedSchedule) Wait(i int) time.Duration {
	return s.initial + time.Duration(i)*s.increment
}
