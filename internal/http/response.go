package http

import (
	"net/http"
	"strconv"
	"time"
)

// Response headers the GitHub API reports its rate-limit state in.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// Response represents a completed HTTP response. The body is fully read
// and buffered by the client before the Response is returned.
type Response struct {
	StatusCode   int
	Status       string
	Headers      http.Header
	ResponseTime time.Duration
	Timing       TimingInfo

	body []byte
}

// Body returns the buffered response body.
func (r *Response) Body() []byte {
	return r.body
}

// BodyString returns the buffered response body as a string.
func (r *Response) BodyString() string {
	return string(r.body)
}

// GetHeader returns the value of the specified header.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess returns true if the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// GetResponseTimeMillis returns the total response time in milliseconds.
func (r *Response) GetResponseTimeMillis() int64 {
	return r.ResponseTime.Milliseconds()
}

// RateLimit carries the parsed X-RateLimit-* headers. Each field is nil
// when its header was absent or unparseable; zero is a real value (an
// exhausted budget) and is never used to mean "missing".
type RateLimit struct {
	Limit     *int64
	Remaining *int64
	Reset     *time.Time
}

// RateLimit parses the rate-limit headers of the response.
func (r *Response) RateLimit() RateLimit {
	var rl RateLimit

	if v := r.GetHeader(HeaderRateLimitLimit); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			rl.Limit = &n
		}
	}
	if v := r.GetHeader(HeaderRateLimitRemaining); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			rl.Remaining = &n
		}
	}
	if v := r.GetHeader(HeaderRateLimitReset); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.Unix(sec, 0).UTC()
			rl.Reset = &t
		}
	}

	return rl
}
