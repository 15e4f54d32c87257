package http

import (
	"net/http"
	"testing"
	"time"
)

func TestResponse_RateLimit(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderRateLimitLimit, "5000")
	headers.Set(HeaderRateLimitRemaining, "4999")
	headers.Set(HeaderRateLimitReset, "1709294400")

	resp := &Response{StatusCode: 200, Headers: headers}
	rl := resp.RateLimit()

	if rl.Limit == nil || *rl.Limit != 5000 {
		t.Errorf("Limit = %v, want 5000", rl.Limit)
	}
	if rl.Remaining == nil || *rl.Remaining != 4999 {
		t.Errorf("Remaining = %v, want 4999", rl.Remaining)
	}
	if rl.Reset == nil || !rl.Reset.Equal(time.Unix(1709294400, 0)) {
		t.Errorf("Reset = %v, want %v", rl.Reset, time.Unix(1709294400, 0).UTC())
	}
}

func TestResponse_RateLimit_AbsentHeaders(t *testing.T) {
	resp := &Response{StatusCode: 200, Headers: http.Header{}}
	rl := resp.RateLimit()

	if rl.Limit != nil || rl.Remaining != nil || rl.Reset != nil {
		t.Errorf("RateLimit() = %+v, want all nil when headers are absent", rl)
	}
}

func TestResponse_RateLimit_ZeroRemaining(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderRateLimitRemaining, "0")

	rl := (&Response{Headers: headers}).RateLimit()

	if rl.Remaining == nil || *rl.Remaining != 0 {
		t.Errorf("Remaining = %v, want explicit 0", rl.Remaining)
	}
	if rl.Limit != nil {
		t.Errorf("Limit = %v, want nil", rl.Limit)
	}
}

func TestResponse_RateLimit_Unparseable(t *testing.T) {
	headers := http.Header{}
	headers.Set(HeaderRateLimitRemaining, "N/A")

	rl := (&Response{Headers: headers}).RateLimit()

	if rl.Remaining != nil {
		t.Errorf("Remaining = %v, want nil for unparseable header", rl.Remaining)
	}
}

func TestRequest_Build(t *testing.T) {
	req := NewGet("/users/octocat").WithQueryParam("per_page", "1")

	httpReq, err := req.Build("https://api.github.com")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	want := "https://api.github.com/users/octocat?per_page=1"
	if httpReq.URL.String() != want {
		t.Errorf("URL = %s, want %s", httpReq.URL.String(), want)
	}
}

func TestRequest_Build_JoinsPaths(t *testing.T) {
	req := NewGet("/rate_limit")

	httpReq, err := req.Build("https://api.github.com/")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if httpReq.URL.Path != "/rate_limit" {
		t.Errorf("Path = %s, want /rate_limit", httpReq.URL.Path)
	}
}
