package http

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"
)

// DefaultTimeout is applied when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client with a fixed base URL and a set of headers
// applied to every request it issues.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL for the client.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout for the client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithToken attaches a GitHub personal access token to every request,
// using the "token" authorization scheme the GitHub v3 API expects.
// The token is treated as opaque.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.headers["Authorization"] = "token " + token
	}
}

// BaseURL returns the client's configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes a request and returns the response with timing information.
//
// The returned error is transport-level only (connection failure, timeout,
// context cancellation); any HTTP status, including 4xx and 5xx, yields a
// non-nil Response and a nil error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := req.Build(c.baseURL)
	if err != nil {
		return nil, err
	}

	for key, value := range c.headers {
		// Per-request headers win over client defaults.
		if httpReq.Header.Get(key) == "" {
			httpReq.Header.Set(key, value)
		}
	}

	timing := TimingInfo{StartTime: time.Now()}
	httpReq = httpReq.WithContext(httptrace.WithClientTrace(ctx, newTimingTrace(&timing)))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	body, _ := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	timing.TotalTime = time.Since(timing.StartTime)

	return &Response{
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		Headers:      httpResp.Header,
		body:         body,
		ResponseTime: timing.TotalTime,
		Timing:       timing,
	}, nil
}

// TimingInfo breaks down where time was spent during a request.
type TimingInfo struct {
	StartTime        time.Time
	DNSLookupTime    time.Duration
	TCPConnectTime   time.Duration
	TLSHandshakeTime time.Duration
	TimeToFirstByte  time.Duration
	TotalTime        time.Duration
}

// newTimingTrace builds an httptrace hooked up to fill in the given timing.
// Reused connections skip the DNS/connect/TLS phases; those durations stay 0.
func newTimingTrace(timing *TimingInfo) *httptrace.ClientTrace {
	var dnsStart, connectStart, tlsStart time.Time

	return &httptrace.ClientTrace{
		DNSStart: func(httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(httptrace.DNSDoneInfo) {
			timing.DNSLookupTime = time.Since(dnsStart)
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				timing.TCPConnectTime = time.Since(connectStart)
			}
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil {
				timing.TLSHandshakeTime = time.Since(tlsStart)
			}
		},
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(timing.StartTime)
		},
	}
}
