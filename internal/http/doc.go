// Package http provides the HTTP client used to probe the GitHub API.
//
// The client wraps net/http with per-request wall-clock timing, a
// connection-phase breakdown via httptrace, and parsing of the
// X-RateLimit-* response headers into explicitly optional values.
package http
