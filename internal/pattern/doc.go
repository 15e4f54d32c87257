// Package pattern drives timed request sequences against a rate-limited
// endpoint.
//
// A Schedule decides how long to wait before each request (burst: never,
// sustained: a constant interval, delayed: linearly increasing backoff); the
// Driver runs one schedule to completion, single-threaded and one request
// at a time, recording a telemetry record per request. Individual request
// failures never abort a run — observing failure behavior is the point.
package pattern
