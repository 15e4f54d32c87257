package http

import (
	"net/http"
	"net/url"
	"strings"
)

// Request describes an HTTP request before it is bound to a base URL.
// The tester only issues bodyless requests, so there is no body support.
type Request struct {
	Method      string
	Path        string
	QueryParams url.Values
	Headers     map[string]string
}

// NewRequest creates a new request for the given method and path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:      method,
		Path:        path,
		QueryParams: make(url.Values),
		Headers:     make(map[string]string),
	}
}

// NewGet creates a new GET request for the given path.
func NewGet(path string) *Request {
	return NewRequest(http.MethodGet, path)
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// WithQueryParam adds a query parameter to the request.
func (r *Request) WithQueryParam(key, value string) *Request {
	r.QueryParams.Add(key, value)
	return r
}

// Build constructs an http.Request against the given base URL.
func (r *Request) Build(baseURL string) (*http.Request, error) {
	reqURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	if reqURL.Path == "" {
		reqURL.Path = r.Path
	} else {
		reqURL.Path = strings.TrimRight(reqURL.Path, "/") + "/" + strings.TrimLeft(r.Path, "/")
	}

	query := reqURL.Query()
	for key, values := range r.QueryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequest(r.Method, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}

	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
