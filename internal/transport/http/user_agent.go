package http

import "net/http"

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// UserAgentInjector is a custom http.RoundTripper that sets a fixed User-Agent on requests without one.
// The storage hosts behind pre-signed links reject requests with Go's default agent.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgent is sent when the request has no User-Agent of its own.
	userAgent string
}

// NewUserAgentInjector creates a UserAgentInjector. An empty userAgent falls back to DefaultUserAgent.
func NewUserAgentInjector(next http.RoundTripper, userAgent string) http.RoundTripper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &UserAgentInjector{
		next:      next,
		userAgent: userAgent,
	}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(userAgentHeader) != "" {
		return t.next.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	withUserAgent := req.Clone(req.Context())
	withUserAgent.Header.Set(userAgentHeader, t.userAgent)

	return t.next.RoundTrip(withUserAgent)
}
