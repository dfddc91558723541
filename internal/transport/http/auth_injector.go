package http

import (
	"net/http"
)

const (
	// authorizationHeader is the HTTP header name carrying the session token.
	authorizationHeader = "Authorization"
	// oauthScheme is the authorization scheme expected by the music service API.
	oauthScheme = "OAuth "
)

// AuthInjector is a custom http.RoundTripper that adds the session's OAuth token to every request.
// It is only installed on the API client; pre-signed download links are fetched without it.
type AuthInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// token is the OAuth token of the session.
	token string
}

// NewAuthInjector creates an AuthInjector sending token with every request.
func NewAuthInjector(next http.RoundTripper, token string) http.RoundTripper {
	return &AuthInjector{
		next:  next,
		token: token,
	}
}

// RoundTrip executes a single HTTP transaction, adding the Authorization header when it is missing.
// It implements the http.RoundTripper interface.
func (t *AuthInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if t.token == "" || req.Header.Get(authorizationHeader) != "" {
		return t.next.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authorized := req.Clone(req.Context())
	authorized.Header.Set(authorizationHeader, oauthScheme+t.token)

	return t.next.RoundTrip(authorized)
}
