package ymusic

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrAPIError indicates that the API answered with an error envelope.
	ErrAPIError = errors.New("api error")
	// ErrEmptyResult indicates that the API answered without a result.
	ErrEmptyResult = errors.New("empty result")
	// ErrInvalidStorageDescriptor indicates that a storage descriptor lacks a required field.
	ErrInvalidStorageDescriptor = errors.New("invalid storage descriptor")
)

// RequestError describes a failed API request: a transport error, an unexpected status
// or an undecodable response. It is always returned to the caller.
type RequestError struct {
	// Op is the operation that failed, e.g. "get download info".
	Op string
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status code, 0 when no response was received.
	StatusCode int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}
