// Package http provides the round-tripper chain used by the music service client:
// OAuth header injection, User-Agent header injection and request/response debug logging.
package http
