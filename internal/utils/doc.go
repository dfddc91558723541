// Package utils holds small helpers shared by the service and the HTTP transport:
// track file naming, reference list reading, URL path matching and content type checks.
package utils
