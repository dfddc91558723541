package ymusic

import (
	"context"
	"errors"
	"fmt"
)

// Common errors for the service layer.
var (
	// ErrEncodingNotFound indicates that no download info entry matches the requested codec.
	ErrEncodingNotFound = errors.New("encoding not found")
	// ErrInvalidTrackReference indicates that a track reference can not be parsed.
	ErrInvalidTrackReference = errors.New("invalid track reference")
	// ErrIncompleteDownload indicates that the downloaded size doesn't match the expected size.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrTrackNotFound indicates that the requested track was not found.
	ErrTrackNotFound = errors.New("track not found")
	// ErrTransferSuppressed indicates that a transfer failed and the failure was only logged.
	ErrTransferSuppressed = errors.New("transfer failed, see log for details")
	// ErrPanic indicates that an asynchronous operation panicked.
	ErrPanic = errors.New("operation panicked")
)

// TransferError describes a failure that happened after the download link was built:
// opening the media stream, reading it, or writing the destination.
type TransferError struct {
	// Op is the transfer step that failed, e.g. "fetch stream".
	Op string
	// URL is the signed download link.
	URL string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// isCanceled reports whether err is caused by context cancellation or deadline.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
