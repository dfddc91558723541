package ymusic

//go:generate $MOCKGEN -source=downloader.go -destination=mocks/downloader_mock.go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/constants"
	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// Downloader retrieves the media behind a track reference.
// Every operation builds a fresh link first; errors from that step are always returned.
// Transfer failures are returned as *TransferError, or logged and turned into
// an empty result when transfer errors are suppressed by configuration.
type Downloader interface {
	// OpenStreamAsync starts opening the media stream of a track.
	OpenStreamAsync(ctx context.Context, ref TrackReference, codec string) *Future[io.ReadCloser]
	// OpenStream opens the media stream of a track. The caller must close it.
	OpenStream(ctx context.Context, ref TrackReference, codec string) (io.ReadCloser, error)
	// DownloadToFileAsync starts downloading a track into destinationPath.
	DownloadToFileAsync(ctx context.Context, ref TrackReference, codec, destinationPath string) *Future[*FileDownload]
	// DownloadToFile downloads a track into destinationPath.
	DownloadToFile(ctx context.Context, ref TrackReference, codec, destinationPath string) (*FileDownload, error)
	// DownloadToBufferAsync starts downloading a track into memory.
	DownloadToBufferAsync(ctx context.Context, ref TrackReference, codec string) *Future[[]byte]
	// DownloadToBuffer downloads a track into memory.
	DownloadToBuffer(ctx context.Context, ref TrackReference, codec string) ([]byte, error)
}

// FileDownload describes a completed file download.
type FileDownload struct {
	// Path is the destination file.
	Path string
	// BytesWritten is the size of the file.
	BytesWritten int64
	// Link is the signed link the file was downloaded from.
	Link *DownloadLink
}

// DownloaderImpl implements the Downloader interface.
type DownloaderImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client opens media streams.
	client ymusic.Client
	// linkBuilder builds signed links.
	linkBuilder LinkBuilder
}

const (
	// partFileOptions creates a fresh temporary file, failing if it exists.
	partFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY
	// throttleInterval is the period the download speed limit is measured over.
	throttleInterval = time.Second
	// maxBufferPreallocation caps the capacity reserved up front for in-memory downloads.
	maxBufferPreallocation = 32 << 20
)

// NewDownloader creates and returns a new instance of DownloaderImpl.
func NewDownloader(cfg *config.Config, client ymusic.Client, linkBuilder LinkBuilder) Downloader {
	return &DownloaderImpl{
		cfg:         cfg,
		client:      client,
		linkBuilder: linkBuilder,
	}
}

// OpenStreamAsync starts opening the media stream of a track.
// A caller that stops waiting on the future must still drain it with Done and Result
// and close the stream; OpenStream does this itself.
func (d *DownloaderImpl) OpenStreamAsync(ctx context.Context, ref TrackReference, codec string) *Future[io.ReadCloser] {
	return runAsync(ctx, func(ctx context.Context) (io.ReadCloser, error) {
		link, err := d.linkBuilder.BuildLink(ctx, ref, codec)
		if err != nil {
			return nil, err
		}

		result, err := d.client.FetchTrack(ctx, link.URL)
		if err != nil {
			return nil, d.transferFailed(ctx, &TransferError{Op: "open stream", URL: link.URL, Err: err})
		}

		// Nobody is left to close the stream once the caller stopped waiting.
		if ctx.Err() != nil {
			result.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

			return nil, ctx.Err()
		}

		return result.Body, nil
	})
}

// OpenStream opens the media stream of a track. The caller must close it.
// A nil stream with a nil error means the transfer failed and was suppressed.
func (d *DownloaderImpl) OpenStream(ctx context.Context, ref TrackReference, codec string) (io.ReadCloser, error) {
	return d.OpenStreamAsync(ctx, ref, codec).waitOrRelease(ctx, closeStream)
}

// DownloadToFileAsync starts downloading a track into destinationPath.
func (d *DownloaderImpl) DownloadToFileAsync(
	ctx context.Context,
	ref TrackReference,
	codec string,
	destinationPath string,
) *Future[*FileDownload] {
	return runAsync(ctx, func(ctx context.Context) (*FileDownload, error) {
		link, err := d.linkBuilder.BuildLink(ctx, ref, codec)
		if err != nil {
			return nil, err
		}

		bytesWritten, transferErr := d.saveToFile(ctx, link, destinationPath)
		if transferErr != nil {
			return nil, d.transferFailed(ctx, transferErr)
		}

		return &FileDownload{
			Path:         destinationPath,
			BytesWritten: bytesWritten,
			Link:         link,
		}, nil
	})
}

// DownloadToFile downloads a track into destinationPath, replacing an existing file.
// The media is written to a temporary file that is renamed into place only after
// the whole stream was received; on failure no file is left behind.
// A nil result with a nil error means the transfer failed and was suppressed.
func (d *DownloaderImpl) DownloadToFile(
	ctx context.Context,
	ref TrackReference,
	codec string,
	destinationPath string,
) (*FileDownload, error) {
	return d.DownloadToFileAsync(ctx, ref, codec, destinationPath).Wait(ctx)
}

// DownloadToBufferAsync starts downloading a track into memory.
func (d *DownloaderImpl) DownloadToBufferAsync(ctx context.Context, ref TrackReference, codec string) *Future[[]byte] {
	return runAsync(ctx, func(ctx context.Context) ([]byte, error) {
		link, err := d.linkBuilder.BuildLink(ctx, ref, codec)
		if err != nil {
			return nil, err
		}

		data, transferErr := d.readToBuffer(ctx, link)
		if transferErr != nil {
			return nil, d.transferFailed(ctx, transferErr)
		}

		return data, nil
	})
}

// DownloadToBuffer downloads a track into memory.
// A nil buffer with a nil error means the transfer failed and was suppressed.
func (d *DownloaderImpl) DownloadToBuffer(ctx context.Context, ref TrackReference, codec string) ([]byte, error) {
	return d.DownloadToBufferAsync(ctx, ref, codec).Wait(ctx)
}

// transferFailed applies the configured transfer error policy.
// Cancellation is never suppressed.
func (d *DownloaderImpl) transferFailed(ctx context.Context, err *TransferError) error {
	if !d.cfg.SuppressTransferErrors || isCanceled(err) {
		return err
	}

	logger.Errorf(ctx, "Transfer failed: %v", err)

	return nil
}

func (d *DownloaderImpl) readToBuffer(ctx context.Context, link *DownloadLink) ([]byte, *TransferError) {
	fetchResult, err := d.client.FetchTrack(ctx, link.URL)
	if err != nil {
		return nil, &TransferError{Op: "open stream", URL: link.URL, Err: err}
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// Content-Length comes from the server, it only hints the initial capacity.
	var buffer bytes.Buffer
	if fetchResult.TotalBytes > 0 {
		buffer.Grow(int(min(fetchResult.TotalBytes, maxBufferPreallocation)))
	}

	bytesWritten, err := d.copyStream(ctx, &buffer, fetchResult.Body)
	if err != nil {
		return nil, &TransferError{Op: "read stream", URL: link.URL, Err: err}
	}

	if err = verifySize(bytesWritten, fetchResult.TotalBytes); err != nil {
		return nil, &TransferError{Op: "read stream", URL: link.URL, Err: err}
	}

	return buffer.Bytes(), nil
}

//nolint:funlen // Keeps the temporary file lifecycle in one place.
func (d *DownloaderImpl) saveToFile(
	ctx context.Context,
	link *DownloadLink,
	destinationPath string,
) (int64, *TransferError) {
	transferErr := func(op string, err error) *TransferError {
		return &TransferError{Op: op, URL: link.URL, Err: err}
	}

	destinationPath = filepath.Clean(destinationPath)

	if err := os.MkdirAll(filepath.Dir(destinationPath), constants.DefaultFolderPermissions); err != nil {
		return 0, transferErr("create folder", err)
	}

	fetchResult, err := d.client.FetchTrack(ctx, link.URL)
	if err != nil {
		return 0, transferErr("open stream", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempFilePath := destinationPath + "." + uuid.NewString() + constants.ExtensionPart

	f, err := os.OpenFile(tempFilePath, partFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, transferErr("create file", err)
	}

	var (
		downloadSucceeded bool
		isFileClosed      bool
	)

	defer func() {
		if !isFileClosed {
			f.Close() //nolint:errcheck,gosec // The file is being discarded.
		}

		if downloadSucceeded {
			return
		}

		if removeErr := os.Remove(tempFilePath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempFilePath, removeErr)
		}
	}()

	// Progress bars are disabled for concurrent downloads to keep the terminal readable.
	var writer io.Writer = f
	if d.isProgressShown() {
		writer = io.MultiWriter(f, progressbar.DefaultBytes(fetchResult.TotalBytes, "Downloading"))
	}

	bytesWritten, err := d.copyStream(ctx, writer, fetchResult.Body)
	if err != nil {
		return 0, transferErr("write file", err)
	}

	if err = verifySize(bytesWritten, fetchResult.TotalBytes); err != nil {
		return 0, transferErr("write file", err)
	}

	isFileClosed = true
	if err = f.Close(); err != nil {
		return 0, transferErr("write file", err)
	}

	if err = os.Rename(tempFilePath, destinationPath); err != nil {
		return 0, transferErr("rename file", err)
	}

	downloadSucceeded = true

	return bytesWritten, nil
}

func (d *DownloaderImpl) isProgressShown() bool {
	return d.cfg.ShowProgress && logger.Level() <= zap.InfoLevel && d.cfg.MaxConcurrentDownloads <= 1
}

// copyStream copies src to dst honouring the configured download speed limit.
func (d *DownloaderImpl) copyStream(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	limit := d.cfg.ParsedDownloadSpeedLimit
	if limit <= 0 {
		return io.Copy(dst, src)
	}

	var bytesWritten int64

	for {
		n, err := io.CopyN(dst, src, limit)
		bytesWritten += n

		if errors.Is(err, io.EOF) {
			return bytesWritten, nil
		}

		if err != nil {
			return bytesWritten, err
		}

		select {
		case <-ctx.Done():
			return bytesWritten, ctx.Err()
		case <-time.After(throttleInterval):
		}
	}
}

// closeStream closes a stream nobody is going to read.
func closeStream(stream io.ReadCloser) {
	if stream != nil {
		stream.Close() //nolint:errcheck,gosec // Error on close is not critical here.
	}
}

// verifySize checks the received size against Content-Length, when it is known.
func verifySize(bytesWritten, totalBytes int64) error {
	if totalBytes < 0 || bytesWritten == totalBytes {
		return nil
	}

	return fmt.Errorf("%w: got %d bytes, expected %d bytes", ErrIncompleteDownload, bytesWritten, totalBytes)
}
