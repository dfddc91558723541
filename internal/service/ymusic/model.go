package ymusic

import (
	"fmt"
	"time"
)

// SkipReason represents why a track was skipped.
type SkipReason uint8

const (
	// SkipReasonExists - track file already exists.
	SkipReasonExists SkipReason = iota
	// SkipReasonUnavailable - the catalogue marks the track as unavailable.
	SkipReasonUnavailable
)

// String returns a human-readable representation of the SkipReason.
func (sr SkipReason) String() string {
	switch sr {
	case SkipReasonExists:
		return "already exists"
	case SkipReasonUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("unknown reason: %d", sr)
	}
}

// DownloadStatistics tracks statistics for a download session.
type DownloadStatistics struct {
	// StartTime is when the download session started.
	StartTime time.Time
	// EndTime is when the download session ended.
	EndTime time.Time
	// TotalTracksProcessed is the number of tracks that were handled in any way.
	TotalTracksProcessed int64
	// TracksDownloaded is the number of tracks saved to disk.
	TracksDownloaded int64
	// TracksSkipped is the number of skipped tracks.
	TracksSkipped int64
	// TracksSkippedExists is the number of tracks skipped because the file exists.
	TracksSkippedExists int64
	// TracksSkippedUnavailable is the number of tracks skipped as unavailable.
	TracksSkippedUnavailable int64
	// TracksFailed is the number of tracks that failed.
	TracksFailed int64
	// TotalBytesDownloaded is the number of media bytes written.
	TotalBytesDownloaded int64
	// TagsWritten is the number of files tagged.
	TagsWritten int64
	// Errors contains details of every failure.
	Errors []DownloadError
}

// DownloadError represents a single error that occurred during download.
type DownloadError struct {
	// TrackKey is the key of the track that failed.
	TrackKey string
	// TrackTitle is the human-readable title of the track, if known.
	TrackTitle string
	// Phase indicates when the error occurred (e.g., "fetching metadata", "downloading track").
	Phase string
	// ErrorMessage is the error message.
	ErrorMessage string
}
