package ymusic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/config"
)

func newStatisticsService(t *testing.T) *ServiceImpl {
	t.Helper()

	impl, ok := NewService(new(config.Config), nil, nil, nil, nil, nil, nil).(*ServiceImpl)
	require.True(t, ok, "Service should be of type *ServiceImpl")

	return impl
}

func TestDownloadStatistics_InitialState(t *testing.T) {
	t.Parallel()

	impl := newStatisticsService(t)

	require.NotNil(t, impl.stats, "Statistics should be initialized")
	assert.Equal(t, int64(0), impl.stats.TotalTracksProcessed)
	assert.Equal(t, int64(0), impl.stats.TracksDownloaded)
	assert.Equal(t, int64(0), impl.stats.TracksSkipped)
	assert.Equal(t, int64(0), impl.stats.TracksFailed)
}

func TestDownloadStatistics_MixedResults(t *testing.T) {
	t.Parallel()

	impl := newStatisticsService(t)

	impl.incrementTrackDownloaded(1024)
	impl.incrementTrackDownloaded(2048)
	impl.incrementTrackSkipped(SkipReasonExists)
	impl.incrementTrackSkipped(SkipReasonUnavailable)
	impl.incrementTrackSkipped(SkipReasonUnavailable)
	impl.incrementTrackFailed()
	impl.incrementTagsWritten()

	assert.Equal(t, int64(6), impl.stats.TotalTracksProcessed)
	assert.Equal(t, int64(2), impl.stats.TracksDownloaded)
	assert.Equal(t, int64(3072), impl.stats.TotalBytesDownloaded)
	assert.Equal(t, int64(3), impl.stats.TracksSkipped)
	assert.Equal(t, int64(1), impl.stats.TracksSkippedExists)
	assert.Equal(t, int64(2), impl.stats.TracksSkippedUnavailable)
	assert.Equal(t, int64(1), impl.stats.TracksFailed)
	assert.Equal(t, int64(1), impl.stats.TagsWritten)
}

func TestDownloadStatistics_RecordError(t *testing.T) {
	t.Parallel()

	impl := newStatisticsService(t)

	ref := mustReference(t, testTrackKey).WithTrack(&ymusic.Track{Title: "Song", Version: "Live"})

	impl.recordError(ref, "downloading track", errors.New("boom"))
	impl.recordError(ref, "downloading track", context.Canceled)
	impl.recordError(ref, "downloading track", nil)

	require.Len(t, impl.stats.Errors, 1)
	assert.Equal(t, DownloadError{
		TrackKey:     testTrackKey,
		TrackTitle:   "Song (Live)",
		Phase:        "downloading track",
		ErrorMessage: "boom",
	}, impl.stats.Errors[0])
}

func TestPrintDownloadSummary(t *testing.T) {
	t.Parallel()

	impl := newStatisticsService(t)

	impl.stats.StartTime = time.Now().Add(-2 * time.Second)
	impl.stats.EndTime = time.Now()
	impl.incrementTrackDownloaded(4096)
	impl.recordError(mustReference(t, "7"), "building link", ErrEncodingNotFound)
	impl.incrementTrackFailed()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() {
		impl.PrintDownloadSummary(context.Background())
		impl.PrintDownloadSummary(ctx)
	})
}

func TestRetryCommand(t *testing.T) {
	t.Parallel()

	assert.Empty(t, retryCommand(nil))
	assert.Equal(t, "ymusic-grabber 1:2 3", retryCommand([]DownloadError{
		{TrackKey: "1:2"},
		{TrackKey: ""},
		{TrackKey: "3"},
		{TrackKey: "1:2"},
	}))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration time.Duration
		expected string
	}{
		{500 * time.Millisecond, "500ms"},
		{45 * time.Second, "45s"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatDuration(tt.duration))
	}
}
