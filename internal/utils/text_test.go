//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNamedGroup(t *testing.T) {
	t.Parallel()

	albumTrackPattern := regexp.MustCompile(`^/album/(?<albumID>\d+)/track/(?<trackID>\d+)/?$`)

	tests := []struct {
		name      string
		path      string
		groupName string
		expected  string
	}{
		{name: "track of album", path: "/album/3192570/track/354093", groupName: "trackID", expected: "354093"},
		{name: "album of track", path: "/album/3192570/track/354093/", groupName: "albumID", expected: "3192570"},
		{name: "playlist path", path: "/users/music-blog/playlists/2444", groupName: "trackID", expected: ""},
		{name: "unknown group", path: "/album/3192570/track/354093", groupName: "playlistID", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ExtractNamedGroup(albumTrackPattern, tt.groupName, tt.path))
		})
	}
}

func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		contentType string
		expected    bool
	}{
		{contentType: "application/json; charset=utf-8", expected: true},
		{contentType: "text/xml; charset=utf-8", expected: true},
		{contentType: "application/xml", expected: true},
		{contentType: "text/html; charset=US-ASCII", expected: true},
		{contentType: "application/problem+json", expected: true},
		{contentType: "text/xml; charset=windows-1251", expected: false},
		{contentType: "audio/mpeg", expected: false},
		{contentType: "audio/flac", expected: false},
		{contentType: "application/octet-stream", expected: false},
		{contentType: "", expected: false},
		{contentType: "text/", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}
