package ymusic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/constants"
)

func TestParseTrackReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantKey string
		wantErr bool
	}{
		{name: "raw key", input: "123:456", wantKey: "123:456"},
		{name: "raw track id", input: "123", wantKey: "123"},
		{name: "raw key with spaces", input: "  123:456 ", wantKey: "123:456"},
		{name: "album track url", input: "https://music.yandex.ru/album/456/track/123", wantKey: "123:456"},
		{name: "album track url with query", input: "https://music.yandex.com/album/456/track/123?utm=x", wantKey: "123:456"},
		{name: "track url", input: "https://music.yandex.by/track/123", wantKey: "123"},
		{name: "track url with slash", input: "https://music.yandex.kz/track/123/", wantKey: "123"},
		{name: "foreign host", input: "https://example.com/album/456/track/123", wantErr: true},
		{name: "album url", input: "https://music.yandex.ru/album/456", wantErr: true},
		{name: "malformed key", input: "123:abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := ParseTrackReference(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTrackReference)
				assert.True(t, ref.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, ref.Key())
			assert.Nil(t, ref.Track())
		})
	}
}

func TestNewTrackReference(t *testing.T) {
	t.Parallel()

	ref, err := NewTrackReference("10:20")
	require.NoError(t, err)
	assert.Equal(t, "10:20", ref.Key())
	assert.Equal(t, "10", ref.TrackID())
	assert.Equal(t, "10:20", ref.String())

	_, err = NewTrackReference("https://music.yandex.ru/track/10")
	require.ErrorIs(t, err, ErrInvalidTrackReference)
}

func TestTrackReferenceFromTrack(t *testing.T) {
	t.Parallel()

	track := &ymusic.Track{ID: "10", Albums: []ymusic.Album{{ID: "20"}}}

	ref, err := TrackReferenceFromTrack(track)
	require.NoError(t, err)
	assert.Equal(t, "10:20", ref.Key())
	assert.Same(t, track, ref.Track())

	_, err = TrackReferenceFromTrack(nil)
	require.ErrorIs(t, err, ErrInvalidTrackReference)

	_, err = TrackReferenceFromTrack(&ymusic.Track{})
	require.ErrorIs(t, err, ErrInvalidTrackReference)
}

func TestTrackReference_WithTrack(t *testing.T) {
	t.Parallel()

	ref, err := NewTrackReference("10")
	require.NoError(t, err)

	track := &ymusic.Track{ID: "10", Albums: []ymusic.Album{{ID: "20"}}}
	withTrack := ref.WithTrack(track)

	assert.Nil(t, ref.Track())
	assert.Same(t, track, withTrack.Track())
	assert.Equal(t, "10", withTrack.Key())
}

func TestReferenceResolver_ResolveReferences(t *testing.T) {
	t.Parallel()

	listPath := filepath.Join(t.TempDir(), "tracks.txt")
	content := "https://music.yandex.ru/album/2/track/1\n\n3:4\nnot a track\n1:2\n"
	require.NoError(t, os.WriteFile(listPath, []byte(content), constants.DefaultFilePermissions))

	resolver := NewReferenceResolver()

	refs, err := resolver.ResolveReferences(context.Background(), []string{
		"5:6",
		listPath,
		"5:6",
		listPath,
		"https://music.yandex.ru/track/7",
	})
	require.NoError(t, err)

	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, ref.Key())
	}

	assert.Equal(t, []string{"5:6", "1:2", "3:4", "7"}, keys)
}

func TestReferenceResolver_MissingList(t *testing.T) {
	t.Parallel()

	resolver := NewReferenceResolver()

	_, err := resolver.ResolveReferences(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
}
