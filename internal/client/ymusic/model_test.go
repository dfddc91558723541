package ymusic

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "with album",
			track: Track{ID: "123", Albums: []Album{{ID: "456"}, {ID: "789"}}},
			want:  "123:456",
		},
		{
			name:  "without album",
			track: Track{ID: "123"},
			want:  "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.track.Key())
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "number", input: `12345`, want: "12345"},
		{name: "numeric string", input: `"12345"`, want: "12345"},
		{name: "upload id", input: `"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`, want: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"},
		{name: "null", input: `null`, want: ""},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "object", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var id ID

			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, string(tt.want), id.String())
		})
	}
}

func TestTrack_Decode(t *testing.T) {
	t.Parallel()

	var track Track

	err := json.Unmarshal([]byte(`{
		"id": 5,
		"title": "Song",
		"version": "Live",
		"artists": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}],
		"albums": [{"id": 7, "title": "LP", "year": 2020, "trackPosition": {"volume": 1, "index": 3}}],
		"coverUri": "avatars.yandex.net/get-music-content/1/2/%%"
	}`), &track)
	require.NoError(t, err)

	assert.Equal(t, "5:7", track.Key())
	assert.Equal(t, "A, B", track.ArtistNames())
	assert.Equal(t, "Song (Live)", track.FullTitle())
	assert.Equal(t, "https://avatars.yandex.net/get-music-content/1/2/400x400", track.CoverURL("400x400"))
	require.NotNil(t, track.Albums[0].TrackPosition)
	assert.Equal(t, 3, track.Albums[0].TrackPosition.Index)
}

func TestTrack_CoverURLEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&Track{}).CoverURL("400x400"))
}

func TestStorageDescriptor_DecodeXML(t *testing.T) {
	t.Parallel()

	var descriptor StorageDescriptor

	err := xml.Unmarshal([]byte(
		`<download-info><host>s1.storage</host><path>/rmusic/U2/abc</path>`+
			`<ts>0005e1</ts><region>-1</region><s>f00d</s></download-info>`), &descriptor)
	require.NoError(t, err)

	assert.Equal(t, "s1.storage", descriptor.Host)
	assert.Equal(t, "/rmusic/U2/abc", descriptor.Path)
	assert.Equal(t, "0005e1", descriptor.TS)
	assert.Equal(t, "f00d", descriptor.Salt)
}

func TestRequestError(t *testing.T) {
	t.Parallel()

	err := &RequestError{Op: "get download info", URL: "https://api/x", StatusCode: 404, Err: ErrUnexpectedHTTPStatus}
	assert.Equal(t, "get download info https://api/x: status 404: unexpected HTTP status", err.Error())
	assert.ErrorIs(t, err, ErrUnexpectedHTTPStatus)

	err = &RequestError{Op: "get storage descriptor", URL: "https://s/i", Err: assert.AnError}
	assert.Equal(t, "get storage descriptor https://s/i: "+assert.AnError.Error(), err.Error())
}
