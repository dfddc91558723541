package ymusic

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Response is the JSON envelope every API endpoint answers with.
type Response[T any] struct {
	// InvocationInfo describes the server-side invocation.
	InvocationInfo *InvocationInfo `json:"invocationInfo"`
	// Result holds the payload, nil when the envelope carries none.
	Result *T `json:"result"`
	// Error is set instead of Result when the request failed.
	Error *APIError `json:"error"`
}

// InvocationInfo describes the server-side invocation of a request.
type InvocationInfo struct {
	// Hostname is the name of the host that served the request.
	Hostname string `json:"hostname"`
	// ReqID is the server-side request identifier.
	ReqID string `json:"req-id"`
}

// APIError is the error payload of a failed request.
type APIError struct {
	// Name is the machine-readable error name.
	Name string `json:"name"`
	// Message is the human-readable description.
	Message string `json:"message"`
}

// DownloadInfo is one available encoding of a track.
type DownloadInfo struct {
	// Codec is the encoding name, e.g. "mp3", "aac" or "flac".
	Codec string `json:"codec"`
	// BitrateInKbps is the encoding bitrate.
	BitrateInKbps int `json:"bitrateInKbps"`
	// Gain indicates whether the stream is loudness-normalized.
	Gain bool `json:"gain"`
	// Preview indicates a shortened preview stream.
	Preview bool `json:"preview"`
	// DownloadInfoURL points to the storage descriptor of this encoding.
	DownloadInfoURL string `json:"downloadInfoUrl"`
	// Direct mirrors the direct flag of the request.
	Direct bool `json:"direct"`
}

// StorageDescriptor is the short-lived bundle used to sign a download link.
// It must not be cached: TS and Salt are scoped to the request that produced them.
type StorageDescriptor struct {
	XMLName xml.Name `json:"-" xml:"download-info"`
	// Host is the storage host serving the media.
	Host string `json:"host" xml:"host"`
	// Path is the storage path, beginning with "/".
	Path string `json:"path" xml:"path"`
	// TS is the server timestamp bound into the link.
	TS string `json:"ts" xml:"ts"`
	// Region is the storage region.
	Region string `json:"region" xml:"region"`
	// Salt is the per-request salt ("s") of the signature.
	Salt string `json:"s" xml:"s"`
}

// ID is a catalogue identifier. Catalogue entities have numeric IDs,
// user uploads have string ones.
type ID string

// UnmarshalJSON accepts a JSON string, a number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*id = ID(value)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}

	*id = ID(number.String())

	return nil
}

// String returns the identifier as is.
func (id ID) String() string {
	return string(id)
}

// Track is a catalogue track entity.
type Track struct {
	// ID is the track identifier.
	ID ID `json:"id"`
	// RealID is the identifier of the original track for substituted tracks.
	RealID string `json:"realId"`
	// Title is the track name.
	Title string `json:"title"`
	// Version is the version suffix, e.g. "Remastered".
	Version string `json:"version"`
	// DurationMs is the track length in milliseconds.
	DurationMs int64 `json:"durationMs"`
	// Available indicates whether the track can be played, nil when not reported.
	Available *bool `json:"available"`
	// Artists is the list of track artists.
	Artists []Artist `json:"artists"`
	// Albums is the list of albums containing the track.
	Albums []Album `json:"albums"`
	// CoverURI is the cover template, "%%" stands for the size.
	CoverURI string `json:"coverUri"`
}

// Artist is a catalogue artist.
type Artist struct {
	// ID is the artist identifier.
	ID ID `json:"id"`
	// Name is the artist name.
	Name string `json:"name"`
}

// Album is a catalogue album as embedded in a track.
type Album struct {
	// ID is the album identifier.
	ID ID `json:"id"`
	// Title is the album name.
	Title string `json:"title"`
	// Year is the release year.
	Year int `json:"year"`
	// Genre is the album genre.
	Genre string `json:"genre"`
	// TrackCount is the number of tracks in the album.
	TrackCount int `json:"trackCount"`
	// Artists is the list of album artists.
	Artists []Artist `json:"artists"`
	// Labels is the list of record labels.
	Labels []Label `json:"labels"`
	// TrackPosition is the position of the embedding track.
	TrackPosition *TrackPosition `json:"trackPosition"`
}

// Label is a record label.
type Label struct {
	// Name is the label name.
	Name string `json:"name"`
}

// TrackPosition is the position of a track inside an album.
type TrackPosition struct {
	// Volume is the disc number.
	Volume int `json:"volume"`
	// Index is the track number on the disc.
	Index int `json:"index"`
}

// Key returns the composite "{trackId}:{albumId}" key of the track.
// The album part is omitted when the track belongs to no album.
func (t *Track) Key() string {
	if len(t.Albums) == 0 || t.Albums[0].ID == "" {
		return t.ID.String()
	}

	return t.ID.String() + ":" + t.Albums[0].ID.String()
}

// IsAvailable reports whether the track can be played. Tracks without the flag are assumed available.
func (t *Track) IsAvailable() bool {
	return t.Available == nil || *t.Available
}

// ArtistNames returns the comma-separated names of the track artists.
func (t *Track) ArtistNames() string {
	return joinArtistNames(t.Artists)
}

// FullTitle returns the title with the version suffix, if any.
func (t *Track) FullTitle() string {
	if t.Version == "" {
		return t.Title
	}

	return t.Title + " (" + t.Version + ")"
}

// CoverURL returns the https URL of the cover in the requested size, e.g. "400x400".
func (t *Track) CoverURL(size string) string {
	if t.CoverURI == "" {
		return ""
	}

	return "https://" + strings.ReplaceAll(t.CoverURI, "%%", size)
}

// ArtistNames returns the comma-separated names of the album artists.
func (a *Album) ArtistNames() string {
	return joinArtistNames(a.Artists)
}

func joinArtistNames(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		if artist.Name != "" {
			names = append(names, artist.Name)
		}
	}

	return strings.Join(names, ", ")
}

// FetchTrackResult is an open media stream.
type FetchTrackResult struct {
	// Body is the media stream; the caller must close it.
	Body io.ReadCloser
	// TotalBytes is the Content-Length of the stream, -1 when unknown.
	TotalBytes int64
}

// FetchJSONResult is a decoded JSON response with its status code.
type FetchJSONResult[T any] struct {
	// Data is the decoded body, nil on failure.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}
