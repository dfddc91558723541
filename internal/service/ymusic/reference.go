package ymusic

//go:generate $MOCKGEN -source=reference.go -destination=mocks/reference_mock.go

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/logger"
	"github.com/oshokin/ymusic-grabber/internal/utils"
)

// TrackReference identifies a track for the download pipeline:
// either a raw "{trackId}:{albumId}" key or a track entity the key is derived from.
type TrackReference struct {
	key   string
	track *ymusic.Track
}

// ReferenceResolver turns command line inputs into track references.
type ReferenceResolver interface {
	// ResolveReferences parses inputs into unique track references.
	// Inputs ending with .txt are read as lists, one reference per line.
	ResolveReferences(ctx context.Context, inputs []string) ([]TrackReference, error)
}

// ReferenceResolverImpl implements the ReferenceResolver interface.
type ReferenceResolverImpl struct{}

// defaultTextExtension is the extension of files holding reference lists.
const defaultTextExtension = ".txt"

//nolint:gochecknoglobals // Immutable compiled patterns.
var (
	trackKeyPattern = regexp.MustCompile(`^(?<trackID>\d+)(?::(?<albumID>\d+))?$`)
	urlPatterns     = []*regexp.Regexp{
		regexp.MustCompile(`^/album/(?<albumID>\d+)/track/(?<trackID>\d+)/?$`),
		regexp.MustCompile(`^/track/(?<trackID>\d+)/?$`),
	}
	serviceHostPattern = regexp.MustCompile(`^music\.yandex\.[a-z]{2,3}$`)
)

// NewTrackReference creates a reference from a raw "{trackId}:{albumId}" or "{trackId}" key.
func NewTrackReference(key string) (TrackReference, error) {
	key = strings.TrimSpace(key)
	if !trackKeyPattern.MatchString(key) {
		return TrackReference{}, fmt.Errorf("%w: %q", ErrInvalidTrackReference, key)
	}

	return TrackReference{key: key}, nil
}

// TrackReferenceFromTrack creates a reference from a track entity.
func TrackReferenceFromTrack(track *ymusic.Track) (TrackReference, error) {
	if track == nil || track.ID == "" {
		return TrackReference{}, fmt.Errorf("%w: track without ID", ErrInvalidTrackReference)
	}

	return TrackReference{key: track.Key(), track: track}, nil
}

// ParseTrackReference parses a raw key or a track page URL such as
// https://music.yandex.ru/album/{albumId}/track/{trackId}.
func ParseTrackReference(input string) (TrackReference, error) {
	input = strings.TrimSpace(input)
	if trackKeyPattern.MatchString(input) {
		return TrackReference{key: input}, nil
	}

	parsed, err := url.Parse(input)
	if err != nil || !serviceHostPattern.MatchString(strings.ToLower(parsed.Hostname())) {
		return TrackReference{}, fmt.Errorf("%w: %q", ErrInvalidTrackReference, input)
	}

	for _, pattern := range urlPatterns {
		trackID := utils.ExtractNamedGroup(pattern, "trackID", parsed.Path)
		if trackID == "" {
			continue
		}

		if albumID := utils.ExtractNamedGroup(pattern, "albumID", parsed.Path); albumID != "" {
			return TrackReference{key: trackID + ":" + albumID}, nil
		}

		return TrackReference{key: trackID}, nil
	}

	return TrackReference{}, fmt.Errorf("%w: %q", ErrInvalidTrackReference, input)
}

// Key returns the track key used by the download info endpoint.
func (r TrackReference) Key() string {
	return r.key
}

// TrackID returns the track part of the key.
func (r TrackReference) TrackID() string {
	trackID, _, _ := strings.Cut(r.key, ":")

	return trackID
}

// Track returns the track entity, nil when the reference was built from a raw key.
func (r TrackReference) Track() *ymusic.Track {
	return r.track
}

// WithTrack returns a copy of the reference carrying the track entity. The key is kept.
func (r TrackReference) WithTrack(track *ymusic.Track) TrackReference {
	r.track = track

	return r
}

// IsZero reports whether the reference is empty.
func (r TrackReference) IsZero() bool {
	return r.key == ""
}

// String implements fmt.Stringer.
func (r TrackReference) String() string {
	return r.key
}

// NewReferenceResolver creates and returns a new instance of ReferenceResolverImpl.
func NewReferenceResolver() ReferenceResolver {
	return &ReferenceResolverImpl{}
}

// ResolveReferences parses inputs into unique track references.
// Unparsable inputs are logged and skipped.
func (rr *ReferenceResolverImpl) ResolveReferences(ctx context.Context, inputs []string) ([]TrackReference, error) {
	inputs, err := rr.processAndFlattenInputs(inputs)
	if err != nil {
		return nil, err
	}

	var (
		result     = make([]TrackReference, 0, len(inputs))
		parsedKeys = make(map[string]struct{}, len(inputs))
	)

	for _, input := range inputs {
		ref, parseErr := ParseTrackReference(input)
		if parseErr != nil {
			logger.Warnf(ctx, "Skipping input: %v", parseErr)

			continue
		}

		if _, ok := parsedKeys[ref.Key()]; ok {
			continue
		}

		parsedKeys[ref.Key()] = struct{}{}

		result = append(result, ref)
	}

	return result, nil
}

func (rr *ReferenceResolverImpl) processAndFlattenInputs(inputs []string) ([]string, error) {
	var (
		processedSet       = make(map[string]struct{})
		processedTextFiles = make(map[string]struct{})
		processedInputs    []string
	)

	for _, input := range inputs {
		if !strings.HasSuffix(input, defaultTextExtension) {
			if _, ok := processedSet[input]; ok {
				continue
			}

			processedSet[input] = struct{}{}

			processedInputs = append(processedInputs, input)

			continue
		}

		if _, exists := processedTextFiles[input]; exists {
			continue
		}

		lines, err := utils.ReadUniqueLinesFromFile(input)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if _, ok := processedSet[line]; ok {
				continue
			}

			processedSet[line] = struct{}{}

			processedInputs = append(processedInputs, line)
		}

		processedTextFiles[input] = struct{}{}
	}

	return processedInputs, nil
}
