package ymusic

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
	http_transport "github.com/oshokin/ymusic-grabber/internal/transport/http"
)

// Client defines the interface for interacting with the Yandex Music API.
type Client interface {
	// FetchTrack opens the media stream behind a pre-signed download link.
	FetchTrack(ctx context.Context, trackURL string) (*FetchTrackResult, error)
	// GetDownloadInfo retrieves the available encodings of a track.
	GetDownloadInfo(ctx context.Context, trackKey string, direct bool) ([]*DownloadInfo, error)
	// GetStorageDescriptor retrieves the storage descriptor behind a download info URL.
	GetStorageDescriptor(ctx context.Context, infoURL string) (*StorageDescriptor, error)
	// GetTracks retrieves track entities for the specified track IDs.
	GetTracks(ctx context.Context, trackIDs []string) (map[string]*Track, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the authenticated HTTP client for API requests.
	httpClient *http.Client
	// downloadClient is the HTTP client for pre-signed links; it never sends the session token.
	downloadClient *http.Client
	// tracksCache caches track entities to reduce duplicate API calls for the same tracks.
	tracksCache *lru.Cache[string, *Track]
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	httpClient := &http.Client{
		Transport: http_transport.NewAuthInjector(
			http_transport.NewUserAgentInjector(
				http_transport.NewLogTransport(http.DefaultTransport, config.DefaultMaxLogLength),
				http_transport.DefaultUserAgent),
			cfg.AuthToken),
		Timeout: http_transport.DefaultTimeout,
	}

	// Media streams may outlive any fixed timeout, cancellation goes through the context.
	downloadClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, config.DefaultMaxLogLength),
			http_transport.DefaultUserAgent),
	}

	tracksCache, err := lru.New[string, *Track](tracksCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracks cache: %w", err)
	}

	client := &ClientImpl{
		baseURL:        baseURL.String(),
		httpClient:     httpClient,
		downloadClient: downloadClient,
		tracksCache:    tracksCache,
	}

	return client, nil
}

// FetchTrack opens the media stream behind a pre-signed download link.
// The request carries no session credentials.
func (c *ClientImpl) FetchTrack(ctx context.Context, trackURL string) (*FetchTrackResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.downloadClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &FetchTrackResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// GetDownloadInfo retrieves the available encodings of a track.
// The list is returned exactly as the API sent it and is never cached.
func (c *ClientImpl) GetDownloadInfo(ctx context.Context, trackKey string, direct bool) ([]*DownloadInfo, error) {
	const op = "get download info"

	query := url.Values{}
	query.Set("direct", strconv.FormatBool(direct))

	uri := apiTracksURI + "/" + url.PathEscape(trackKey) + "/" + apiDownloadInfoURISuffix

	result, err := fetchJSONWithQuery[[]*DownloadInfo](c, ctx, op, uri, query)
	if err != nil {
		return nil, err
	}

	return *result.Data.Result, nil
}

// GetStorageDescriptor retrieves the storage descriptor behind a download info URL.
// Descriptors are short-lived and are never cached.
func (c *ClientImpl) GetStorageDescriptor(ctx context.Context, infoURL string) (*StorageDescriptor, error) {
	return c.fetchStorageDescriptor(ctx, "get storage descriptor", infoURL)
}

// GetTracks retrieves track entities for the specified track IDs.
// The result is keyed by track ID. Uses an LRU cache to avoid redundant API calls for the same tracks.
func (c *ClientImpl) GetTracks(ctx context.Context, trackIDs []string) (map[string]*Track, error) {
	const op = "get tracks"

	result := make(map[string]*Track, len(trackIDs))
	uncachedIDs := make([]string, 0, len(trackIDs))

	for _, id := range trackIDs {
		if cached, ok := c.tracksCache.Get(id); ok {
			result[id] = cached
			logger.Debugf(ctx, "Track cache hit for ID: %s", id)
		} else {
			uncachedIDs = append(uncachedIDs, id)
		}
	}

	if len(uncachedIDs) == 0 {
		return result, nil
	}

	logger.Debugf(ctx, "Fetching %d uncached tracks from API", len(uncachedIDs))

	query := url.Values{}
	query.Set("track-ids", strings.Join(uncachedIDs, ","))

	response, err := fetchJSONWithQuery[[]*Track](c, ctx, op, apiTracksURI, query)
	if err != nil {
		return nil, err
	}

	for _, track := range *response.Data.Result {
		if track == nil {
			continue
		}

		id := track.ID.String()
		c.tracksCache.Add(id, track)
		result[id] = track
	}

	return result, nil
}
