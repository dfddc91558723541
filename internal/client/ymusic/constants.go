package ymusic

const (
	// apiTracksURI is the URI path for the track entities endpoint.
	apiTracksURI = "tracks"
	// apiDownloadInfoURISuffix is the URI path component of the download metadata endpoint.
	apiDownloadInfoURISuffix = "download-info"
)

const (
	// tracksCacheSize defines the maximum number of track entities to cache.
	// Track entities are catalogue data and do not change between calls.
	tracksCacheSize = 10000
)

// contentTypeHeader is the HTTP header name for Content-Type.
const contentTypeHeader = "Content-Type"
