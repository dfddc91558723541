// Package ymusic provides the authenticated request layer for the Yandex Music API.
// It fetches track entities, track download metadata and storage descriptors,
// and opens unauthenticated streams for pre-signed download links.
// Every failure of an API call is reported as a *RequestError; nothing is retried.
package ymusic
