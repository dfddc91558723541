// Package app connects the command line to the download pipeline.
// It builds the Yandex Music client, the link signer and builder, the downloader,
// and the service helpers, then runs the requested operation.
package app
