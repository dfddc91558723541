// Package ymusic implements the download-link pipeline for Yandex Music tracks
// (download info, storage descriptor, signature, link) and the executors that
// turn a link into a stream, a file or an in-memory buffer.
// On top of it, Service downloads lists of track references into the output directory.
package ymusic
