package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// TestLogTransport_RoundTrip tests that responses pass through unchanged at every log level.
//
//nolint:paralleltest // Changes the global log level.
func TestLogTransport_RoundTrip(t *testing.T) {
	originalLevel := logger.Level()
	defer logger.SetLevel(originalLevel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "<download-info><host>h1</host></download-info>") //nolint:errcheck // Test mock handler.
	}))
	defer server.Close()

	for _, level := range []zapcore.Level{zapcore.InfoLevel, zapcore.DebugLevel} {
		logger.SetLevel(level)

		transport := NewLogTransport(http.DefaultTransport, 0)

		req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)
		req.Header.Set("Authorization", "OAuth secret")

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "<host>h1</host>")
	}
}

// TestLogTransport_DumpRequestRedactsToken tests that tokens never reach the log.
func TestLogTransport_DumpRequestRedactsToken(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 0).(*LogTransport)
	require.True(t, ok)

	req, err := http.NewRequest(http.MethodGet, "https://api.music.yandex.net/tracks/1:2/download-info", nil) //nolint:noctx,lll // Test code.
	require.NoError(t, err)
	req.Header.Set("Authorization", "OAuth secret-token")

	dump := transport.dumpRequest(req)

	assert.NotContains(t, dump, "secret-token")
	assert.Contains(t, dump, "Authorization: OAuth [redacted]")
}

// TestLogTransport_Truncate tests dump truncation.
func TestLogTransport_Truncate(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 4).(*LogTransport)
	require.True(t, ok)

	assert.Equal(t, "abc", transport.truncate([]byte("abc")))
	assert.True(t, strings.HasPrefix(transport.truncate([]byte("abcdefgh")), "abcd..."))
}

// TestLogTransport_NilRequest tests that a nil request is rejected.
func TestLogTransport_NilRequest(t *testing.T) {
	t.Parallel()

	resp, err := NewLogTransport(http.DefaultTransport, 0).RoundTrip(nil) //nolint:bodyclose // Response is nil on error.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}
