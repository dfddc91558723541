package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/ymusic-grabber/internal/config"
	mock_ymusic_service "github.com/oshokin/ymusic-grabber/internal/service/ymusic/mocks"
)

func TestDownloadTracks_PrintsSummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := mock_ymusic_service.NewMockService(ctrl)

	gomock.InOrder(
		s.EXPECT().DownloadTracks(gomock.Any(), []string{"1:2"}),
		s.EXPECT().PrintDownloadSummary(gomock.Any()),
	)

	downloadTracks(context.Background(), s, []string{"1:2"})
}

func TestDownloadTracks_PrintsSummaryAfterPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := mock_ymusic_service.NewMockService(ctrl)

	s.EXPECT().DownloadTracks(gomock.Any(), gomock.Any()).Do(func(context.Context, []string) {
		panic("boom")
	})
	s.EXPECT().PrintDownloadSummary(gomock.Any())

	assert.NotPanics(t, func() {
		downloadTracks(context.Background(), s, []string{"1"})
	})
}

func TestExecuteInfoCommand(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth secret", r.Header.Get("Authorization"))
		assert.Equal(t, "/tracks/42/download-info", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{"codec":"mp3","bitrateInKbps":192,"downloadInfoUrl":"x"}]}`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		AuthToken:              "secret",
		APIBaseURL:             server.URL,
		Codec:                  "mp3",
		MaxConcurrentDownloads: 1,
	}

	var output bytes.Buffer

	err := ExecuteInfoCommand(context.Background(), cfg, []string{"42"}, &output)
	require.NoError(t, err)
	assert.Contains(t, output.String(), "192 kbps")
}

func TestExecuteLinkCommand_InvalidReference(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		AuthToken:  "secret",
		APIBaseURL: "http://127.0.0.1:1",
		Codec:      "mp3",
	}

	var output bytes.Buffer

	// Invalid inputs are skipped before any request is made.
	err := ExecuteLinkCommand(context.Background(), cfg, []string{"not-a-track"}, &output)
	require.NoError(t, err)
	assert.Empty(t, output.String())
}

func TestExecuteAuthTokenCommand(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("codec: flac\nauth_token: \"\"\n"), 0o600))

	cfg := &config.Config{Filename: configPath}

	err := ExecuteAuthTokenCommand(context.Background(), cfg, "  new-token \n")
	require.NoError(t, err)
	assert.Equal(t, "new-token", cfg.AuthToken)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "codec: flac")
	assert.Contains(t, string(content), `auth_token: "new-token"`)
}

func TestExecuteAuthTokenCommand_EmptyToken(t *testing.T) {
	t.Parallel()

	err := ExecuteAuthTokenCommand(context.Background(), new(config.Config), "   ")
	require.ErrorIs(t, err, config.ErrEmptyAuthToken)
}
