package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/constants"
)

const testBaseConfigContent = `
auth_token: "config_token"
codec: "mp3"
direct: false
output_path: "/config/output"
download_speed_limit: "500KB"
log_level: "info"
track_filename_template: "{{.trackArtist}} - {{.trackTitle}}"
replace_tracks: false
write_tags: false
max_concurrent_downloads: 1
suppress_transfer_errors: false
`

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addLinkFlags(flags)
	addDownloadFlags(flags)

	require.NoError(t, flags.Parse(args))

	return flags
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(testBaseConfigContent), constants.DefaultFilePermissions))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	return cfg
}

// TestFlagOverrides tests that command-line flags override configuration file values.
//
//nolint:funlen // It's a table of every flag.
func TestFlagOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		args           []string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name: "no flags - use config values",
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "mp3", cfg.Codec)
				assert.False(t, cfg.Direct)
				assert.Equal(t, "/config/output", cfg.OutputPath)
				assert.Equal(t, "500KB", cfg.DownloadSpeedLimit)
				assert.Equal(t, int64(500000), cfg.ParsedDownloadSpeedLimit)
				assert.False(t, cfg.WriteTags)
				assert.Equal(t, int64(1), cfg.MaxConcurrentDownloads)
			},
		},
		{
			name: "codec flag is normalized",
			args: []string{"--codec", " FLAC "},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "flac", cfg.Codec)
				assert.Equal(t, "/config/output", cfg.OutputPath)
			},
		},
		{
			name: "short flags",
			args: []string{"-f", "aac", "-o", "/flag/output", "-s", "1MB", "-t", "-n", "4"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "aac", cfg.Codec)
				assert.Equal(t, "/flag/output", cfg.OutputPath)
				assert.Equal(t, int64(1000000), cfg.ParsedDownloadSpeedLimit)
				assert.True(t, cfg.WriteTags)
				assert.Equal(t, int64(4), cfg.MaxConcurrentDownloads)
			},
		},
		{
			name: "boolean flags",
			args: []string{"--direct", "--suppress-transfer-errors"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.Direct)
				assert.True(t, cfg.SuppressTransferErrors)
			},
		},
		{
			name: "speed limit can be disabled",
			args: []string{"--speed-limit", "0"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, int64(0), cfg.ParsedDownloadSpeedLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := loadTestConfig(t)

			err := bindFlagsToConfig(newTestFlagSet(t, tt.args...), cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

func TestFlagOverrides_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "empty codec",
			args:        []string{"--codec", " "},
			expectedErr: config.ErrEmptyCodec,
		},
		{
			name:        "zero concurrency",
			args:        []string{"--concurrency", "0"},
			expectedErr: config.ErrInvalidConcurrentDownloads,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := bindFlagsToConfig(newTestFlagSet(t, tt.args...), loadTestConfig(t))
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFlagOverrides_InvalidSpeedLimit(t *testing.T) {
	t.Parallel()

	err := bindFlagsToConfig(newTestFlagSet(t, "--speed-limit", "fast"), loadTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download speed limit")
}

// TestBindFlagsToConfig_UndefinedFlags tests commands that define only some of the flags.
func TestBindFlagsToConfig_UndefinedFlags(t *testing.T) {
	t.Parallel()

	cfg := loadTestConfig(t)

	flags := pflag.NewFlagSet("link", pflag.ContinueOnError)
	addLinkFlags(flags)
	require.NoError(t, flags.Parse([]string{"--direct"}))

	require.NoError(t, bindFlagsToConfig(flags, cfg))
	assert.True(t, cfg.Direct)
	assert.Equal(t, "/config/output", cfg.OutputPath)
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	for _, path := range [][]string{{"link"}, {"info"}, {"auth", "token"}} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("codec"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotEmpty(t, rootCmd.Version)
}
