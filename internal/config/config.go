package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/ymusic-grabber/internal/constants"
	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// AuthToken is the OAuth token of an already authenticated session.
	AuthToken string `mapstructure:"auth_token"`
	// APIBaseURL is the base URL of the music service API.
	APIBaseURL string `mapstructure:"api_base_url"`
	// Codec is the encoding requested from the download metadata (e.g. "mp3", "aac", "flac").
	Codec string `mapstructure:"codec"`
	// Direct is passed through to the download metadata request as is.
	Direct bool `mapstructure:"direct"`
	// OutputPath is the directory where downloaded files are saved.
	OutputPath string `mapstructure:"output_path"`
	// TrackFilenameTemplate is the template for naming track files.
	TrackFilenameTemplate string `mapstructure:"track_filename_template"`
	// ReplaceTracks indicates whether to replace existing track files.
	ReplaceTracks bool `mapstructure:"replace_tracks"`
	// WriteTags indicates whether metadata tags are written into downloaded files.
	WriteTags bool `mapstructure:"write_tags"`
	// EmbedCover indicates whether cover art is embedded when tags are written.
	EmbedCover bool `mapstructure:"embed_cover"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// DownloadSpeedLimit sets the maximum download speed per second (e.g., "1MB", "500KB").
	DownloadSpeedLimit string `mapstructure:"download_speed_limit"`
	// MaxConcurrentDownloads is the maximum number of tracks downloaded simultaneously.
	MaxConcurrentDownloads int64 `mapstructure:"max_concurrent_downloads"`
	// SuppressTransferErrors makes download executors log transfer failures and return an empty result.
	SuppressTransferErrors bool `mapstructure:"suppress_transfer_errors"`
	// ShowProgress enables the progress bar for file downloads.
	ShowProgress bool `mapstructure:"show_progress"`
	// SignKey is the hex-encoded HMAC key of the link signer. Empty means a random key per run.
	SignKey string `mapstructure:"sign_key"`
	// Filename is the configuration file the settings were loaded from.
	Filename string `mapstructure:"-"`
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes.
	ParsedDownloadSpeedLimit int64 `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedSignKey is the decoded SignKey.
	ParsedSignKey []byte `mapstructure:"-"`
}

const (
	// DefaultAPIBaseURL is the base URL of the Yandex Music API.
	DefaultAPIBaseURL = "https://api.music.yandex.net"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".ymusic-grabber.yaml"

	// DefaultEnvFilename is the dotenv file read before the configuration.
	DefaultEnvFilename = ".env"

	// EnvPrefix is the prefix of environment variables overriding configuration keys.
	EnvPrefix = "YMUSIC"

	// DefaultCodec is the encoding picked when none is configured.
	DefaultCodec = "mp3"

	// DefaultTrackFilenameTemplate is the default template for naming downloaded track files.
	DefaultTrackFilenameTemplate = "{{.trackArtist}} - {{.trackTitle}}"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a dumped HTTP exchange.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// minSignKeyLength is the shortest accepted HMAC key.
	minSignKeyLength = 16
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAuthToken indicates that the authentication token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty")
	// ErrEmptyCodec indicates that no encoding is configured.
	ErrEmptyCodec = errors.New("codec cannot be empty")
	// ErrInvalidAPIBaseURL indicates that the API base URL is not an absolute URL.
	ErrInvalidAPIBaseURL = errors.New("api_base_url must be an absolute URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidConcurrentDownloads indicates that the concurrent downloads count is invalid.
	ErrInvalidConcurrentDownloads = errors.New("max concurrent downloads must be a positive integer")
	// ErrInvalidSignKey indicates that the sign key is not valid hex or too short.
	ErrInvalidSignKey = errors.New("invalid sign_key")
)

// LoadConfig loads configuration settings from a YAML file, a dotenv file and the environment.
// A missing default configuration file is tolerated so that the tool can run from environment variables only.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFilename := configFilename == ""
	if isDefaultFilename {
		configFilename = DefaultConfigFilename
	}

	if err := godotenv.Load(DefaultEnvFilename); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFilename, err)
	}

	v := newViper()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		isMissing := errors.Is(err, os.ErrNotExist)
		if !isMissing || !isDefaultFilename {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Filename = configFilename

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default, otherwise viper ignores its environment override on Unmarshal.
	v.SetDefault("auth_token", "")
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("codec", DefaultCodec)
	v.SetDefault("direct", false)
	v.SetDefault("output_path", ".")
	v.SetDefault("track_filename_template", DefaultTrackFilenameTemplate)
	v.SetDefault("replace_tracks", false)
	v.SetDefault("write_tags", true)
	v.SetDefault("embed_cover", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("download_speed_limit", "")
	v.SetDefault("max_concurrent_downloads", 1)
	v.SetDefault("suppress_transfer_errors", false)
	v.SetDefault("show_progress", true)
	v.SetDefault("sign_key", "")

	return v
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var (
		downloadSpeedLimit       = strings.TrimSpace(cfg.DownloadSpeedLimit)
		parsedDownloadSpeedLimit uint64
		err                      error
	)

	if strings.TrimSpace(cfg.AuthToken) == "" {
		return ErrEmptyAuthToken
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	baseURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil || !baseURL.IsAbs() || baseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidAPIBaseURL, cfg.APIBaseURL)
	}

	cfg.Codec = strings.ToLower(strings.TrimSpace(cfg.Codec))
	if cfg.Codec == "" {
		return ErrEmptyCodec
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, err = humanize.ParseBytes(downloadSpeedLimit)
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	// The throttled copy counts bytes in int64, larger limits are as good as none.
	cfg.ParsedDownloadSpeedLimit = int64(min(parsedDownloadSpeedLimit, math.MaxInt64))

	if cfg.MaxConcurrentDownloads <= 0 {
		return ErrInvalidConcurrentDownloads
	}

	cfg.ParsedSignKey = nil

	if signKey := strings.TrimSpace(cfg.SignKey); signKey != "" {
		cfg.ParsedSignKey, err = hex.DecodeString(signKey)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignKey, err)
		}

		if len(cfg.ParsedSignKey) < minSignKeyLength {
			return fmt.Errorf("%w: must be at least %d bytes", ErrInvalidSignKey, minSignKeyLength)
		}
	}

	return nil
}

// SaveConfig saves the auth token to the configuration file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := cfg.Filename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AuthToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	updateAuthTokenInNode(&node, cfg.AuthToken)

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, authToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("auth_token", authToken)

	if err = v.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAuthTokenInNode updates or appends the auth_token value in the YAML node tree.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value != "auth_token" {
			continue
		}

		valueNode.Value = authToken

		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}

		return
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "auth_token"},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: authToken, Style: yaml.DoubleQuotedStyle},
	)
}
