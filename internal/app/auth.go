package app

import (
	"context"
	"strings"

	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// ExecuteAuthTokenCommand stores an OAuth token of an already authenticated session
// in the configuration file.
func ExecuteAuthTokenCommand(ctx context.Context, cfg *config.Config, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return config.ErrEmptyAuthToken
	}

	cfg.AuthToken = token

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	logger.Infof(ctx, "Token saved to %s", cfg.Filename)
	logger.Info(ctx, "")
	logger.Info(ctx, "Try getting a download link:")
	logger.Info(ctx, "ymusic-grabber link https://music.yandex.ru/album/1193829/track/10994777")

	return nil
}
