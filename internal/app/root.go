package app

import (
	"context"
	"fmt"
	"io"

	ymusic_client "github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
	ymusic_service "github.com/oshokin/ymusic-grabber/internal/service/ymusic"
)

// ExecuteRootCommand downloads the referenced tracks into the output directory.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, inputs []string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	downloadTracks(ctx, s, inputs)
}

// ExecuteLinkCommand writes a signed download link for every referenced track to w.
func ExecuteLinkCommand(ctx context.Context, cfg *config.Config, inputs []string, w io.Writer) error {
	s, err := newService(ctx, cfg)
	if err != nil {
		return err
	}

	return s.PrintLinks(ctx, w, inputs)
}

// ExecuteInfoCommand writes the available encodings of every referenced track to w.
func ExecuteInfoCommand(ctx context.Context, cfg *config.Config, inputs []string, w io.Writer) error {
	s, err := newService(ctx, cfg)
	if err != nil {
		return err
	}

	return s.PrintEncodings(ctx, w, inputs)
}

// newService wires the client, the link pipeline and the helpers into a service.
func newService(ctx context.Context, cfg *config.Config) (ymusic_service.Service, error) {
	client, err := ymusic_client.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}

	// An empty key makes the signer generate a random one.
	signer, err := ymusic_service.NewSigner(cfg.ParsedSignKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signer: %w", err)
	}

	linkBuilder := ymusic_service.NewLinkBuilder(client, signer, cfg.Direct)
	downloader := ymusic_service.NewDownloader(cfg, client, linkBuilder)
	referenceResolver := ymusic_service.NewReferenceResolver()
	templateManager := ymusic_service.NewTemplateManager(ctx, cfg)
	tagProcessor := ymusic_service.NewTagProcessor()

	return ymusic_service.NewService(
		cfg,
		client,
		referenceResolver,
		linkBuilder,
		downloader,
		templateManager,
		tagProcessor,
	), nil
}

func downloadTracks(ctx context.Context, s ymusic_service.Service, inputs []string) {
	// Statistics are printed even when the download panics.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintDownloadSummary(ctx)
	}()

	s.DownloadTracks(ctx, inputs)
}
