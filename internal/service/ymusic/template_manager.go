package ymusic

//go:generate $MOCKGEN -source=template_manager.go -destination=mocks/template_manager_mock.go

import (
	"bytes"
	"context"
	"html"
	"html/template"

	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// TemplateManager renders output filenames from track tags.
type TemplateManager interface {
	// GetTrackFilename generates a filename, without extension, for a track based on its tags.
	GetTrackFilename(ctx context.Context, trackTags map[string]string) string
}

// TemplateManagerImpl implements the TemplateManager interface.
type TemplateManagerImpl struct {
	// trackFilenameTemplate is the template for track filenames, nil if it didn't parse.
	trackFilenameTemplate *template.Template
	// defaultTrackFilenameTemplate is the fallback template for track filenames.
	defaultTrackFilenameTemplate *template.Template
}

// NewTemplateManager creates and returns a new instance of TemplateManagerImpl.
// A template that fails to parse is reported and replaced by the default one.
func NewTemplateManager(ctx context.Context, cfg *config.Config) TemplateManager {
	defaultTrackFilenameTemplate := template.Must(
		template.New("defaultTrackFilenameTemplate").Parse(config.DefaultTrackFilenameTemplate))

	trackFilenameTemplate, err := template.New("trackFilenameTemplate").Parse(cfg.TrackFilenameTemplate)
	if err != nil {
		logger.Errorf(ctx, "Failed to parse track filename template, using default: %v", err)

		trackFilenameTemplate = nil
	}

	return &TemplateManagerImpl{
		trackFilenameTemplate:        trackFilenameTemplate,
		defaultTrackFilenameTemplate: defaultTrackFilenameTemplate,
	}
}

// GetTrackFilename generates a filename, without extension, for a track based on its tags.
func (tm *TemplateManagerImpl) GetTrackFilename(ctx context.Context, trackTags map[string]string) string {
	var buffer bytes.Buffer

	if tm.trackFilenameTemplate != nil {
		if err := tm.trackFilenameTemplate.Execute(&buffer, trackTags); err != nil {
			logger.Errorf(ctx, "Failed to execute template, using default: %v", err)

			buffer.Reset()
			_ = tm.defaultTrackFilenameTemplate.Execute(&buffer, trackTags) //nolint:errcheck // Default is valid.
		}
	} else {
		_ = tm.defaultTrackFilenameTemplate.Execute(&buffer, trackTags) //nolint:errcheck // Default is valid.
	}

	// html/template escapes entities, filenames need them back.
	return html.UnescapeString(buffer.String())
}
