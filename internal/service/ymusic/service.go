package ymusic

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/constants"
	"github.com/oshokin/ymusic-grabber/internal/logger"
	"github.com/oshokin/ymusic-grabber/internal/utils"
)

// Service provides the command line operations on top of the download pipeline.
type Service interface {
	// DownloadTracks downloads every referenced track into the output directory.
	DownloadTracks(ctx context.Context, inputs []string)
	// PrintLinks writes a signed download link for every referenced track.
	PrintLinks(ctx context.Context, w io.Writer, inputs []string) error
	// PrintEncodings writes the available encodings of every referenced track.
	PrintEncodings(ctx context.Context, w io.Writer, inputs []string) error
	// PrintDownloadSummary prints a formatted summary of download statistics.
	PrintDownloadSummary(ctx context.Context)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the client for the Yandex Music API.
	client ymusic.Client
	// referenceResolver parses command line inputs.
	referenceResolver ReferenceResolver
	// linkBuilder builds signed links.
	linkBuilder LinkBuilder
	// downloader retrieves media.
	downloader Downloader
	// templateManager generates filenames.
	templateManager TemplateManager
	// tagProcessor writes metadata tags to audio files.
	tagProcessor TagProcessor
	// stats tracks download statistics for the current session.
	stats *DownloadStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// coverSize is the cover resolution requested for embedding.
const coverSize = "400x400"

// NewService creates a service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	client ymusic.Client,
	referenceResolver ReferenceResolver,
	linkBuilder LinkBuilder,
	downloader Downloader,
	templateManager TemplateManager,
	tagProcessor TagProcessor,
) Service {
	return &ServiceImpl{
		cfg:               cfg,
		client:            client,
		referenceResolver: referenceResolver,
		linkBuilder:       linkBuilder,
		downloader:        downloader,
		templateManager:   templateManager,
		tagProcessor:      tagProcessor,
		stats:             new(DownloadStatistics),
		statsMutex:        new(sync.Mutex),
	}
}

// DownloadTracks downloads every referenced track into the output directory.
// Failures are logged and recorded for the summary, they never stop other downloads.
func (s *ServiceImpl) DownloadTracks(ctx context.Context, inputs []string) {
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.statsMutex.Unlock()

	defer func() {
		s.statsMutex.Lock()
		s.stats.EndTime = time.Now()
		s.statsMutex.Unlock()
	}()

	if err := os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		logger.Errorf(ctx, "Failed to create output path: %v", err)

		return
	}

	refs, err := s.referenceResolver.ResolveReferences(ctx, inputs)
	if err != nil {
		logger.Errorf(ctx, "Failed to extract tracks to download: %v", err)

		return
	}

	if len(refs) == 0 {
		logger.Warn(ctx, "Nothing to download")

		return
	}

	refs, err = s.attachTracks(ctx, refs)
	if err != nil {
		logger.Errorf(ctx, "Failed to get tracks: %v", err)

		for _, ref := range refs {
			s.incrementTrackFailed()
			s.recordError(ref, "fetching metadata", err)
		}

		return
	}

	logger.Infof(ctx, "Starting download of %d track(s)", len(refs))

	s.downloadConcurrently(ctx, refs)

	logger.Info(ctx, "Download process completed")
}

// PrintLinks writes a signed download link for every referenced track.
// Every failing reference is logged; the joined errors are returned.
func (s *ServiceImpl) PrintLinks(ctx context.Context, w io.Writer, inputs []string) error {
	refs, err := s.referenceResolver.ResolveReferences(ctx, inputs)
	if err != nil {
		return err
	}

	futures := make([]*Future[*DownloadLink], len(refs))
	for i, ref := range refs {
		futures[i] = s.linkBuilder.BuildLinkAsync(ctx, ref, s.cfg.Codec)
	}

	var errs []error

	for i, future := range futures {
		link, linkErr := future.Wait(ctx)
		if linkErr != nil {
			logger.Errorf(ctx, "Failed to build link for track %s: %v", refs[i], linkErr)

			errs = append(errs, linkErr)

			continue
		}

		if _, err = fmt.Fprintf(w, "%s\t%s\n", refs[i], link); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// PrintEncodings writes the available encodings of every referenced track.
func (s *ServiceImpl) PrintEncodings(ctx context.Context, w io.Writer, inputs []string) error {
	refs, err := s.referenceResolver.ResolveReferences(ctx, inputs)
	if err != nil {
		return err
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "TRACK\tCODEC\tBITRATE\tGAIN\tPREVIEW") //nolint:errcheck // Flush reports the error.

	var errs []error

	for _, ref := range refs {
		infos, infoErr := s.client.GetDownloadInfo(ctx, ref.Key(), s.cfg.Direct)
		if infoErr != nil {
			logger.Errorf(ctx, "Failed to get download info for track %s: %v", ref, infoErr)

			errs = append(errs, infoErr)

			continue
		}

		for _, info := range infos {
			//nolint:errcheck // Flush reports the error.
			fmt.Fprintf(table, "%s\t%s\t%d kbps\t%t\t%t\n",
				ref, info.Codec, info.BitrateInKbps, info.Gain, info.Preview)
		}
	}

	if err = table.Flush(); err != nil {
		return err
	}

	return errors.Join(errs...)
}

// attachTracks fetches the track entities of references built from raw keys.
// References whose track is unknown to the catalogue are recorded as failed and dropped.
func (s *ServiceImpl) attachTracks(ctx context.Context, refs []TrackReference) ([]TrackReference, error) {
	trackIDs := make([]string, 0, len(refs))

	for _, ref := range refs {
		if ref.Track() == nil {
			trackIDs = append(trackIDs, ref.TrackID())
		}
	}

	if len(trackIDs) == 0 {
		return refs, nil
	}

	tracks, err := s.client.GetTracks(ctx, trackIDs)
	if err != nil {
		return refs, err
	}

	result := make([]TrackReference, 0, len(refs))

	for _, ref := range refs {
		if ref.Track() != nil {
			result = append(result, ref)

			continue
		}

		track, ok := tracks[ref.TrackID()]
		if !ok || track == nil {
			logger.Errorf(ctx, "Track with ID '%s' is not found", ref.TrackID())
			s.incrementTrackFailed()
			s.recordError(ref, "fetching metadata", fmt.Errorf("track with ID '%s': %w", ref.TrackID(), ErrTrackNotFound))

			continue
		}

		result = append(result, ref.WithTrack(track))
	}

	return result, nil
}

// downloadConcurrently downloads references using a worker pool bounded by max_concurrent_downloads.
func (s *ServiceImpl) downloadConcurrently(ctx context.Context, refs []TrackReference) {
	maxConcurrent := max(s.cfg.MaxConcurrentDownloads, 1)
	semaphore := make(chan struct{}, maxConcurrent)

	var waitGroup sync.WaitGroup

	for index, ref := range refs {
		// Stop queueing new downloads once canceled (CTRL+C).
		if ctx.Err() != nil {
			break
		}

		semaphore <- struct{}{}

		waitGroup.Add(1)

		go func(trackIndex int, currentRef TrackReference) {
			defer waitGroup.Done()
			defer func() { <-semaphore }()

			s.downloadTrack(ctx, trackIndex+1, len(refs), currentRef)
		}(index, ref)
	}

	waitGroup.Wait()
}

func (s *ServiceImpl) downloadTrack(ctx context.Context, trackIndex, tracksCount int, ref TrackReference) {
	track := ref.Track()
	ctx = logger.WithKV(ctx, "track", ref.Key())

	if !track.IsAvailable() {
		logger.Warnf(ctx, "Track '%s' is not available, skipping", track.FullTitle())
		s.incrementTrackSkipped(SkipReasonUnavailable)

		return
	}

	codec := s.cfg.Codec
	trackTags := fillTrackTagsForTemplating(ref, codec)
	trackFilename := s.templateManager.GetTrackFilename(ctx, trackTags)
	trackFilename = utils.SetTrackExtension(utils.SanitizeFilename(trackFilename), constants.ExtensionForCodec(codec))
	trackPath := filepath.Join(s.cfg.OutputPath, trackFilename)

	if !s.cfg.ReplaceTracks {
		isExist, err := utils.IsFileExist(trackPath)
		if err != nil {
			logger.Errorf(ctx, "Failed to check track file: %v", err)
			s.incrementTrackFailed()
			s.recordError(ref, "checking existing file", err)

			return
		}

		if isExist {
			logger.Infof(ctx, "Track '%s' already exists, skipping download", trackPath)
			s.incrementTrackSkipped(SkipReasonExists)

			return
		}
	}

	logger.Infof(ctx, "Downloading track %d of %d: %s (%s)", trackIndex, tracksCount, track.FullTitle(), codec)

	result, err := s.downloader.DownloadToFile(ctx, ref, codec, trackPath)
	if err == nil && result == nil {
		err = ErrTransferSuppressed
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Errorf(ctx, "Failed to download track: %v", err)
		}

		s.incrementTrackFailed()
		s.recordError(ref, "downloading file", err)

		return
	}

	s.incrementTrackDownloaded(result.BytesWritten)

	if !s.cfg.WriteTags {
		return
	}

	writeTagsRequest := &WriteTagsRequest{
		TrackPath: result.Path,
		Codec:     codec,
		TrackTags: trackTags,
		Cover:     s.fetchCover(ctx, track),
	}

	if err = s.tagProcessor.WriteTags(ctx, writeTagsRequest); err != nil {
		logger.Errorf(ctx, "Failed to write track tags: %v", err)
		s.recordError(ref, "writing metadata tags", err)

		return
	}

	s.incrementTagsWritten()
}

// fetchCover downloads the track cover for embedding; failures only disable embedding.
func (s *ServiceImpl) fetchCover(ctx context.Context, track *ymusic.Track) *CoverImage {
	if !s.cfg.EmbedCover {
		return nil
	}

	coverURL := track.CoverURL(coverSize)
	if coverURL == "" {
		return nil
	}

	fetchResult, err := s.client.FetchTrack(ctx, coverURL)
	if err != nil {
		logger.Warnf(ctx, "Failed to download cover: %v", err)

		return nil
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(fetchResult.Body)
	if err != nil {
		logger.Warnf(ctx, "Failed to read cover: %v", err)

		return nil
	}

	return &CoverImage{
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}
}

// fillTrackTagsForTemplating builds the tags used by filename templates and tag writers.
func fillTrackTagsForTemplating(ref TrackReference, codec string) map[string]string {
	track := ref.Track()

	result := map[string]string{
		"codec":       codec,
		"trackArtist": track.ArtistNames(),
		"trackID":     track.ID.String(),
		"trackKey":    ref.Key(),
		"trackTitle":  track.FullTitle(),
	}

	album := trackAlbum(ref, track)
	if album == nil {
		return result
	}

	result["albumArtist"] = album.ArtistNames()
	result["albumID"] = album.ID.String()
	result["albumTitle"] = album.Title
	result["trackGenre"] = album.Genre

	if album.Year > 0 {
		result["releaseYear"] = strconv.Itoa(album.Year)
	}

	if album.TrackCount > 0 {
		result["trackCount"] = strconv.Itoa(album.TrackCount)
	}

	if len(album.Labels) > 0 {
		result["recordLabel"] = album.Labels[0].Name
	}

	if album.TrackPosition != nil {
		result["discNumber"] = strconv.Itoa(album.TrackPosition.Volume)
		result["trackNumber"] = strconv.Itoa(album.TrackPosition.Index)
		result["trackNumberPad"] = fmt.Sprintf("%02d", album.TrackPosition.Index)
	}

	return result
}

// trackAlbum returns the album named by the reference key, or the first album of the track.
func trackAlbum(ref TrackReference, track *ymusic.Track) *ymusic.Album {
	if len(track.Albums) == 0 {
		return nil
	}

	if _, albumID, ok := strings.Cut(ref.Key(), ":"); ok {
		for i := range track.Albums {
			if track.Albums[i].ID.String() == albumID {
				return &track.Albums[i]
			}
		}
	}

	return &track.Albums[0]
}
