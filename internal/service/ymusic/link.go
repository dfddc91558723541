package ymusic

//go:generate $MOCKGEN -source=link.go -destination=mocks/link_mock.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/ymusic-grabber/internal/client/ymusic"
	"github.com/oshokin/ymusic-grabber/internal/config"
	"github.com/oshokin/ymusic-grabber/internal/logger"
)

// DownloadLink is a signed, time-boxed direct download link.
type DownloadLink struct {
	// URL is https://{host}/get-{codec}/{sign}/{ts}{path}.
	URL string
	// Info is the download info entry the link was built from.
	Info *ymusic.DownloadInfo
	// Descriptor is the storage descriptor the link was signed with.
	Descriptor *ymusic.StorageDescriptor
}

// String implements fmt.Stringer.
func (l *DownloadLink) String() string {
	return l.URL
}

// LinkBuilder derives signed download links for track references.
type LinkBuilder interface {
	// BuildLinkAsync starts building a link for the first encoding matching codec.
	BuildLinkAsync(ctx context.Context, ref TrackReference, codec string) *Future[*DownloadLink]
	// BuildLink builds a link for the first encoding matching codec and waits for it.
	BuildLink(ctx context.Context, ref TrackReference, codec string) (*DownloadLink, error)
}

// LinkBuilderImpl implements the LinkBuilder interface.
// It keeps no state between calls: every link is built from freshly fetched
// download info and a freshly fetched storage descriptor.
type LinkBuilderImpl struct {
	// client fetches download info and storage descriptors.
	client ymusic.Client
	// signer signs storage paths.
	signer *Signer
	// direct is passed to the download info endpoint as is.
	direct bool
}

// NewLinkBuilder creates and returns a new instance of LinkBuilderImpl.
func NewLinkBuilder(client ymusic.Client, signer *Signer, direct bool) LinkBuilder {
	return &LinkBuilderImpl{
		client: client,
		signer: signer,
		direct: direct,
	}
}

// BuildLinkAsync starts building a link for the first encoding matching codec.
// An empty codec means config.DefaultCodec.
func (lb *LinkBuilderImpl) BuildLinkAsync(
	ctx context.Context,
	ref TrackReference,
	codec string,
) *Future[*DownloadLink] {
	return runAsync(ctx, func(ctx context.Context) (*DownloadLink, error) {
		return lb.buildLink(ctx, ref, codec)
	})
}

// BuildLink builds a link for the first encoding matching codec and waits for it.
func (lb *LinkBuilderImpl) BuildLink(ctx context.Context, ref TrackReference, codec string) (*DownloadLink, error) {
	return lb.BuildLinkAsync(ctx, ref, codec).Wait(ctx)
}

func (lb *LinkBuilderImpl) buildLink(ctx context.Context, ref TrackReference, codec string) (*DownloadLink, error) {
	if ref.IsZero() {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidTrackReference)
	}

	if codec == "" {
		codec = config.DefaultCodec
	}

	infos, err := lb.client.GetDownloadInfo(ctx, ref.Key(), lb.direct)
	if err != nil {
		return nil, err
	}

	info, err := selectEncoding(infos, codec)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", ref, err)
	}

	logger.Debugf(ctx, "Track %s: using %s encoding, %d kbps", ref, info.Codec, info.BitrateInKbps)

	descriptor, err := lb.client.GetStorageDescriptor(ctx, info.DownloadInfoURL)
	if err != nil {
		return nil, err
	}

	return &DownloadLink{
		URL:        assembleLink(codec, lb.signer.Sign(descriptor.Path, descriptor.Salt), descriptor),
		Info:       info,
		Descriptor: descriptor,
	}, nil
}

// selectEncoding returns the first entry whose codec equals codec.
func selectEncoding(infos []*ymusic.DownloadInfo, codec string) (*ymusic.DownloadInfo, error) {
	available := make([]string, 0, len(infos))

	for _, info := range infos {
		if info == nil {
			continue
		}

		if info.Codec == codec {
			return info, nil
		}

		available = append(available, fmt.Sprintf("%s/%d", info.Codec, info.BitrateInKbps))
	}

	return nil, fmt.Errorf("%w: %q (available: [%s])", ErrEncodingNotFound, codec, strings.Join(available, ", "))
}

// assembleLink formats https://{host}/get-{codec}/{sign}/{ts}{path}.
func assembleLink(codec, sign string, descriptor *ymusic.StorageDescriptor) string {
	var builder strings.Builder

	builder.WriteString("https://")
	builder.WriteString(descriptor.Host)
	builder.WriteString("/get-")
	builder.WriteString(codec)
	builder.WriteString("/")
	builder.WriteString(sign)
	builder.WriteString("/")
	builder.WriteString(descriptor.TS)
	builder.WriteString(descriptor.Path)

	return builder.String()
}
