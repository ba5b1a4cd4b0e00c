package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/ytsave/internal/media"
	"github.com/ytget/ytsave/internal/model"
)

var (
	ErrNoFormat      = errors.New("no format selected")
	ErrNoStream      = errors.New("no stream matches the selected formats")
	ErrNoDestination = errors.New("no destination directory")
)

// Service resolves and downloads streams through a media.Fetcher
type Service struct {
	fetcher media.Fetcher
}

// NewService creates a new download service
func NewService(fetcher media.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Resolve fetches the video behind req.URL and selects one stream with SelectStream.
// It never contacts the fetcher when no format is selected.
func (s *Service) Resolve(ctx context.Context, req *model.DownloadRequest) (stream media.Stream, err error) {
	defer recoverAsError(&err)

	if !req.HasFormat() {
		return nil, ErrNoFormat
	}

	log.Printf("Resolving %s for request %s (video=%q audio=%q)", req.URL, req.ID, req.Video, req.Audio)

	video, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		log.Printf("Resolving request %s failed: %v", req.ID, err)
		return nil, fmt.Errorf("resolve %s: %w", req.URL, err)
	}

	stream = SelectStream(video, req.Video, req.Audio)
	if stream == nil {
		log.Printf("No stream for request %s among %d streams of %q", req.ID, len(video.Streams()), video.Title())
		return nil, ErrNoStream
	}

	log.Printf("Request %s resolved %q to %s stream (%dp, audio only: %v)",
		req.ID, video.Title(), stream.Container(), stream.Resolution(), stream.AudioOnly())
	return stream, nil
}

// Download writes stream into req.Destination
func (s *Service) Download(ctx context.Context, req *model.DownloadRequest, stream media.Stream, progress media.ProgressFunc) (path string, err error) {
	defer recoverAsError(&err)

	if req.Destination == "" {
		return "", ErrNoDestination
	}

	started := time.Now()
	var written int64
	path, err = stream.Download(ctx, req.Destination, func(n, total int64) {
		written = n
		if progress != nil {
			progress(n, total)
		}
	})
	if err != nil {
		log.Printf("Download for request %s failed after %s: %v", req.ID, humanize.Bytes(uint64(written)), err)
		return "", fmt.Errorf("download: %w", err)
	}

	log.Printf("Request %s saved %s (%s) in %s",
		req.ID, path, humanize.Bytes(uint64(written)), time.Since(started).Round(time.Millisecond))
	return path, nil
}

// SelectStream applies the format choices to video.
//
// MP4 asks for the highest-resolution stream, MKV for the first WebM stream,
// MP3 for the first audio-only stream. The audio stream is resolved even when
// a video format is chosen, but a video stream always wins: the two are never
// combined into one file. Returns nil when nothing matches.
func SelectStream(video media.Video, videoFormat model.VideoFormat, audioFormat model.AudioFormat) media.Stream {
	var videoStream, audioStream media.Stream

	switch videoFormat {
	case model.VideoFormatMP4:
		videoStream = video.HighestResolution()
	case model.VideoFormatMKV:
		videoStream = video.Streams().WithContainer(videoFormat.Container()).First()
	}

	if audioFormat == model.AudioFormatMP3 {
		audioStream = video.Streams().OnlyAudio().First()
	}

	if videoStream != nil {
		return videoStream
	}
	return audioStream
}

// recoverAsError turns a panic inside the media library into an ordinary error
func recoverAsError(err *error) {
	if r := recover(); r != nil {
		log.Printf("Recovered from panic: %v", r)
		*err = fmt.Errorf("unexpected failure: %v", r)
	}
}
