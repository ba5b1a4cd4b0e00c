package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/ytsave/internal/platform"
)

// Container used when the MIME type carries no usable subtype
const DefaultContainer = "bin"

// FilePermissions of downloaded files
const FilePermissions = 0644

// YouTubeFetcher resolves YouTube links with github.com/kkdai/youtube/v2.
type YouTubeFetcher struct {
	client *youtube.Client
}

// NewYouTubeFetcher creates a fetcher. A nil client means a default one.
func NewYouTubeFetcher(client *youtube.Client) *YouTubeFetcher {
	if client == nil {
		client = &youtube.Client{}
	}
	return &YouTubeFetcher{client: client}
}

// Fetch loads video metadata and its stream list
func (f *YouTubeFetcher) Fetch(ctx context.Context, url string) (Video, error) {
	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	return newYouTubeVideo(f.client, video), nil
}

type youtubeVideo struct {
	video   *youtube.Video
	streams []*youtubeStream
}

func newYouTubeVideo(client *youtube.Client, video *youtube.Video) *youtubeVideo {
	v := &youtubeVideo{video: video}
	for i := range video.Formats {
		v.streams = append(v.streams, &youtubeStream{
			client: client,
			video:  video,
			format: &video.Formats[i],
		})
	}
	return v
}

func (v *youtubeVideo) Title() string {
	return v.video.Title
}

func (v *youtubeVideo) Streams() StreamList {
	list := make(StreamList, 0, len(v.streams))
	for _, s := range v.streams {
		list = append(list, s)
	}
	return list
}

func (v *youtubeVideo) HighestResolution() Stream {
	var best *youtubeStream
	for _, s := range v.streams {
		if !s.progressive() {
			continue
		}
		if best == nil || betterStream(s, best) {
			best = s
		}
	}
	if best == nil {
		return nil
	}
	return best
}

// youtubeStream wraps one entry of video.Formats.
type youtubeStream struct {
	client *youtube.Client
	video  *youtube.Video
	format *youtube.Format
}

func (s *youtubeStream) Container() string {
	return containerFromMime(s.format.MimeType)
}

func (s *youtubeStream) AudioOnly() bool {
	return s.format.AudioChannels > 0 && s.format.Width == 0 && s.format.Height == 0
}

func (s *youtubeStream) Resolution() int {
	return s.format.Height
}

func (s *youtubeStream) progressive() bool {
	return s.format.AudioChannels > 0 && s.format.Height > 0
}

func (s *youtubeStream) bitrate() int {
	if s.format.Bitrate > 0 {
		return s.format.Bitrate
	}
	return s.format.AverageBitrate
}

// Download writes the stream to dir/<title>.<container>, or to "<title> (n).<container>"
// when that name is taken. A partial file is removed on error.
func (s *youtubeStream) Download(ctx context.Context, dir string, progress ProgressFunc) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	name := platform.SanitizeFileName(s.video.Title)
	if name == "" {
		name = s.video.ID
	}
	path, err := platform.NextAvailablePath(filepath.Join(dir, name+"."+s.Container()))
	if err != nil {
		return "", fmt.Errorf("choose file name: %w", err)
	}

	stream, size, err := s.client.GetStreamContext(ctx, s.video, s.format)
	if err != nil {
		return "", fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	// O_EXCL: never truncate a file that appeared after the name was chosen
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePermissions)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	counter := newProgressWriter(ctx, size, progress)
	_, err = io.Copy(io.MultiWriter(file, counter), stream)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func betterStream(candidate, current *youtubeStream) bool {
	if candidate.format.Height != current.format.Height {
		return candidate.format.Height > current.format.Height
	}
	return candidate.bitrate() > current.bitrate()
}

// containerFromMime maps "video/webm; codecs=..." to "webm" and "audio/mp4" to "m4a".
func containerFromMime(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	parts := strings.Split(strings.ToLower(strings.TrimSpace(mime)), "/")
	if len(parts) != 2 || parts[1] == "" {
		return DefaultContainer
	}
	switch {
	case parts[0] == "audio" && parts[1] == "mp4":
		return "m4a"
	case parts[1] == "3gpp":
		return "3gp"
	default:
		return parts[1]
	}
}
