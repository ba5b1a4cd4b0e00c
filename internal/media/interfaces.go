package media

import (
	"context"
	"strings"
)

// ProgressFunc receives the bytes written so far and the expected total (0 if unknown).
type ProgressFunc func(written, total int64)

// Stream is one downloadable variant of a remote video.
type Stream interface {
	// Container returns the file extension of the stream, e.g. "mp4" or "webm".
	Container() string
	AudioOnly() bool
	// Resolution returns the frame height, 0 for audio-only streams.
	Resolution() int
	// Download writes the stream into dir and returns the created file path.
	Download(ctx context.Context, dir string, progress ProgressFunc) (string, error)
}

// Video is a resolved remote video.
type Video interface {
	Title() string
	Streams() StreamList
	// HighestResolution returns the best stream carrying both audio and video, or nil.
	HighestResolution() Stream
}

// Fetcher resolves links into videos.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Video, error)
}

// StreamList is an ordered list of streams.
type StreamList []Stream

// Filter returns the streams for which keep is true, preserving order
func (l StreamList) Filter(keep func(Stream) bool) StreamList {
	var out StreamList
	for _, s := range l {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// WithContainer keeps streams whose container equals ext (case-insensitive)
func (l StreamList) WithContainer(ext string) StreamList {
	ext = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
	return l.Filter(func(s Stream) bool {
		return strings.EqualFold(s.Container(), ext)
	})
}

// OnlyAudio keeps audio-only streams
func (l StreamList) OnlyAudio() StreamList {
	return l.Filter(func(s Stream) bool { return s.AudioOnly() })
}

// First returns the first stream or nil
func (l StreamList) First() Stream {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}
