// Package mediatest provides in-memory media.Fetcher, media.Video and
// media.Stream implementations for tests.
package mediatest

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/ytget/ytsave/internal/media"
)

// Stream is a fake stream that records the directories it was downloaded into.
type Stream struct {
	Name   string
	Ext    string
	Audio  bool
	Height int
	Size   int64
	Err    error

	mu   sync.Mutex
	dirs []string
}

func (s *Stream) Container() string { return s.Ext }
func (s *Stream) AudioOnly() bool   { return s.Audio }
func (s *Stream) Resolution() int   { return s.Height }

// Download records dir, reports Size bytes of progress and returns dir/Name.Ext or Err.
func (s *Stream) Download(ctx context.Context, dir string, progress media.ProgressFunc) (string, error) {
	s.mu.Lock()
	s.dirs = append(s.dirs, dir)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	if progress != nil {
		progress(s.Size/2, s.Size)
		progress(s.Size, s.Size)
	}
	return filepath.Join(dir, s.Name+"."+s.Ext), nil
}

// Downloads returns the directories passed to Download so far
func (s *Stream) Downloads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// Video is a fake video with a fixed stream list.
type Video struct {
	Name string
	List media.StreamList
	Best media.Stream
}

func (v *Video) Title() string             { return v.Name }
func (v *Video) Streams() media.StreamList { return v.List }

// HighestResolution returns Best, which may be nil.
func (v *Video) HighestResolution() media.Stream {
	if v.Best == nil {
		return nil
	}
	return v.Best
}

// Fetcher returns Video or Err and records every requested URL.
type Fetcher struct {
	Video media.Video
	Err   error
	Panic any

	mu   sync.Mutex
	urls []string
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (media.Video, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()

	if f.Panic != nil {
		panic(f.Panic)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Video, nil
}

// URLs returns the links passed to Fetch so far
func (f *Fetcher) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.urls))
	copy(out, f.urls)
	return out
}
