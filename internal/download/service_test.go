package download

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/ytsave/internal/media"
	"github.com/ytget/ytsave/internal/media/mediatest"
	"github.com/ytget/ytsave/internal/model"
)

type fixture struct {
	best  *mediatest.Stream
	webm  *mediatest.Stream
	audio *mediatest.Stream
	video *mediatest.Video
}

func newFixture() *fixture {
	f := &fixture{
		best:  &mediatest.Stream{Name: "best", Ext: "mp4", Height: 720, Size: 2048},
		webm:  &mediatest.Stream{Name: "webm", Ext: "webm", Height: 1080},
		audio: &mediatest.Stream{Name: "audio", Ext: "m4a", Audio: true},
	}
	f.video = &mediatest.Video{
		Name: "Test",
		List: media.StreamList{f.best, f.webm, f.audio},
		Best: f.best,
	}
	return f
}

func TestResolveWithoutFormatSkipsFetcher(t *testing.T) {
	fetcher := &mediatest.Fetcher{Video: newFixture().video}
	service := NewService(fetcher)

	req := model.NewDownloadRequest("https://youtube.com/watch?v=test", model.VideoFormatUnset, model.AudioFormatUnset)
	stream, err := service.Resolve(context.Background(), req)

	if !errors.Is(err, ErrNoFormat) {
		t.Errorf("Expected ErrNoFormat, got %v", err)
	}
	if stream != nil {
		t.Errorf("Expected nil stream, got %v", stream)
	}
	if len(fetcher.URLs()) != 0 {
		t.Errorf("Expected fetcher not to be called, got %v", fetcher.URLs())
	}
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name     string
		video    model.VideoFormat
		audio    model.AudioFormat
		expected func(*fixture) media.Stream
	}{
		{"mp4 highest resolution", model.VideoFormatMP4, model.AudioFormatUnset, func(f *fixture) media.Stream { return f.best }},
		{"mkv first webm", model.VideoFormatMKV, model.AudioFormatUnset, func(f *fixture) media.Stream { return f.webm }},
		{"mp3 first audio", model.VideoFormatUnset, model.AudioFormatMP3, func(f *fixture) media.Stream { return f.audio }},
		{"video wins over audio", model.VideoFormatMP4, model.AudioFormatMP3, func(f *fixture) media.Stream { return f.best }},
		{"mkv wins over audio", model.VideoFormatMKV, model.AudioFormatMP3, func(f *fixture) media.Stream { return f.webm }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture()
			fetcher := &mediatest.Fetcher{Video: f.video}
			service := NewService(fetcher)

			req := model.NewDownloadRequest("https://youtube.com/watch?v=test", test.video, test.audio)
			stream, err := service.Resolve(context.Background(), req)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if stream != test.expected(f) {
				t.Errorf("Selected wrong stream: %v", stream)
			}
			if urls := fetcher.URLs(); len(urls) != 1 || urls[0] != req.URL {
				t.Errorf("Expected one fetch of %s, got %v", req.URL, urls)
			}
		})
	}
}

func TestResolveFallsBackToAudioWhenVideoMissing(t *testing.T) {
	f := newFixture()
	f.video.List = media.StreamList{f.best, f.audio} // no webm

	service := NewService(&mediatest.Fetcher{Video: f.video})
	req := model.NewDownloadRequest("u", model.VideoFormatMKV, model.AudioFormatMP3)

	stream, err := service.Resolve(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stream != f.audio {
		t.Errorf("Expected audio stream, got %v", stream)
	}
}

func TestResolveNoStream(t *testing.T) {
	video := &mediatest.Video{Name: "empty"}
	service := NewService(&mediatest.Fetcher{Video: video})

	for _, req := range []*model.DownloadRequest{
		model.NewDownloadRequest("u", model.VideoFormatMP4, model.AudioFormatUnset),
		model.NewDownloadRequest("u", model.VideoFormatMKV, model.AudioFormatMP3),
	} {
		stream, err := service.Resolve(context.Background(), req)
		if !errors.Is(err, ErrNoStream) {
			t.Errorf("Expected ErrNoStream, got %v", err)
		}
		if stream != nil {
			t.Errorf("Expected nil stream, got %v", stream)
		}
	}
}

func TestResolveFetchError(t *testing.T) {
	cause := errors.New("video unavailable")
	service := NewService(&mediatest.Fetcher{Err: cause})

	req := model.NewDownloadRequest("bad link", model.VideoFormatMP4, model.AudioFormatUnset)
	_, err := service.Resolve(context.Background(), req)

	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "video unavailable") {
		t.Errorf("Expected error text to carry the cause, got %s", err)
	}
}

func TestResolveRecoversPanic(t *testing.T) {
	service := NewService(&mediatest.Fetcher{Panic: "nil pointer"})

	req := model.NewDownloadRequest("u", model.VideoFormatMP4, model.AudioFormatUnset)
	stream, err := service.Resolve(context.Background(), req)

	if err == nil || !strings.Contains(err.Error(), "nil pointer") {
		t.Errorf("Expected panic converted to error, got %v", err)
	}
	if stream != nil {
		t.Errorf("Expected nil stream, got %v", stream)
	}
}

func TestDownload(t *testing.T) {
	f := newFixture()
	service := NewService(&mediatest.Fetcher{Video: f.video})
	dir := t.TempDir()

	req := model.NewDownloadRequest("u", model.VideoFormatMP4, model.AudioFormatUnset)
	req.Destination = dir

	var last int64
	path, err := service.Download(context.Background(), req, f.best, func(written, total int64) {
		last = written
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, "best.mp4") {
		t.Errorf("Unexpected path %s", path)
	}
	if last != f.best.Size {
		t.Errorf("Expected progress to reach %d, got %d", f.best.Size, last)
	}
	if dirs := f.best.Downloads(); len(dirs) != 1 || dirs[0] != dir {
		t.Errorf("Expected one download into %s, got %v", dir, dirs)
	}
	if len(f.audio.Downloads()) != 0 {
		t.Error("Audio stream must not be downloaded")
	}
}

func TestDownloadWithoutDestination(t *testing.T) {
	f := newFixture()
	service := NewService(&mediatest.Fetcher{Video: f.video})

	req := model.NewDownloadRequest("u", model.VideoFormatMP4, model.AudioFormatUnset)
	_, err := service.Download(context.Background(), req, f.best, nil)

	if !errors.Is(err, ErrNoDestination) {
		t.Errorf("Expected ErrNoDestination, got %v", err)
	}
	if len(f.best.Downloads()) != 0 {
		t.Error("Stream must not be downloaded without a destination")
	}
}

func TestDownloadError(t *testing.T) {
	cause := errors.New("connection reset")
	stream := &mediatest.Stream{Name: "x", Ext: "mp4", Err: cause}
	service := NewService(&mediatest.Fetcher{})

	req := model.NewDownloadRequest("u", model.VideoFormatMP4, model.AudioFormatUnset)
	req.Destination = t.TempDir()

	if _, err := service.Download(context.Background(), req, stream, nil); !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause, got %v", err)
	}
}
