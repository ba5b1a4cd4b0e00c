package download

import (
	"context"

	"github.com/ytget/ytsave/internal/media"
	"github.com/ytget/ytsave/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Resolve picks the stream to download for req.
	Resolve(ctx context.Context, req *model.DownloadRequest) (media.Stream, error)

	// Download writes stream into req.Destination and returns the file path.
	Download(ctx context.Context, req *model.DownloadRequest, stream media.Stream, progress media.ProgressFunc) (string, error)
}
