package model

import (
	"strings"

	"github.com/google/uuid"
)

// RequestIDPrefix prefixes every request ID in logs
const RequestIDPrefix = "request-"

// DownloadRequest is what one click on the download button asks for.
// It lives only while that click is being handled.
type DownloadRequest struct {
	ID          string
	URL         string
	Video       VideoFormat
	Audio       AudioFormat
	Destination string // chosen directory, empty until the user picks one
}

// NewDownloadRequest builds a request from the current field values
func NewDownloadRequest(url string, video VideoFormat, audio AudioFormat) *DownloadRequest {
	return &DownloadRequest{
		ID:    generateRequestID(),
		URL:   strings.TrimSpace(url),
		Video: video,
		Audio: audio,
	}
}

// HasFormat returns false when both selectors are at their placeholder
func (r *DownloadRequest) HasFormat() bool {
	return r.Video.IsSet() || r.Audio.IsSet()
}

func generateRequestID() string {
	return RequestIDPrefix + uuid.NewString()
}
