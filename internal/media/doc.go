package media

// Package media is the media-fetch capability: it resolves a link into a list
// of downloadable streams and transfers a chosen stream to disk. The YouTube
// implementation is built on github.com/kkdai/youtube/v2.
