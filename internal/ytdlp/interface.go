package ytdlp

import "context"

// Client wraps the yt-dlp binary for the two downloads the pipeline needs.
type Client interface {
	// DownloadCaptions fetches subtitle files for url into dir, named with
	// filePrefix, without downloading the media itself. Returns the paths
	// of the .vtt artifacts produced, which may be empty.
	DownloadCaptions(ctx context.Context, url string, languages []string, dir, filePrefix string) ([]string, error)
	// DownloadAudio downloads the best available audio-only rendition of
	// url to destPath.
	DownloadAudio(ctx context.Context, url, destPath string) error
}
