package pipeline

import "context"

// Pipeline runs the classify -> extract -> summarize workflow for a single
// input and exposes the run as an incremental event stream.
type Pipeline interface {
	// Run starts a run for input. apiKey is an optional per-run override
	// of the default key supplied at construction. The returned channel
	// delivers one event per completed step, in step order, and is closed
	// after the terminal event.
	Run(ctx context.Context, input, apiKey string) <-chan Event
}

// Event is one observable delta of a run. Logs contains only lines the
// observer has not seen yet for this run; the terminal event carries the
// final summary.
type Event struct {
	Step    string
	Logs    []string
	Summary string
	Done    bool
}

// MediaState is the remote-side processing status of uploaded media.
type MediaState string

const (
	MediaPending MediaState = "pending"
	MediaReady   MediaState = "ready"
	MediaFailed  MediaState = "failed"
)

// MediaHandle is an opaque reference to media uploaded to the generation
// backend. The pipeline only reads its identity and status.
type MediaHandle struct {
	Name     string
	URI      string
	MIMEType string
}

// GenerateRequest is the assembled input for one generation call. Media,
// when set, references remotely uploaded content instead of inline text.
type GenerateRequest struct {
	Prompt string
	Media  *MediaHandle
}

// PageFetcher retrieves the text of a web page.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// CaptionDownloader fetches subtitle artifacts for a video URL into dir,
// named with filePrefix, without downloading the media itself. It returns
// the paths of the artifacts produced, which may be empty.
type CaptionDownloader interface {
	DownloadCaptions(ctx context.Context, url string, languages []string, dir, filePrefix string) ([]string, error)
}

// AudioDownloader downloads the best available audio-only rendition of a
// video URL to destPath.
type AudioDownloader interface {
	DownloadAudio(ctx context.Context, url, destPath string) error
}

// MediaUploader uploads local media to the generation backend and reports
// its remote processing status.
type MediaUploader interface {
	Upload(ctx context.Context, apiKey, path string) (*MediaHandle, error)
	Status(ctx context.Context, apiKey string, handle *MediaHandle) (MediaState, error)
}

// Generator produces a text summary from an assembled request.
type Generator interface {
	Generate(ctx context.Context, apiKey string, req GenerateRequest) (string, error)
}
