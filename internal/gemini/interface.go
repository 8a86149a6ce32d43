package gemini

import (
	"context"

	"github.com/nguyentantai21042004/omni-summarizer/internal/pipeline"
)

// Client is the Gemini-backed implementation of the pipeline's media and
// generation collaborators.
type Client interface {
	Upload(ctx context.Context, apiKey, path string) (*pipeline.MediaHandle, error)
	Status(ctx context.Context, apiKey string, handle *pipeline.MediaHandle) (pipeline.MediaState, error)
	Generate(ctx context.Context, apiKey string, req pipeline.GenerateRequest) (string, error)
}
