package gemini

import (
	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
)

type implClient struct {
	model  string
	logger logger.Logger
}

// New creates a Client for the given model. The API key is supplied per
// call so concurrent runs with different keys never share client state.
func New(model string, log logger.Logger) Client {
	return &implClient{
		model:  model,
		logger: log,
	}
}
