package fetch

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
)

type implFetcher struct {
	client *http.Client
	logger logger.Logger
}

// New creates a Fetcher with a bounded request timeout.
func New(log logger.Logger) Fetcher {
	return &implFetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: log,
	}
}
