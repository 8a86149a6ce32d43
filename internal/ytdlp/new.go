package ytdlp

import (
	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
	"github.com/nguyentantai21042004/omni-summarizer/pkg/executor"
)

const defaultBinary = "yt-dlp"

type implClient struct {
	exec   executor.Executor
	logger logger.Logger
	binary string
}

// New creates a Client that shells out to yt-dlp on PATH.
func New(exec executor.Executor, log logger.Logger) Client {
	return &implClient{
		exec:   exec,
		logger: log,
		binary: defaultBinary,
	}
}
