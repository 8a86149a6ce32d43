package pipeline

import (
	"github.com/nguyentantai21042004/omni-summarizer/internal/config"
	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
)

// Deps bundles the external collaborators the pipeline drives.
type Deps struct {
	Pages     PageFetcher
	Captions  CaptionDownloader
	Audio     AudioDownloader
	Uploads   MediaUploader
	Generator Generator
}

type implPipeline struct {
	cfg        *config.Config
	defaultKey string
	pages      PageFetcher
	captions   CaptionDownloader
	audio      AudioDownloader
	uploads    MediaUploader
	gen        Generator
	logger     logger.Logger
}

// New creates a Pipeline. defaultKey is the process-wide fallback API key;
// individual runs may override it.
func New(cfg *config.Config, defaultKey string, deps Deps, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		defaultKey: defaultKey,
		pages:      deps.Pages,
		captions:   deps.Captions,
		audio:      deps.Audio,
		uploads:    deps.Uploads,
		gen:        deps.Generator,
		logger:     log,
	}
}
