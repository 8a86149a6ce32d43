package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/omni-summarizer/internal/config"
	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:  t.TempDir(),
			Output: t.TempDir(),
			Temp:   t.TempDir(),
		},
	}
	require.NoError(t, cfg.Validate())
	cfg.Gemini.PollInterval = config.Duration(time.Millisecond)
	return cfg
}

func newTestPipeline(cfg *config.Config, defaultKey string, deps Deps) *implPipeline {
	return New(cfg, defaultKey, deps, logger.New("error")).(*implPipeline)
}

type stubPages struct {
	doc   string
	err   error
	calls int
}

func (s *stubPages) FetchPage(ctx context.Context, url string) (string, error) {
	s.calls++
	return s.doc, s.err
}

type stubCaptions struct {
	fn    func(dir, prefix string) ([]string, error)
	calls int
}

func (s *stubCaptions) DownloadCaptions(ctx context.Context, url string, languages []string, dir, filePrefix string) ([]string, error) {
	s.calls++
	if s.fn == nil {
		return nil, nil
	}
	return s.fn(dir, filePrefix)
}

type stubAudio struct {
	err      error
	calls    int
	lastDest string
}

func (s *stubAudio) DownloadAudio(ctx context.Context, url, destPath string) error {
	s.calls++
	s.lastDest = destPath
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(destPath, []byte("audio"), 0644)
}

type stubUploads struct {
	handle      *MediaHandle
	uploadErr   error
	uploadCalls int

	statuses    []MediaState
	statusErr   error
	statusCalls int
}

func (s *stubUploads) Upload(ctx context.Context, apiKey, path string) (*MediaHandle, error) {
	s.uploadCalls++
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return s.handle, nil
}

func (s *stubUploads) Status(ctx context.Context, apiKey string, handle *MediaHandle) (MediaState, error) {
	i := s.statusCalls
	s.statusCalls++
	if s.statusErr != nil {
		return "", s.statusErr
	}
	if i >= len(s.statuses) {
		return s.statuses[len(s.statuses)-1], nil
	}
	return s.statuses[i], nil
}

type stubGenerator struct {
	out     string
	err     error
	calls   int
	lastKey string
	lastReq GenerateRequest
}

func (s *stubGenerator) Generate(ctx context.Context, apiKey string, req GenerateRequest) (string, error) {
	s.calls++
	s.lastKey = apiKey
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

// writeVTT is a stubCaptions fn that writes a single subtitle artifact
// containing body and returns its path.
func writeVTT(t *testing.T, body string) func(dir, prefix string) ([]string, error) {
	t.Helper()
	return func(dir, prefix string) ([]string, error) {
		path := filepath.Join(dir, prefix+".zh-Hant.vtt")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
}
