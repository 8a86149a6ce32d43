package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
)

// subtitleMarker tags transcript content so the generator knows its origin.
const subtitleMarker = "【影片字幕】："

// planOutcome is the typed result of one acquisition plan. The extractor
// advances to plan B on rejected or fault, never on accepted, and no plan
// runs more than once per invocation.
type planOutcome int

const (
	planAccepted planOutcome = iota
	planRejected
	planFault
)

type planResult struct {
	outcome planOutcome
	content string // accepted transcript, marker included
	reason  string // rejection reason
	err     error  // plan fault
}

// extractVideo acquires video content through a two-plan fallback chain:
// plan A pulls a text transcript from existing subtitles; plan B downloads
// audio and uploads it for remote transcription.
func (p *implPipeline) extractVideo(ctx context.Context, st *State) Update {
	logs := []string{"--- [step 2-A] video source ---"}

	apiKey := st.APIKey
	if apiKey == "" {
		apiKey = p.defaultKey
	}

	logs = append(logs, "plan A: downloading subtitles via yt-dlp (media skipped)...")
	res, planLogs := p.tryTranscript(ctx, st.Input)
	logs = append(logs, planLogs...)

	switch res.outcome {
	case planAccepted:
		return Update{Content: &res.content, Err: strPtr(""), Logs: logs}
	case planRejected:
		logs = append(logs, "plan A rejected: "+res.reason)
	case planFault:
		logs = append(logs, "plan A failed: "+res.err.Error())
	}

	if apiKey == "" {
		msg := ErrMissingAPIKey.Error() + ": cannot transcribe audio"
		logs = append(logs, "plan B aborted: "+msg)
		return Update{Err: &msg, Logs: logs}
	}

	logs = append(logs, "plan B: downloading audio for remote transcription...")
	handle, planBLogs, err := p.tryAudio(ctx, st.Input, apiKey)
	logs = append(logs, planBLogs...)
	if err != nil {
		msg := err.Error()
		return Update{Err: &msg, Logs: append(logs, "plan B failed: "+msg)}
	}

	return Update{Media: handle, Err: strPtr(""), Logs: logs}
}

// tryTranscript is plan A. Every transient artifact carrying this run's
// prefix is removed on every exit path; removal failures never escalate.
func (p *implPipeline) tryTranscript(ctx context.Context, url string) (planResult, []string) {
	var logs []string

	prefix := "sub_" + uuid.NewString()[:8]
	dir := p.cfg.Paths.Temp
	defer p.removeArtifacts(ctx, dir, prefix)

	files, err := p.captions.DownloadCaptions(ctx, url, p.cfg.Subtitle.Languages, dir, prefix)
	if err != nil {
		return planResult{outcome: planFault, err: err}, logs
	}
	if len(files) == 0 {
		logs = append(logs, "yt-dlp finished but produced no subtitle file (video may have none)")
		return planResult{outcome: planRejected, reason: ErrSubtitleUnavailable.Error()}, logs
	}

	logs = append(logs, "subtitle file downloaded: "+filepath.Base(files[0]))

	raw, err := os.ReadFile(files[0])
	if err != nil {
		return planResult{outcome: planFault, err: err}, logs
	}

	transcript := cleanTranscript(string(raw))
	length := utf8.RuneCountInString(transcript)
	if length <= p.cfg.Subtitle.MinTranscriptChars {
		logs = append(logs, "cleaned transcript too short, treating as empty placeholder")
		return planResult{outcome: planRejected, reason: ErrSubtitleTooShort.Error()}, logs
	}

	logs = append(logs, fmt.Sprintf("subtitle cleaned, %d chars", length))
	return planResult{outcome: planAccepted, content: subtitleMarker + "\n" + transcript}, logs
}

// tryAudio is plan B: best-audio download to a run-unique temp file, then
// upload to the generation backend. The local file is deleted right after
// the upload returns, whatever its outcome.
func (p *implPipeline) tryAudio(ctx context.Context, url, apiKey string) (*MediaHandle, []string, error) {
	var logs []string

	dest := filepath.Join(p.cfg.Paths.Temp, "audio_"+uuid.NewString()[:8]+".m4a")
	if err := p.audio.DownloadAudio(ctx, url, dest); err != nil {
		return nil, logs, fmt.Errorf("%w: %v", ErrVideoProcessing, err)
	}
	logs = append(logs, "audio downloaded, uploading to Gemini...")

	handle, err := p.uploads.Upload(ctx, apiKey, dest)
	if _, statErr := os.Stat(dest); statErr == nil {
		if rmErr := os.Remove(dest); rmErr != nil {
			p.logger.Warn(ctx, "failed to remove temp audio %s: %v", dest, rmErr)
		}
	}
	if err != nil {
		return nil, logs, fmt.Errorf("%w: %v", ErrVideoProcessing, err)
	}

	logs = append(logs, "upload complete (uri: "+handle.URI+")")
	return handle, logs, nil
}

// removeArtifacts deletes every file in dir whose name starts with prefix.
// Failures are logged and swallowed.
func (p *implPipeline) removeArtifacts(ctx context.Context, dir, prefix string) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*"))
	if err != nil {
		p.logger.Warn(ctx, "artifact glob failed for prefix %s: %v", prefix, err)
		return
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			p.logger.Warn(ctx, "failed to remove artifact %s: %v", path, err)
		} else {
			p.logger.Debug(ctx, "removed artifact: %s", path)
		}
	}
}
