package ytdlp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DownloadCaptions asks yt-dlp for manual and auto-generated subtitles in
// the given language preference order. The media itself is never
// downloaded. yt-dlp appends the language and format suffix itself, so the
// caller matches artifacts by prefix.
func (c *implClient) DownloadCaptions(ctx context.Context, url string, languages []string, dir, filePrefix string) ([]string, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("video URL is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(languages, ","),
		"--sub-format", "vtt",
		"--no-playlist",
		"--quiet",
		"-o", filePrefix,
		url,
	}

	c.logger.Debug(ctx, "yt-dlp subtitle download: %s (langs: %s)", url, strings.Join(languages, ","))

	// Run inside dir so the prefix-named artifacts land there.
	if _, err := c.exec.ExecuteInDir(ctx, dir, c.binary, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, filePrefix+"*.vtt"))
	if err != nil {
		return nil, fmt.Errorf("glob subtitle artifacts: %w", err)
	}
	return matches, nil
}

// DownloadAudio fetches the best audio-only rendition to destPath.
func (c *implClient) DownloadAudio(ctx context.Context, url, destPath string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("video URL is required")
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	args := []string{
		"-f", "bestaudio[ext=m4a]/best",
		"-o", destPath,
		"--no-playlist",
		"--quiet",
		url,
	}

	c.logger.Debug(ctx, "yt-dlp audio download: %s -> %s", url, destPath)

	if _, err := c.exec.Execute(ctx, c.binary, args...); err != nil {
		return fmt.Errorf("yt-dlp audio: %w", err)
	}
	return nil
}
