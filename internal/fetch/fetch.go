package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const userAgent = "Mozilla/5.0 (compatible; omni-summarizer/1.0)"

// FetchPage downloads the page and reduces its HTML to plain text, one
// line per text node, script and style content dropped.
func (f *implFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	text, err := extractText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	f.logger.Debug(ctx, "fetched %s (%d bytes of text)", url, len(text))
	return text, nil
}

// extractText walks the HTML token stream and keeps visible text nodes.
func extractText(r io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(r)

	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return b.String(), nil
			}
			return "", tokenizer.Err()

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
	}
}

func isInvisible(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "head", "iframe":
		return true
	default:
		return false
	}
}
