package pipeline

import (
	"regexp"
	"strings"
)

// inlineTags matches inline subtitle markup such as <c.colorE5E5E5>.
var inlineTags = regexp.MustCompile(`<[^>]+>`)

// cleanTranscript strips VTT structure from raw subtitle content: the
// format header, blank lines, time-range lines, inline markup tags, and
// lines that repeat the immediately preceding retained line (auto-captions
// often re-emit the previous cue).
func cleanTranscript(raw string) string {
	var kept []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "WEBVTT") || strings.Contains(line, "-->") {
			continue
		}
		line = strings.TrimSpace(inlineTags.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		if len(kept) > 0 && kept[len(kept)-1] == line {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
