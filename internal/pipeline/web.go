package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// blankRuns matches runs of blank lines so they can be collapsed to a
// single paragraph break.
var blankRuns = regexp.MustCompile(`\n\s*\n`)

// extractWeb fetches the page behind the input URL and normalizes its
// whitespace. Collaborator faults land in the error field; the run still
// proceeds to the generator, which decides whether they block generation.
func (p *implPipeline) extractWeb(ctx context.Context, st *State) Update {
	logs := []string{"--- [step 2-B] fetch web page ---"}

	doc, err := p.pages.FetchPage(ctx, st.Input)
	if err != nil {
		msg := err.Error()
		return Update{Err: &msg, Logs: append(logs, "page fetch failed: "+msg)}
	}
	if strings.TrimSpace(doc) == "" {
		msg := ErrEmptyFetch.Error()
		return Update{Err: &msg, Logs: append(logs, "page fetch returned no document")}
	}

	content := blankRuns.ReplaceAllString(doc, "\n\n")
	logs = append(logs, fmt.Sprintf("page fetched, %d chars after cleanup", utf8.RuneCountInString(content)))
	return Update{Content: &content, Err: strPtr(""), Logs: logs}
}
