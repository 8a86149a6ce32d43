package pipeline

import (
	"fmt"
	"strings"
)

// videoHostMarkers are substrings that identify a video host URL.
var videoHostMarkers = []string{"youtube.com", "youtu.be"}

// Classify maps raw input to a source category. It is total: every input
// maps to exactly one of video, web, or text.
func Classify(input string) Category {
	text := strings.ToLower(strings.TrimSpace(input))

	for _, marker := range videoHostMarkers {
		if strings.Contains(text, marker) {
			return CategoryVideo
		}
	}
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return CategoryWeb
	}
	return CategoryText
}

func (p *implPipeline) classify(st *State) Update {
	category := Classify(st.Input)
	return Update{
		Category: &category,
		Logs: []string{
			"--- [step 1] analyze input ---",
			fmt.Sprintf("detected source type: %s", category),
		},
	}
}
