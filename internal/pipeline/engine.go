package pipeline

import "context"

const (
	StepClassify = "classify"
	StepExtract  = "extract"
	StepGenerate = "generate"
)

// Run executes the pipeline for a single input and streams progress
// events. The channel is unbuffered on purpose: the engine suspends after
// each step until the observer has consumed that step's delta. Steps run
// strictly sequentially, each at most once, and the terminal event always
// carries the final summary.
func (p *implPipeline) Run(ctx context.Context, input, apiKey string) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		st := &State{Input: input, APIKey: apiKey}
		seen := make(map[string]bool)

		emit := func(step string, done bool) bool {
			ev := Event{Step: step, Logs: unseenLines(seen, st.Logs), Done: done}
			if done {
				ev.Summary = st.Summary
			}
			select {
			case events <- ev:
				return true
			case <-ctx.Done():
				return false
			}
		}

		st.apply(p.classify(st))
		if !emit(StepClassify, false) {
			return
		}

		var update Update
		switch st.Category {
		case CategoryVideo:
			update = p.extractVideo(ctx, st)
		case CategoryWeb:
			update = p.extractWeb(ctx, st)
		case CategoryText:
			update = p.extractText(st)
		default:
			// Classify is total over the three routable categories,
			// so this branch is unreachable.
			update = Update{Err: strPtr("unclassified input")}
		}
		st.apply(update)
		if !emit(StepExtract, false) {
			return
		}

		st.apply(p.summarize(ctx, st))
		emit(StepGenerate, true)
	}()

	return events
}

// unseenLines returns the log lines not yet surfaced to the observer, in
// order, and marks them seen. Duplicates are suppressed here, at the
// observation boundary; the state log itself keeps every entry.
func unseenLines(seen map[string]bool, logs []string) []string {
	var fresh []string
	for _, line := range logs {
		if !seen[line] {
			seen[line] = true
			fresh = append(fresh, line)
		}
	}
	return fresh
}
