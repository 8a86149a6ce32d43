package pipeline

// extractText passes the raw input through as content. It has no failure
// mode.
func (p *implPipeline) extractText(st *State) Update {
	return Update{
		Content: strPtr(st.Input),
		Err:     strPtr(""),
		Logs:    []string{"--- [step 2-C] plain text ---"},
	}
}
