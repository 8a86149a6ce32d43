package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMergeSemantics(t *testing.T) {
	st := &State{Input: "x", Logs: []string{"first"}}

	// Nil fields leave the state untouched; logs always append.
	st.apply(Update{Logs: []string{"second"}})
	assert.Equal(t, "", st.Content)
	assert.Equal(t, []string{"first", "second"}, st.Logs)

	// Non-nil scalars overwrite.
	cat := CategoryWeb
	st.apply(Update{Category: &cat, Content: strPtr("body"), Err: strPtr("boom")})
	assert.Equal(t, CategoryWeb, st.Category)
	assert.Equal(t, "body", st.Content)
	assert.Equal(t, "boom", st.Err)

	// A pointer to the zero value is an explicit clear.
	st.apply(Update{Err: strPtr("")})
	assert.Equal(t, "", st.Err)
	assert.Equal(t, "body", st.Content, "unrelated fields keep their values")

	// Media overwrites once set.
	h := &MediaHandle{Name: "files/abc"}
	st.apply(Update{Media: h})
	assert.Same(t, h, st.Media)
}

func TestApplyLogIsAppendOnly(t *testing.T) {
	st := &State{}
	st.apply(Update{Logs: []string{"a", "b"}})
	st.apply(Update{Logs: []string{"a"}})

	// Duplicates stay in storage; suppression happens at the observation
	// boundary only.
	assert.Equal(t, []string{"a", "b", "a"}, st.Logs)
}
