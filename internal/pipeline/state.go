package pipeline

// Category classifies the raw input into one of the routable source types.
type Category string

const (
	CategoryVideo Category = "video"
	CategoryWeb   Category = "web"
	CategoryText  Category = "text"
	// CategoryUnknown exists only as the zero-ish default before
	// classification; Classify never returns it.
	CategoryUnknown Category = "unknown"
)

// State is the single mutable record threaded through one run. Input and
// APIKey are immutable after creation; every other field is written by at
// most one step through apply.
type State struct {
	Input    string
	APIKey   string
	Category Category
	Content  string
	Media    *MediaHandle
	Err      string
	Summary  string
	Logs     []string
}

// Update is the partial result of one step. Nil scalar fields leave the
// state untouched, non-nil fields overwrite (a pointer to the zero value
// is an explicit clear). Logs always append.
type Update struct {
	Category *Category
	Content  *string
	Media    *MediaHandle
	Err      *string
	Summary  *string
	Logs     []string
}

// apply merges a step's update into the state. The log is append-only; no
// step can remove or rewrite another step's entries.
func (s *State) apply(u Update) {
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Content != nil {
		s.Content = *u.Content
	}
	if u.Media != nil {
		s.Media = u.Media
	}
	if u.Err != nil {
		s.Err = *u.Err
	}
	if u.Summary != nil {
		s.Summary = *u.Summary
	}
	s.Logs = append(s.Logs, u.Logs...)
}

func strPtr(s string) *string { return &s }
