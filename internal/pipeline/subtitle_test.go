package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips header timing and blanks",
			raw:  "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\nhello\n\n00:00:03.000 --> 00:00:05.000\nworld\n",
			want: "hello\nworld",
		},
		{
			name: "suppresses consecutive duplicate lines",
			raw:  "WEBVTT\n\nhello\nhello\nworld\n",
			want: "hello\nworld",
		},
		{
			name: "non-consecutive repeats survive",
			raw:  "hello\nworld\nhello\n",
			want: "hello\nworld\nhello",
		},
		{
			name: "removes inline markup tags",
			raw:  "<c.colorE5E5E5>hello</c> <b>world</b>\n",
			want: "hello world",
		},
		{
			name: "line reduced to nothing by tags is dropped",
			raw:  "<c.colorE5E5E5></c>\nhello\n",
			want: "hello",
		},
		{
			name: "duplicate detected after tag removal",
			raw:  "hello\n<b>hello</b>\nworld\n",
			want: "hello\nworld",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTranscript(tt.raw))
		})
	}
}
