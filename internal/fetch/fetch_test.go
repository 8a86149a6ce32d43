package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
)

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>t</title><style>p{color:red}</style></head>
<body><script>var x = 1;</script><h1>Headline</h1><p>First paragraph.</p><p>Second paragraph.</p></body></html>`))
	}))
	defer srv.Close()

	f := New(logger.New("error"))
	text, err := f.FetchPage(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Headline")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second paragraph.")
	assert.NotContains(t, text, "var x", "script content must be dropped")
	assert.NotContains(t, text, "color:red", "style content must be dropped")
}

func TestFetchPageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := New(logger.New("error"))
	_, err := f.FetchPage(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchPageUnreachable(t *testing.T) {
	f := New(logger.New("error"))
	_, err := f.FetchPage(context.Background(), "http://127.0.0.1:1/nope")
	assert.Error(t, err)
}

func TestExtractText(t *testing.T) {
	text, err := extractText(strings.NewReader(
		`<div>  hello  <noscript>hidden</noscript><span>world</span></div>`))
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", text)
}
