package fetch

import "context"

// Fetcher retrieves the readable text of a web page.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}
