package pipeline

import "errors"

var (
	// ErrEmptyFetch means web extraction returned no document.
	ErrEmptyFetch = errors.New("page fetch returned no document")
	// ErrSubtitleUnavailable means plan A produced no subtitle artifact.
	ErrSubtitleUnavailable = errors.New("no subtitle available")
	// ErrSubtitleTooShort means plan A's cleaned transcript did not meet
	// the acceptance threshold.
	ErrSubtitleTooShort = errors.New("subtitle transcript too short")
	// ErrMissingAPIKey means no key was resolvable where one is required.
	ErrMissingAPIKey = errors.New("no API key available")
	// ErrVideoProcessing means plan B's download or upload faulted.
	ErrVideoProcessing = errors.New("video processing failed")
	// ErrRemoteMedia means uploaded media reached the failed status.
	ErrRemoteMedia = errors.New("remote media processing failed")
)
