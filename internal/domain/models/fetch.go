package models

import "fmt"

// FetchResult is a completed fetch: any terminal HTTP status counts, error
// statuses included. FinalURL is the URL after redirect resolution.
type FetchResult struct {
	StatusCode int
	FinalURL   string
	Body       string
}

// FailureKind categorizes transport-level fetch failures.
type FailureKind int

const (
	FailureInvalidURL FailureKind = iota
	FailureTimeout
	FailureConnection
	FailureTooManyRedirects
)

func (k FailureKind) String() string {
	switch k {
	case FailureInvalidURL:
		return "invalid url"
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection error"
	case FailureTooManyRedirects:
		return "too many redirects"
	}
	return "unknown"
}

// FetchError is a fetch that never produced a terminal HTTP response.
type FetchError struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
