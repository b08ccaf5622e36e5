package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidQuery indicates a query rejected locally, before any network call.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNothingToAnalyze indicates a batch with no non-blank texts.
	ErrNothingToAnalyze = errors.New("nothing to analyze")
)

const (
	unknownError     = "Unknown error"
	emptyErrorObject = "Unknown error (empty error object)"
)

// NetworkError means the transport failed and no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BackendError means a response arrived with a non-success status or an explicit error field.
type BackendError struct {
	StatusCode int
	Status     string // Transport status text, e.g. "500 Internal Server Error"
	Message    string // The body's "error" field, if present
	EmptyBody  bool   // Body was a structurally empty JSON object
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != "" {
		return fmt.Sprintf("backend returned %s", e.Status)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return ""
}

// ImageFetchError means an image could not be fetched or encoded.
// It never leaves the analysis orchestrator.
type ImageFetchError struct {
	URL string
	Err error
}

func (e *ImageFetchError) Error() string {
	return fmt.Sprintf("fetching image %s: %v", e.URL, e.Err)
}

func (e *ImageFetchError) Unwrap() error { return e.Err }

// DescribeError builds the user-facing message for a failed request.
// Preference order: the backend "error" field, the transport text, then a literal
// fallback that tells an empty error object apart from a missing error detail.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var be *BackendError
	if errors.As(err, &be) {
		if msg := strings.TrimSpace(be.Message); msg != "" {
			return msg
		}
		if be.EmptyBody {
			return emptyErrorObject
		}
		if be.Status != "" || be.StatusCode != 0 {
			return be.Error()
		}
		return unknownError
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		if msg := strings.TrimSpace(ne.Error()); msg != "" {
			return msg
		}
		return unknownError
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return unknownError
}
