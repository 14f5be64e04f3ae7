package models

import (
	"errors"
	"fmt"
)

// Kinds of failure a download can end with. Match them with errors.Is.
var (
	ErrFetch          = errors.New("fetch failed")
	ErrDecode         = errors.New("decode failed")
	ErrHeaderMissing  = errors.New("no content-disposition header")
	ErrUnsafeFilename = errors.New("unsafe filename")
	ErrWrite          = errors.New("write failed")
)

// AttemptError ties a failure kind to the url it happened on.
type AttemptError struct {
	Kind error
	URL  string
	Err  error // underlying cause, may be nil
}

func NewAttemptError(kind error, url string, err error) *AttemptError {
	return &AttemptError{Kind: kind, URL: url, Err: err}
}

func (e *AttemptError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.URL, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.URL, e.Kind, e.Err)
}

func (e *AttemptError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
