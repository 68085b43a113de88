package dataset

import "fmt"

// FetchError means the dataset resource could not be reached or read:
// network failure, non-2xx status, or an unreadable file. The load is
// aborted; callers surface a terminal error with a retry path.
type FetchError struct {
	Source string
	Status int // HTTP status when non-zero
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the fetched bytes are not a usable CSV dataset:
// missing header, missing required columns, or structural malformation.
// Row-level defects never produce a ParseError; they are dropped.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
