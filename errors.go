package harvester

import "fmt"

// NetworkError means the page fetch failed: connection error, timeout or
// a non-success HTTP status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the fetched content did not contain the expected proxy
// table, usually because the upstream page format changed.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError means the resolved output path could not be written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
