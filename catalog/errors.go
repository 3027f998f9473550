package catalog

import "fmt"

// NetworkError reports a fetch that did not produce a body: a transport
// failure, a cancelled request or a non-2xx status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a manifest that is not valid JSON even after sanitizing.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
