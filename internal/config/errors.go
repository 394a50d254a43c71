package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrBadConfig indicates a malformed or schema-violating document.
	ErrBadConfig = errors.New("bad config")
)

// ParseError represents a structural failure: a document that was read
// successfully but is malformed or violates the configuration schema,
// including schema violations found while materializing editor settings.
// A ParseError always aborts the whole load; it is never silently skipped.
type ParseError struct {
	// Source names the document that failed ("global" or "workspace",
	// or a file path when loaded from disk).
	Source string
	// Message describes the failure.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s config: %s", e.Source, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrBadConfig
}

// badConfig wraps err as a structural failure for the named document.
func badConfig(source string, err error) *ParseError {
	return &ParseError{Source: source, Message: err.Error(), Err: err}
}

// isParseError reports whether err is a structural failure. Every other
// error is an availability failure: the document could not be obtained
// and its layer contributes nothing.
func isParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
