package catalog

import "fmt"

// FetchErrorType represents the type of catalog fetch error.
type FetchErrorType int

const (
	// FetchFailed indicates the request could not be made or completed.
	FetchFailed FetchErrorType = iota
	// FetchBadStatus indicates the service answered with a non-200 status.
	FetchBadStatus
	// FetchParseFailed indicates the body did not match the expected shape.
	FetchParseFailed
	// FetchEmpty indicates the service returned no usable versions.
	FetchEmpty
)

// String returns the string representation of the error type.
func (t FetchErrorType) String() string {
	switch t {
	case FetchFailed:
		return "FetchFailed"
	case FetchBadStatus:
		return "BadStatus"
	case FetchParseFailed:
		return "ParseFailed"
	case FetchEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// FetchError represents a failure to load a version list from its source.
type FetchError struct {
	// Type is the error type classification.
	Type FetchErrorType
	// Source is the catalog source name (e.g., "minecraft", "skript").
	Source string
	// URL is the endpoint that was queried.
	URL string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s catalog [%s] from '%s': %s: %v", e.Source, e.Type, e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s catalog [%s] from '%s': %s", e.Source, e.Type, e.URL, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newFetchError(typ FetchErrorType, source, url, message string, cause error) *FetchError {
	return &FetchError{
		Type:    typ,
		Source:  source,
		URL:     url,
		Message: message,
		Cause:   cause,
	}
}
