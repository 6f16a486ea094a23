package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// CollectFailed indicates the configuration record could not be collected.
	CollectFailed AppErrorType = iota
	// AnswersInvalid indicates an answers file is unreadable or breaks an invariant.
	AnswersInvalid
	// RenderFailed indicates an artifact could not be rendered.
	RenderFailed
	// WriteFailed indicates the scaffold could not be written.
	WriteFailed
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case CollectFailed:
		return "CollectFailed"
	case AnswersInvalid:
		return "AnswersInvalid"
	case RenderFailed:
		return "RenderFailed"
	case WriteFailed:
		return "WriteFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}
