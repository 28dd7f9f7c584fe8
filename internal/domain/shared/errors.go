package shared

import "fmt"

// DomainError represents a domain-level error with a machine-readable code.
// The HTTP boundary maps codes to status codes; the core never does.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Error codes used across the core
const (
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodeUnsupportedOperation = "UNSUPPORTED_OPERATION"
	CodeDependencyConflict   = "DEPENDENCY_CONFLICT"
	CodePersistence          = "PERSISTENCE_ERROR"
	CodeHistoryWrite         = "HISTORY_WRITE_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrUnauthorized = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden    = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
)

// NewNotFound reports a missing row for the given entity name and id.
func NewNotFound(entity string, id uint) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// NewValidation reports malformed client input.
func NewValidation(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

// NewUnsupportedOperation reports an unsupported filter or sort operator.
func NewUnsupportedOperation(message string) *DomainError {
	return &DomainError{Code: CodeUnsupportedOperation, Message: message}
}

// NewDependencyConflict reports a refused mutation due to dependent rows.
// The message names the blocking relationship so clients can act on it.
func NewDependencyConflict(message string) *DomainError {
	return &DomainError{Code: CodeDependencyConflict, Message: message}
}

// NewPersistence wraps an underlying store failure. The message stays generic
// for clients; the cause is carried for diagnostics.
func NewPersistence(cause error) *DomainError {
	return &DomainError{
		Code:    CodePersistence,
		Message: "A persistence error occurred, please try again",
		Cause:   cause,
	}
}

// NewUnauthorized reports a missing or invalid credential.
func NewUnauthorized(message string) *DomainError {
	return &DomainError{Code: CodeUnauthorized, Message: message}
}

// NewHistoryWrite marks the case where the primary mutation succeeded but the
// audit history row could not be written. It is never converted into a
// rollback of the primary action.
func NewHistoryWrite(cause error) *DomainError {
	return &DomainError{
		Code:    CodeHistoryWrite,
		Message: "The action succeeded but history logging failed",
		Cause:   cause,
	}
}
