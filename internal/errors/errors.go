package errors

import (
	"errors"
	"fmt"
)

// Kind represents a category of backend failure surfaced to callers.
type Kind string

const (
	// KindUnauthorized indicates the backend rejected the credential (HTTP 401).
	KindUnauthorized Kind = "unauthorized"
	// KindValidation indicates the backend rejected the payload (HTTP 400/422).
	KindValidation Kind = "validation"
	// KindNotFound indicates the addressed resource does not exist (HTTP 404).
	KindNotFound Kind = "not_found"
	// KindConflict indicates a conflict with existing data (HTTP 409).
	KindConflict Kind = "conflict"
	// KindServerFault indicates the backend failed (HTTP 5xx).
	KindServerFault Kind = "server_fault"
	// KindNetwork indicates no HTTP response was received.
	KindNetwork Kind = "network"
	// KindUnknown covers everything else.
	KindUnknown Kind = "unknown"
)

// ServiceError is the single failure shape returned by every API call.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type ServiceError struct {
	// Kind categorizes the failure
	Kind Kind
	// Message is human-readable text, never empty
	Message string
	// Details is the backend's structured payload passed through verbatim (optional)
	Details any
	// Status is the HTTP status code, zero when no response was received
	Status int
	// Cause is the underlying transport or decode error (optional)
	Cause error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// HasStatus reports whether the error carries a transport status code.
func (e *ServiceError) HasStatus() bool {
	return e.Status != 0
}

// New creates a ServiceError of the given kind.
func New(kind Kind, message string) *ServiceError {
	return &ServiceError{
		Kind:    kind,
		Message: message,
	}
}

// Newf creates a ServiceError of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *ServiceError {
	return &ServiceError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *ServiceError {
	return New(KindUnauthorized, message)
}

// Validation creates a new Validation error carrying backend field details.
func Validation(message string, details any) *ServiceError {
	return &ServiceError{
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *ServiceError {
	return New(KindNotFound, message)
}

// Conflict creates a new Conflict error.
func Conflict(message string) *ServiceError {
	return New(KindConflict, message)
}

// Network wraps a transport failure where no response was received.
func Network(err error, message string) *ServiceError {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Kind:    KindNetwork,
		Message: message,
		Cause:   err,
	}
}

// Wrap wraps an existing error with a ServiceError, preserving the cause.
func Wrap(err error, kind Kind, message string) *ServiceError {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// KindForStatus maps an HTTP status code to its Kind.
func KindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 400, status == 422:
		return KindValidation
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindConflict
	case status >= 500 && status <= 599:
		return KindServerFault
	default:
		return KindUnknown
	}
}

func isKind(err error, kind Kind) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Kind == kind
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isKind(err, KindUnauthorized)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isKind(err, KindConflict)
}

// IsServerFault checks if an error is a ServerFault error.
func IsServerFault(err error) bool {
	return isKind(err, KindServerFault)
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}

// GetKind returns the Kind from an error, or empty string if not a ServiceError.
func GetKind(err error) Kind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return ""
}

// GetDetails returns the backend details from an error, or nil.
func GetDetails(err error) any {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Details
	}
	return nil
}

// As extracts the ServiceError from an error chain.
func As(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
