package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource or sub-resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrNotSupported is returned by drivers for capabilities the backend
	// does not have. Readers omit the field instead of failing.
	ErrNotSupported = errors.New("operation not supported by backend")
	// ErrAccessDenied is returned for instances outside the allow-list.
	// It renders exactly like ErrNotFound.
	ErrAccessDenied = errors.New("instance access denied")
	// ErrMalformedRequest is returned when a request body carries none of
	// the recognized properties or an unusable value.
	ErrMalformedRequest = errors.New("malformed request")
)

// AliasAccessError signals that a resource was addressed by an alias. It is
// a routing instruction: the request must be repeated against UUID.
type AliasAccessError struct {
	UUID string
}

func (e *AliasAccessError) Error() string {
	return fmt.Sprintf("alias access, canonical identity is %s", e.UUID)
}

// MalformedRequestError names the offending property of a rejected body.
// An empty Value means the property was missing.
type MalformedRequestError struct {
	Property string
	Value    string
}

func (e *MalformedRequestError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("property %s is missing", e.Property)
	}

	return fmt.Sprintf("value %q is not acceptable for property %s", e.Value, e.Property)
}

func (e *MalformedRequestError) Unwrap() error {
	return ErrMalformedRequest
}

// NotFoundf wraps ErrNotFound with a description of what was missing.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// NotSupportedf wraps ErrNotSupported with the capability that is missing.
func NotSupportedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotSupported)
}
