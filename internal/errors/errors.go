package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no entity has the requested identifier.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidID is returned when an identifier is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid id format")
	// ErrNoToken is returned when a protected route is called without a bearer token.
	ErrNoToken = errors.New("not authorized, no token")
	// ErrTokenFailed is returned when the bearer token cannot be verified.
	ErrTokenFailed = errors.New("not authorized, token failed")
	// ErrUserNotFound is returned when the token subject no longer exists.
	ErrUserNotFound = errors.New("not authorized, user not found")
	// ErrForbidden is returned when the user role is not allowed on a route.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrAccountInactive is returned when an inactive user tries to log in.
	ErrAccountInactive = errors.New("account is not active")
	// ErrInvalidFileType is returned when an uploaded file has a disallowed content type.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidRequest is returned when a request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request body")
)

// ValidationError aggregates every field message of a rejected request.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a validation error from field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NotFoundError names the resource that could not be found. It matches ErrNotFound.
type NotFoundError struct {
	Resource string
}

// NotFound creates a not-found error for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateKeyError is returned when a unique column already holds the value.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return "duplicate value"
	}
	return fmt.Sprintf("%s already exists", e.Field)
}

// LimitKind identifies which multipart limit a request breached.
type LimitKind string

const (
	LimitFileSize       LimitKind = "LIMIT_FILE_SIZE"
	LimitFileCount      LimitKind = "LIMIT_FILE_COUNT"
	LimitUnexpectedFile LimitKind = "LIMIT_UNEXPECTED_FILE"
	LimitPartCount      LimitKind = "LIMIT_PART_COUNT"
	LimitFieldKey       LimitKind = "LIMIT_FIELD_KEY"
	LimitFieldValue     LimitKind = "LIMIT_FIELD_VALUE"
	LimitFieldCount     LimitKind = "LIMIT_FIELD_COUNT"
)

// LimitError is returned by the upload layer when a multipart limit is exceeded.
type LimitError struct {
	Kind  LimitKind
	Field string
}

func (e *LimitError) Error() string {
	if e.Field == "" {
		return limitMessages[e.Kind]
	}
	return fmt.Sprintf("%s: %s", limitMessages[e.Kind], e.Field)
}

var limitMessages = map[LimitKind]string{
	LimitFileSize:       "file too large",
	LimitFileCount:      "too many files",
	LimitUnexpectedFile: "unexpected file field",
	LimitPartCount:      "too many parts",
	LimitFieldKey:       "field name too long",
	LimitFieldValue:     "field value too long",
	LimitFieldCount:     "too many fields",
}
