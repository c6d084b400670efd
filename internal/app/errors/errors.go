package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by the subsystem that produced it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfig covers missing or invalid invocation and settings values
	KindConfig
	// KindService covers failures reported by the remote speech API
	KindService
	// KindFilesystem covers unreadable or unwritable paths
	KindFilesystem
	// KindAudio covers failures of the capture device and the WAV encoder
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindService:
		return "service"
	case KindFilesystem:
		return "filesystem"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Common error types
var (
	// Configuration errors
	ErrMissingOutput = NewKind(KindConfig, "output path is required")
	ErrMissingAPIKey = NewKind(KindConfig, "OpenAI API key is required (set OPENAI_API_KEY or create ~/.oreja/api_key)")
	ErrEmptyInput    = NewKind(KindConfig, "input is empty")
	ErrInvalidVoice  = NewKind(KindConfig, "invalid voice")
	ErrInvalidConfig = NewKind(KindConfig, "invalid configuration")

	// Audio errors
	ErrNoAudioCaptured = NewKind(KindAudio, "no audio captured")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// NewKind creates a new error of the given kind
func NewKind(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// WrapKind wraps an error and tags it with a kind
func WrapKind(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the kind the error was created with, KindUnknown when untagged.
func (e *Error) Kind() Kind {
	return e.kind
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// KindOf returns the first kind found along the wrap chain.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok && e.kind != KindUnknown {
			return e.kind
		}
		err = stderrors.Unwrap(err)
	}
	return KindUnknown
}

// IsConfigError reports whether err is a configuration error
func IsConfigError(err error) bool {
	return KindOf(err) == KindConfig
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return NewKind(KindConfig, fmt.Sprintf("%s is required", field))
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return NewKind(KindConfig, fmt.Sprintf("%s is invalid: %s", field, reason))
}

// OutOfRange returns an error for values outside acceptable range
func OutOfRange(field string, min, max interface{}) error {
	return NewKind(KindConfig, fmt.Sprintf("%s out of range (must be between %v and %v)", field, min, max))
}
