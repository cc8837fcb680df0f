package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a skill invocation can
// surface to the caller.
type ErrorKind string

const (
	ErrInvalidRequest    ErrorKind = "invalid_request"
	ErrUnsupportedFormat ErrorKind = "unsupported_format"
	ErrDecode            ErrorKind = "decode_error"
	ErrModelUnavailable  ErrorKind = "model_unavailable"
	ErrContentTooLarge   ErrorKind = "content_too_large"
)

// SkillError is a typed failure returned by the skill pipeline. The message
// is safe to surface to the caller as-is.
type SkillError struct {
	Kind    ErrorKind
	Message string
}

func (e *SkillError) Error() string {
	return e.Message
}

func NewSkillError(kind ErrorKind, message string) *SkillError {
	return &SkillError{Kind: kind, Message: message}
}

func SkillErrorf(kind ErrorKind, format string, args ...interface{}) *SkillError {
	return &SkillError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from err, or returns "" when err does not
// carry one.
func KindOf(err error) ErrorKind {
	var skillErr *SkillError
	if errors.As(err, &skillErr) {
		return skillErr.Kind
	}
	return ""
}
