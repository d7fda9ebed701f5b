package ai

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a generation attempt failed. Callers never show
// these to the user; they log the kind and substitute local content.
type ErrorKind string

const (
	// KindTransport covers connection, DNS and timeout failures.
	KindTransport ErrorKind = "transport"
	// KindStatus covers non-2xx responses.
	KindStatus ErrorKind = "status"
	// KindDecode covers malformed JSON or a missing content field.
	KindDecode ErrorKind = "decode"
	// KindEmpty covers an empty completion or zero usable items after
	// segmentation.
	KindEmpty ErrorKind = "empty"
)

// Error wraps a failure of a single generation operation.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ai: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("ai: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind, or an empty string for foreign errors.
func KindOf(err error) ErrorKind {
	var aiErr *Error
	if errors.As(err, &aiErr) {
		return aiErr.Kind
	}
	return ""
}
