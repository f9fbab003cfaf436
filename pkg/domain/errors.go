package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type ValidationKind string

const (
	ValidationUnknownField ValidationKind = "unknown-field"
	ValidationBadBoolean   ValidationKind = "bad-boolean"
	ValidationBadEnum      ValidationKind = "bad-enum"
	ValidationBadValue     ValidationKind = "bad-value"
)

// ValidationError reports a rejected settings command input. Nothing is
// mutated when one is returned.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Hint  string
}

func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Field, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

type TranscriptionErrorKind string

const (
	// TranscriptionLanguageModelIncompatible means the provider rejected the
	// recognized language code combined with no or an incompatible model.
	TranscriptionLanguageModelIncompatible TranscriptionErrorKind = "language-model-incompatible"
	TranscriptionGenericFailure            TranscriptionErrorKind = "generic-transcription-failure"
)

// TranscriptionError means both the primary and the fallback transcription
// attempts failed.
type TranscriptionError struct {
	Kind     TranscriptionErrorKind
	Primary  error
	Fallback error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed (%s): primary: %v; fallback: %v", e.Kind, e.Primary, e.Fallback)
}

func (e *TranscriptionError) Unwrap() error { return e.Fallback }
