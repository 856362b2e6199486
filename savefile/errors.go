package savefile

import (
	"errors"
	"fmt"
)

var (
	ErrNilCharacter = errors.New("savefile: nil character")
	ErrEmptyPath    = errors.New("savefile: empty path")
	ErrNotWritable  = errors.New("savefile: directory not writable")
	ErrNotFound     = errors.New("savefile: file not found")
	ErrIncomplete   = errors.New("savefile: incomplete character data")
	ErrMissingField = errors.New("missing field")
	ErrOutOfRange   = errors.New("value out of range")
)

// FieldError reports a labelled field that is missing or could not be parsed.
type FieldError struct {
	Label string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("savefile: %q: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("savefile: %q = %q: %v", e.Label, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
