package script

import (
	"errors"
	"fmt"
)

// Errors reported for malformed level scripts.
var (
	ErrUnknownToken       = errors.New("unknown token")
	ErrMalformedRow       = errors.New("malformed row")
	ErrMalformedDirective = errors.New("malformed directive")
	ErrTableExhausted     = errors.New("table exhausted")
	ErrInvalidPortal      = errors.New("invalid portal function")
)

// LineError ties a script error to the offending line.
type LineError struct {
	Line int    // zero-based index into Program.Lines
	Text string // the raw line
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("script: line %d %q: %v", e.Line+1, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
