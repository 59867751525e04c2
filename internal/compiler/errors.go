package compiler

import (
	"errors"
	"fmt"
)

// ErrMalformedPosting means a posting's destination type and destination data disagree.
var ErrMalformedPosting = errors.New("malformed posting")

// MalformedPostingError identifies which posting could not be rendered and why.
// Index is zero-based; the message uses the 1-based position.
type MalformedPostingError struct {
	Index  int
	Reason string
}

func (e *MalformedPostingError) Error() string {
	return fmt.Sprintf("posting %d %s", e.Index+1, e.Reason)
}

func (e *MalformedPostingError) Unwrap() error {
	return ErrMalformedPosting
}

type WarningCode string

const (
	// ConflictingSplitModes is raised when one split block mixes fraction and max rules.
	ConflictingSplitModes WarningCode = "conflicting_split_modes"
)

// Warning is a non-fatal diagnostic attached to a compilation result.
type Warning struct {
	Code    WarningCode
	Posting int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("posting %d: %s", w.Posting+1, w.Message)
}
