package ascii

import (
	"errors"
	"fmt"
)

// Searcher construction errors
var (
	// ErrNoNeedles indicates NewSearcher was called without needles
	ErrNoNeedles = errors.New("searcher requires at least one needle")

	// ErrEmptyNeedle indicates a needle with no characters was supplied
	ErrEmptyNeedle = errors.New("searcher needles must be non-empty")
)

// OutOfRangeError reports a single-character construction attempt with a
// byte outside the ASCII range.
type OutOfRangeError struct {
	Value byte
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("byte 0x%02X out of ASCII range", e.Value)
}

// ValidationError reports a rejected buffer or string construction.
// Position is the index of the first offending unit: a byte index for
// FromBytes, a rune index for FromString.
type ValidationError struct {
	Position int
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("non-ASCII content at position %d", e.Position)
}
