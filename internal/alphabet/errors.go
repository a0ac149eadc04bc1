package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol indicates a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrIndexRange indicates an axis index outside [0, Len()).
	ErrIndexRange = errors.New("alphabet: index out of range")

	ErrEmpty     = errors.New("alphabet: no symbols")
	ErrDuplicate = errors.New("alphabet: duplicate symbol")
)

// LookupError reports the symbol that failed to resolve.
type LookupError struct {
	Symbol string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownSymbol, e.Symbol)
}

func (e *LookupError) Unwrap() error { return ErrUnknownSymbol }

type RangeError struct {
	Index, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexRange, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrIndexRange }

type DuplicateError struct {
	Symbol string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q", ErrDuplicate, e.Symbol)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }
