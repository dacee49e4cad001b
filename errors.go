package hanoi

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hanoi package.
var (
	// Construction errors
	ErrInvalidHeight = errors.New("hanoi: height out of range")

	// Move errors
	ErrIllegalMove = errors.New("hanoi: illegal move")
	ErrInvalidPeg  = fmt.Errorf("%w: peg index out of range", ErrIllegalMove)
	ErrEmptyPeg    = fmt.Errorf("%w: source peg is empty", ErrIllegalMove)
	ErrSamePeg     = fmt.Errorf("%w: source and target peg are the same", ErrIllegalMove)

	// Stack errors
	ErrUnderflow = errors.New("hanoi: peg underflow")
	ErrOverflow  = errors.New("hanoi: peg overflow")

	// Parsing errors
	ErrInvalidMove = errors.New("hanoi: invalid move notation")
)
