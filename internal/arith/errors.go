package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator is returned by ParseOperator for tokens outside the
	// supported operator set.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrParse is the sentinel wrapped by every *ParseError.
	ErrParse = errors.New("invalid number")

	ErrDivisionByZero  = errors.New("cannot divide by zero")
	ErrModulusByZero   = errors.New("cannot perform modulus by zero")
	ErrNegativeOperand = errors.New("cannot take square root of a negative number")
	ErrUndefined       = errors.New("result is undefined")
	ErrOverflow        = errors.New("result is out of range")
)

// ParseError reports an operand that could not be read as a finite decimal.
type ParseError struct {
	Input string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrParse, e.Input)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
