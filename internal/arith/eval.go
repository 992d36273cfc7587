package arith

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// binaryFunc matches the method expressions of apd.Context such as
// (*apd.Context).Add.
type binaryFunc func(c *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

// Add returns a + b.
func Add(a, b *apd.Decimal) (*apd.Decimal, error) {
	return apply((*apd.Context).Add, a, b)
}

// Sub returns a - b.
func Sub(a, b *apd.Decimal) (*apd.Decimal, error) {
	return apply((*apd.Context).Sub, a, b)
}

// Mul returns a * b.
func Mul(a, b *apd.Decimal) (*apd.Decimal, error) {
	return apply((*apd.Context).Mul, a, b)
}

// Div returns a / b, failing with ErrDivisionByZero when b is zero.
func Div(a, b *apd.Decimal) (*apd.Decimal, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	return apply((*apd.Context).Quo, a, b)
}

// Pow returns a raised to b. Results that have no finite decimal value, such
// as a negative base with a fractional exponent, fail with ErrUndefined.
func Pow(a, b *apd.Decimal) (*apd.Decimal, error) {
	return apply((*apd.Context).Pow, a, b)
}

// Sqrt returns the principal square root of a, failing with
// ErrNegativeOperand when a is negative.
func Sqrt(a *apd.Decimal) (*apd.Decimal, error) {
	if a.Sign() < 0 {
		return nil, ErrNegativeOperand
	}
	d := new(apd.Decimal)
	cond, err := newContext().Sqrt(d, a)
	return finish(d, cond, err)
}

// Mod returns the remainder of a / b truncated toward zero, so the result
// carries the sign of a. It fails with ErrModulusByZero when b is zero.
func Mod(a, b *apd.Decimal) (*apd.Decimal, error) {
	if b.IsZero() {
		return nil, ErrModulusByZero
	}
	return apply((*apd.Context).Rem, a, b)
}

func apply(fn binaryFunc, a, b *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	cond, err := fn(newContext(), d, a, b)
	return finish(d, cond, err)
}

// finish maps apd conditions onto the package's errors and guarantees that
// a successful result is finite.
func finish(d *apd.Decimal, cond apd.Condition, err error) (*apd.Decimal, error) {
	if err != nil {
		if cond&(apd.Overflow|apd.SystemOverflow) != 0 {
			return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUndefined, err)
	}
	if d.Form != apd.Finite {
		return nil, ErrUndefined
	}
	return d, nil
}
