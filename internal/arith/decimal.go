package arith

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Precision is the number of significant digits used for every computation.
const Precision = 28

// traps are the conditions that abort a computation. Inexact and Rounded are
// expected at a fixed precision and must not be reported.
const traps = apd.Overflow |
	apd.InvalidOperation |
	apd.DivisionByZero |
	apd.DivisionUndefined |
	apd.DivisionImpossible |
	apd.SystemOverflow |
	apd.SystemUnderflow

// newContext returns a fresh arithmetic context. apd contexts are cheap and
// callers never share one.
func newContext() *apd.Context {
	c := apd.BaseContext.WithPrecision(Precision)
	c.Rounding = apd.RoundHalfEven
	c.Traps = traps
	return c
}

// Parse reads a decimal literal such as "2", "-0.5" or "3e2". Surrounding
// whitespace is ignored. NaN and infinities are rejected so that every parsed
// value is finite.
func Parse(s string) (*apd.Decimal, error) {
	s = strings.TrimSpace(s)
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return nil, &ParseError{Input: s}
	}
	return d, nil
}

// Zero returns a new decimal holding 0.
func Zero() *apd.Decimal {
	return apd.New(0, 0)
}

// Copy returns an independent copy of d.
func Copy(d *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(d)
}

// Round quantizes d to the given number of fractional digits using
// round-half-even. Values that already have no more than places fractional
// digits are returned unchanged (as a copy).
func Round(d *apd.Decimal, places int) (*apd.Decimal, error) {
	if places < 0 {
		return nil, fmt.Errorf("round: negative places %d", places)
	}
	out := Copy(d)
	if int64(d.Exponent) >= -int64(places) {
		return out, nil
	}
	if _, err := newContext().Quantize(out, d, -int32(places)); err != nil {
		return nil, fmt.Errorf("round to %d places: %w", places, err)
	}
	return out, nil
}

// Format renders d in plain notation without trailing fractional zeros.
// Negative zero renders as "0".
func Format(d *apd.Decimal) string {
	s := d.Text('f')
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// RoundString rounds d for display and formats the result.
func RoundString(d *apd.Decimal, places int) (string, error) {
	r, err := Round(d, places)
	if err != nil {
		return "", err
	}
	return Format(r), nil
}
