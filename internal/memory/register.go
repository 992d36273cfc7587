// Package memory provides the calculator's single memory register.
package memory

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/specialistvlad/deccalc/internal/arith"
)

// Register holds one decimal value. The zero value is a register holding 0.
// Values passed in and returned are copied; callers never share storage with
// the register.
type Register struct {
	value apd.Decimal
}

// New returns a register seeded with initial. A nil initial value means 0.
func New(initial *apd.Decimal) *Register {
	r := &Register{}
	if initial != nil {
		r.value.Set(initial)
	}
	return r
}

// Recall returns a copy of the stored value.
func (r *Register) Recall() *apd.Decimal {
	return arith.Copy(&r.value)
}

// Store overwrites the stored value with v.
func (r *Register) Store(v *apd.Decimal) {
	r.value.Set(v)
}

// Add accumulates v into the register. The register is left unchanged if the
// sum falls outside the decimal exponent range.
func (r *Register) Add(v *apd.Decimal) error {
	sum, err := arith.Add(&r.value, v)
	if err != nil {
		return fmt.Errorf("add to memory: %w", err)
	}
	r.value.Set(sum)
	return nil
}

// Clear resets the register to 0.
func (r *Register) Clear() {
	r.value.SetInt64(0)
}
