package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/specialistvlad/deccalc/internal/arith"
)

// DefaultRoundNumber is the number of fractional digits shown by default.
const DefaultRoundNumber = 2

// ErrInvalidSetting is returned for setting values outside their domain.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the values a calculator session is created from.
type Settings struct {
	// RoundNumber is the number of fractional digits used when displaying
	// and logging results. Never negative.
	RoundNumber int
	// MemoryValue seeds the memory register. Never nil, never modified.
	MemoryValue *apd.Decimal
}

// Default returns the built-in settings: two decimal places, empty memory.
func Default() Settings {
	return Settings{
		RoundNumber: DefaultRoundNumber,
		MemoryValue: arith.Zero(),
	}
}

// Validate checks the settings invariants.
func (s Settings) Validate() error {
	if s.RoundNumber < 0 {
		return fmt.Errorf("%w: round_number must not be negative, got %d", ErrInvalidSetting, s.RoundNumber)
	}
	if s.MemoryValue == nil {
		return fmt.Errorf("%w: memory_value is not set", ErrInvalidSetting)
	}
	if s.MemoryValue.Form != apd.Finite {
		return fmt.Errorf("%w: memory_value must be a finite number", ErrInvalidSetting)
	}
	return nil
}

// WithRoundNumber returns a copy of s with RoundNumber set to n.
func (s Settings) WithRoundNumber(n int) (Settings, error) {
	s.RoundNumber = n
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WithMemoryValue returns a copy of s seeded with a copy of v.
func (s Settings) WithMemoryValue(v *apd.Decimal) (Settings, error) {
	if v == nil {
		return Settings{}, fmt.Errorf("%w: memory_value is not set", ErrInvalidSetting)
	}
	s.MemoryValue = arith.Copy(v)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseRoundNumber reads a user-supplied number of decimal places.
func ParseRoundNumber(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidSetting, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: decimal places must not be negative, got %d", ErrInvalidSetting, n)
	}
	return n, nil
}
