package config

import (
	"testing"

	"github.com/specialistvlad/deccalc/internal/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 2, s.RoundNumber)
	assert.True(t, s.MemoryValue.IsZero())
}

func TestWithRoundNumber(t *testing.T) {
	t.Parallel()

	base := Default()
	changed, err := base.WithRoundNumber(4)
	require.NoError(t, err)
	assert.Equal(t, 4, changed.RoundNumber)
	assert.Equal(t, 2, base.RoundNumber, "the original value must not change")

	_, err = base.WithRoundNumber(-1)
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestWithMemoryValue(t *testing.T) {
	t.Parallel()

	v, err := arith.Parse("7.5")
	require.NoError(t, err)

	s, err := Default().WithMemoryValue(v)
	require.NoError(t, err)
	v.SetInt64(1)
	assert.Equal(t, "7.5", s.MemoryValue.String())

	_, err = Default().WithMemoryValue(nil)
	assert.ErrorIs(t, err, ErrInvalidSetting)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Settings{RoundNumber: 2}.Validate(), ErrInvalidSetting)
	assert.ErrorIs(t, Settings{RoundNumber: -3, MemoryValue: arith.Zero()}.Validate(), ErrInvalidSetting)
}

func TestParseRoundNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw       string
		expected  int
		expectErr bool
	}{
		{raw: "4", expected: 4},
		{raw: " 0 ", expected: 0},
		{raw: "12", expected: 12},
		{raw: "-1", expectErr: true},
		{raw: "2.5", expectErr: true},
		{raw: "two", expectErr: true},
		{raw: "", expectErr: true},
	}
	for _, tc := range testCases {
		n, err := ParseRoundNumber(tc.raw)
		if tc.expectErr {
			assert.ErrorIs(t, err, ErrInvalidSetting, "raw %q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.expected, n)
	}
}
