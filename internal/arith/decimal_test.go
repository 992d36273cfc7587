package arith

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, err := Parse(s)
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "2", expected: "2"},
		{input: "  -0.5 ", expected: "-0.5"},
		{input: "3e2", expected: "3E+2"},
		{input: "2.50", expected: "2.50"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			d, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "abc", "1..2", "NaN", "Infinity", "-inf", "1,5"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrParse)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	}
}

func TestRoundString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		places   int
		expected string
	}{
		{name: "integer stays integer", input: "5", places: 2, expected: "5"},
		{name: "trailing zeros removed", input: "5.000", places: 2, expected: "5"},
		{name: "truncates to places", input: "0.3333333333333333333333333333", places: 4, expected: "0.3333"},
		{name: "half even rounds down", input: "0.125", places: 2, expected: "0.12"},
		{name: "half even rounds up", input: "0.135", places: 2, expected: "0.14"},
		{name: "carry", input: "9.999", places: 2, expected: "10"},
		{name: "zero places", input: "2.5", places: 0, expected: "2"},
		{name: "negative zero", input: "-0.001", places: 2, expected: "0"},
		{name: "large exponent", input: "1E+5", places: 2, expected: "100000"},
		{name: "more places than digits", input: "1.5", places: 10, expected: "1.5"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := RoundString(mustParse(t, tc.input), tc.places)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRound_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	d := mustParse(t, "1.23456")
	r, err := Round(d, 2)
	require.NoError(t, err)
	assert.Equal(t, "1.23", r.String())
	assert.Equal(t, "1.23456", d.String())
}

func TestRound_NegativePlaces(t *testing.T) {
	t.Parallel()

	_, err := Round(mustParse(t, "1"), -1)
	require.Error(t, err)
}
