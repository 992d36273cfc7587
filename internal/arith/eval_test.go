package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryTotalOperators(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		op       Operator
		a, b     string
		expected string
	}{
		{op: OpAdd, a: "0.1", b: "0.2", expected: "0.3"},
		{op: OpAdd, a: "2", b: "3", expected: "5"},
		{op: OpSub, a: "0.3", b: "0.1", expected: "0.2"},
		{op: OpSub, a: "1", b: "2.5", expected: "-1.5"},
		{op: OpMul, a: "1.1", b: "1.1", expected: "1.21"},
		{op: OpMul, a: "-4", b: "0.25", expected: "-1"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.a+tc.op.String()+tc.b, func(t *testing.T) {
			t.Parallel()
			got, err := tc.op.Eval(mustParse(t, tc.a), mustParse(t, tc.b))
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(mustParse(t, tc.expected)), "got %s", got)
		})
	}
}

func TestDivAndMod_ZeroDivisor(t *testing.T) {
	t.Parallel()

	for _, a := range []string{"0", "1", "-7.5", "1E+20", "0.0001"} {
		for _, zero := range []string{"0", "-0", "0.000"} {
			_, err := Div(mustParse(t, a), mustParse(t, zero))
			assert.ErrorIs(t, err, ErrDivisionByZero, "%s / %s", a, zero)

			_, err = Mod(mustParse(t, a), mustParse(t, zero))
			assert.ErrorIs(t, err, ErrModulusByZero, "%s %% %s", a, zero)
		}
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()

	got, err := Div(mustParse(t, "1"), mustParse(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333333333333333333333", got.String())

	got, err = Div(mustParse(t, "10"), mustParse(t, "4"))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(mustParse(t, "2.5")))
}

func TestMod_SignFollowsDividend(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		a, b     string
		expected string
	}{
		{a: "7", b: "3", expected: "1"},
		{a: "-7", b: "3", expected: "-1"},
		{a: "7", b: "-3", expected: "1"},
		{a: "5.5", b: "2", expected: "1.5"},
	}
	for _, tc := range testCases {
		got, err := Mod(mustParse(t, tc.a), mustParse(t, tc.b))
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(mustParse(t, tc.expected)), "%s %% %s = %s", tc.a, tc.b, got)
	}
}

func TestSqrt(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		a        string
		expected string
	}{
		{a: "9", expected: "3"},
		{a: "0.25", expected: "0.5"},
		{a: "0", expected: "0"},
		{a: "1E+4", expected: "100"},
	}
	for _, tc := range testCases {
		got, err := Sqrt(mustParse(t, tc.a))
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(mustParse(t, tc.expected)), "sq %s = %s", tc.a, got)
	}
}

func TestSqrt_SquareRoundsBack(t *testing.T) {
	t.Parallel()

	for _, a := range []string{"2", "3", "10", "0.5", "12345.6789"} {
		r, err := Sqrt(mustParse(t, a))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Sign())

		sq, err := Mul(r, r)
		require.NoError(t, err)
		rounded, err := Round(sq, 20)
		require.NoError(t, err)
		assert.Zero(t, rounded.Cmp(mustParse(t, a)), "(sq %s)^2 = %s", a, sq)
	}
}

func TestSqrt_Negative(t *testing.T) {
	t.Parallel()

	for _, a := range []string{"-1", "-0.0001", "-9E+10"} {
		_, err := Sqrt(mustParse(t, a))
		assert.ErrorIs(t, err, ErrNegativeOperand, "sq %s", a)
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		a, b     string
		expected string
	}{
		{a: "2", b: "10", expected: "1024"},
		{a: "2", b: "-1", expected: "0.5"},
		{a: "9", b: "0.5", expected: "3"},
		{a: "5", b: "0", expected: "1"},
	}
	for _, tc := range testCases {
		got, err := Pow(mustParse(t, tc.a), mustParse(t, tc.b))
		require.NoError(t, err)
		rounded, err := Round(got, 20)
		require.NoError(t, err)
		assert.Zero(t, rounded.Cmp(mustParse(t, tc.expected)), "%s ^ %s = %s", tc.a, tc.b, got)
	}
}

func TestPow_Undefined(t *testing.T) {
	t.Parallel()

	_, err := Pow(mustParse(t, "-8"), mustParse(t, "0.5"))
	assert.ErrorIs(t, err, ErrUndefined)

	_, err = Pow(mustParse(t, "0"), mustParse(t, "-1"))
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestMul_Overflow(t *testing.T) {
	t.Parallel()

	_, err := Mul(mustParse(t, "9E+99999"), mustParse(t, "1E+10"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
}
