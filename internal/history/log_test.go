package history

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/deccalc/internal/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, err := arith.Parse(s)
	require.NoError(t, err)
	return d
}

func TestRender_Empty(t *testing.T) {
	l := New()
	assert.Equal(t, EmptyMessage, l.Render())
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Entries())
}

func TestRecord_KeepsOrder(t *testing.T) {
	l := New()
	l.Record(dec(t, "2"), arith.OpAdd, dec(t, "3"), "5")
	l.Record(dec(t, "9"), arith.OpSqrt, nil, "3")
	l.Record(dec(t, "1"), arith.OpDiv, dec(t, "3"), "0.33")
	l.Record(dec(t, "2.50"), arith.OpPow, dec(t, "2"), "6.25")

	expected := []string{
		"2 + 3 = 5",
		"sq 9 = 3",
		"1 / 3 = 0.33",
		"2.50 ^ 2 = 6.25",
	}
	if diff := cmp.Diff(expected, l.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	rendered := l.Render()
	assert.Len(t, strings.Split(rendered, "\n"), 4)
	assert.Equal(t, strings.Join(expected, "\n"), rendered)
}

func TestRecord_EntriesAreSnapshots(t *testing.T) {
	l := New()
	first := dec(t, "2")
	l.Record(first, arith.OpMul, dec(t, "4"), "8")

	first.SetInt64(100)
	entries := l.Entries()
	entries[0] = "tampered"

	assert.Equal(t, "2 * 4 = 8", l.Render())
}
