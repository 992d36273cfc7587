// Package history keeps the append-only record of a session's calculations.
package history

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/specialistvlad/deccalc/internal/arith"
)

// EmptyMessage is what Render returns before anything has been recorded.
const EmptyMessage = "No history available."

// Log is an append-only list of formatted calculation records. Entries are
// strings so they cannot change after being recorded.
type Log struct {
	entries []string
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Record appends one entry. result is the display-rounded result text.
// second is ignored for unary operators.
func (l *Log) Record(first *apd.Decimal, op arith.Operator, second *apd.Decimal, result string) {
	var entry string
	if op.Arity() == arith.Unary {
		entry = fmt.Sprintf("%s %s = %s", op, first.String(), result)
	} else {
		entry = fmt.Sprintf("%s %s %s = %s", first.String(), op, second.String(), result)
	}
	l.entries = append(l.entries, entry)
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the recorded entries in insertion order.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Render joins all entries with newlines, or returns EmptyMessage.
func (l *Log) Render() string {
	if len(l.entries) == 0 {
		return EmptyMessage
	}
	return strings.Join(l.entries, "\n")
}
