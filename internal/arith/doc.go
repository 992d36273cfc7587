// Package arith implements the calculator's arithmetic: decimal parsing, the
// closed set of operators with their arity, evaluation at a fixed precision
// of 28 significant digits, and display rounding.
//
// Values are *apd.Decimal throughout. Functions never modify their operands
// and always return freshly allocated results.
package arith
