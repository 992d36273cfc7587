// Package session implements the Calculating state of the calculator: one
// session owns a memory register, a history log and a snapshot of the
// settings it was created with, and repeatedly reads an operator and its
// operands, evaluates them and records the result.
//
// Errors caused by user input are printed and the loop starts over; only
// I/O failures, end of input and context cancellation end Run with an error.
package session
