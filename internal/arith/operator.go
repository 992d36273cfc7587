package arith

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Arity is the number of operands an operator consumes.
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

// Operator is one of the seven supported calculator operations. The zero
// value is not a valid operator.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpPow
	OpSqrt
	OpMod
)

type operatorInfo struct {
	symbol string
	arity  Arity
	unary  func(a *apd.Decimal) (*apd.Decimal, error)
	binary func(a, b *apd.Decimal) (*apd.Decimal, error)
}

var operators = [...]operatorInfo{
	OpAdd:  {symbol: "+", arity: Binary, binary: Add},
	OpSub:  {symbol: "-", arity: Binary, binary: Sub},
	OpMul:  {symbol: "*", arity: Binary, binary: Mul},
	OpDiv:  {symbol: "/", arity: Binary, binary: Div},
	OpPow:  {symbol: "^", arity: Binary, binary: Pow},
	OpSqrt: {symbol: "sq", arity: Unary, unary: Sqrt},
	OpMod:  {symbol: "%", arity: Binary, binary: Mod},
}

// Operators lists every supported operator in menu order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSub, OpMul, OpDiv, OpPow, OpSqrt, OpMod}
}

// Symbols returns the operator tokens joined for use in prompts,
// e.g. "+, -, *, /, ^, sq, %".
func Symbols() string {
	ops := Operators()
	syms := make([]string, len(ops))
	for i, op := range ops {
		syms[i] = op.String()
	}
	return strings.Join(syms, ", ")
}

// ParseOperator maps a user token to an Operator. Surrounding whitespace is
// ignored; the match is otherwise exact.
func ParseOperator(token string) (Operator, error) {
	token = strings.TrimSpace(token)
	for _, op := range Operators() {
		if operators[op].symbol == token {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidOperator, token)
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	return op >= OpAdd && op <= OpMod
}

// String returns the operator's token.
func (op Operator) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operators[op].symbol
}

// Arity returns how many operands op takes.
func (op Operator) Arity() Arity {
	return op.info().arity
}

// Eval applies op. For unary operators b is ignored and may be nil.
// Calling Eval on an invalid operator, or on a binary operator with a nil
// second operand, panics.
func (op Operator) Eval(a, b *apd.Decimal) (*apd.Decimal, error) {
	info := op.info()
	if info.arity == Unary {
		return info.unary(a)
	}
	if b == nil {
		panic(fmt.Sprintf("arith: operator %s requires two operands", op))
	}
	return info.binary(a, b)
}

func (op Operator) info() operatorInfo {
	if !op.Valid() {
		panic(fmt.Sprintf("arith: unknown operator %d", int(op)))
	}
	return operators[op]
}
