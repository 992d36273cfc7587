package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/specialistvlad/deccalc/internal/arith"
	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/specialistvlad/deccalc/internal/history"
	"github.com/specialistvlad/deccalc/internal/memory"
	"github.com/specialistvlad/deccalc/internal/prompt"
)

// recallToken, typed in place of an operand, substitutes the memory value.
const recallToken = "MR"

// Session is one run of the calculator loop.
type Session struct {
	settings config.Settings
	memory   *memory.Register
	history  *history.Log
	prompt   *prompt.Prompter
}

// Result is a successful calculation.
type Result struct {
	Value   *apd.Decimal // full precision, used for memory
	Display string       // rounded, used for output and history
}

// New creates a session from a snapshot of settings. Later changes to the
// caller's settings are not observed.
func New(settings config.Settings, p *prompt.Prompter) *Session {
	return &Session{
		settings: settings,
		memory:   memory.New(settings.MemoryValue),
		history:  history.New(),
		prompt:   p,
	}
}

// Memory returns the session's memory register.
func (s *Session) Memory() *memory.Register {
	return s.memory
}

// History returns the session's history log.
func (s *Session) History() *history.Log {
	return s.history
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Calculate evaluates op, rounds the result for display and records it in
// the history. Nothing is recorded when evaluation fails.
func (s *Session) Calculate(op arith.Operator, first, second *apd.Decimal) (Result, error) {
	value, err := op.Eval(first, second)
	if err != nil {
		return Result{}, err
	}
	display, err := arith.RoundString(value, s.settings.RoundNumber)
	if err != nil {
		return Result{}, err
	}
	s.history.Record(first, op, second, display)
	return Result{Value: value, Display: display}, nil
}

// Run drives the calculation loop until the user declines to continue, in
// which case it returns nil. End of input is reported as io.EOF.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Calculator session started.", "round_number", s.settings.RoundNumber, "memory_value", s.memory.Recall().String())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		op, first, second, err := s.acquire()
		if err != nil {
			if !errors.Is(err, arith.ErrParse) && !errors.Is(err, prompt.ErrLineTooLong) {
				return err
			}
			logger.Warn("Rejected input.", "error", err)
			s.prompt.Printf("Error: %v\n", err)
			continue
		}

		res, err := s.Calculate(op, first, second)
		if err != nil {
			logger.Warn("Calculation failed.", "operator", op.String(), "error", err)
			s.prompt.Printf("Error: %v\n", err)
			continue
		}
		logger.Debug("Calculation succeeded.", "operator", op.String(), "result", res.Value.String(), "display", res.Display)
		s.prompt.Printf("Result:  %s\n", res.Display)

		if err := s.offerMemory(ctx, res.Value); err != nil {
			return err
		}
		if err := s.offerHistory(); err != nil {
			return err
		}

		more, err := s.prompt.Confirm("Do you want to make another calculation? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			logger.Debug("Calculator session finished.", "records", s.history.Len())
			return nil
		}
	}
}

// acquire reads an operator and the operands it needs. second is nil for
// unary operators.
func (s *Session) acquire() (op arith.Operator, first, second *apd.Decimal, err error) {
	op, err = s.readOperator()
	if err != nil {
		return 0, nil, nil, err
	}
	first, err = s.readOperand("first")
	if err != nil {
		return 0, nil, nil, err
	}
	if op.Arity() == arith.Unary {
		return op, first, nil, nil
	}
	second, err = s.readOperand("second")
	if err != nil {
		return 0, nil, nil, err
	}
	return op, first, second, nil
}

func (s *Session) readOperator() (arith.Operator, error) {
	question := fmt.Sprintf("Enter the operator (%s): ", arith.Symbols())
	for {
		token, err := s.prompt.Ask(question)
		if err != nil {
			return 0, err
		}
		op, err := arith.ParseOperator(token)
		if err == nil {
			return op, nil
		}
		s.prompt.Printf("Invalid operator. Available operators: %s.\n", arith.Symbols())
	}
}

func (s *Session) readOperand(ordinal string) (*apd.Decimal, error) {
	raw, err := s.prompt.Ask(fmt.Sprintf("Input %s operand (or %s for memory recall): ", ordinal, recallToken))
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(raw), recallToken) {
		v := s.memory.Recall()
		s.prompt.Printf("Recalled from memory: %s\n", v.String())
		return v, nil
	}
	return arith.Parse(raw)
}

func (s *Session) offerHistory() error {
	show, err := s.prompt.Confirm("Do you want to view history? (yes/no): ")
	if err != nil {
		return err
	}
	if show {
		s.prompt.Println(s.history.Render())
	}
	return nil
}
