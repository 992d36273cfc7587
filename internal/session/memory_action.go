package session

import (
	"context"
	"errors"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/specialistvlad/deccalc/internal/prompt"
)

// MemoryAction is what the user chose to do with a result.
type MemoryAction int

const (
	MemorySkip MemoryAction = iota
	MemoryStore
	MemoryAdd
	MemoryClear
)

// String returns the token the user types for the action.
func (a MemoryAction) String() string {
	switch a {
	case MemoryStore:
		return "MS"
	case MemoryAdd:
		return "M+"
	case MemoryClear:
		return "MC"
	default:
		return "skip"
	}
}

// ParseMemoryAction maps MS, M+ and MC (any case) to their actions. Any other
// answer skips.
func ParseMemoryAction(answer string) MemoryAction {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "MS":
		return MemoryStore
	case "M+":
		return MemoryAdd
	case "MC":
		return MemoryClear
	default:
		return MemorySkip
	}
}

func (s *Session) offerMemory(ctx context.Context, result *apd.Decimal) error {
	answer, err := s.prompt.Ask("Would you like to store result in memory (MS), add to memory (M+), clear memory (MC), or skip? ")
	if errors.Is(err, prompt.ErrLineTooLong) {
		answer, err = "", nil
	}
	if err != nil {
		return err
	}

	action := ParseMemoryAction(answer)
	switch action {
	case MemoryStore:
		s.memory.Store(result)
		s.prompt.Printf("Stored %s in memory.\n", result.String())
	case MemoryAdd:
		if err := s.memory.Add(result); err != nil {
			s.prompt.Printf("Error: %v\n", err)
			return nil
		}
		s.prompt.Printf("Added %s to memory. New memory value: %s.\n", result.String(), s.memory.Recall().String())
	case MemoryClear:
		s.memory.Clear()
		s.prompt.Println("Memory cleared.")
	case MemorySkip:
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Memory updated.", "action", action.String(), "memory_value", s.memory.Recall().String())
	return nil
}
