package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/deccalc/internal/arith"
	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateSettings applies a decoded settings block on top of base.
func (l *Loader) translateSettings(ctx context.Context, b *settingsBlock, base config.Settings) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := base
	var err error

	if b.RoundNumber != nil {
		s, err = s.WithRoundNumber(*b.RoundNumber)
		if err != nil {
			return config.Settings{}, fmt.Errorf("round_number: %w", err)
		}
		logger.Debug("Applied round_number from HCL.", "round_number", s.RoundNumber)
	}

	if b.MemoryValue == nil {
		return s, nil
	}
	val, diags := b.MemoryValue.Value(nil)
	if diags.HasErrors() {
		return config.Settings{}, fmt.Errorf("memory_value: %w", diags)
	}
	if val.IsNull() {
		return s, nil
	}
	raw, err := memoryText(val)
	if err != nil {
		return config.Settings{}, fmt.Errorf("memory_value: %w", err)
	}
	mem, err := arith.Parse(raw)
	if err != nil {
		return config.Settings{}, fmt.Errorf("memory_value: %w", err)
	}
	s, err = s.WithMemoryValue(mem)
	if err != nil {
		return config.Settings{}, fmt.Errorf("memory_value: %w", err)
	}
	logger.Debug("Applied memory_value from HCL.", "memory_value", raw)
	return s, nil
}

// memoryText converts a number or string cty.Value into decimal text.
func memoryText(val cty.Value) (string, error) {
	if !val.IsKnown() {
		return "", fmt.Errorf("value must be known")
	}
	ty := val.Type()
	if ty != cty.Number && ty != cty.String {
		return "", fmt.Errorf("must be a number or a string, got %s", ty.FriendlyName())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return str.AsString(), nil
}
