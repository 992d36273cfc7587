package app

import (
	"context"
	"strings"

	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
)

// configure runs the Settings menu. Every accepted change replaces a.settings
// with a new value; sessions that already ran are unaffected.
func (a *App) configure(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Entering settings.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.prompt.Println("Settings:")
		a.prompt.Printf("1. Set decimal places (current: %d)\n", a.settings.RoundNumber)
		a.prompt.Println("0. Back")
		choice, err := a.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := a.setRoundNumber(ctx); err != nil {
				return err
			}
		case "0":
			logger.Debug("Leaving settings.", "round_number", a.settings.RoundNumber)
			return nil
		}
	}
}

func (a *App) setRoundNumber(ctx context.Context) error {
	raw, err := a.ask("Enter number of decimal places: ")
	if err != nil {
		return err
	}

	updated, err := parseRoundNumberInto(a.settings, raw)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Rejected decimal places.", "input", raw, "error", err)
		a.prompt.Println("Invalid value: decimal places must be a non-negative integer.")
		return nil
	}

	a.settings = updated
	a.prompt.Printf("Decimal places set to %d.\n", updated.RoundNumber)
	ctxlog.FromContext(ctx).Debug("Decimal places changed.", "round_number", updated.RoundNumber)
	return nil
}

func parseRoundNumberInto(s config.Settings, raw string) (config.Settings, error) {
	n, err := config.ParseRoundNumber(raw)
	if err != nil {
		return config.Settings{}, err
	}
	return s.WithRoundNumber(n)
}
