package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/specialistvlad/deccalc/internal/prompt"
	"github.com/specialistvlad/deccalc/internal/session"
)

// Run executes the main menu loop until the user exits or input ends. Both
// are a normal exit and return nil.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.prompt.Println("Menu:")
		a.prompt.Println("1. Start calculator")
		a.prompt.Println("2. Settings")
		a.prompt.Println("3. Exit")
		choice, err := a.ask("Enter your choice: ")
		if err != nil {
			return a.exit(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.calculate(ctx)
		case "2":
			err = a.configure(ctx)
		case "3":
			return a.exit(nil)
		default:
			a.logger.Debug("Ignoring unrecognized menu choice.", "choice", choice)
		}
		if err != nil {
			return a.exit(err)
		}
	}
}

// ask reads a menu answer. An overlong line reads as an empty answer, which
// no menu accepts.
func (a *App) ask(question string) (string, error) {
	answer, err := a.prompt.Ask(question)
	if errors.Is(err, prompt.ErrLineTooLong) {
		a.logger.Warn("Discarded overlong input line.", "limit", prompt.MaxLineLength)
		return "", nil
	}
	return answer, err
}

// calculate runs one calculator session on a snapshot of the current settings.
func (a *App) calculate(ctx context.Context) error {
	a.logger.Debug("Entering calculator.")
	s := session.New(a.settings, a.prompt)
	return s.Run(ctx)
}

// exit ends the menu loop. End of input counts as a normal exit.
func (a *App) exit(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		a.logger.Error("Menu loop stopped.", "error", err)
		return err
	}
	a.prompt.Println("Goodbye.")
	a.logger.Debug("App.Run method finished.")
	return nil
}
