package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/deccalc/internal/app"
	"github.com/specialistvlad/deccalc/internal/cli"
	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/hcl"
)

// main is the entrypoint for the deccalc application.
func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	calc, err := newApp(in, outW, logW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}
	return calc.Run(context.Background())
}

// newApp builds the application. The app panics on settings errors, so we
// recover here to provide a clean exit message to the user.
func newApp(in io.Reader, outW, logW io.Writer, appConfig *app.Config, loader config.Loader) (calc *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	return app.NewApp(in, outW, logW, appConfig, loader), nil
}
