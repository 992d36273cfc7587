package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/specialistvlad/deccalc/internal/prompt"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	prompt   *prompt.Prompter
	logger   *slog.Logger
	settings config.Settings
}

// NewApp is the constructor for the main application. User interaction goes
// through in and outW; logs go to logW. Settings are assembled from the
// defaults, the settings file(s) read by loader and the environment.
//
// A failure to load settings is a fatal startup error and panics; the
// entrypoint recovers and reports it.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := loadSettings(ctx, appConfig, loader)
	if err != nil {
		panic(fmt.Errorf("failed to load settings: %w", err))
	}
	logger.Debug("Settings loaded.", "round_number", settings.RoundNumber, "memory_value", settings.MemoryValue.String())

	return &App{
		prompt:   prompt.New(in, outW),
		logger:   logger,
		settings: settings,
	}
}

// Settings returns the settings the next calculator session will start with.
func (a *App) Settings() config.Settings {
	return a.settings
}

// loadSettings applies, in order, the defaults, the settings file and the
// environment overrides. The -config flag takes precedence over
// DECCALC_CONFIG for locating the file.
func loadSettings(ctx context.Context, appConfig *Config, loader config.Loader) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	envOverrides, err := config.ParseEnv()
	if err != nil {
		return config.Settings{}, err
	}

	path := appConfig.ConfigPath
	if path == "" {
		path = envOverrides.ConfigPath
	}

	settings := config.Default()
	if path != "" {
		logger.Debug("Loading settings file.", "path", path)
		settings, err = loader.Load(ctx, settings, path)
		if err != nil {
			return config.Settings{}, err
		}
	}

	settings, err = envOverrides.Apply(settings)
	if err != nil {
		return config.Settings{}, err
	}
	return settings, settings.Validate()
}
