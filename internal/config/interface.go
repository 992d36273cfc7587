package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given paths and applies them on top of
	// base, returning the result. Paths that do not exist are skipped.
	Load(ctx context.Context, base Settings, paths ...string) (Settings, error)
}
