// Package testutil holds helpers shared by tests that drive the calculator
// through scripted terminal input.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// EnvKeys lists every environment variable the application reads.
var EnvKeys = []string{"DECCALC_CONFIG", "DECCALC_ROUND_NUMBER", "DECCALC_MEMORY_VALUE"}

// Input joins lines into scripted terminal input, one answer per line.
func Input(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// ClearEnv blanks every application environment variable for the duration
// of the test. Tests calling it must not run in parallel.
func ClearEnv(t *testing.T) {
	t.Helper()
	for _, key := range EnvKeys {
		t.Setenv(key, "")
	}
}

// WriteFile writes content to name under dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
