package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/deccalc/internal/config"
	"github.com/specialistvlad/deccalc/internal/ctxlog"
	"github.com/specialistvlad/deccalc/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top level of a settings file. Unknown blocks and
// attributes are left in Remain and ignored.
type fileRoot struct {
	Settings *settingsBlock `hcl:"settings,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

type settingsBlock struct {
	RoundNumber *int           `hcl:"round_number,optional"`
	MemoryValue hcl.Expression `hcl:"memory_value,optional"`
}

// Load parses every .hcl file found under paths, in lexical order within a
// directory, and applies each `settings` block on top of base. A path that
// does not exist is not an error.
func (l *Loader) Load(ctx context.Context, base config.Settings, paths ...string) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return config.Settings{}, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	settings := base

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return config.Settings{}, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return config.Settings{}, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if root.Settings == nil {
			logger.Debug("HCL file has no settings block.", "file", file)
			continue
		}

		settings, err = l.translateSettings(ctx, root.Settings, settings)
		if err != nil {
			return config.Settings{}, fmt.Errorf("in HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL settings loading complete.", "files", len(hclFiles), "round_number", settings.RoundNumber, "memory_value", settings.MemoryValue.String())
	return settings, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
