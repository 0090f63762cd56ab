package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/vk/toolgraphgo/internal/fsutil"
	"github.com/vk/toolgraphgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL workspace loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL loading process. It is agnostic to the
// origin of the paths and accepts any block kind from any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Repositories: make(map[string]*config.Repository),
	}

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	seenPlatforms := make(map[string]struct{})
	seenTargets := make(map[string]struct{})

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, platform := range root.Platforms {
			if _, dup := seenPlatforms[platform.Name]; dup {
				return nil, fmt.Errorf("duplicate platform %q in %s", platform.Name, file)
			}
			seenPlatforms[platform.Name] = struct{}{}
			model.Platforms = append(model.Platforms, translatePlatform(platform))
		}
		for _, repo := range root.Repositories {
			if _, dup := model.Repositories[repo.Name]; dup {
				return nil, fmt.Errorf("duplicate repository %q in %s", repo.Name, file)
			}
			model.Repositories[repo.Name] = translateRepository(repo)
		}
		for _, target := range root.Targets {
			if _, dup := seenTargets[target.Label]; dup {
				return nil, fmt.Errorf("duplicate target %q in %s", target.Label, file)
			}
			seenTargets[target.Label] = struct{}{}
			model.Targets = append(model.Targets, translateTarget(target))
		}
	}

	logger.Debug("HCL loading complete.",
		"platforms", len(model.Platforms),
		"repositories", len(model.Repositories),
		"targets", len(model.Targets),
	)
	return model, nil
}
