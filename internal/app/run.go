package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/vk/toolgraphgo/internal/aspect"
	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/vk/toolgraphgo/internal/dag"
	"github.com/vk/toolgraphgo/internal/manifest"
	"github.com/vk/toolgraphgo/internal/report"
	"github.com/vk/toolgraphgo/internal/traverse"
)

// Run executes the whole profiling pass: build the graph, walk it once per
// platform, and emit the manifest and summary.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx)
		defer a.closeHealthcheckServer(ctx)
	}

	a.logger.Debug("Building dependency graph from workspace model...")
	graph, err := dag.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "node_count", graph.Len())

	if graph.Len() == 0 {
		a.logger.Warn("No targets found in workspace, manifest will be empty.")
	}

	platforms := a.model.Platforms
	if len(platforms) == 0 {
		host := hostPlatform()
		a.logger.Info("No platforms declared, profiling against the host platform.", "platform", host.Name)
		platforms = []*config.Platform{host}
	}

	traverser := traverse.New(graph, a.config.WorkerCount)
	visitors := a.registry.Visitors()
	result := manifest.Manifest{}

	a.logger.Info("🚀 Starting toolchain profiling...", "platforms", len(platforms), "targets", graph.Len())
	for _, platform := range platforms {
		a.logger.Info("Analyzing platform.", "platform", platform.Name)

		results, err := traverser.Run(ctx, platform, visitors)
		if err != nil {
			return fmt.Errorf("traversal failed for platform '%s': %w", platform.Name, err)
		}

		merged := mergeRootResults(graph, results[aspect.Name])
		a.logger.Debug("Aggregation complete.",
			"platform", platform.Name,
			"toolchain_types", len(merged.Toolchains),
			"repositories", len(merged.Repositories),
		)

		artifacts, err := manifest.Build(ctx, platform, merged, a.model.Repositories)
		if err != nil {
			return fmt.Errorf("failed to build manifest for platform '%s': %w", platform.Name, err)
		}
		result[platform.Name] = artifacts
	}
	a.logger.Info("🏁 Profiling finished.")

	if err := a.writeManifest(result); err != nil {
		return err
	}
	a.logger.Info("Manifest written.", "path", a.config.ManifestPath)

	report.Summary(a.outW, result, a.config.NoColor)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// mergeRootResults folds the per-target aggregation results of all graph
// roots into a single result. Roots are merged in lexical label order, which
// fixes the tie-break between roots that retain the same toolchain type.
func mergeRootResults(graph *dag.Graph, perTarget map[string]any) *aspect.Result {
	roots := graph.Roots()
	sort.Strings(roots)

	children := make([]*aspect.Result, 0, len(roots))
	for _, root := range roots {
		if result, ok := perTarget[root].(*aspect.Result); ok {
			children = append(children, result)
		}
	}
	return aspect.Aggregate(nil, children)
}

// writeManifest serializes the manifest to the configured path.
func (a *App) writeManifest(m manifest.Manifest) error {
	f, err := os.Create(a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer f.Close()

	if err := manifest.Write(f, m); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// hostPlatform synthesizes a platform from the runtime when the workspace
// declares none.
func hostPlatform() *config.Platform {
	return &config.Platform{
		Name: fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH),
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}
