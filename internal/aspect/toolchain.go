package aspect

import (
	"context"

	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/vk/toolgraphgo/internal/label"
	"github.com/vk/toolgraphgo/internal/traverse"
)

// Name is the registry key of the toolchain discovery visitor.
const Name = "toolchains"

// ToolchainAspect adapts the pure Aggregate function to the traversal
// engine's visitor contract.
type ToolchainAspect struct{}

// Name implements traverse.Visitor.
func (a *ToolchainAspect) Name() string {
	return Name
}

// Visit aggregates the toolchains for one target. Resolutions that do not
// apply to the current platform, are empty, or fail to parse are treated as
// absent rather than reported as errors; the visit itself never fails.
func (a *ToolchainAspect) Visit(ctx context.Context, tc *traverse.TargetContext) (any, error) {
	logger := ctxlog.FromContext(ctx)

	local := make(map[string]*label.Label, len(tc.Target.Toolchains))
	for _, res := range tc.Target.Toolchains {
		if _, declared := local[res.Type]; declared {
			// First declaration of a type wins within a single target.
			logger.Debug("Ignoring duplicate toolchain declaration.",
				"target", tc.Target.Label, "type", res.Type)
			continue
		}
		local[res.Type] = nil
		if res.Resolved == "" || !res.AppliesTo(tc.Platform.Name) {
			continue
		}
		lbl, err := label.Parse(res.Resolved)
		if err != nil {
			logger.Debug("Ignoring malformed toolchain label.",
				"target", tc.Target.Label,
				"type", res.Type,
				"resolved", res.Resolved,
				"error", err,
			)
			continue
		}
		local[res.Type] = &lbl
	}

	// Dependency edges that carry no prior result are skipped.
	children := make([]*Result, 0, len(tc.Children))
	for _, child := range tc.Children {
		if result, ok := child.(*Result); ok {
			children = append(children, result)
		}
	}

	return Aggregate(local, children), nil
}
