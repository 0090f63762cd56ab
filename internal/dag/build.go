package dag

import (
	"context"
	"fmt"

	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
)

// Build constructs a complete, validated dependency graph from a config model.
func Build(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")
	graph := New()

	// First pass: create all nodes.
	for _, target := range model.Targets {
		if err := graph.AddNode(target); err != nil {
			return nil, fmt.Errorf("error adding target: %w", err)
		}
	}
	logger.Debug("Build: Node creation complete.", "node_count", graph.Len())

	// Second pass: link dependency edges in declaration order.
	for _, target := range model.Targets {
		for _, dep := range target.Deps {
			if err := graph.AddEdge(target.Label, dep); err != nil {
				return nil, fmt.Errorf("error linking target '%s': %w", target.Label, err)
			}
		}
	}
	logger.Debug("Build: Edge linking complete.")

	if err := graph.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Cycle detection passed.")

	logger.Debug("Build: Graph construction successful.")
	return graph, nil
}
