package traverse

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/vk/toolgraphgo/internal/dag"
)

// Visitor is the per-node callback contract. The engine invokes Visit once
// per graph node, after every dependency of that node has been visited.
type Visitor interface {
	// Name uniquely identifies the visitor. Results are keyed by it.
	Name() string
	// Visit computes this visitor's result for one node. The returned value
	// is attached to the node so that visits of dependent nodes can consume
	// it via TargetContext.Children.
	Visit(ctx context.Context, tc *TargetContext) (any, error)
}

// TargetContext is the input the engine supplies to a Visitor for one node.
type TargetContext struct {
	// Target is the configuration of the node being visited.
	Target *config.Target
	// Platform is the platform the current traversal analyzes.
	Platform *config.Platform
	// Children holds the results this same visitor produced for the node's
	// direct dependencies, in dependency declaration order. An entry is nil
	// when the visitor returned nothing for that dependency.
	Children []any
}

// Results maps visitor name to per-target results, keyed by target label.
type Results map[string]map[string]any

// ErrSkipped marks nodes that were never visited because an upstream
// dependency failed.
var ErrSkipped = errors.New("skipped due to upstream failure")

// Traverser drives visitors over a dependency graph.
type Traverser struct {
	graph   *dag.Graph
	workers int
}

// New creates a Traverser for the given graph. At least one worker is always
// used.
func New(g *dag.Graph, workers int) *Traverser {
	if workers < 1 {
		workers = 1
	}
	return &Traverser{graph: g, workers: workers}
}

// nodeState holds the per-traversal runtime state of a single node.
type nodeState struct {
	label  string
	target *config.Target

	// pendingDeps counts unvisited dependencies; the node becomes ready at zero.
	pendingDeps atomic.Int32
	// results holds one entry per visitor, written by the visiting worker
	// before any dependent is unlocked.
	results map[string]any

	err      error
	skipOnce sync.Once
}

// Run walks the whole graph once for the given platform and returns the
// results every visitor produced at every node. It returns an error if any
// visitor fails; nodes downstream of a failure are skipped.
func (t *Traverser) Run(ctx context.Context, platform *config.Platform, visitors []Visitor) (Results, error) {
	logger := ctxlog.FromContext(ctx)

	states := make(map[string]*nodeState, t.graph.Len())
	for _, lbl := range t.graph.Labels() {
		target, _ := t.graph.Target(lbl)
		deps, err := t.graph.Dependencies(lbl)
		if err != nil {
			return nil, err
		}
		state := &nodeState{
			label:   lbl,
			target:  target,
			results: make(map[string]any, len(visitors)),
		}
		state.pendingDeps.Store(int32(len(deps)))
		states[lbl] = state
	}

	readyChan := make(chan *nodeState, len(states))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Debug("Seeding traversal with leaf nodes.")
	leafCount := 0
	for _, lbl := range t.graph.Leaves() {
		readyChan <- states[lbl]
		leafCount++
	}
	logger.Debug("Found all leaf nodes.", "count", leafCount)

	var wg sync.WaitGroup
	wg.Add(len(states))

	logger.Debug("Starting worker pool.", "workers", t.workers)
	for i := 0; i < t.workers; i++ {
		go t.worker(runCtx, readyChan, cancel, states, visitors, &wg, platform, i)
	}

	wg.Wait()
	close(readyChan)

	results := make(Results, len(visitors))
	for _, v := range visitors {
		results[v.Name()] = make(map[string]any, len(states))
	}

	var failedNodes []string
	var rootCauseError error
	for _, state := range states {
		if state.err != nil {
			if !errors.Is(state.err, ErrSkipped) && !errors.Is(state.err, context.Canceled) {
				failedNodes = append(failedNodes, state.label)
				if rootCauseError == nil {
					rootCauseError = state.err
				}
			}
			continue
		}
		for name, res := range state.results {
			results[name][state.label] = res
		}
	}

	if rootCauseError != nil {
		return nil, fmt.Errorf("traversal failed for %s: %w", strings.Join(failedNodes, ", "), rootCauseError)
	}

	return results, nil
}
