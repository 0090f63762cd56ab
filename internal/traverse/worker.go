package traverse

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
)

// worker is the core processing loop for a single concurrent worker.
func (t *Traverser) worker(
	ctx context.Context,
	readyChan chan *nodeState,
	cancel context.CancelFunc,
	states map[string]*nodeState,
	visitors []Visitor,
	wg *sync.WaitGroup,
	platform *config.Platform,
	workerID int,
) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for state := range readyChan {
		workerLogger := logger.With("workerID", workerID, "target", state.label)

		if ctx.Err() != nil {
			if state.skip(ctx.Err(), wg) {
				t.skipDependents(ctx, state, states, wg)
			}
			continue
		}

		workerLogger.Debug("Worker picked up node for visiting.")

		if err := t.visitNode(ctx, state, states, visitors, platform); err != nil {
			workerLogger.Error("Node visit failed.", "error", err)
			state.err = err
			cancel()
			t.skipDependents(ctx, state, states, wg)
			wg.Done()
			continue
		}

		workerLogger.Debug("Node visit succeeded.")

		dependents, err := t.graph.Dependents(state.label)
		if err != nil {
			workerLogger.Error("Failed to get dependents for visited node.", "error", err)
		} else {
			for _, depLabel := range dependents {
				dependent := states[depLabel]
				if dependent.pendingDeps.Add(-1) == 0 {
					workerLogger.Debug("Unlocking dependent node.", "dependent", depLabel)
					readyChan <- dependent
				}
			}
		}

		wg.Done()
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// visitNode runs every visitor against one node, gathering each visitor's
// child results in the node's dependency declaration order.
func (t *Traverser) visitNode(
	ctx context.Context,
	state *nodeState,
	states map[string]*nodeState,
	visitors []Visitor,
	platform *config.Platform,
) error {
	deps, err := t.graph.Dependencies(state.label)
	if err != nil {
		return err
	}

	for _, v := range visitors {
		children := make([]any, 0, len(deps))
		for _, depLabel := range deps {
			children = append(children, states[depLabel].results[v.Name()])
		}

		result, err := v.Visit(ctx, &TargetContext{
			Target:   state.target,
			Platform: platform,
			Children: children,
		})
		if err != nil {
			return fmt.Errorf("visitor '%s' failed: %w", v.Name(), err)
		}
		state.results[v.Name()] = result
	}

	return nil
}

// skipDependents recursively marks all downstream nodes as skipped.
func (t *Traverser) skipDependents(ctx context.Context, state *nodeState, states map[string]*nodeState, wg *sync.WaitGroup) {
	logger := ctxlog.FromContext(ctx)

	dependents, err := t.graph.Dependents(state.label)
	if err != nil {
		logger.Error("Failed to get dependents while skipping.", "target", state.label, "error", err)
		return
	}

	for _, depLabel := range dependents {
		dependent := states[depLabel]
		skipped := dependent.skip(fmt.Errorf("%w of '%s'", ErrSkipped, state.label), wg)
		if skipped {
			logger.Warn("Skipping dependent node due to upstream failure.", "target", depLabel, "dependency", state.label)
			t.skipDependents(ctx, dependent, states, wg)
		}
	}
}

// skip marks a node as failed exactly once, returning true on the first call.
func (s *nodeState) skip(err error, wg *sync.WaitGroup) bool {
	var wasSkipped bool
	s.skipOnce.Do(func() {
		s.err = err
		wg.Done()
		wasSkipped = true
	})
	return wasSkipped
}
