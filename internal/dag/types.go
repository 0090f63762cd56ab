package dag

import (
	"sync"

	"github.com/vk/toolgraphgo/internal/config"
)

// Graph is a collection of targets and their dependency edges, representing a
// DAG. All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their target label.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to enforce
// interaction with the graph via the public API (using target labels), not by
// direct struct manipulation.
type node struct {
	// label is the unique identifier for the node.
	label string
	// target is the configuration the node was created from.
	target *config.Target
	// deps holds the nodes this node depends on, in declaration order.
	deps []*node
	// depSet mirrors deps for O(1) membership checks.
	depSet map[string]struct{}
	// dependents holds the set of nodes that depend on this node.
	dependents map[string]*node
}
