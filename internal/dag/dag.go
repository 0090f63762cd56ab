package dag

import (
	"fmt"

	"github.com/vk/toolgraphgo/internal/config"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node for the given target to the graph. An error is
// returned if a node with the same label already exists.
func (g *Graph) AddNode(target *config.Target) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[target.Label]; ok {
		return fmt.Errorf("duplicate target label: %s", target.Label)
	}

	g.nodes[target.Label] = &node{
		label:      target.Label,
		target:     target,
		depSet:     make(map[string]struct{}),
		dependents: make(map[string]*node),
	}
	return nil
}

// AddEdge records that the `from` target depends on the `to` target. Edges
// are appended in call order, which preserves the declaration order of a
// target's dependencies. An error is returned if either node does not exist,
// if the edge would be a self-reference, or if the edge already exists.
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", from, from)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("source node not found: %s", from)
	}

	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("dependency node not found: %s", to)
	}

	if _, ok := fromNode.depSet[to]; ok {
		return fmt.Errorf("duplicate dependency edge: %s -> %s", from, to)
	}

	fromNode.deps = append(fromNode.deps, toNode)
	fromNode.depSet[to] = struct{}{}
	toNode.dependents[from] = fromNode

	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Labels returns the labels of all nodes in the graph, in no particular order.
func (g *Graph) Labels() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	labels := make([]string, 0, len(g.nodes))
	for label := range g.nodes {
		labels = append(labels, label)
	}
	return labels
}

// Target returns the configuration of the named node.
func (g *Graph) Target(label string) (*config.Target, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil, false
	}
	return n.target, true
}

// Dependencies returns the labels the given node depends on, in declaration
// order.
func (g *Graph) Dependencies(label string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", label)
	}

	deps := make([]string, 0, len(n.deps))
	for _, dep := range n.deps {
		deps = append(deps, dep.label)
	}
	return deps, nil
}

// Dependents returns the labels of the nodes that depend on the given node.
func (g *Graph) Dependents(label string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[label]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", label)
	}

	dependents := make([]string, 0, len(n.dependents))
	for depLabel := range n.dependents {
		dependents = append(dependents, depLabel)
	}
	return dependents, nil
}

// Roots returns the labels of all nodes nothing depends on: the entry points
// of the build graph.
func (g *Graph) Roots() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var roots []string
	for label, n := range g.nodes {
		if len(n.dependents) == 0 {
			roots = append(roots, label)
		}
	}
	return roots
}

// Leaves returns the labels of all nodes with no dependencies.
func (g *Graph) Leaves() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var leaves []string
	for label, n := range g.nodes {
		if len(n.deps) == 0 {
			leaves = append(leaves, label)
		}
	}
	return leaves
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error if
// a cycle is found, naming the first node involved in the detected cycle.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// Classic depth-first search with three node sets:
	// permanent: fully visited, known not to be part of a cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.label] {
			return nil
		}
		if temporary[n.label] {
			return fmt.Errorf("cycle detected involving node '%s'", n.label)
		}

		temporary[n.label] = true

		for _, dep := range n.deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		delete(temporary, n.label)
		permanent[n.label] = true

		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.label] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
