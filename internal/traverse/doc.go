// Package traverse walks a validated dependency graph in dependency order,
// leaves before parents, invoking every registered visitor once per node.
//
// The engine owns all scheduling: it runs a pool of concurrent workers fed by
// a ready channel, and it guarantees a node is only visited after all of its
// dependencies have been fully visited. Visitors see their own results for a
// node's direct dependencies, presented in declaration order; they never
// observe a partially computed child.
package traverse
