// Package aspect implements the toolchain discovery pass that runs at every
// node of the build graph. For each visited target it records which toolchain
// instance satisfied each required toolchain type and which external
// repositories those toolchains came from, merging in the results already
// computed for the target's dependencies.
//
// The merge itself (Aggregate) is a pure function with no failure modes: it
// makes no assumptions about who calls it or how the graph walk is scheduled.
package aspect
