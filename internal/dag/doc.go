// Package dag models the build dependency graph the profiler walks. It
// validates the target graph loaded from configuration (unique labels, known
// dependencies, no cycles) and exposes it through string-keyed queries.
//
// Dependency order is preserved exactly as declared in the source: downstream
// consumers rely on it to break ties between child results.
package dag
