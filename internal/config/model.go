package config

import (
	"slices"

	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire
// workspace description: the target graph, the declared platforms, and the
// external repositories that provide toolchains.
type Model struct {
	Platforms    []*Platform
	Repositories map[string]*Repository
	Targets      []*Target
}

// Platform describes one execution platform the profiler analyzes the
// target graph against.
type Platform struct {
	Name string
	OS   string
	Arch string
}

// Repository describes an external repository that provides one or more
// toolchains, together with the archive it is fetched from.
type Repository struct {
	Name string
	// URL is kept as an unevaluated expression so it can reference the
	// platform being analyzed (e.g. "...${platform.arch}.tar.gz").
	URL         hcl.Expression
	SHA256      string
	StripPrefix string
}

// Target is one node of the build dependency graph.
type Target struct {
	// Label is the canonical identifier of the target.
	Label string
	// Deps lists the labels of direct dependencies. Order is preserved from
	// the source: it decides tie-breaking when aggregating child results.
	Deps []string
	// Toolchains lists the toolchain resolutions recorded for this target.
	Toolchains []*Resolution
}

// Resolution records which toolchain instance satisfied a toolchain type for
// a target, optionally restricted to a subset of platforms.
type Resolution struct {
	// Type is the toolchain type identifier, e.g. "go" or "cpp".
	Type string
	// Resolved is the label of the chosen toolchain instance. An empty value
	// means the type was declared but nothing was resolved for it.
	Resolved string
	// Platforms restricts this resolution to the named platforms. An empty
	// list means the resolution applies everywhere.
	Platforms []string
}

// AppliesTo reports whether the resolution is in effect for the named platform.
func (r *Resolution) AppliesTo(platform string) bool {
	if len(r.Platforms) == 0 {
		return true
	}
	return slices.Contains(r.Platforms, platform)
}
