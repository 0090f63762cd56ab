package aspect

import (
	"sort"

	"github.com/vk/toolgraphgo/internal/label"
)

// Toolchain describes one resolved toolchain instance.
type Toolchain struct {
	// Label identifies the resolved toolchain.
	Label label.Label
	// Repository is the external repository that provides the toolchain. It
	// is empty when the toolchain is defined in the root workspace.
	Repository string
}

// Result is the output of the discovery pass for one graph node: the
// toolchains in effect at or below the node, keyed by toolchain type, and the
// external repositories they came from.
//
// The repository set can hold names whose contributing toolchain was shadowed
// by a higher-priority resolution of the same type: repositories are unioned
// independently of which descriptor wins. Consumers must not treat the set as
// derivable from the toolchain map.
type Result struct {
	Toolchains   map[string]Toolchain
	Repositories map[string]struct{}
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		Toolchains:   make(map[string]Toolchain),
		Repositories: make(map[string]struct{}),
	}
}

// Types returns the toolchain type identifiers present in the result, sorted.
func (r *Result) Types() []string {
	types := make([]string, 0, len(r.Toolchains))
	for t := range r.Toolchains {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RepositoryNames returns the repository names in the result, sorted.
func (r *Result) RepositoryNames() []string {
	names := make([]string, 0, len(r.Repositories))
	for name := range r.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
