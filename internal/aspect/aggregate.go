package aspect

import "github.com/vk/toolgraphgo/internal/label"

// Aggregate merges the toolchains resolved directly at one graph node with
// the results already computed for its dependencies.
//
// Merge policy is first-seen-wins per toolchain type: a local resolution
// always beats one propagated from a child, and among children, whichever
// appears earlier in the slice wins. An established entry is never
// overwritten. Repository names are unioned unconditionally, so a name can
// survive even when the descriptor that contributed it loses the merge.
//
// A nil handle in local and a nil entry in children both mean "absent" and
// are skipped. Aggregate never fails and has no side effects.
func Aggregate(local map[string]*label.Label, children []*Result) *Result {
	result := NewResult()

	for typ, handle := range local {
		if handle == nil {
			continue
		}
		result.Toolchains[typ] = Toolchain{
			Label:      *handle,
			Repository: handle.Repository,
		}
		if handle.Repository != "" {
			result.Repositories[handle.Repository] = struct{}{}
		}
	}

	for _, child := range children {
		if child == nil {
			continue
		}
		for typ, tc := range child.Toolchains {
			if _, taken := result.Toolchains[typ]; !taken {
				result.Toolchains[typ] = tc
			}
		}
		for repo := range child.Repositories {
			result.Repositories[repo] = struct{}{}
		}
	}

	return result
}
