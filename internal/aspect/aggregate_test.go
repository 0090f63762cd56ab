package aspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/toolgraphgo/internal/label"
)

func mustLabel(t *testing.T, raw string) *label.Label {
	t.Helper()
	l, err := label.Parse(raw)
	require.NoError(t, err)
	return &l
}

func TestAggregate_EmptyInputs(t *testing.T) {
	result := Aggregate(nil, nil)

	require.NotNil(t, result)
	assert.Empty(t, result.Toolchains)
	assert.Empty(t, result.Repositories)
}

func TestAggregate_AbsentHandlesSkipped(t *testing.T) {
	local := map[string]*label.Label{
		"cpp": nil,
		"go":  mustLabel(t, "@go_sdk//:go"),
	}

	result := Aggregate(local, nil)

	assert.Equal(t, []string{"go"}, result.Types())
	assert.Equal(t, []string{"go_sdk"}, result.RepositoryNames())
}

func TestAggregate_RootToolchainHasNoRepository(t *testing.T) {
	local := map[string]*label.Label{
		"cpp": mustLabel(t, "//tools/cpp:compiler"),
	}

	result := Aggregate(local, nil)

	require.Contains(t, result.Toolchains, "cpp")
	assert.Equal(t, "", result.Toolchains["cpp"].Repository)
	assert.Empty(t, result.Repositories)
}

func TestAggregate_LocalPrecedence(t *testing.T) {
	child := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@child_sdk//:go"),
	}, nil)

	local := map[string]*label.Label{
		"go": mustLabel(t, "@local_sdk//:go"),
	}

	result := Aggregate(local, []*Result{child})

	require.Contains(t, result.Toolchains, "go")
	assert.Equal(t, "local_sdk", result.Toolchains["go"].Repository)
}

func TestAggregate_FirstChildWins(t *testing.T) {
	first := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@first_sdk//:go"),
	}, nil)
	second := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@second_sdk//:go"),
	}, nil)

	result := Aggregate(nil, []*Result{first, second})

	require.Contains(t, result.Toolchains, "go")
	assert.Equal(t, "first_sdk", result.Toolchains["go"].Repository)
	// The losing child's descriptor must not bleed through, but its
	// repository still joins the union.
	assert.Equal(t, *mustLabel(t, "@first_sdk//:go"), result.Toolchains["go"].Label)
	assert.ElementsMatch(t, []string{"first_sdk", "second_sdk"}, result.RepositoryNames())

	// Swapping the child order flips the winner.
	flipped := Aggregate(nil, []*Result{second, first})
	assert.Equal(t, "second_sdk", flipped.Toolchains["go"].Repository)
}

func TestAggregate_NoSpuriousKeys(t *testing.T) {
	childA := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@go_sdk//:go"),
	}, nil)
	childB := Aggregate(map[string]*label.Label{
		"rust": mustLabel(t, "@rust_sdk//:rustc"),
	}, nil)

	local := map[string]*label.Label{
		"cpp":  mustLabel(t, "//tools/cpp:compiler"),
		"java": nil,
	}

	result := Aggregate(local, []*Result{childA, childB})

	assert.Equal(t, []string{"cpp", "go", "rust"}, result.Types())
}

func TestAggregate_RepositoryCompleteness(t *testing.T) {
	childA := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@go_sdk//:go"),
	}, nil)
	childB := Aggregate(map[string]*label.Label{
		"rust": mustLabel(t, "@rust_sdk//:rustc"),
		"cpp":  mustLabel(t, "//tools/cpp:compiler"),
	}, nil)

	result := Aggregate(nil, []*Result{childA, childB})

	for typ, tc := range result.Toolchains {
		if tc.Repository == "" {
			continue
		}
		assert.Contains(t, result.Repositories, tc.Repository,
			"repository of retained toolchain %q missing from repository set", typ)
	}
}

// The exact scenario from the component design: one local root-workspace
// toolchain plus one child contribution.
func TestAggregate_LocalAndChildScenario(t *testing.T) {
	child := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@go_sdk//:go"),
	}, nil)

	local := map[string]*label.Label{
		"cpp": mustLabel(t, "//:cc"),
	}

	result := Aggregate(local, []*Result{child})

	require.Len(t, result.Toolchains, 2)
	assert.Equal(t, Toolchain{Label: *mustLabel(t, "//:cc"), Repository: ""}, result.Toolchains["cpp"])
	assert.Equal(t, Toolchain{Label: *mustLabel(t, "@go_sdk//:go"), Repository: "go_sdk"}, result.Toolchains["go"])
	assert.Equal(t, []string{"go_sdk"}, result.RepositoryNames())
}

// A repository contributed by a shadowed descriptor persists in the
// repository set even though its descriptor lost the merge.
func TestAggregate_ShadowedRepositorySurvives(t *testing.T) {
	child := Aggregate(map[string]*label.Label{
		"x": mustLabel(t, "@r1//:tool"),
	}, nil)

	local := map[string]*label.Label{
		"x": mustLabel(t, "@r2//:tool"),
	}

	result := Aggregate(local, []*Result{child})

	require.Contains(t, result.Toolchains, "x")
	assert.Equal(t, "r2", result.Toolchains["x"].Repository)
	assert.ElementsMatch(t, []string{"r1", "r2"}, result.RepositoryNames())
}

func TestAggregate_NilChildSkipped(t *testing.T) {
	child := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@go_sdk//:go"),
	}, nil)

	result := Aggregate(nil, []*Result{nil, child, nil})

	assert.Equal(t, []string{"go"}, result.Types())
	assert.Equal(t, []string{"go_sdk"}, result.RepositoryNames())
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	child := Aggregate(map[string]*label.Label{
		"go": mustLabel(t, "@go_sdk//:go"),
	}, nil)

	local := map[string]*label.Label{
		"go": mustLabel(t, "@local_sdk//:go"),
	}

	_ = Aggregate(local, []*Result{child})

	assert.Equal(t, "go_sdk", child.Toolchains["go"].Repository)
	assert.Len(t, child.Toolchains, 1)
	assert.Len(t, child.Repositories, 1)
}
