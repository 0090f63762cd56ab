package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/toolgraphgo/internal/config"
)

func TestBuild(t *testing.T) {
	model := &config.Model{
		Targets: []*config.Target{
			{Label: "//app:server", Deps: []string{"//lib:core", "//lib:util"}},
			{Label: "//lib:core", Deps: []string{"//lib:util"}},
			{Label: "//lib:util"},
		},
	}

	graph, err := Build(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, 3, graph.Len())

	deps, err := graph.Dependencies("//app:server")
	require.NoError(t, err)
	assert.Equal(t, []string{"//lib:core", "//lib:util"}, deps)

	assert.Equal(t, []string{"//app:server"}, graph.Roots())
	assert.Equal(t, []string{"//lib:util"}, graph.Leaves())
}

func TestBuild_Errors(t *testing.T) {
	t.Run("duplicate target", func(t *testing.T) {
		model := &config.Model{
			Targets: []*config.Target{
				{Label: "//a"},
				{Label: "//a"},
			},
		}
		_, err := Build(context.Background(), model)
		assert.ErrorContains(t, err, "duplicate target label")
	})

	t.Run("unknown dependency", func(t *testing.T) {
		model := &config.Model{
			Targets: []*config.Target{
				{Label: "//a", Deps: []string{"//missing"}},
			},
		}
		_, err := Build(context.Background(), model)
		assert.ErrorContains(t, err, "dependency node not found")
	})

	t.Run("cyclic dependencies", func(t *testing.T) {
		model := &config.Model{
			Targets: []*config.Target{
				{Label: "//a", Deps: []string{"//b"}},
				{Label: "//b", Deps: []string{"//a"}},
			},
		}
		_, err := Build(context.Background(), model)
		assert.ErrorContains(t, err, "cycle detected")
	})
}

func TestBuild_EmptyModel(t *testing.T) {
	graph, err := Build(context.Background(), &config.Model{})
	require.NoError(t, err)
	assert.Equal(t, 0, graph.Len())
}
