package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"platforms.hcl": `
platform "linux_amd64" {
  os   = "linux"
  arch = "amd64"
}

platform "darwin_arm64" {
  os   = "darwin"
  arch = "arm64"
}
`,
		"repos.hcl": `
repository "go_sdk" {
  url          = "https://dl.example.com/go/go1.22.${platform.os}-${platform.arch}.tar.gz"
  sha256       = "abc123"
  strip_prefix = "go"
}
`,
		"graph/targets.hcl": `
target "//app:server" {
  deps = ["//lib:core", "//lib:util"]

  toolchain "go" {
    resolved = "@go_sdk//:go"
  }

  toolchain "cpp" {
    resolved  = "//tools/cpp:compiler"
    platforms = ["linux_amd64"]
  }
}

target "//lib:core" {
  deps = ["//lib:util"]
}

target "//lib:util" {}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, model.Platforms, 2)
	names := []string{model.Platforms[0].Name, model.Platforms[1].Name}
	assert.ElementsMatch(t, []string{"linux_amd64", "darwin_arm64"}, names)

	repo, ok := model.Repositories["go_sdk"]
	require.True(t, ok)
	assert.Equal(t, "abc123", repo.SHA256)
	assert.Equal(t, "go", repo.StripPrefix)
	assert.NotNil(t, repo.URL)

	require.Len(t, model.Targets, 3)
	var server *struct {
		deps       []string
		toolchains int
	}
	for _, target := range model.Targets {
		if target.Label == "//app:server" {
			server = &struct {
				deps       []string
				toolchains int
			}{deps: target.Deps, toolchains: len(target.Toolchains)}
		}
	}
	require.NotNil(t, server, "target //app:server must be loaded")
	assert.Equal(t, []string{"//lib:core", "//lib:util"}, server.deps)
	assert.Equal(t, 2, server.toolchains)
}

func TestLoad_SingleFilePath(t *testing.T) {
	dir := writeWorkspace(t, map[string]string{
		"workspace.hcl": `
target "//app" {}
`,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "workspace.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Targets, 1)
	assert.Equal(t, "//app", model.Targets[0].Label)
}

func TestLoad_MissingPathSkipped(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), "/does/not/exist")
	require.NoError(t, err)
	assert.Empty(t, model.Targets)
	assert.Empty(t, model.Platforms)
	assert.Empty(t, model.Repositories)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed HCL", func(t *testing.T) {
		dir := writeWorkspace(t, map[string]string{
			"bad.hcl": `target "//app" {`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, "failed to parse HCL file")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		dir := writeWorkspace(t, map[string]string{
			"bad.hcl": `
target "//app" {
  banana = true
}
`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, "failed to decode HCL file")
	})

	t.Run("duplicate target", func(t *testing.T) {
		dir := writeWorkspace(t, map[string]string{
			"a.hcl": `target "//app" {}`,
			"b.hcl": `target "//app" {}`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, `duplicate target "//app"`)
	})

	t.Run("duplicate repository", func(t *testing.T) {
		dir := writeWorkspace(t, map[string]string{
			"repos.hcl": `
repository "go_sdk" {
  url    = "https://example.com/a.tar.gz"
  sha256 = "aaa"
}

repository "go_sdk" {
  url    = "https://example.com/b.tar.gz"
  sha256 = "bbb"
}
`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, `duplicate repository "go_sdk"`)
	})

	t.Run("duplicate platform", func(t *testing.T) {
		dir := writeWorkspace(t, map[string]string{
			"platforms.hcl": `
platform "linux_amd64" {
  os   = "linux"
  arch = "amd64"
}

platform "linux_amd64" {
  os   = "linux"
  arch = "amd64"
}
`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		assert.ErrorContains(t, err, `duplicate platform "linux_amd64"`)
	})
}
