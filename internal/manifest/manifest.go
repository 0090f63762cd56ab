package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/toolgraphgo/internal/aspect"
	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// UnknownType marks artifacts whose repository survived aggregation only in
// the repository set: the descriptor that contributed it was shadowed, so no
// toolchain type can be attributed to it.
const UnknownType = "unknown"

// Artifact is one toolchain archive to be mirrored.
type Artifact struct {
	URL           string `json:"url"`
	SHA256        string `json:"sha256"`
	Platform      string `json:"platform"`
	ToolchainType string `json:"toolchain_type"`
	Repository    string `json:"repository_name"`
	StripPrefix   string `json:"strip_prefix,omitempty"`
}

// Manifest groups artifacts by platform name.
type Manifest map[string][]Artifact

// Build produces the artifacts for one platform from the merged aggregation
// result and the declared repositories. Repositories referenced by the result
// but never declared are logged and skipped rather than failing the run.
func Build(ctx context.Context, platform *config.Platform, result *aspect.Result, repos map[string]*config.Repository) ([]Artifact, error) {
	logger := ctxlog.FromContext(ctx)

	evalCtx := evalContext(platform)
	covered := make(map[string]struct{})
	artifacts := []Artifact{}

	// One artifact per retained toolchain descriptor that points at an
	// external repository.
	for _, typ := range result.Types() {
		tc := result.Toolchains[typ]
		if tc.Repository == "" {
			// Root-workspace toolchains have nothing to mirror.
			continue
		}
		covered[tc.Repository] = struct{}{}

		repo, declared := repos[tc.Repository]
		if !declared {
			logger.Warn("Toolchain references an undeclared repository, skipping artifact.",
				"repository", tc.Repository, "toolchain_type", typ)
			continue
		}

		artifact, err := buildArtifact(repo, platform, typ, evalCtx)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	// Repositories that survived only in the repository set still get an
	// artifact; their toolchain type cannot be attributed.
	for _, name := range result.RepositoryNames() {
		if _, ok := covered[name]; ok {
			continue
		}
		repo, declared := repos[name]
		if !declared {
			logger.Warn("Aggregated repository is undeclared, skipping artifact.", "repository", name)
			continue
		}

		artifact, err := buildArtifact(repo, platform, UnknownType, evalCtx)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		if artifacts[i].ToolchainType != artifacts[j].ToolchainType {
			return artifacts[i].ToolchainType < artifacts[j].ToolchainType
		}
		return artifacts[i].Repository < artifacts[j].Repository
	})

	return artifacts, nil
}

// buildArtifact evaluates one repository declaration against the platform.
func buildArtifact(repo *config.Repository, platform *config.Platform, toolchainType string, evalCtx *hcl.EvalContext) (Artifact, error) {
	url, err := evaluateURL(repo, evalCtx)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		URL:           url,
		SHA256:        repo.SHA256,
		Platform:      platform.Name,
		ToolchainType: toolchainType,
		Repository:    repo.Name,
		StripPrefix:   repo.StripPrefix,
	}, nil
}

// evalContext exposes the platform being analyzed to url expressions as a
// `platform` object with name/os/arch attributes.
func evalContext(platform *config.Platform) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"platform": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(platform.Name),
				"os":   cty.StringVal(platform.OS),
				"arch": cty.StringVal(platform.Arch),
			}),
		},
	}
}

// evaluateURL resolves a repository's url expression to a concrete string.
func evaluateURL(repo *config.Repository, evalCtx *hcl.EvalContext) (string, error) {
	if repo.URL == nil {
		return "", fmt.Errorf("repository %q has no url", repo.Name)
	}

	val, diags := repo.URL.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate url for repository %q: %w", repo.Name, diags)
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("url for repository %q is not a string: %w", repo.Name, err)
	}
	if strVal.IsNull() {
		return "", fmt.Errorf("url for repository %q is null", repo.Name)
	}

	return strVal.AsString(), nil
}

// Write serializes the manifest as indented JSON.
func Write(w io.Writer, m Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
