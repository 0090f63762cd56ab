// This file contains the logic for translating HCL schema structs into the
// format-agnostic model defined in the config package.

package hcl

import (
	"github.com/vk/toolgraphgo/internal/config"
	"github.com/vk/toolgraphgo/internal/schema"
)

// translatePlatform converts the HCL-specific platform schema into the agnostic model.
func translatePlatform(s *schema.Platform) *config.Platform {
	return &config.Platform{
		Name: s.Name,
		OS:   s.OS,
		Arch: s.Arch,
	}
}

// translateRepository converts the HCL-specific repository schema into the
// agnostic model. The url expression is carried over unevaluated: it is only
// evaluated against a concrete platform when the manifest is produced.
func translateRepository(s *schema.Repository) *config.Repository {
	return &config.Repository{
		Name:        s.Name,
		URL:         s.URL,
		SHA256:      s.SHA256,
		StripPrefix: s.StripPrefix,
	}
}

// translateTarget converts the HCL-specific target schema into the agnostic model.
func translateTarget(s *schema.Target) *config.Target {
	t := &config.Target{
		Label: s.Label,
		Deps:  s.Deps,
	}
	for _, res := range s.Toolchains {
		t.Toolchains = append(t.Toolchains, &config.Resolution{
			Type:      res.Type,
			Resolved:  res.Resolved,
			Platforms: res.Platforms,
		})
	}
	return t
}
