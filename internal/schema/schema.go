// Package schema defines the HCL-tagged structs that workspace description
// files decode into. Translation into the format-agnostic config model lives
// in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// Platform represents a `platform` block.
type Platform struct {
	Name string `hcl:"name,label"`
	OS   string `hcl:"os"`
	Arch string `hcl:"arch"`
}

// Repository represents a `repository` block declaring where a toolchain
// archive comes from.
type Repository struct {
	Name        string         `hcl:"name,label"`
	URL         hcl.Expression `hcl:"url"`
	SHA256      string         `hcl:"sha256"`
	StripPrefix string         `hcl:"strip_prefix,optional"`
}

// Resolution represents a `toolchain` block inside a target, recording which
// toolchain instance satisfied a toolchain type for that target.
type Resolution struct {
	Type      string   `hcl:"type,label"`
	Resolved  string   `hcl:"resolved,optional"`
	Platforms []string `hcl:"platforms,optional"`
}

// Target represents a `target` block: one node of the dependency graph.
type Target struct {
	Label      string        `hcl:"label,label"`
	Deps       []string      `hcl:"deps,optional"`
	Toolchains []*Resolution `hcl:"toolchain,block"`
}

// FileRoot represents the top-level structure of any workspace description
// file. Any block kind may appear in any file.
type FileRoot struct {
	Platforms    []*Platform   `hcl:"platform,block"`
	Repositories []*Repository `hcl:"repository,block"`
	Targets      []*Target     `hcl:"target,block"`
	Body         hcl.Body      `hcl:",remain"`
}
