// Package config defines the unified, format-agnostic model of a workspace
// description, along with the loader interface a format-specific
// implementation (such as the HCL loader) must satisfy.
package config
