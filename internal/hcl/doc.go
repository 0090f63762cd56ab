// Package hcl provides the concrete HCL implementation of the workspace
// loading interface defined in the config package. It is responsible for file
// discovery, HCL parsing, and translation into the format-agnostic model.
package hcl
