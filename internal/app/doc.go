// Package app wires the application together: configuration, logging, the
// visitor registry, the workspace loader, and the profiling run itself.
package app
