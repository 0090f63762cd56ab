// Package report renders the human-readable summary of a profiling run: a
// column-aligned table of the toolchain artifacts discovered per platform.
package report
