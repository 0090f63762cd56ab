// Package manifest turns per-platform aggregation results into a mirrorable
// artifact manifest: for every external repository a toolchain came from, the
// archive URL, checksum, and strip prefix needed to fetch it.
package manifest
