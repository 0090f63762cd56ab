// Package registry holds the visitors a single application instance drives
// over the build graph. Registration happens once at startup; attempting to
// register two visitors under the same name is a programmer error and panics.
package registry
