// Package label parses and serializes build target labels of the form
// `@repository//package:name`. A label with no repository qualifier belongs
// to the root workspace and reports an empty repository name.
package label
