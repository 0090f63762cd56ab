package label

// Label is the structured representation of a build target identifier.
type Label struct {
	// Repository is the external repository qualifier, without the leading
	// '@'. It is empty for labels defined in the root workspace.
	Repository string
	// Package is the slash-separated package path, without the leading '//'.
	Package string
	// Name is the target name within the package.
	Name string
}

// IsRoot reports whether the label belongs to the root workspace, i.e. it
// carries no repository qualifier.
func (l Label) IsRoot() bool {
	return l.Repository == ""
}
