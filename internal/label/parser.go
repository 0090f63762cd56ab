package label

import (
	"fmt"
	"regexp"
	"strings"
)

// labelRegex splits a raw label into its repository, package, and name parts,
// e.g. `@go_sdk//builtin:go_toolchain` or `//tools/cpp:compiler`.
var labelRegex = regexp.MustCompile(`^(?:@([A-Za-z0-9_.~-]*))?//([^:@]*)(?::([^:@]+))?$`)

// Parse creates a Label by parsing its canonical string representation.
// Labels must be absolute: they start with either '@repo//' or '//'. When the
// ':name' part is omitted, the name defaults to the last package segment.
func Parse(raw string) (Label, error) {
	if raw == "" {
		return Label{}, fmt.Errorf("label cannot be empty")
	}

	matches := labelRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Label{}, fmt.Errorf("invalid label format: %q", raw)
	}

	l := Label{
		Repository: matches[1],
		Package:    matches[2],
		Name:       matches[3],
	}

	if strings.HasPrefix(raw, "@") && l.Repository == "" {
		return Label{}, fmt.Errorf("label %q has an empty repository qualifier", raw)
	}

	for _, seg := range strings.Split(l.Package, "/") {
		if seg == "" && l.Package != "" {
			return Label{}, fmt.Errorf("label %q contains an empty package segment", raw)
		}
		if seg == "." || seg == ".." {
			return Label{}, fmt.Errorf("label %q contains an invalid package segment %q", raw, seg)
		}
	}

	if l.Name == "" {
		if l.Package == "" {
			return Label{}, fmt.Errorf("label %q has neither a package nor a target name", raw)
		}
		segments := strings.Split(l.Package, "/")
		l.Name = segments[len(segments)-1]
	}

	return l, nil
}
