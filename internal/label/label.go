package label

import "strings"

// String serializes the Label into its canonical string representation.
// The ':name' part is always emitted, even when it matches the last package
// segment, so that two distinct inputs never collapse to the same output.
func (l Label) String() string {
	var sb strings.Builder
	if l.Repository != "" {
		sb.WriteByte('@')
		sb.WriteString(l.Repository)
	}
	sb.WriteString("//")
	sb.WriteString(l.Package)
	sb.WriteByte(':')
	sb.WriteString(l.Name)
	return sb.String()
}

// Equal checks two labels for equality.
func (l Label) Equal(other Label) bool {
	return l == other
}
