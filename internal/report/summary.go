package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/vk/toolgraphgo/internal/manifest"
)

// maxURLWidth keeps long archive URLs from blowing up the table layout.
const maxURLWidth = 60

// Summary writes the artifact summary table for a whole profiling run,
// grouped by platform name.
func Summary(w io.Writer, m manifest.Manifest, noColor bool) {
	table := NewTable(w, []string{"Platform", "Toolchain", "Repository", "URL"}, noColor)

	platforms := make([]string, 0, len(m))
	for name := range m {
		platforms = append(platforms, name)
	}
	sort.Strings(platforms)

	total := 0
	for _, platform := range platforms {
		for _, artifact := range m[platform] {
			table.AddRow(artifact.Platform, artifact.ToolchainType, artifact.Repository, truncate(artifact.URL, maxURLWidth))
			total++
		}
	}

	table.Render()
	fmt.Fprintf(w, "\n%d toolchain artifact(s) across %d platform(s)\n", total, len(platforms))
}

// truncate shortens a string to at most width runes, marking the cut.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
