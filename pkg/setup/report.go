package setup

import (
	"fmt"
	"strings"
)

// Markdown renders the result as a short report.
func (r *Result) Markdown() string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString("# Setup plan\n\n")
		b.WriteString("Dry run: nothing was written.\n\n")
	} else {
		b.WriteString("# Setup complete\n\n")
	}

	b.WriteString("| File | Replacements |\n")
	b.WriteString("|------|-------------:|\n")
	for _, f := range r.Files {
		fmt.Fprintf(&b, "| `%s` | %d |\n", f.Path, f.Replacements)
	}
	fmt.Fprintf(&b, "| **Total** | %d |\n", r.TotalReplacements())

	if r.RenamedFrom != "" {
		fmt.Fprintf(&b, "\nPackage directory: `%s` → `%s`\n", r.RenamedFrom, r.RenamedTo)
	}

	return b.String()
}
