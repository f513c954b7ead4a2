package catalog

import (
	"fmt"
	"strings"
)

// Markdown renders the profile as a Markdown document body (no title).
func (p Profile) Markdown() string {
	var b strings.Builder

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Time | `%s` |\n", p.Complexity.Time)
	fmt.Fprintf(&b, "| Space | `%s` |\n", p.Complexity.Space)
	if p.Complexity.Best != "" {
		fmt.Fprintf(&b, "| Best case | `%s` |\n", p.Complexity.Best)
	}
	if p.Complexity.Worst != "" {
		fmt.Fprintf(&b, "| Worst case | `%s` |\n", p.Complexity.Worst)
	}

	fmt.Fprintf(&b, "\n%s\n\n## How it works\n\n%s\n", p.Description, p.HowItWorks)
	list(&b, "Key concepts", p.KeyConcepts)
	list(&b, "When to use", p.Scenarios)
	list(&b, "Pitfalls", p.Pitfalls)

	if len(p.Links) > 0 {
		b.WriteString("\n## Further reading\n\n")
		for _, l := range p.Links {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.URL)
		}
	}
	return b.String()
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}

// Markdown renders the algorithm name followed by its profile.
func (a Algorithm) Markdown() string {
	return fmt.Sprintf("# %s\n\n%s", a.Name, a.Profile.Markdown())
}
