package report

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

type markdownFormatter struct {
	b strings.Builder
}

func (f *markdownFormatter) Ext() string { return ".md" }

func (f *markdownFormatter) Begin(title string) {
	fmt.Fprintf(&f.b, "# %s\n", title)
}

func (f *markdownFormatter) Section(r analyzer.Result) {
	fmt.Fprintf(&f.b, "\n## 📄 %s\n\n", r.Path)
	fmt.Fprintf(&f.b, "**Language:** %s\n\n", r.Language)
	fmt.Fprintf(&f.b, "**Summary:** %s\n\n", r.Summary)
	fmt.Fprintf(&f.b, "**Risk:** %s\n", r.Risk)

	if len(r.AttentionPoints) > 0 {
		f.b.WriteString("\n### Attention Points\n\n")
		for _, p := range r.AttentionPoints {
			fmt.Fprintf(&f.b, "- %s\n", p)
		}
	}

	cats := nonEmptyCategories(r)
	if len(cats) > 0 {
		f.b.WriteString("\n### Suggestions\n\n")
		for _, cat := range cats {
			fmt.Fprintf(&f.b, "- **%s**\n", cat.Label())
			for _, s := range r.Suggestions[cat] {
				fmt.Fprintf(&f.b, "  - %s\n", s)
			}
		}
	}
}

func (f *markdownFormatter) End() ([]byte, error) {
	return []byte(f.b.String()), nil
}
