package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// htmlFormatter mirrors the Markdown sections as minimal markup.
type htmlFormatter struct {
	b strings.Builder
}

func (f *htmlFormatter) Ext() string { return ".html" }

func (f *htmlFormatter) Begin(title string) {
	f.b.WriteString("<html><head><meta charset=\"utf-8\"></head><body>\n")
	fmt.Fprintf(&f.b, "<h1>%s</h1>\n", html.EscapeString(title))
}

func (f *htmlFormatter) Section(r analyzer.Result) {
	fmt.Fprintf(&f.b, "<h2>📄 %s</h2>\n", html.EscapeString(r.Path))
	fmt.Fprintf(&f.b, "<p><strong>Language:</strong> %s</p>\n", html.EscapeString(r.Language))
	fmt.Fprintf(&f.b, "<p><strong>Summary:</strong> %s</p>\n", html.EscapeString(r.Summary))
	fmt.Fprintf(&f.b, "<p><strong>Risk:</strong> %s</p>\n", html.EscapeString(string(r.Risk)))

	if len(r.AttentionPoints) > 0 {
		f.b.WriteString("<h3>Attention Points</h3>\n<ul>\n")
		for _, p := range r.AttentionPoints {
			fmt.Fprintf(&f.b, "<li>%s</li>\n", html.EscapeString(p))
		}
		f.b.WriteString("</ul>\n")
	}

	cats := nonEmptyCategories(r)
	if len(cats) > 0 {
		f.b.WriteString("<h3>Suggestions</h3>\n<ul>\n")
		for _, cat := range cats {
			fmt.Fprintf(&f.b, "<li><strong>%s</strong>\n<ul>\n", html.EscapeString(cat.Label()))
			for _, s := range r.Suggestions[cat] {
				fmt.Fprintf(&f.b, "<li>%s</li>\n", html.EscapeString(s))
			}
			f.b.WriteString("</ul>\n</li>\n")
		}
		f.b.WriteString("</ul>\n")
	}
}

func (f *htmlFormatter) End() ([]byte, error) {
	f.b.WriteString("</body></html>\n")
	return []byte(f.b.String()), nil
}
