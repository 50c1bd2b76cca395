package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// RiskBadge renders a risk tier in its tier color.
func RiskBadge(r analyzer.Risk) string {
	label := strings.ToUpper(string(r))
	switch r {
	case analyzer.RiskHigh:
		return StyleError.Bold(true).Render(label)
	case analyzer.RiskMedium:
		return StyleWarning.Render(label)
	default:
		return StyleSuccess.Render(label)
	}
}

// WriteResult prints the human-readable block for one analyzed file.
func WriteResult(w io.Writer, r analyzer.Result) {
	fmt.Fprintf(w, "\n📄 %s\n", StyleBold.Render(r.Path))
	fmt.Fprintf(w, "%s%s\n", StyleLabel.Render("Language:"), r.Language)
	fmt.Fprintf(w, "%s%s\n", StyleLabel.Render("Summary:"), r.Summary)
	fmt.Fprintf(w, "%s%s\n", StyleLabel.Render("Risk:"), RiskBadge(r.Risk))

	if len(r.AttentionPoints) > 0 {
		fmt.Fprintln(w, "Attention points:")
		for _, p := range r.AttentionPoints {
			fmt.Fprintf(w, " - %s\n", StyleWarning.Render(p))
		}
	}

	for _, cat := range analyzer.Categories {
		items := r.Suggestions[cat]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "Suggestions (%s):\n", cat.Label())
		for _, s := range items {
			fmt.Fprintf(w, " - %s\n", s)
		}
	}
}

// RiskTable builds the risk distribution table for a scan.
func RiskTable(counts map[analyzer.Risk]int) *Table {
	tbl := NewTable("Risk", "Files")
	for _, r := range []analyzer.Risk{analyzer.RiskHigh, analyzer.RiskMedium, analyzer.RiskLow} {
		tbl.AddRow(RiskBadge(r), fmt.Sprintf("%d", counts[r]))
	}
	return tbl
}
