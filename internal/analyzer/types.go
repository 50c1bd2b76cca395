// Package analyzer applies textual heuristics to source files and derives a
// risk tier from the findings.
package analyzer

// Category groups suggestions by the kind of remediation they propose.
type Category string

// Suggestion categories, in report order.
const (
	CategoryRefactoring   Category = "refactoring"
	CategoryModernization Category = "modernization"
	CategoryBestPractices Category = "best_practices"
)

// Categories lists every suggestion category in the order reports use.
var Categories = []Category{
	CategoryRefactoring,
	CategoryModernization,
	CategoryBestPractices,
}

// Risk is a coarse severity tier derived from the attention point count.
type Risk string

// Risk tiers.
const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Result is the analysis outcome for a single file.
type Result struct {
	// Path is the file location as discovered.
	Path string `json:"path"`

	// Language is the classifier label, or "unknown".
	Language string `json:"language"`

	// Summary is a one-line description of the file.
	Summary string `json:"summary"`

	// AttentionPoints are the concerns raised by the heuristics.
	AttentionPoints []string `json:"attentionPoints"`

	// Suggestions holds remediation hints keyed by category. Every category
	// is present, possibly with an empty list.
	Suggestions map[Category][]string `json:"suggestions"`

	// Risk is always ClassifyRisk(len(AttentionPoints)).
	Risk Risk `json:"risk"`
}

// Finding is what a single rule contributes to a Result.
type Finding struct {
	AttentionPoints []string
	Suggestions     map[Category][]string
}

// Rule is one independent heuristic. Evaluate receives the lower-cased file
// content and the language label.
type Rule interface {
	Name() string
	Evaluate(content, language string) Finding
}

// Label renders a category for humans: underscores become spaces and each
// word is title-cased ("best_practices" -> "Best Practices").
func (c Category) Label() string {
	b := []byte(string(c))
	upper := true
	for i, ch := range b {
		switch {
		case ch == '_':
			b[i] = ' '
			upper = true
		case upper && ch >= 'a' && ch <= 'z':
			b[i] = ch - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return string(b)
}
