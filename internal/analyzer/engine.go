package analyzer

import (
	"strings"

	"github.com/blackwell-systems/codecompass/internal/scanner"
)

// Analyzer runs a fixed, ordered set of rules against file content and
// folds their findings into a Result.
type Analyzer struct {
	rules []Rule
}

// New creates an Analyzer that evaluates rules in the given order.
func New(rules ...Rule) *Analyzer {
	return &Analyzer{rules: append([]Rule(nil), rules...)}
}

// Default creates an Analyzer with all built-in rules registered.
func Default() *Analyzer {
	return New(DefaultRules()...)
}

// Rules returns the registered rule names in evaluation order.
func (a *Analyzer) Rules() []string {
	names := make([]string, len(a.rules))
	for i, r := range a.rules {
		names[i] = r.Name()
	}
	return names
}

// Analyze classifies path, evaluates every rule against the lower-cased
// content and returns the combined Result. It is a pure function of its
// inputs.
func (a *Analyzer) Analyze(path, content string) Result {
	language := scanner.Classify(path)
	lower := strings.ToLower(content)

	res := Result{
		Path:            path,
		Language:        language,
		Summary:         Summarize(content),
		AttentionPoints: []string{},
		Suggestions:     emptySuggestions(),
	}

	for _, rule := range a.rules {
		f := rule.Evaluate(lower, language)
		res.AttentionPoints = append(res.AttentionPoints, f.AttentionPoints...)
		for _, cat := range Categories {
			res.Suggestions[cat] = append(res.Suggestions[cat], f.Suggestions[cat]...)
		}
	}

	res.Risk = ClassifyRisk(len(res.AttentionPoints))
	return res
}

// emptySuggestions returns a suggestion map with every category present.
func emptySuggestions() map[Category][]string {
	m := make(map[Category][]string, len(Categories))
	for _, cat := range Categories {
		m[cat] = []string{}
	}
	return m
}
