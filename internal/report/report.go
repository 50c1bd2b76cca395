// Package report aggregates per-file analysis results and renders them to
// the JSON, Markdown, HTML and XLSX artifacts.
package report

import "github.com/blackwell-systems/codecompass/internal/analyzer"

// Report accumulates analysis results in the order files were processed.
type Report struct {
	results []analyzer.Result
}

// New returns an empty Report.
func New() *Report {
	return &Report{}
}

// Add appends r to the report.
func (rep *Report) Add(r analyzer.Result) {
	rep.results = append(rep.results, r)
}

// Len returns the number of results collected so far.
func (rep *Report) Len() int {
	return len(rep.results)
}

// Results returns a copy of the collected results in insertion order.
func (rep *Report) Results() []analyzer.Result {
	out := make([]analyzer.Result, len(rep.results))
	copy(out, rep.results)
	return out
}

// RiskCounts tallies results per risk tier.
func (rep *Report) RiskCounts() map[analyzer.Risk]int {
	counts := map[analyzer.Risk]int{
		analyzer.RiskLow:    0,
		analyzer.RiskMedium: 0,
		analyzer.RiskHigh:   0,
	}
	for _, r := range rep.results {
		counts[r.Risk]++
	}
	return counts
}
