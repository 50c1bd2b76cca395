package analyzer

import "strings"

// Attention point texts raised by the built-in rules.
const (
	AttentionSQL   = "direct SQL query detected"
	AttentionPrint = "direct print usage detected"
)

// Suggestion texts offered by the built-in rules.
const (
	SuggestDataAccessLayer = "Use a separate data access layer instead of inline queries"
	SuggestORM             = "Consider migrating raw queries to an ORM or query builder"
	SuggestJavaFramework   = "Consider adopting Spring Boot to modernize the application"
	SuggestLogging         = "Use the logging module instead of print for better control"
)

// SQLRule flags files that appear to embed SQL queries.
type SQLRule struct{}

// Name implements Rule.
func (SQLRule) Name() string { return "sql" }

// Evaluate implements Rule.
func (SQLRule) Evaluate(content, _ string) Finding {
	if !strings.Contains(content, "select") {
		return Finding{}
	}
	return Finding{
		AttentionPoints: []string{AttentionSQL},
		Suggestions: map[Category][]string{
			CategoryBestPractices: {SuggestDataAccessLayer},
			CategoryModernization: {SuggestORM},
		},
	}
}

// JavaFrameworkRule suggests framework modernization for every Java file.
type JavaFrameworkRule struct{}

// Name implements Rule.
func (JavaFrameworkRule) Name() string { return "java-framework" }

// Evaluate implements Rule.
func (JavaFrameworkRule) Evaluate(_, language string) Finding {
	if language != "Java" {
		return Finding{}
	}
	return Finding{
		Suggestions: map[Category][]string{
			CategoryModernization: {SuggestJavaFramework},
		},
	}
}

// PythonPrintRule flags Python files that write output with print().
type PythonPrintRule struct{}

// Name implements Rule.
func (PythonPrintRule) Name() string { return "python-print" }

// Evaluate implements Rule.
func (PythonPrintRule) Evaluate(content, language string) Finding {
	if language != "Python" || !strings.Contains(content, "print(") {
		return Finding{}
	}
	return Finding{
		AttentionPoints: []string{AttentionPrint},
		Suggestions: map[Category][]string{
			CategoryBestPractices: {SuggestLogging},
		},
	}
}

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		SQLRule{},
		JavaFrameworkRule{},
		PythonPrintRule{},
	}
}
