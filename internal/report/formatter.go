package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// Title is the heading used by the document and web artifacts.
const Title = "CodeCompass Report"

// DefaultBaseName is the file name, without extension, of every artifact.
const DefaultBaseName = "codecompass_report"

// Kind identifies an output format.
type Kind string

// Supported output kinds.
const (
	KindJSON     Kind = "json"
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"
	KindXLSX     Kind = "xlsx"
)

// AllKinds lists every output kind in the order artifacts are written.
var AllKinds = []Kind{KindJSON, KindMarkdown, KindHTML, KindXLSX}

// Formatter renders one artifact. Render drives it: Begin once, Section once
// per result in order, then End to obtain the encoded bytes. A Formatter is
// single-use.
type Formatter interface {
	Ext() string
	Begin(title string)
	Section(r analyzer.Result)
	End() ([]byte, error)
}

// NewFormatter returns a fresh formatter for kind.
func NewFormatter(kind Kind) (Formatter, error) {
	switch kind {
	case KindJSON:
		return &jsonFormatter{}, nil
	case KindMarkdown:
		return &markdownFormatter{}, nil
	case KindHTML:
		return &htmlFormatter{}, nil
	case KindXLSX:
		return newXLSXFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output kind %q", kind)
	}
}

// Render feeds results through f and returns the artifact bytes.
func Render(f Formatter, results []analyzer.Result) ([]byte, error) {
	f.Begin(Title)
	for _, r := range results {
		f.Section(r)
	}
	return f.End()
}

// Emit writes one artifact per kind to dir/base+ext and returns the written
// paths. Artifacts are independent: a failure in one is collected and the
// remaining kinds are still written.
func Emit(dir, base string, results []analyzer.Result, kinds ...Kind) ([]string, error) {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	if base == "" {
		base = DefaultBaseName
	}

	var written []string
	var errs []error
	for _, kind := range kinds {
		f, err := NewFormatter(kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data, err := Render(f, results)
		if err != nil {
			errs = append(errs, fmt.Errorf("rendering %s: %w", kind, err))
			continue
		}
		path := filepath.Join(dir, base+f.Ext())
		if err := Save(path, data); err != nil {
			errs = append(errs, fmt.Errorf("writing %s: %w", path, err))
			continue
		}
		written = append(written, path)
	}

	return written, errors.Join(errs...)
}

// Save writes data to path, creating the parent directory if needed.
func Save(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// nonEmptyCategories returns the categories of r that carry suggestions,
// in report order.
func nonEmptyCategories(r analyzer.Result) []analyzer.Category {
	var cats []analyzer.Category
	for _, cat := range analyzer.Categories {
		if len(r.Suggestions[cat]) > 0 {
			cats = append(cats, cat)
		}
	}
	return cats
}
