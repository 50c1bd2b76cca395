// Package pipeline runs discovery, analysis and aggregation for a scan.
package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
	"github.com/blackwell-systems/codecompass/internal/report"
	"github.com/blackwell-systems/codecompass/internal/scanner"
)

// Failure records a file that could not be read.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("Error analyzing %s: %v", f.Path, f.Err)
}

// Options configures a scan.
type Options struct {
	// Analyzer evaluates each file. Defaults to analyzer.Default().
	Analyzer *analyzer.Analyzer

	// ReadFile reads a file's content. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	// OnResult, if set, is called after each file is analyzed.
	OnResult func(analyzer.Result)

	// OnFailure, if set, is called for each file that cannot be read.
	OnFailure func(Failure)
}

// Outcome is the result of a scan.
type Outcome struct {
	Report   *report.Report
	Failures []Failure
}

// Run discovers files under root and analyzes them sequentially in
// discovery order. Unreadable files are left out of the report and listed
// in Outcome.Failures.
func Run(root string, opts Options) (*Outcome, error) {
	if opts.Analyzer == nil {
		opts.Analyzer = analyzer.Default()
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}

	files, err := scanner.Discover(root)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	out := &Outcome{Report: report.New()}
	for _, path := range files {
		data, err := opts.ReadFile(path)
		if err != nil {
			f := Failure{Path: path, Err: err}
			out.Failures = append(out.Failures, f)
			if opts.OnFailure != nil {
				opts.OnFailure(f)
			}
			continue
		}

		// Undecodable bytes are dropped rather than failing the file.
		content := strings.ToValidUTF8(string(data), "")
		res := opts.Analyzer.Analyze(path, content)
		out.Report.Add(res)
		if opts.OnResult != nil {
			opts.OnResult(res)
		}
	}

	return out, nil
}
