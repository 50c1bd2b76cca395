// Package docgen writes documented copies of source files using an external
// text-generation service.
package docgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/codecompass/internal/scanner"
)

// DefaultSuffix is inserted between a file's stem and its extension to name
// the documented copy.
const DefaultSuffix = "_doc"

// Documenter turns source text into the same text with documentation
// comments added.
type Documenter interface {
	Document(ctx context.Context, text, language string) (string, error)
}

// Unavailable returns a Documenter that fails every call with err. Runner
// then keeps the original content for each file.
func Unavailable(err error) Documenter {
	return unavailable{err: err}
}

type unavailable struct{ err error }

func (u unavailable) Document(context.Context, string, string) (string, error) {
	return "", u.err
}

// Runner documents files one at a time.
type Runner struct {
	Documenter Documenter
	Logger     *slog.Logger
	Suffix     string
}

// Outcome summarizes a documentation run.
type Outcome struct {
	// Written lists the documented copies created, in input order.
	Written []string

	// Fallbacks lists inputs whose copy holds the original content because
	// the service call failed.
	Fallbacks []string

	// Failed lists inputs that could not be read or whose copy could not be
	// written.
	Failed []string
}

// OutputPath returns the sibling path {stem}{suffix}{ext} for path.
func OutputPath(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// IsOutput reports whether path already looks like a documented copy.
func IsOutput(path, suffix string) bool {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	ext := filepath.Ext(path)
	return strings.HasSuffix(strings.TrimSuffix(filepath.Base(path), ext), suffix)
}

// Run documents each file in order. A service failure is logged and the
// original content is written instead; read and write failures are
// collected in Outcome.Failed. Run never aborts early.
func (r *Runner) Run(ctx context.Context, files []string) Outcome {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var out Outcome
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("reading file", "file", path, "error", err)
			out.Failed = append(out.Failed, path)
			continue
		}
		original := strings.ToValidUTF8(string(data), "")
		language := scanner.Classify(path)

		documented, err := r.Documenter.Document(ctx, original, language)
		fellBack := err != nil
		if fellBack {
			logger.Warn("documentation failed, keeping original content",
				"file", path, "error", err)
			documented = original
		}

		dest := OutputPath(path, r.Suffix)
		if err := os.WriteFile(dest, []byte(documented), 0o644); err != nil {
			logger.Error("writing documented copy", "file", dest, "error", err)
			out.Failed = append(out.Failed, path)
			continue
		}
		logger.Debug("documented file", "file", path, "output", dest, "language", language)
		out.Written = append(out.Written, dest)
		if fellBack {
			out.Fallbacks = append(out.Fallbacks, path)
		}
	}
	return out
}

// userPrompt builds the request text for one file.
func userPrompt(text, language string) string {
	var sb strings.Builder
	if language == "" || language == scanner.Unknown {
		sb.WriteString("Add documentation comments to the following source file.\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("Add documentation comments to the following %s source file.\n\n", language))
	}
	sb.WriteString(text)
	return sb.String()
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, if the response has one.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return text
	}
	body := strings.TrimSuffix(trimmed, "```")
	nl := strings.IndexByte(body, '\n')
	if nl < 0 {
		return text
	}
	return strings.TrimLeft(body[nl+1:], "\r\n")
}
