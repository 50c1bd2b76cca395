// Package scanner provides source file discovery and language classification.
package scanner

import (
	"path/filepath"
	"strings"
)

// Unknown is the label returned for extensions outside the language table.
const Unknown = "unknown"

// languages maps a file extension to its language label. It is built once
// at init and never written afterwards.
var languages = map[string]string{
	".py":    "Python",
	".java":  "Java",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".c":     "C",
	".cpp":   "C++",
	".cs":    "C#",
	".go":    "Go",
	".rb":    "Ruby",
	".php":   "PHP",
	".rs":    "Rust",
	".swift": "Swift",
}

// Classify returns the language label for path based on its lower-cased
// extension, or Unknown.
func Classify(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languages[ext]; ok {
		return lang
	}
	return Unknown
}

// Known reports whether ext is a key of the language table. The comparison
// is case-sensitive: ".PY" is not known even though Classify maps it.
func Known(ext string) bool {
	_, ok := languages[ext]
	return ok
}

// Languages returns a copy of the extension to language table.
func Languages() map[string]string {
	out := make(map[string]string, len(languages))
	for ext, lang := range languages {
		out[ext] = lang
	}
	return out
}
