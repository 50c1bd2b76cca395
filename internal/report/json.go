package report

import (
	"bytes"
	"encoding/json"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// jsonFormatter encodes the results as an indented JSON array.
type jsonFormatter struct {
	results []analyzer.Result
}

func (f *jsonFormatter) Ext() string { return ".json" }

func (f *jsonFormatter) Begin(string) {
	f.results = []analyzer.Result{}
}

func (f *jsonFormatter) Section(r analyzer.Result) {
	f.results = append(f.results, r)
}

// End encodes without HTML escaping so paths and suggestions keep their
// literal characters.
func (f *jsonFormatter) End() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
