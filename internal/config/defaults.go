// Package config provides configuration loading and defaults for codecompass.
package config

// DefaultConfigDir is the default location for codecompass configuration.
const DefaultConfigDir = "~/.config/codecompass"

// DefaultDBName is the filename for the scan history database.
const DefaultDBName = "codecompass.db"

// DefaultOutputDir is where scan artifacts are written.
const DefaultOutputDir = "."

// DefaultReportName is the artifact file name without extension.
const DefaultReportName = "codecompass_report"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}

// DefaultDoc holds the default documentation-mode settings.
var DefaultDoc = Doc{
	Model:     "gpt-4o-mini",
	APIKeyEnv: "OPENAI_API_KEY",
	Suffix:    "_doc",
}
