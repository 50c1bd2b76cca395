package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecompass/internal/config"
	"github.com/blackwell-systems/codecompass/internal/docgen"
	"github.com/blackwell-systems/codecompass/internal/output"
	"github.com/blackwell-systems/codecompass/internal/scanner"
)

var docFlagModel string

var docCmd = &cobra.Command{
	Use:   "doc [path...]",
	Short: "Write documented copies of source files",
	Long: `Doc sends each source file to a text-generation service and writes the
returned, documented version next to the original as {name}_doc{ext}.
Originals are never modified.

Directories are expanded the same way scan expands them; files that already
look like documented copies are skipped. If the service fails for a file, the
copy holds the original content and a warning is logged.

The API key is read from the environment variable named by doc.api_key_env
(default OPENAI_API_KEY). Without it every copy keeps the original content.`,
	RunE: runDoc,
}

func init() {
	docCmd.Flags().StringVar(&docFlagModel, "model", "", "Model name (default from config: gpt-4o-mini)")
	rootCmd.AddCommand(docCmd)
}

// newDocumenter builds the documentation service client.
var newDocumenter = func(cfg *config.Config) (docgen.Documenter, error) {
	model := firstNonEmpty(docFlagModel, cfg.Doc.Model)
	doc, err := docgen.NewOpenAI(cfg.Doc.APIKey(), model, cfg.Doc.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w (set %s)", err, cfg.Doc.APIKeyEnv)
	}
	return doc, nil
}

func runDoc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectDocTargets(args, cfg.Doc.Suffix)
	if err != nil {
		return err
	}

	logger := newLogger()
	documenter, err := newDocumenter(cfg)
	if err != nil {
		logger.Warn("documentation service unavailable, copies will keep original content", "error", err)
		documenter = docgen.Unavailable(err)
	}

	runner := &docgen.Runner{
		Documenter: documenter,
		Logger:     logger,
		Suffix:     cfg.Doc.Suffix,
	}
	outcome := runner.Run(context.Background(), files)

	stdout := cmd.OutOrStdout()
	for _, p := range outcome.Written {
		fmt.Fprintf(stdout, " %s %s\n", output.StyleSuccess.Render("wrote"), p)
	}

	if len(outcome.Failed) > 0 {
		fmt.Fprintln(stdout, output.Section("Failed"))
		for _, p := range outcome.Failed {
			fmt.Fprintf(stdout, " - %s\n", output.StyleError.Render(p))
		}
	}

	fmt.Fprintf(stdout, "\nDocumented %d of %d files (%d kept original content).\n",
		len(outcome.Written)-len(outcome.Fallbacks), len(files), len(outcome.Fallbacks))
	return nil
}

// collectDocTargets expands directory arguments through discovery, dropping
// existing documented copies. File arguments are kept as given.
func collectDocTargets(args []string, suffix string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, statErr := os.Stat(arg)
		found, err := scanner.Discover(arg)
		if err != nil {
			return nil, fmt.Errorf("discovering files in %s: %w", arg, err)
		}
		isDir := statErr == nil && info.IsDir()
		for _, f := range found {
			if isDir && docgen.IsOutput(f, suffix) {
				continue
			}
			files = append(files, f)
		}
	}
	return files, nil
}
