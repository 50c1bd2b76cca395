package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
	"github.com/blackwell-systems/codecompass/internal/config"
	"github.com/blackwell-systems/codecompass/internal/output"
	"github.com/blackwell-systems/codecompass/internal/pipeline"
	"github.com/blackwell-systems/codecompass/internal/report"
	"github.com/blackwell-systems/codecompass/internal/store"
)

var (
	scanFlagOutputDir string
	scanFlagName      string
	scanFlagRecord    bool
	scanFlagQuiet     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Analyze a source tree and write reports",
	Long: `Scan walks the given path (default: current directory), analyzes every
file with a known source extension, and writes four reports:

  codecompass_report.json   structured data
  codecompass_report.md     Markdown document
  codecompass_report.html   web page
  codecompass_report.xlsx   spreadsheet

Directories named target, build, node_modules and __pycache__ are skipped.
A path that is a single file is analyzed regardless of its extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlagOutputDir, "output-dir", "", "Directory for report files (default from config: .)")
	scanCmd.Flags().StringVar(&scanFlagName, "name", "", "Report file name without extension (default from config: codecompass_report)")
	scanCmd.Flags().BoolVar(&scanFlagRecord, "record", false, "Record this run in the scan history database")
	scanCmd.Flags().BoolVarP(&scanFlagQuiet, "quiet", "q", false, "Do not print per-file results")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	out, err := pipeline.Run(root, pipeline.Options{
		OnResult: func(r analyzer.Result) {
			if !scanFlagQuiet {
				output.WriteResult(stdout, r)
			}
		},
		OnFailure: func(f pipeline.Failure) {
			fmt.Fprintln(stderr, output.StyleError.Render(f.Error()))
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, output.Section("Risk Distribution"))
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, output.RiskTable(out.Report.RiskCounts()).Render())

	outputDir := firstNonEmpty(scanFlagOutputDir, cfg.OutputDir)
	name := firstNonEmpty(scanFlagName, cfg.ReportName)
	written, emitErr := report.Emit(outputDir, name, out.Report.Results())

	if len(written) > 0 {
		names := make([]string, len(written))
		for i, p := range written {
			names[i] = filepath.Base(p)
		}
		fmt.Fprintf(stdout, "\n✅ Analysis complete. Reports saved to: %s\n", strings.Join(names, ", "))
	}

	if scanFlagRecord || cfg.History.Enabled {
		recordScan(cfg, root, out, stderr)
	}

	if emitErr != nil {
		return fmt.Errorf("writing reports: %w", emitErr)
	}
	return nil
}

// recordScan stores the run in the history database. Failures are reported
// but do not fail the scan.
func recordScan(cfg *config.Config, root string, out *pipeline.Outcome, stderr io.Writer) {
	db, err := store.Open(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintln(stderr, output.StyleWarning.Render(fmt.Sprintf("warning: opening history database: %v", err)))
		return
	}
	defer func() { _ = db.Close() }()

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	run, err := db.RecordScan(abs, appVersion, out.Report.Results(), len(out.Failures))
	if err != nil {
		fmt.Fprintln(stderr, output.StyleWarning.Render(fmt.Sprintf("warning: recording scan: %v", err)))
		return
	}
	if flagVerbose {
		fmt.Fprintln(stderr, output.StyleMuted.Render("recorded scan "+run.RunID))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
