// Package app contains the Cobra command tree for codecompass.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecompass/internal/config"
	"github.com/blackwell-systems/codecompass/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codecompass",
	Short: "Heuristic code-quality scanner with multi-format reports",
	Long: `codecompass walks a source tree, classifies files by language, flags
simple code-quality concerns with textual heuristics, assigns each file a
risk tier, and writes the findings as JSON, Markdown, HTML and XLSX reports.

It can also write documented copies of source files using an external
text-generation service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("codecompass", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan      Analyze a source tree and write reports")
		fmt.Println("  doc       Write documented copies of source files")
		fmt.Println("  history   List recorded scan runs")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codecompass/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// loadConfig loads configuration and applies the color preference.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	output.ConfigureColor(cfg.Output.Color && !flagNoColor)
	return cfg, nil
}

// newLogger returns the stderr logger used for diagnostics.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
