package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecompass/internal/output"
	"github.com/blackwell-systems/codecompass/internal/store"
)

var (
	historyFlagLimit int
	historyFlagJSON  bool
)

const noScansMessage = "No scans recorded yet. Use 'codecompass scan --record' to start."

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scan runs",
	Long: `History lists scan runs recorded with 'codecompass scan --record' (or with
history.enabled set in config.yaml), most recent first, with the number of
files per risk tier.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Maximum number of runs to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	if _, err := os.Stat(cfg.History.DBPath); errors.Is(err, fs.ErrNotExist) {
		if historyFlagJSON {
			fmt.Fprintln(stdout, "[]")
			return nil
		}
		fmt.Fprintln(stdout, noScansMessage)
		return nil
	}

	db, err := store.Open(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing scans: %w", err)
	}

	if historyFlagJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if runs == nil {
			runs = []store.ScanRun{}
		}
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(stdout, noScansMessage)
		return nil
	}

	fmt.Fprintln(stdout, output.Section("Scan History"))
	fmt.Fprintln(stdout)

	tbl := output.NewTable("Time", "Root", "Files", "Failed", "High", "Medium", "Low")
	for _, r := range runs {
		tbl.AddRow(
			r.TakenAt.Local().Format("2006-01-02 15:04"),
			r.Root,
			fmt.Sprintf("%d", r.FileCount),
			fmt.Sprintf("%d", r.Failed),
			fmt.Sprintf("%d", r.High),
			fmt.Sprintf("%d", r.Medium),
			fmt.Sprintf("%d", r.Low),
		)
	}
	fmt.Fprint(stdout, tbl.Render())
	return nil
}
