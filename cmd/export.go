package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/theirongolddev/stoki/internal/export"
	"github.com/theirongolddev/stoki/internal/store"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/spf13/cobra"
)

var (
	flagExportOut    string
	flagExportSQLite bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write page JSON, chart SVGs and table dumps to a directory",
	Long:  "Export every focus, or only the one named by --focus (\"all\" exports every focus).",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&flagExportSQLite, "sqlite", false, "Also write a SQLite snapshot of the tables")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	opts := export.Options{
		Dir:    flagExportOut,
		SQLite: flagExportSQLite,
		Now:    time.Now(),
	}
	if opts.Dir == "" {
		opts.Dir = cfg.Export.Dir
	}
	if flagFocus != "" && !strings.EqualFold(flagFocus, "all") {
		f, err := view.ParseFocus(flagFocus)
		if err != nil {
			return err
		}
		opts.Focus = []view.Focus{f}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := export.Run(ctx, loadTables(), opts)
	if err != nil {
		logger.Error("export failed", "dir", opts.Dir, "err", err)
		return err
	}
	logger.Info("export finished",
		"dir", opts.Dir,
		"files", len(res.Files),
		"sqlite", opts.SQLite,
		"snapshot_rows", res.SnapshotRows,
		"elapsed", time.Since(start))

	if !flagQuiet {
		for _, path := range res.Files {
			fmt.Printf("  %s\n", path)
		}
		fmt.Printf("\n  Wrote %d files to %s\n", len(res.Files), opts.Dir)
		if res.SnapshotRows != nil {
			fmt.Println("\n  Snapshot rows")
			for _, name := range store.TableNames {
				fmt.Printf("    %-20s %d\n", name, res.SnapshotRows[name])
			}
		}
	}
	return nil
}
