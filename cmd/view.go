package cmd

import (
	"os"

	"github.com/theirongolddev/stoki/internal/export"
	"github.com/theirongolddev/stoki/internal/view"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the rendered view tree for a focus as JSON",
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	focus, err := resolveFocus(loadConfig())
	if err != nil {
		return err
	}
	return export.WritePageJSON(os.Stdout, view.Render(focus, loadTables()))
}
