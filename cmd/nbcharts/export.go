package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbcharts/internal/export"
	"github.com/pdiddy/nbcharts/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <notebook.ipynb>",
	Short: "Export every Plotly chart in a notebook as a standalone HTML page",
	Long: `Export scans the notebook's code cells for cached Plotly display_data
outputs, strips fixed sizing from each figure's layout, and writes one
responsive HTML page per chart into the output directory.

The first nine charts take fixed, analysis-specific file names; further
charts fall back to chart_N.html. Naming is positional: it follows
document order, not chart content.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd, args[0])

	if _, err := export.Run(cfg, os.Stdout); err != nil {
		// A missing notebook ends the run without output, but is not a
		// failure exit.
		if errors.Is(err, export.ErrNotebookMissing) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		return err
	}
	return nil
}

// exportConfig builds the stage config from flags, falling back to the
// viper config file for the output directory when the flag is unset.
func exportConfig(cmd *cobra.Command, notebookPath string) types.ExportConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if !cmd.Flags().Changed("output-dir") && viper.IsSet("output_dir") {
		outputDir = viper.GetString("output_dir")
	}
	manifest, _ := cmd.Flags().GetBool("manifest")

	return types.ExportConfig{
		NotebookPath: notebookPath,
		OutputDir:    outputDir,
		Manifest:     manifest,
	}
}

func init() {
	exportCmd.Flags().String("output-dir", "plots", "directory for exported chart pages")
	exportCmd.Flags().Bool("manifest", false, "also write manifest.yaml into the output directory")

	rootCmd.AddCommand(exportCmd)
}
