package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nbcharts/internal/gallery"
	"github.com/pdiddy/nbcharts/pkg/types"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery <notebook.ipynb>",
	Short: "Build an index.html gallery over the exported chart pages",
	Long: `Gallery writes an index.html into the output directory with one section
per chart: the nearest preceding markdown cell as a caption, the chart
page in an iframe, and the producing code cell with syntax highlighting.

Run export first; gallery references the chart pages by name and does not
rewrite them.`,
	Args: cobra.ExactArgs(1),
	RunE: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if !cmd.Flags().Changed("output-dir") && viper.IsSet("output_dir") {
		outputDir = viper.GetString("output_dir")
	}

	cfg := types.GalleryConfig{
		NotebookPath: args[0],
		OutputDir:    outputDir,
	}
	return gallery.Build(cfg, os.Stdout)
}

func init() {
	galleryCmd.Flags().String("output-dir", "plots", "directory containing the exported chart pages")

	rootCmd.AddCommand(galleryCmd)
}
