// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export drives the chart export pipeline: scan a notebook for
// cached Plotly figures, make each one responsive, and write one
// standalone HTML page per figure.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/nbcharts/internal/chart"
	"github.com/pdiddy/nbcharts/internal/notebook"
	"github.com/pdiddy/nbcharts/pkg/types"
)

// ErrNotebookMissing reports that the input notebook does not exist. The
// CLI treats it as a graceful end of the run, not a failure.
var ErrNotebookMissing = errors.New("notebook not found")

// Summary holds the outcome of one export run.
type Summary struct {
	// Exported is the number of chart pages written.
	Exported int

	// Files lists the written file names in assignment order.
	Files []string

	// ManifestPath is the manifest location, empty unless one was written.
	ManifestPath string
}

// Run executes the pipeline described by cfg, printing progress to w. The
// output directory is created (parents included) even when the notebook
// yields no charts; a missing notebook creates nothing. Existing files are
// overwritten without warning.
func Run(cfg types.ExportConfig, w io.Writer) (Summary, error) {
	fmt.Fprintf(w, "Reading notebook: %s\n", cfg.NotebookPath)

	if _, err := os.Stat(cfg.NotebookPath); err != nil {
		if os.IsNotExist(err) {
			return Summary{}, fmt.Errorf("%w at %s", ErrNotebookMissing, cfg.NotebookPath)
		}
		return Summary{}, fmt.Errorf("stat notebook %s: %w", cfg.NotebookPath, err)
	}

	doc, err := notebook.Load(cfg.NotebookPath)
	if err != nil {
		return Summary{}, err
	}

	charts, err := notebook.ExtractCharts(doc)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "Found %d cells with Plotly outputs\n", len(charts))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var summary Summary
	for i, c := range charts {
		name := chart.FileName(i)

		page, err := chart.Render(chart.MakeResponsive(c.Figure), chart.Title(i))
		if err != nil {
			return summary, fmt.Errorf("rendering %s: %w", name, err)
		}

		if err := os.WriteFile(filepath.Join(cfg.OutputDir, name), []byte(page), 0o644); err != nil {
			return summary, fmt.Errorf("writing %s: %w", name, err)
		}

		fmt.Fprintf(w, "  saved: %s\n", name)
		summary.Exported++
		summary.Files = append(summary.Files, name)
	}

	if cfg.Manifest {
		path, err := writeManifest(cfg.OutputDir, charts)
		if err != nil {
			return summary, err
		}
		summary.ManifestPath = path
		fmt.Fprintf(w, "  saved: %s\n", manifestFile)
	}

	fmt.Fprintf(w, "\nAll charts saved to: %s\n", cfg.OutputDir)
	return summary, nil
}
