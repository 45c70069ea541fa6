// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gallery

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nbcharts/pkg/types"
)

const galleryNotebook = `{
  "cells": [
    {"cell_type": "markdown", "source": ["## Metrics\n", "Energy sold per **month**.\n"]},
    {"cell_type": "code", "source": ["px.line(df)\n"], "outputs": [
      {"output_type": "display_data", "data": {"application/vnd.plotly.v1+json": {"data": [], "layout": {}}}}
    ]}
  ]
}`

func writeNotebook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forecast.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "plots")
	cfg := types.GalleryConfig{
		NotebookPath: writeNotebook(t, galleryNotebook),
		OutputDir:    outDir,
	}

	var log bytes.Buffer
	require.NoError(t, Build(cfg, &log))

	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	page := string(data)

	// Section title and iframe follow the positional naming rule.
	assert.Contains(t, page, "Metrics Evaluation: Energy Sold, Capacity Installed, Installations")
	assert.Contains(t, page, `<iframe src="metrics_evaluation.html"`)

	// Caption markdown is rendered, not echoed.
	assert.Contains(t, page, "<h2>Metrics</h2>")
	assert.Contains(t, page, "<strong>month</strong>")

	// Cell source comes out as a highlighted code block.
	assert.Contains(t, page, "<details>")
	assert.Contains(t, page, "<pre")
	assert.Contains(t, page, "px")

	assert.Contains(t, log.String(), "saved: index.html")
}

func TestBuild_EmptyNotebook(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "plots")
	cfg := types.GalleryConfig{
		NotebookPath: writeNotebook(t, `{"cells": []}`),
		OutputDir:    outDir,
	}

	require.NoError(t, Build(cfg, &bytes.Buffer{}))

	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "No charts were extracted")
	assert.NotContains(t, string(data), "<iframe")
}

func TestBuild_MissingNotebook(t *testing.T) {
	cfg := types.GalleryConfig{
		NotebookPath: filepath.Join(t.TempDir(), "absent.ipynb"),
		OutputDir:    filepath.Join(t.TempDir(), "plots"),
	}
	assert.Error(t, Build(cfg, &bytes.Buffer{}))
}
