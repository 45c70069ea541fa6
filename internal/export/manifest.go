// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nbcharts/internal/chart"
	"github.com/pdiddy/nbcharts/pkg/types"
)

// manifestFile is the manifest name within the output directory.
const manifestFile = "manifest.yaml"

// ManifestEntry records one exported chart page. Name assignment is
// positional, so the entry carries a source-derived ID a reader can use to
// audit which cell produced which file after the fact.
type ManifestEntry struct {
	// ID is stable across runs for an unchanged cell: the first 12 hex
	// characters of SHA-256 over the cell source and the assigned file name.
	ID string `yaml:"id"`

	// File is the page file name within the output directory.
	File string `yaml:"file"`

	// Title is the page title assigned from the chart's position.
	Title string `yaml:"title"`

	// Traces is the number of entries in the figure's "data" array.
	Traces int `yaml:"traces"`

	// ExportedAt is the manifest write time, RFC3339 UTC.
	ExportedAt string `yaml:"exported_at"`
}

// writeManifest writes one entry per extracted chart and returns the
// manifest path.
func writeManifest(outputDir string, charts []types.ExtractedChart) (string, error) {
	ts := time.Now().UTC().Format(time.RFC3339)

	entries := make([]ManifestEntry, len(charts))
	for i, c := range charts {
		name := chart.FileName(i)
		entries[i] = ManifestEntry{
			ID:         stableID(c.Source, name),
			File:       name,
			Title:      chart.Title(i),
			Traces:     traceCount(c.Figure),
			ExportedAt: ts,
		}
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}

	path := filepath.Join(outputDir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// stableID derives a deterministic ID from the cell source and file name.
func stableID(source, file string) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte(file))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// traceCount returns the length of the figure's "data" array, 0 if absent.
func traceCount(fig types.Figure) int {
	data, ok := fig["data"].([]any)
	if !ok {
		return 0
	}
	return len(data)
}
