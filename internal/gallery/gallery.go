// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gallery renders an index page over exported chart pages: one
// section per chart with its caption, an iframe onto the chart page, and
// the producing cell source with syntax highlighting.
package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/pdiddy/nbcharts/internal/chart"
	"github.com/pdiddy/nbcharts/internal/notebook"
	"github.com/pdiddy/nbcharts/pkg/types"
)

// indexFile is the gallery page name within the output directory.
const indexFile = "index.html"

// md renders captions and fenced cell source. Chroma emits inline styles,
// so the index page needs no external stylesheet for code blocks.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("friendly"),
			highlighting.WithFormatOptions(
				chromahtml.TabWidth(4),
			),
		),
	),
)

// entry is one chart section on the index page. Caption and Source are
// pre-rendered HTML fragments.
type entry struct {
	Title   string
	File    string
	Caption template.HTML
	Source  template.HTML
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Chart Gallery</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0 auto; max-width: 960px; padding: 2rem 1rem; }
section { margin-bottom: 3rem; }
iframe { width: 100%; height: 480px; border: 1px solid #ddd; border-radius: 4px; }
details { margin-top: 0.5rem; }
summary { cursor: pointer; color: #555; }
.empty { color: #777; font-style: italic; }
</style>
</head>
<body>
<h1>Chart Gallery</h1>
{{if not .Entries}}<p class="empty">No charts were extracted from this notebook.</p>
{{end}}{{range .Entries}}<section>
<h2>{{.Title}}</h2>
{{if .Caption}}<div class="caption">{{.Caption}}</div>
{{end}}<iframe src="{{.File}}" loading="lazy" title="{{.Title}}"></iframe>
{{if .Source}}<details>
<summary>Source</summary>
{{.Source}}</details>
{{end}}</section>
{{end}}</body>
</html>
`))

// Build extracts charts from the notebook and writes the index page into
// the output directory, printing progress to w. Chart pages are referenced
// by the same positional names the exporter assigns; Build never rewrites
// them.
func Build(cfg types.GalleryConfig, w io.Writer) error {
	fmt.Fprintf(w, "Reading notebook: %s\n", cfg.NotebookPath)

	doc, err := notebook.Load(cfg.NotebookPath)
	if err != nil {
		return err
	}

	charts, err := notebook.ExtractCharts(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Found %d cells with Plotly outputs\n", len(charts))

	entries := make([]entry, len(charts))
	for i, c := range charts {
		caption, err := renderMarkdown(c.Caption)
		if err != nil {
			return fmt.Errorf("rendering caption for %s: %w", chart.FileName(i), err)
		}
		source, err := renderSource(c.Source)
		if err != nil {
			return fmt.Errorf("rendering source for %s: %w", chart.FileName(i), err)
		}
		entries[i] = entry{
			Title:   chart.Title(i),
			File:    chart.FileName(i),
			Caption: caption,
			Source:  source,
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct{ Entries []entry }{entries}); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, indexFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	fmt.Fprintf(w, "  saved: %s\n", indexFile)
	fmt.Fprintf(w, "\nGallery written to: %s\n", path)
	return nil
}

// renderMarkdown converts caption Markdown to an HTML fragment. Empty or
// blank input yields an empty fragment.
func renderMarkdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// renderSource highlights the cell source by routing it through the
// Markdown pipeline as a fenced Python code block. The four-backtick fence
// keeps fences inside the cell source from closing the block early.
func renderSource(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	fenced := "````python\n" + strings.TrimRight(src, "\n") + "\n````\n"
	var buf bytes.Buffer
	if err := md.Convert([]byte(fenced), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
