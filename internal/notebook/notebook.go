// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook parses Jupyter notebook documents and scans their
// cached cell outputs for embedded Plotly figures.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/nbcharts/pkg/types"
)

// PlotlyMediaType is the output data key that marks an embedded Plotly figure.
const PlotlyMediaType = "application/vnd.plotly.v1+json"

// Document is the top level of a notebook file. Only the cell list is
// decoded; notebook-level metadata is ignored.
type Document struct {
	Cells []Cell `json:"cells"`
}

// Cell is one notebook cell with its cached outputs.
type Cell struct {
	CellType string     `json:"cell_type"`
	Source   SourceText `json:"source"`
	Outputs  []Output   `json:"outputs"`
}

// Output is one cached execution artifact attached to a cell, keyed by
// media type.
type Output struct {
	OutputType string                     `json:"output_type"`
	Data       map[string]json.RawMessage `json:"data"`
}

// SourceText holds a cell's source fragments. The notebook format stores
// source as either a single string or a list of line fragments; both
// decode into the fragment list.
type SourceText []string

// UnmarshalJSON accepts both the string and list-of-strings encodings.
func (s *SourceText) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = SourceText{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = SourceText(many)
	return nil
}

// String concatenates the fragments with no separator. Fragments carry
// their own trailing newlines.
func (s SourceText) String() string {
	return strings.Join(s, "")
}

// Load reads and parses the notebook at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing notebook %s: %w", path, err)
	}
	return &doc, nil
}

// ExtractCharts walks the document in cell order and collects every Plotly
// figure cached in a code cell's display_data outputs, preserving output
// order within each cell. A document without a cell list yields an empty
// result. Markdown cells are never scanned for outputs; the most recent
// one is carried as the caption for charts that follow it.
func ExtractCharts(doc *Document) ([]types.ExtractedChart, error) {
	var charts []types.ExtractedChart
	caption := ""

	for _, cell := range doc.Cells {
		switch cell.CellType {
		case "markdown":
			caption = cell.Source.String()
			continue
		case "code":
		default:
			continue
		}

		for _, out := range cell.Outputs {
			if out.OutputType != "display_data" {
				continue
			}
			raw, ok := out.Data[PlotlyMediaType]
			if !ok {
				continue
			}

			var fig types.Figure
			if err := json.Unmarshal(raw, &fig); err != nil {
				return nil, fmt.Errorf("decoding figure payload: %w", err)
			}

			charts = append(charts, types.ExtractedChart{
				Source:  cell.Source.String(),
				Caption: caption,
				Figure:  fig,
			})
		}
	}

	return charts, nil
}
