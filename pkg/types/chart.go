// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Figure is a decoded Plotly payload attached to a notebook output. The
// structure is opaque to this tool except for the "layout" sub-mapping and
// its optional "width"/"height" fields.
type Figure = map[string]any

// ExtractedChart pairs a code cell's source text with the Plotly figure it
// produced. Charts are held in memory for the duration of one run only.
type ExtractedChart struct {
	// Source is the cell's source fragments concatenated with no separator.
	Source string `json:"source" yaml:"source"`

	// Caption is the raw Markdown of the nearest preceding markdown cell,
	// empty when there is none. Only the gallery reads it.
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`

	// Figure is the chart payload ("data" and "layout" sub-keys).
	Figure Figure `json:"figure" yaml:"figure"`
}

// ChartSpec names one expected chart position. The Nth extracted chart (in
// document traversal order) takes the Nth spec's file name and description;
// assignment is purely positional, content is never matched.
type ChartSpec struct {
	// Name is the output file base name, without the .html suffix.
	Name string `json:"name" yaml:"name"`

	// Desc is the human-readable chart title.
	Desc string `json:"desc" yaml:"desc"`
}
