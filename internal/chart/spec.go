// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart transforms Plotly figure payloads for fluid display and
// renders them as standalone HTML pages.
package chart

import (
	"fmt"

	"github.com/pdiddy/nbcharts/pkg/types"
)

// Specs is the fixed, ordered list of expected charts. The Nth extracted
// chart takes the Nth entry's name and description; extraction beyond the
// list falls back to index-based names. The order mirrors the notebook's
// analysis flow and is not derived from the document, so reordering cells
// silently shifts names.
var Specs = []types.ChartSpec{
	{Name: "metrics_evaluation", Desc: "Metrics Evaluation: Energy Sold, Capacity Installed, Installations"},
	{Name: "technologies_comparison", Desc: "Energy Sold by Technology Type"},
	{Name: "decomposition", Desc: "Time Series Decomposition"},
	{Name: "acf_pacf", Desc: "ACF and PACF Analysis"},
	{Name: "transformations", Desc: "Solar PV Transformation & Differencing"},
	{Name: "model_selection_acf", Desc: "ACF/PACF of Transformed Series for Model Selection"},
	{Name: "residuals_diagnostic", Desc: "Residuals Diagnostic"},
	{Name: "forecast_full", Desc: "Solar Photovoltaic vs. Fitted and Forecast (Full)"},
	{Name: "forecast_trimmed", Desc: "Solar Photovoltaic vs. Fitted and Forecast (Trimmed)"},
}

// FileName returns the output file name for the chart at position i.
func FileName(i int) string {
	if i < len(Specs) {
		return Specs[i].Name + ".html"
	}
	return fmt.Sprintf("chart_%d.html", i+1)
}

// Title returns the page title for the chart at position i.
func Title(i int) string {
	if i < len(Specs) {
		return Specs[i].Desc
	}
	return fmt.Sprintf("Chart %d", i+1)
}
