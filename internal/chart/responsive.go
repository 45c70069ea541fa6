package chart

import "github.com/pdiddy/nbcharts/pkg/types"

// MakeResponsive strips fixed sizing from the figure's layout so the chart
// fills its container: width and height are removed if present, autosize
// is forced on, and the margin block is overwritten with constants.
// Figures without a layout mapping pass through unchanged. The transform
// mutates fig in place and is idempotent since every field it touches is
// set to a constant.
func MakeResponsive(fig types.Figure) types.Figure {
	layout, ok := fig["layout"].(map[string]any)
	if !ok {
		return fig
	}

	delete(layout, "width")
	delete(layout, "height")
	layout["autosize"] = true
	layout["margin"] = map[string]any{"l": 50, "r": 30, "t": 80, "b": 50}
	return fig
}
