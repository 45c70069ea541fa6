// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/pdiddy/nbcharts/pkg/types"
)

// plotlyCDN is the versioned client-side charting library every page loads.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

// pageTemplate wraps one serialized figure in a complete HTML5 document.
// The container fills its parent and a resize listener keeps the chart in
// step with it; each page is meant to be embedded via iframe.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="%s"></script>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
html, body { width: 100%%; height: 100%%; }
#chart { width: 100%%; height: 100%%; min-height: 400px; }
</style>
</head>
<body>
<div id="chart"></div>
<script>
var figure = %s;
var config = {
    responsive: true,
    displayModeBar: true,
    modeBarButtonsToRemove: ['lasso2d', 'select2d'],
    displaylogo: false
};
Plotly.newPlot('chart', figure.data, figure.layout, config);
window.addEventListener('resize', function() {
    Plotly.Plots.resize('chart');
});
</script>
</body>
</html>
`

// Render serializes the figure into a standalone HTML page titled title.
// json.Marshal escapes angle brackets, so the payload is safe to embed in
// a script block.
func Render(fig types.Figure, title string) (string, error) {
	payload, err := json.Marshal(fig)
	if err != nil {
		return "", fmt.Errorf("serializing figure: %w", err)
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), plotlyCDN, payload), nil
}
