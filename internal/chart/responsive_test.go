// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/nbcharts/pkg/types"
)

func TestMakeResponsive(t *testing.T) {
	fig := types.Figure{
		"data": []any{map[string]any{"type": "scatter"}},
		"layout": map[string]any{
			"width":  float64(800),
			"height": float64(600),
			"title":  "Energy Sold",
		},
	}

	got := MakeResponsive(fig)
	layout := got["layout"].(map[string]any)

	assert.NotContains(t, layout, "width")
	assert.NotContains(t, layout, "height")
	assert.Equal(t, true, layout["autosize"])
	assert.Equal(t, map[string]any{"l": 50, "r": 30, "t": 80, "b": 50}, layout["margin"])
	assert.Equal(t, "Energy Sold", layout["title"], "unrelated layout fields survive")
}

func TestMakeResponsive_NoLayout(t *testing.T) {
	fig := types.Figure{"data": []any{}}
	got := MakeResponsive(fig)

	if _, ok := got["layout"]; ok {
		t.Error("transform must not introduce a layout mapping")
	}
	if !reflect.DeepEqual(got, types.Figure{"data": []any{}}) {
		t.Errorf("figure without layout should pass through unchanged, got %v", got)
	}
}

func TestMakeResponsive_Idempotent(t *testing.T) {
	fig := types.Figure{
		"layout": map[string]any{"width": float64(640), "margin": map[string]any{"l": 5}},
	}

	once := MakeResponsive(fig)
	snapshot := deepCopy(once)
	twice := MakeResponsive(once)

	assert.Equal(t, snapshot, deepCopy(twice))
}

func TestMakeResponsive_NeverAddsDimensions(t *testing.T) {
	for _, fig := range []types.Figure{
		{"layout": map[string]any{}},
		{"layout": map[string]any{"autosize": false}},
		{"layout": map[string]any{"width": float64(1)}},
	} {
		layout := MakeResponsive(fig)["layout"].(map[string]any)
		assert.NotContains(t, layout, "width")
		assert.NotContains(t, layout, "height")
	}
}

// deepCopy clones a figure so idempotence can be asserted on value, not
// shared maps.
func deepCopy(fig types.Figure) types.Figure {
	out := types.Figure{}
	for k, v := range fig {
		if m, ok := v.(map[string]any); ok {
			out[k] = deepCopy(m)
			continue
		}
		out[k] = v
	}
	return out
}
