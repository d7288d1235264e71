package bokeh

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarfett/bokeh/models"
	"github.com/pbarfett/bokeh/testutil"
)

func TestDefaultColor(t *testing.T) {
	assert.Equal(t, "#1f77b4", DefaultColor(nil))

	plot := testutil.NewTestPlot()
	assert.Equal(t, "#1f77b4", DefaultColor(plot))

	plot.Renderers = append(plot.Renderers, &models.GlyphRenderer{})
	assert.Equal(t, "#ff7f0e", DefaultColor(plot))

	// Guide renderers do not advance the rotation.
	plot.Renderers = append(plot.Renderers, &models.Grid{})
	assert.Equal(t, "#ff7f0e", DefaultColor(plot))

	// The rotation wraps instead of running off the end of the list.
	for range defaultColors {
		plot.Renderers = append(plot.Renderers, &models.GlyphRenderer{})
	}
	assert.Equal(t, "#ff7f0e", DefaultColor(plot))
}

func TestDefaultPaletteParses(t *testing.T) {
	for _, hex := range DefaultPalette {
		_, err := colorful.Hex(hex)
		require.NoError(t, err, hex)
	}
	for _, hex := range defaultColors {
		_, err := colorful.Hex(hex)
		require.NoError(t, err, hex)
	}
}

func TestPopColorsAndAlpha_Defaults(t *testing.T) {
	class, err := NewGlyphClass[models.Circle]()
	require.NoError(t, err)

	props := map[string]any{"x": "x"}
	got := PopColorsAndAlpha(class, props, "", "#1f77b4", 1.0)
	assert.Equal(t, map[string]any{
		"fill_color": "#1f77b4",
		"line_color": "#1f77b4",
		"fill_alpha": 1.0,
		"line_alpha": 1.0,
	}, got)
	// Untouched keys stay behind.
	assert.Equal(t, map[string]any{"x": "x"}, props)
}

func TestPopColorsAndAlpha_Shorthands(t *testing.T) {
	class, err := NewGlyphClass[models.Circle]()
	require.NoError(t, err)

	props := map[string]any{"color": "red", "alpha": 0.5}
	got := PopColorsAndAlpha(class, props, "", "#1f77b4", 1.0)
	assert.Equal(t, map[string]any{
		"fill_color": "red",
		"line_color": "red",
		"fill_alpha": 0.5,
		"line_alpha": 0.5,
	}, got)
	assert.Empty(t, props)
}

func TestPopColorsAndAlpha_ExplicitWins(t *testing.T) {
	class, err := NewGlyphClass[models.Circle]()
	require.NoError(t, err)

	props := map[string]any{
		"nonselection_fill_color": "navy",
		"nonselection_alpha":      0.3,
	}
	got := PopColorsAndAlpha(class, props, "nonselection_", "#1f77b4", 0.1)
	assert.Equal(t, "navy", got["fill_color"])
	assert.Equal(t, "#1f77b4", got["line_color"])
	assert.Equal(t, 0.3, got["fill_alpha"])
	assert.Equal(t, 0.3, got["line_alpha"])
	assert.Empty(t, props)
}

func TestPopColorsAndAlpha_OnlyDeclaredProperties(t *testing.T) {
	class, err := NewGlyphClass[models.Line]()
	require.NoError(t, err)

	got := PopColorsAndAlpha(class, map[string]any{}, "", "#1f77b4", 1.0)
	assert.Equal(t, map[string]any{
		"line_color": "#1f77b4",
		"line_alpha": 1.0,
	}, got)
	assert.NotContains(t, got, "fill_color")
	assert.NotContains(t, got, "fill_alpha")
}

func TestPopColorsAndAlpha_TextColorDefaultsBlack(t *testing.T) {
	class, err := NewGlyphClass[models.Text]()
	require.NoError(t, err)

	got := PopColorsAndAlpha(class, map[string]any{"color": "red"}, "", "#1f77b4", 1.0)
	assert.Equal(t, "black", got["text_color"])
	assert.Equal(t, 1.0, got["text_alpha"])

	got = PopColorsAndAlpha(class, map[string]any{"text_color": "dimgray"}, "", "#1f77b4", 1.0)
	assert.Equal(t, "dimgray", got["text_color"])
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		expect any
	}{
		{"rgb ints", []int{242, 44, 64}, "#f22c40"},
		{"rgb array", [3]int{255, 255, 255}, "#ffffff"},
		{"rgba", []any{0, 0, 0, 0.5}, "rgba(0, 0, 0, 0.5)"},
		{"string passthrough", "#1f77b4", "#1f77b4"},
		{"named passthrough", "navy", "navy"},
		{"non-colour slice", []int{1, 2}, []int{1, 2}},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, NormalizeColor(tt.in))
		})
	}
}

func TestColorTuple(t *testing.T) {
	tests := []struct {
		name string
		in   any
		ok   bool
	}{
		{"three ints", []int{1, 2, 3}, true},
		{"four floats", []float64{1, 2, 3, 0.5}, true},
		{"mixed any", []any{uint8(1), 2.0, 3}, true},
		{"two elements", []int{1, 2}, false},
		{"five elements", []int{1, 2, 3, 4, 5}, false},
		{"strings", []string{"a", "b", "c"}, false},
		{"not a sequence", 42, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := colorTuple(tt.in)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
