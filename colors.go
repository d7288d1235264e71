package bokeh

import (
	"fmt"
	"reflect"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pbarfett/bokeh/models"
)

// DefaultPalette is the default colour cycle offered to palette-aware
// callers.
var DefaultPalette = []string{"#f22c40", "#5ab738", "#407ee7", "#df5320", "#00ad9c", "#c33ff3"}

// defaultColors is cycled by glyph renderer count when no colour is given.
var defaultColors = []string{
	"#1f77b4",
	"#ff7f0e", "#ffbb78",
	"#2ca02c", "#98df8a",
	"#d62728", "#ff9896",
	"#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94",
	"#e377c2", "#f7b6d2",
	"#7f7f7f",
	"#bcbd22", "#dbdb8d",
	"#17becf", "#9edae5",
}

// DefaultColor returns the default colour for the next glyph added to plot,
// rotating the default colour list by the count of existing glyph
// renderers. A nil plot yields the first colour.
func DefaultColor(plot *models.Plot) string {
	if plot == nil {
		return defaultColors[0]
	}
	n := len(plot.GlyphRenderers())
	return defaultColors[n%len(defaultColors)]
}

// DefaultAlpha returns the default glyph alpha.
func DefaultAlpha(plot *models.Plot) float64 { return 1.0 }

// PopColorsAndAlpha extracts the colour and alpha construction arguments
// for one glyph variant. Keys prefixed with prefix are consumed from props;
// the prefix+"color" and prefix+"alpha" shorthands fill every colour/alpha
// property the class declares that was not given explicitly. Only declared
// properties appear in the result. Text colour defaults to black rather
// than the shared colour.
func PopColorsAndAlpha(class PropertySet, props map[string]any, prefix string, defaultColor string, defaultAlpha float64) map[string]any {
	result := make(map[string]any)

	color := pop(props, prefix+"color", any(defaultColor))
	for _, name := range []string{"fill_color", "line_color"} {
		if !class.HasProperty(name) {
			continue
		}
		result[name] = NormalizeColor(pop(props, prefix+name, color))
	}
	if class.HasProperty("text_color") {
		result["text_color"] = NormalizeColor(pop(props, prefix+"text_color", "black"))
	}

	alpha := pop(props, prefix+"alpha", any(defaultAlpha))
	for _, name := range []string{"fill_alpha", "line_alpha", "text_alpha"} {
		if !class.HasProperty(name) {
			continue
		}
		result[name] = pop(props, prefix+name, alpha)
	}
	return result
}

// pop removes key from props and returns its value, or def when absent.
func pop(props map[string]any, key string, def any) any {
	if v, ok := props[key]; ok {
		delete(props, key)
		return v
	}
	return def
}

// NormalizeColor converts 3-component numeric colour tuples to hex and
// 4-component tuples to an rgba() string. Any other value passes through
// unchanged.
func NormalizeColor(v any) any {
	ch, ok := colorTuple(v)
	if !ok {
		return v
	}
	if len(ch) == 4 {
		return fmt.Sprintf("rgba(%d, %d, %d, %g)", int(ch[0]), int(ch[1]), int(ch[2]), ch[3])
	}
	return colorful.Color{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255}.Hex()
}

// colorTuple reports whether v is a slice or array of 3 or 4 numeric
// components and returns them (channels in 0-255, alpha in 0-1).
func colorTuple(v any) ([]float64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	if rv.Len() != 3 && rv.Len() != 4 {
		return nil, false
	}
	ch := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e := rv.Index(i)
		for e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ch = append(ch, float64(e.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			ch = append(ch, float64(e.Uint()))
		case reflect.Float32, reflect.Float64:
			ch = append(ch, e.Float())
		default:
			return nil, false
		}
	}
	return ch, true
}
