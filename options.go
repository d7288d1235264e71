package bokeh

import (
	"github.com/pbarfett/bokeh/models"
)

// GlyphArgs configures one AddGlyph call. All fields are optional.
type GlyphArgs struct {
	// Source is a caller-owned data source shared between renderers. When
	// nil, AddGlyph creates a fresh source for the renderer.
	Source *models.ColumnDataSource

	// Name tags the renderer for later lookup.
	Name string

	// XRangeName and YRangeName map the renderer onto extra named ranges.
	XRangeName string
	YRangeName string

	// Level controls the render level; empty means models.LevelGlyph.
	Level models.RenderLevel

	// Legend is the legend shortcut: the string becomes a column reference
	// when Source declares a column of that name, a literal value
	// otherwise. Mutually exclusive with Label.
	Legend string

	// Label is the explicit legend label: a column name string or a
	// models.Value literal.
	Label any

	// Properties holds the glyph's visual and data properties, including
	// "nonselection_", "selection_", and "hover_" prefixed variants and the
	// "color"/"alpha" shorthands. AddGlyph does not mutate the map.
	Properties map[string]any
}
