package models

// RenderLevel controls draw order between renderer groups.
type RenderLevel string

const (
	LevelImage      RenderLevel = "image"
	LevelUnderlay   RenderLevel = "underlay"
	LevelGlyph      RenderLevel = "glyph"
	LevelAnnotation RenderLevel = "annotation"
	LevelOverlay    RenderLevel = "overlay"
)

// Renderer is anything a plot draws: glyph renderers, guide renderers
// (axes, grids), and annotations (legends).
type Renderer interface {
	isRenderer()
}

// GlyphRenderer pairs a glyph with its data source and the glyph variants
// used for selection states. NonselectionGlyph, SelectionGlyph, and
// HoverGlyph are nil when the corresponding state renders nothing special.
type GlyphRenderer struct {
	DataSource        *ColumnDataSource
	Glyph             Glyph
	NonselectionGlyph Glyph
	SelectionGlyph    Glyph
	HoverGlyph        Glyph
	Name              string
	XRangeName        string
	YRangeName        string
	Level             RenderLevel
}

func (*GlyphRenderer) isRenderer() {}

// Legend is an annotation listing the labelled glyph renderers of a plot.
type Legend struct {
	Legends []*GlyphRenderer
}

func (*Legend) isRenderer() {}
