package models

import "fmt"

// Place identifies the plot panel a layout renderer is added to.
type Place string

const (
	PlaceAbove  Place = "above"
	PlaceBelow  Place = "below"
	PlaceLeft   Place = "left"
	PlaceRight  Place = "right"
	PlaceCenter Place = "center"
)

// Plot is the target surface glue-built objects are attached to. Renderers
// holds center-panel renderers (glyphs, grids, legends); the four side
// slices hold axes and other edge layouts.
type Plot struct {
	Title string

	Renderers []Renderer
	Above     []Renderer
	Below     []Renderer
	Left      []Renderer
	Right     []Renderer

	Toolbar Toolbar

	XRange Range
	YRange Range

	// Mapper type hints consumed by the external view layer. Set to "log"
	// when a log axis is configured for the dimension.
	XMapperType string
	YMapperType string
}

// AddLayout places r on the named panel.
func (p *Plot) AddLayout(r Renderer, place Place) error {
	switch place {
	case PlaceAbove:
		p.Above = append(p.Above, r)
	case PlaceBelow:
		p.Below = append(p.Below, r)
	case PlaceLeft:
		p.Left = append(p.Left, r)
	case PlaceRight:
		p.Right = append(p.Right, r)
	case PlaceCenter:
		p.Renderers = append(p.Renderers, r)
	default:
		return fmt.Errorf("unknown layout place %q", place)
	}
	return nil
}

// GlyphRenderers returns the plot's glyph renderers in draw order.
func (p *Plot) GlyphRenderers() []*GlyphRenderer {
	var out []*GlyphRenderer
	for _, r := range p.Renderers {
		if gr, ok := r.(*GlyphRenderer); ok {
			out = append(out, gr)
		}
	}
	return out
}

// Legends returns every legend annotation attached to the plot, scanning
// the center panel and all four sides.
func (p *Plot) Legends() []*Legend {
	var out []*Legend
	for _, panel := range [][]Renderer{p.Renderers, p.Above, p.Below, p.Left, p.Right} {
		for _, r := range panel {
			if l, ok := r.(*Legend); ok {
				out = append(out, l)
			}
		}
	}
	return out
}

// BoxSelectTools returns the box-select tools on the plot's toolbar.
func (p *Plot) BoxSelectTools() []*BoxSelectTool {
	var out []*BoxSelectTool
	for _, t := range p.Toolbar.Tools {
		if bs, ok := t.(*BoxSelectTool); ok {
			out = append(out, bs)
		}
	}
	return out
}
