// Package bokeh translates user-facing plotting options (colours, alphas,
// tool name strings, legend shortcuts, ranges, axis types) into constructed
// visualization model objects (glyphs, renderers, axes, grids, tools,
// legends) from the models subpackage.
//
// # Overview
//
// A higher-level figure API collects flat user options and hands them to
// this package: tool name strings resolve against an immutable registry
// (with fuzzy suggestions for typos), colour and alpha shorthands expand
// into the properties a glyph class actually declares, literal data
// sequences move into a backing ColumnDataSource, and range or axis-type
// tokens become typed range and axis variants.
//
// Pipeline: glyph struct tags → GlyphClass (reflected property set) →
// AddGlyph (legend, colours, sequence lifting, selection-state variants) →
// GlyphRenderer attached to the plot.
//
// # Key concepts
//
//   - Single Source of Truth: one set of struct tags on a glyph type drives
//     its declared properties, its dataspecs, and its construction.
//   - Explicit sum types: "name or instance" inputs are ToolRef and Active
//     values, never runtime type sniffing.
//   - Non-fatal conditions (repeated tools, deprecated source plus literal
//     mixes) are logged warnings; everything else returns a typed error.
//
// # Example
//
//	class, err := bokeh.NewGlyphClass[models.Circle]()
//	if err != nil { ... }
//	plot := &models.Plot{XRange: &models.DataRange1d{}, YRange: &models.DataRange1d{}}
//	tools, names, err := bokeh.AddTools(plot, bokeh.ParseToolString("pan,wheel_zoom,reset"))
//	if err != nil { ... }
//	_ = tools
//	err = bokeh.ProcessActiveTools(&plot.Toolbar, names, bokeh.ActiveNamed("pan"), bokeh.ActiveAuto(), bokeh.ActiveAuto())
//	if err != nil { ... }
//	renderer, err := bokeh.AddGlyph(plot, class, bokeh.GlyphArgs{
//	    Legend:     "series A",
//	    Properties: map[string]any{"x": []float64{1, 2, 3}, "y": []float64{4, 5, 6}},
//	})
package bokeh
