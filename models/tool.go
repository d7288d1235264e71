package models

// Dimension identifies a plot direction a tool operates on.
type Dimension string

const (
	DimWidth  Dimension = "width"
	DimHeight Dimension = "height"
)

// Tool is an interactive plot-manipulation capability carried by a toolbar.
type Tool interface {
	// Type returns the stable tool type name, e.g. "PanTool". Tools of the
	// same type report the same value regardless of configuration.
	Type() string
}

// PanTool pans the plot by dragging along the configured dimensions.
type PanTool struct {
	Dimensions []Dimension
}

func (*PanTool) Type() string { return "PanTool" }

// WheelZoomTool zooms the plot with the scroll wheel.
type WheelZoomTool struct {
	Dimensions []Dimension
}

func (*WheelZoomTool) Type() string { return "WheelZoomTool" }

// WheelPanTool translates the plot along a single dimension with the scroll wheel.
type WheelPanTool struct {
	Dimension Dimension
}

func (*WheelPanTool) Type() string { return "WheelPanTool" }

// BoxZoomTool zooms to a dragged-out region.
type BoxZoomTool struct {
	Dimensions []Dimension
}

func (*BoxZoomTool) Type() string { return "BoxZoomTool" }

// BoxSelectTool selects data points inside a dragged-out region.
// Renderers limits the selection to the listed glyph renderers.
type BoxSelectTool struct {
	Dimensions []Dimension
	Renderers  []*GlyphRenderer
}

func (*BoxSelectTool) Type() string { return "BoxSelectTool" }

// PolySelectTool selects data points inside a clicked-out polygon.
type PolySelectTool struct{}

func (*PolySelectTool) Type() string { return "PolySelectTool" }

// LassoSelectTool selects data points inside a freehand region.
type LassoSelectTool struct{}

func (*LassoSelectTool) Type() string { return "LassoSelectTool" }

// Tap behaviors.
const (
	TapSelect  = "select"
	TapInspect = "inspect"
)

// TapTool selects or inspects data points on click.
type TapTool struct {
	Behavior string // TapSelect or TapInspect
}

func (*TapTool) Type() string { return "TapTool" }

// CrosshairTool draws a crosshair at the cursor position.
type CrosshairTool struct{}

func (*CrosshairTool) Type() string { return "CrosshairTool" }

// Tooltip is a single label/value row in a hover tooltip.
type Tooltip struct {
	Label string
	Value string
}

// HoverTool shows tooltips for the data points under the cursor.
type HoverTool struct {
	Tooltips []Tooltip
}

func (*HoverTool) Type() string { return "HoverTool" }

// SaveTool saves a snapshot of the plot.
type SaveTool struct{}

func (*SaveTool) Type() string { return "SaveTool" }

// UndoTool reverts the last tool interaction.
type UndoTool struct{}

func (*UndoTool) Type() string { return "UndoTool" }

// RedoTool re-applies the last undone interaction.
type RedoTool struct{}

func (*RedoTool) Type() string { return "RedoTool" }

// ResetTool restores plot ranges and layout to their initial state.
type ResetTool struct{}

func (*ResetTool) Type() string { return "ResetTool" }

// ResizeTool resizes the plot by dragging.
type ResizeTool struct{}

func (*ResizeTool) Type() string { return "ResizeTool" }

// HelpTool links to user documentation.
type HelpTool struct{}

func (*HelpTool) Type() string { return "HelpTool" }

// ActiveValue is a resolved active-gesture slot on a toolbar: automatic
// selection, no active tool (the zero value), or a specific tool.
type ActiveValue struct {
	Auto bool
	Tool Tool
}

// Toolbar carries a plot's tools and its active-gesture assignments.
type Toolbar struct {
	Tools        []Tool
	ActiveDrag   ActiveValue
	ActiveScroll ActiveValue
	ActiveTap    ActiveValue
}
