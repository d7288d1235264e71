package models

// Value marks a dataspec property as a fixed literal rather than a column
// reference. A plain string assigned to a dataspec property names a column;
// Value{Value: s} renders s itself for every data point.
type Value struct {
	Value any
}

// Glyph is a renderable visual mark bound to data columns. Dataspec
// properties hold either a column name (string), a Value literal, or a
// scalar applied to every point.
type Glyph interface {
	// Type returns the stable glyph type name, e.g. "Circle".
	Type() string
}

// Circle is a circle marker glyph.
type Circle struct {
	X         any `json:"x,omitempty" jsonschema_extras:"dataspec=true"`
	Y         any `json:"y,omitempty" jsonschema_extras:"dataspec=true"`
	Size      any `json:"size,omitempty" jsonschema_extras:"dataspec=true"`
	Radius    any `json:"radius,omitempty" jsonschema_extras:"dataspec=true"`
	FillColor any `json:"fill_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	FillAlpha any `json:"fill_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	LineColor any `json:"line_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	LineAlpha any `json:"line_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	LineWidth any `json:"line_width,omitempty" jsonschema_extras:"dataspec=true"`
	LineDash  any `json:"line_dash,omitempty"`
	Label     any `json:"label,omitempty"`
}

func (Circle) Type() string { return "Circle" }

// Line is a single continuous line glyph.
type Line struct {
	X         any `json:"x,omitempty" jsonschema_extras:"dataspec=true"`
	Y         any `json:"y,omitempty" jsonschema_extras:"dataspec=true"`
	LineColor any `json:"line_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	LineAlpha any `json:"line_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	LineWidth any `json:"line_width,omitempty" jsonschema_extras:"dataspec=true"`
	LineDash  any `json:"line_dash,omitempty"`
	Label     any `json:"label,omitempty"`
}

func (Line) Type() string { return "Line" }

// Rect is an axis-aligned (optionally rotated) rectangle glyph.
type Rect struct {
	X         any `json:"x,omitempty" jsonschema_extras:"dataspec=true"`
	Y         any `json:"y,omitempty" jsonschema_extras:"dataspec=true"`
	Width     any `json:"width,omitempty" jsonschema_extras:"dataspec=true"`
	Height    any `json:"height,omitempty" jsonschema_extras:"dataspec=true"`
	Angle     any `json:"angle,omitempty" jsonschema_extras:"dataspec=true"`
	FillColor any `json:"fill_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	FillAlpha any `json:"fill_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	LineColor any `json:"line_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	LineAlpha any `json:"line_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	LineWidth any `json:"line_width,omitempty" jsonschema_extras:"dataspec=true"`
	LineDash  any `json:"line_dash,omitempty"`
	Label     any `json:"label,omitempty"`
}

func (Rect) Type() string { return "Rect" }

// Text renders a text string at each data point.
type Text struct {
	X         any `json:"x,omitempty" jsonschema_extras:"dataspec=true"`
	Y         any `json:"y,omitempty" jsonschema_extras:"dataspec=true"`
	Text      any `json:"text,omitempty" jsonschema_extras:"dataspec=true"`
	Angle     any `json:"angle,omitempty" jsonschema_extras:"dataspec=true"`
	TextColor any `json:"text_color,omitempty" jsonschema_extras:"dataspec=true,colorspec=true"`
	TextAlpha any `json:"text_alpha,omitempty" jsonschema_extras:"dataspec=true"`
	Label     any `json:"label,omitempty"`
}

func (Text) Type() string { return "Text" }
