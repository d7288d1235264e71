package bokeh

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/pbarfett/bokeh/models"
)

// knownTools maps registry keys to zero-argument tool constructors.
// Immutable after package initialization.
var knownTools = map[string]func() models.Tool{
	"pan":          func() models.Tool { return &models.PanTool{Dimensions: []models.Dimension{models.DimWidth, models.DimHeight}} },
	"xpan":         func() models.Tool { return &models.PanTool{Dimensions: []models.Dimension{models.DimWidth}} },
	"ypan":         func() models.Tool { return &models.PanTool{Dimensions: []models.Dimension{models.DimHeight}} },
	"wheel_zoom":   func() models.Tool { return &models.WheelZoomTool{Dimensions: []models.Dimension{models.DimWidth, models.DimHeight}} },
	"xwheel_zoom":  func() models.Tool { return &models.WheelZoomTool{Dimensions: []models.Dimension{models.DimWidth}} },
	"ywheel_zoom":  func() models.Tool { return &models.WheelZoomTool{Dimensions: []models.Dimension{models.DimHeight}} },
	"xwheel_pan":   func() models.Tool { return &models.WheelPanTool{Dimension: models.DimWidth} },
	"ywheel_pan":   func() models.Tool { return &models.WheelPanTool{Dimension: models.DimHeight} },
	"resize":       func() models.Tool { return &models.ResizeTool{} },
	"click":        func() models.Tool { return &models.TapTool{Behavior: models.TapInspect} },
	"tap":          func() models.Tool { return &models.TapTool{Behavior: models.TapSelect} },
	"crosshair":    func() models.Tool { return &models.CrosshairTool{} },
	"box_select":   func() models.Tool { return &models.BoxSelectTool{} },
	"xbox_select":  func() models.Tool { return &models.BoxSelectTool{Dimensions: []models.Dimension{models.DimWidth}} },
	"ybox_select":  func() models.Tool { return &models.BoxSelectTool{Dimensions: []models.Dimension{models.DimHeight}} },
	"poly_select":  func() models.Tool { return &models.PolySelectTool{} },
	"lasso_select": func() models.Tool { return &models.LassoSelectTool{} },
	"box_zoom":     func() models.Tool { return &models.BoxZoomTool{Dimensions: []models.Dimension{models.DimWidth, models.DimHeight}} },
	"xbox_zoom":    func() models.Tool { return &models.BoxZoomTool{Dimensions: []models.Dimension{models.DimWidth}} },
	"ybox_zoom":    func() models.Tool { return &models.BoxZoomTool{Dimensions: []models.Dimension{models.DimHeight}} },
	"hover": func() models.Tool {
		return &models.HoverTool{Tooltips: []models.Tooltip{
			{Label: "index", Value: "$index"},
			{Label: "data (x, y)", Value: "($x, $y)"},
			{Label: "canvas (x, y)", Value: "($sx, $sy)"},
		}}
	},
	"save":  func() models.Tool { return &models.SaveTool{} },
	"undo":  func() models.Tool { return &models.UndoTool{} },
	"redo":  func() models.Tool { return &models.RedoTool{} },
	"reset": func() models.Tool { return &models.ResetTool{} },
	"help":  func() models.Tool { return &models.HelpTool{} },
}

// toolAliases redirects legacy tool names to current registry keys. Kept
// separate from knownTools so an alias can never shadow a real key.
var toolAliases = map[string]string{
	"previewsave": "save",
}

// KnownTools returns every accepted tool name (aliases included), sorted.
func KnownTools() []string {
	names := make([]string, 0, len(knownTools)+len(toolAliases))
	for name := range knownTools {
		names = append(names, name)
	}
	for name := range toolAliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ToolFromString resolves a tool name to a newly constructed tool instance.
// Unknown names return an UnknownToolError carrying suggestions: the
// closest registry keys when any match, otherwise the full key set. The
// suggestion list is deterministic for a given input.
func ToolFromString(name string) (models.Tool, error) {
	key := name
	if target, ok := toolAliases[key]; ok {
		key = target
	}
	if ctor, ok := knownTools[key]; ok {
		return ctor(), nil
	}

	known := KnownTools()
	matches := fuzzy.Find(strings.ToLower(name), known)
	if len(matches) == 0 {
		return nil, &UnknownToolError{Name: name, Suggestions: known}
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return nil, &UnknownToolError{Name: name, Suggestions: suggestions, Similar: true}
}

// ToolRef identifies one requested tool: either a registry name to resolve
// or an already-constructed instance to pass through.
type ToolRef struct {
	name string
	tool models.Tool
}

// NamedTool references a tool by registry name.
func NamedTool(name string) ToolRef { return ToolRef{name: name} }

// BuiltTool wraps an already-constructed tool instance.
func BuiltTool(t models.Tool) ToolRef { return ToolRef{tool: t} }

// ParseToolString splits a comma-separated tool list into named references.
// Blank segments are dropped.
func ParseToolString(s string) []ToolRef {
	var refs []ToolRef
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		refs = append(refs, NamedTool(name))
	}
	return refs
}

// AddTools resolves refs, installs the tools on the plot's toolbar, and
// returns them in input order together with a name-to-instance map for the
// named references. Repeated tool types are logged as a warning but are not
// an error.
func AddTools(plot *models.Plot, refs []ToolRef) ([]models.Tool, map[string]models.Tool, error) {
	tools := make([]models.Tool, 0, len(refs))
	names := make(map[string]models.Tool, len(refs))
	for _, ref := range refs {
		switch {
		case ref.tool != nil:
			tools = append(tools, ref.tool)
		case ref.name != "":
			t, err := ToolFromString(ref.name)
			if err != nil {
				return nil, nil, err
			}
			tools = append(tools, t)
			names[ref.name] = t
		default:
			return nil, nil, &ConfigurationError{Option: "tools", Reason: "tool must be a registry name or a constructed instance"}
		}
	}

	if repeated := repeatedToolTypes(tools); len(repeated) > 0 {
		logger.Warn("tools are being repeated", "tools", strings.Join(repeated, ","))
	}

	plot.Toolbar.Tools = append(plot.Toolbar.Tools, tools...)
	return tools, names, nil
}

// repeatedToolTypes returns the sorted tool type names occurring more than
// once in tools.
func repeatedToolTypes(tools []models.Tool) []string {
	counts := make(map[string]int, len(tools))
	for _, t := range tools {
		counts[t.Type()]++
	}
	var repeated []string
	for typeName, n := range counts {
		if n > 1 {
			repeated = append(repeated, typeName)
		}
	}
	slices.Sort(repeated)
	return repeated
}

// Active selects the tool active for one toolbar gesture. The zero value
// means automatic selection.
type Active struct {
	none bool
	name string
	tool models.Tool
}

// ActiveAuto lets the toolbar pick the active tool.
func ActiveAuto() Active { return Active{} }

// ActiveNone requests no active tool for the gesture.
func ActiveNone() Active { return Active{none: true} }

// ActiveNamed activates the tool registered under name in the tools list.
func ActiveNamed(name string) Active { return Active{name: name} }

// ActiveBuilt activates an already-constructed tool instance.
func ActiveBuilt(t models.Tool) Active { return Active{tool: t} }

// ProcessActiveTools assigns the drag, scroll, and tap gesture slots on the
// toolbar. Named tools must be present in names (as returned by AddTools);
// an unknown name fails with a ConfigurationError naming the gesture.
func ProcessActiveTools(toolbar *models.Toolbar, names map[string]models.Tool, drag, scroll, tap Active) error {
	slots := []struct {
		gesture string
		spec    Active
		slot    *models.ActiveValue
	}{
		{"active_drag", drag, &toolbar.ActiveDrag},
		{"active_scroll", scroll, &toolbar.ActiveScroll},
		{"active_tap", tap, &toolbar.ActiveTap},
	}
	for _, s := range slots {
		resolved, err := s.spec.resolve(s.gesture, names)
		if err != nil {
			return err
		}
		*s.slot = resolved
	}
	return nil
}

func (a Active) resolve(gesture string, names map[string]models.Tool) (models.ActiveValue, error) {
	switch {
	case a.none:
		return models.ActiveValue{}, nil
	case a.tool != nil:
		return models.ActiveValue{Tool: a.tool}, nil
	case a.name != "":
		t, ok := names[a.name]
		if !ok {
			return models.ActiveValue{}, &ConfigurationError{
				Option: gesture,
				Value:  a.name,
				Reason: "not a tool name supplied in 'tools'",
			}
		}
		return models.ActiveValue{Tool: t}, nil
	default:
		return models.ActiveValue{Auto: true}, nil
	}
}
