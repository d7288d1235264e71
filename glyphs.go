package bokeh

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/pbarfett/bokeh/models"
)

// PropertySet reports which properties a glyph class declares and how they
// are classified.
type PropertySet interface {
	// Properties returns the declared property names in declaration order.
	Properties() []string
	// HasProperty reports whether the class declares name.
	HasProperty(name string) bool
	// IsDataSpec reports whether name is a data-bound property.
	IsDataSpec(name string) bool
	// IsColorSpec reports whether name is a colour-valued dataspec.
	IsColorSpec(name string) bool
}

// GlyphClass describes a glyph type to the glue layer: the properties it
// declares, which of them are dataspecs and colorspecs, and how to
// construct an instance from a property map. One set of struct tags on the
// glyph type drives all three.
type GlyphClass[T models.Glyph] struct {
	typeName   string
	props      []string
	fields     map[string]int
	dataspecs  map[string]bool
	colorspecs map[string]bool
}

// NewGlyphClass reflects T's json and jsonschema tags into a GlyphClass.
// Dataspecs carry a `jsonschema_extras:"dataspec=true"` tag, colorspecs
// additionally `colorspec=true`.
func NewGlyphClass[T models.Glyph]() (*GlyphClass[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("glyph class must be a struct type, got %s", rt.Kind())
	}

	var zero T
	reflector := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	schema := reflector.Reflect(&zero)

	c := &GlyphClass[T]{
		typeName:   zero.Type(),
		fields:     make(map[string]int),
		dataspecs:  make(map[string]bool),
		colorspecs: make(map[string]bool),
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		c.props = append(c.props, pair.Key)
		if extraBool(pair.Value, "dataspec") {
			c.dataspecs[pair.Key] = true
		}
		if extraBool(pair.Value, "colorspec") {
			c.colorspecs[pair.Key] = true
		}
	}
	for i := 0; i < rt.NumField(); i++ {
		name, ok := jsonName(rt.Field(i))
		if !ok {
			continue
		}
		c.fields[name] = i
	}
	return c, nil
}

// TypeName returns the glyph type name, e.g. "Circle".
func (c *GlyphClass[T]) TypeName() string { return c.typeName }

// Properties returns the declared property names in declaration order.
func (c *GlyphClass[T]) Properties() []string { return slices.Clone(c.props) }

// HasProperty reports whether the class declares name.
func (c *GlyphClass[T]) HasProperty(name string) bool {
	_, ok := c.fields[name]
	return ok
}

// IsDataSpec reports whether name is a data-bound property.
func (c *GlyphClass[T]) IsDataSpec(name string) bool { return c.dataspecs[name] }

// IsColorSpec reports whether name is a colour-valued dataspec.
func (c *GlyphClass[T]) IsColorSpec(name string) bool { return c.colorspecs[name] }

// Build constructs a glyph from a property map. Every key must be a
// declared property; values must be assignable to the property's field.
func (c *GlyphClass[T]) Build(props map[string]any) (*T, error) {
	glyph := new(T)
	rv := reflect.ValueOf(glyph).Elem()
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		val := props[name]
		idx, ok := c.fields[name]
		if !ok {
			return nil, &ConfigurationError{
				Option: name,
				Reason: fmt.Sprintf("not a property of %s", c.typeName),
			}
		}
		if val == nil {
			continue
		}
		field := rv.Field(idx)
		vv := reflect.ValueOf(val)
		if !vv.Type().AssignableTo(field.Type()) {
			if !vv.Type().ConvertibleTo(field.Type()) {
				return nil, &ConfigurationError{
					Option: name,
					Value:  val,
					Reason: fmt.Sprintf("value of type %T is not valid for %s.%s", val, c.typeName, name),
				}
			}
			vv = vv.Convert(field.Type())
		}
		field.Set(vv)
	}
	return glyph, nil
}

// extraBool reads a boolean flag from a reflected property's extras.
func extraBool(s *jsonschema.Schema, key string) bool {
	v, ok := s.Extras[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	}
	return false
}

// jsonName returns the effective JSON property name of a struct field.
func jsonName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok || tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return "", false
	}
	return name, true
}

// LiftSequenceLiterals moves literal data sequences out of props and into
// source. A slice or array assigned to a declared dataspec becomes a source
// column under the property name, and the property is rebound to that
// column name. Strings, Value literals, maps, non-dataspec properties, and
// colour tuples on colorspecs pass through untouched. Nested sequences are
// rejected, except colour-tuple elements on colorspec properties. Lifting
// into a caller-supplied source logs a deprecation warning.
func LiftSequenceLiterals(class PropertySet, props map[string]any, source *models.ColumnDataSource, userSource bool) error {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		val := props[name]
		if val == nil || !class.IsDataSpec(name) {
			continue
		}
		if _, ok := val.(models.Value); ok {
			continue
		}
		rv := reflect.ValueOf(val)
		if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
			continue
		}
		if class.IsColorSpec(name) {
			if _, ok := colorTuple(val); ok {
				continue
			}
		}
		if err := checkColumnShape(class, name, rv); err != nil {
			return err
		}
		if userSource {
			logger.Warn("supplying a user-defined data source together with literal sequence values is deprecated", "property", name)
		}
		source.Add(name, val)
		props[name] = name
	}
	return nil
}

// checkColumnShape rejects nested sequences so every lifted column is 1-D.
// Colour tuples inside colorspec columns count as scalars.
func checkColumnShape(class PropertySet, name string, rv reflect.Value) error {
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if k := elem.Kind(); k != reflect.Slice && k != reflect.Array {
			continue
		}
		if class.IsColorSpec(name) {
			if _, ok := colorTuple(elem.Interface()); ok {
				continue
			}
		}
		return &ConfigurationError{Option: name, Reason: "columns need to be 1D"}
	}
	return nil
}

// nonselectionAlpha is the default alpha for the always-built nonselection
// glyph, dimmer than the main glyph.
const nonselectionAlpha = 0.1

// AddGlyph builds the glyph renderer bundle for one logical glyph call and
// attaches it to the plot: the main glyph, a nonselection variant (always),
// and selection and hover variants when any correspondingly prefixed
// properties were supplied. Literal data sequences are lifted into the
// backing source, the legend shortcut is resolved, and the finished
// renderer is registered with the plot's box-select tools.
func AddGlyph[T models.Glyph](plot *models.Plot, class *GlyphClass[T], args GlyphArgs) (*models.GlyphRenderer, error) {
	label, err := resolveLegend(args)
	if err != nil {
		return nil, err
	}

	userSource := args.Source != nil
	source := args.Source
	if source == nil {
		source = models.NewColumnDataSource()
	}

	props := maps.Clone(args.Properties)
	if props == nil {
		props = make(map[string]any)
	}
	if label != nil {
		props["label"] = label
	}

	defaultColor := DefaultColor(plot)
	mainCA := PopColorsAndAlpha(class, props, "", defaultColor, DefaultAlpha(plot))
	if err := LiftSequenceLiterals(class, props, source, userSource); err != nil {
		return nil, err
	}
	if err := LiftSequenceLiterals(class, mainCA, source, userSource); err != nil {
		return nil, err
	}

	// The nonselection variant is always built; selection and hover only
	// when the caller supplied matching prefixed properties.
	nonselCA := PopColorsAndAlpha(class, props, "nonselection_", defaultColor, nonselectionAlpha)
	var selCA, hoverCA map[string]any
	if hasPrefixedKey(props, "selection_") {
		selCA = PopColorsAndAlpha(class, props, "selection_", defaultColor, DefaultAlpha(plot))
	}
	if hasPrefixedKey(props, "hover_") {
		hoverCA = PopColorsAndAlpha(class, props, "hover_", defaultColor, DefaultAlpha(plot))
	}

	glyph, err := makeGlyph(class, props, mainCA)
	if err != nil {
		return nil, err
	}
	nonselGlyph, err := makeGlyph(class, props, nonselCA)
	if err != nil {
		return nil, err
	}
	selGlyph, err := makeGlyph(class, props, selCA)
	if err != nil {
		return nil, err
	}
	hoverGlyph, err := makeGlyph(class, props, hoverCA)
	if err != nil {
		return nil, err
	}

	level := args.Level
	if level == "" {
		level = models.LevelGlyph
	}
	renderer := &models.GlyphRenderer{
		DataSource:        source,
		Glyph:             glyph,
		NonselectionGlyph: nonselGlyph,
		SelectionGlyph:    selGlyph,
		HoverGlyph:        hoverGlyph,
		Name:              args.Name,
		XRangeName:        args.XRangeName,
		YRangeName:        args.YRangeName,
		Level:             level,
	}

	if label != nil {
		if err := updateLegend(plot, renderer); err != nil {
			return nil, err
		}
	}
	for _, tool := range plot.BoxSelectTools() {
		tool.Renderers = append(tool.Renderers, renderer)
	}
	plot.Renderers = append(plot.Renderers, renderer)
	return renderer, nil
}

// makeGlyph builds one glyph variant from the shared properties plus the
// variant's colour/alpha arguments. A nil extra means the variant is not
// wanted and yields a nil glyph.
func makeGlyph[T models.Glyph](class *GlyphClass[T], props, extra map[string]any) (models.Glyph, error) {
	if extra == nil {
		return nil, nil
	}
	merged := maps.Clone(props)
	maps.Copy(merged, extra)
	glyph, err := class.Build(merged)
	if err != nil {
		return nil, err
	}
	return any(glyph).(models.Glyph), nil
}

// resolveLegend turns the legend shortcut and explicit label into the
// glyph's label value. A legend string becomes a column reference when the
// caller's source declares that column, a literal value otherwise.
func resolveLegend(args GlyphArgs) (any, error) {
	if args.Legend != "" && args.Label != nil {
		return nil, &ConfigurationError{Option: "legend", Reason: "cannot set both 'legend' and 'label'"}
	}
	if args.Label != nil {
		return args.Label, nil
	}
	if args.Legend == "" {
		return nil, nil
	}
	if args.Source != nil && args.Source.HasColumn(args.Legend) {
		return args.Legend, nil
	}
	return models.Value{Value: args.Legend}, nil
}

// updateLegend appends the renderer to the plot's legend, creating one when
// the plot has none. More than one legend is ambiguous.
func updateLegend(plot *models.Plot, renderer *models.GlyphRenderer) error {
	legends := plot.Legends()
	var legend *models.Legend
	switch len(legends) {
	case 0:
		legend = &models.Legend{}
		if err := plot.AddLayout(legend, models.PlaceCenter); err != nil {
			return err
		}
	case 1:
		legend = legends[0]
	default:
		return &ConfigurationError{Option: "legend", Reason: "plot configured with more than one legend renderer"}
	}
	legend.Legends = append(legend.Legends, renderer)
	return nil
}

// hasPrefixedKey reports whether any key in props starts with prefix.
func hasPrefixedKey(props map[string]any, prefix string) bool {
	for key := range props {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
