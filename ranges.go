package bokeh

import (
	"reflect"
	"time"

	"github.com/pbarfett/bokeh/models"
)

// AxisType selects the axis flavour for one plot dimension.
type AxisType string

const (
	// AxisNone suppresses the axis entirely.
	AxisNone AxisType = ""
	// AxisAuto infers the flavour from the dimension's range.
	AxisAuto     AxisType = "auto"
	AxisLinear   AxisType = "linear"
	AxisLog      AxisType = "log"
	AxisDatetime AxisType = "datetime"
)

// RangeOf converts a user-supplied range specification into a Range:
// nil yields an auto-fitting DataRange1d, an existing Range passes through,
// a sequence of strings becomes a FactorRange over those factors, and a
// two-element numeric or time pair becomes a Range1d. Anything else fails
// with an InvalidRangeError.
func RangeOf(input any) (models.Range, error) {
	if input == nil {
		return &models.DataRange1d{}, nil
	}
	if r, ok := input.(models.Range); ok {
		return r, nil
	}

	rv := reflect.ValueOf(input)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		if factors, ok := stringFactors(rv); ok {
			return &models.FactorRange{Factors: factors}, nil
		}
		if rv.Len() == 2 {
			start, ok1 := rangeBound(rv.Index(0))
			end, ok2 := rangeBound(rv.Index(1))
			if ok1 && ok2 {
				return &models.Range1d{Start: start, End: end}, nil
			}
		}
	}
	return nil, &InvalidRangeError{Input: input}
}

// stringFactors extracts categorical factors from a sequence whose elements
// are all strings.
func stringFactors(rv reflect.Value) ([]string, bool) {
	if rv.Type().Elem().Kind() == reflect.String {
		factors := make([]string, rv.Len())
		for i := range factors {
			factors[i] = rv.Index(i).String()
		}
		return factors, true
	}
	if rv.Len() == 0 {
		return nil, false
	}
	factors := make([]string, rv.Len())
	for i := range factors {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.String {
			return nil, false
		}
		factors[i] = elem.String()
	}
	return factors, true
}

// rangeBound converts a sequence element into a Range1d bound: numeric
// values become float64, time values stay time.Time.
func rangeBound(elem reflect.Value) (any, bool) {
	for elem.Kind() == reflect.Interface {
		elem = elem.Elem()
	}
	if !elem.IsValid() {
		return nil, false
	}
	if t, ok := elem.Interface().(time.Time); ok {
		return t, true
	}
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(elem.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(elem.Uint()), true
	case reflect.Float32, reflect.Float64:
		return elem.Float(), true
	}
	return nil, false
}

// NewAxis returns the axis variant for axisType, probing rng when the type
// is AxisAuto: a FactorRange maps to a categorical axis, a time-valued
// Range1d to a datetime axis, everything else to a linear axis. AxisNone
// yields a nil axis.
func NewAxis(axisType AxisType, rng models.Range) (models.Axis, error) {
	switch axisType {
	case AxisNone:
		return nil, nil
	case AxisLinear:
		return models.NewLinearAxis(), nil
	case AxisLog:
		return models.NewLogAxis(), nil
	case AxisDatetime:
		return models.NewDatetimeAxis(), nil
	case AxisAuto:
		switch r := rng.(type) {
		case *models.FactorRange:
			return models.NewCategoricalAxis(), nil
		case *models.Range1d:
			if _, ok := r.Start.(time.Time); ok {
				return models.NewDatetimeAxis(), nil
			}
		}
		return models.NewLinearAxis(), nil
	}
	return nil, &InvalidAxisTypeError{Type: axisType}
}

// MinorTicks specifies the minor tick count for an axis.
type MinorTicks int

const (
	// MinorTicksAuto picks 10 minor ticks for log axes, 5 otherwise.
	MinorTicksAuto MinorTicks = -1
	// MinorTicksNone disables minor ticks.
	MinorTicksNone MinorTicks = 0
)

// minorTickCount resolves a MinorTicks spec for the given axis. Explicit
// counts must be greater than 1.
func minorTickCount(axis models.Axis, n MinorTicks) (int, error) {
	switch {
	case n == MinorTicksAuto:
		if _, ok := axis.(*models.LogAxis); ok {
			return 10, nil
		}
		return 5, nil
	case n == MinorTicksNone:
		return 0, nil
	case n > 1:
		return int(n), nil
	}
	return 0, &ConfigurationError{Option: "minor_ticks", Value: int(n), Reason: "must be greater than 1"}
}

// ProcessAxisAndGrid builds the axis and grid for one plot dimension and
// attaches them: the grid joins the plot's renderers, the axis is placed on
// the given panel (or discarded when location is empty, keeping only its
// grid). A log axis additionally records the "log" mapper-type hint on the
// plot. dim is 0 for x and 1 for y.
func ProcessAxisAndGrid(plot *models.Plot, axisType AxisType, location models.Place, ticks MinorTicks, axisLabel string, rng models.Range, dim int) error {
	if dim != 0 && dim != 1 {
		return &ConfigurationError{Option: "dimension", Value: dim, Reason: "must be 0 or 1"}
	}
	axis, err := NewAxis(axisType, rng)
	if err != nil {
		return err
	}
	if axis == nil {
		return nil
	}

	if _, ok := axis.(*models.LogAxis); ok {
		if dim == 0 {
			plot.XMapperType = "log"
		} else {
			plot.YMapperType = "log"
		}
	}
	if ct, ok := axis.Ticker().(models.ContinuousTicker); ok {
		n, err := minorTickCount(axis, ticks)
		if err != nil {
			return err
		}
		ct.SetNumMinorTicks(n)
	}
	if axisLabel != "" {
		axis.SetAxisLabel(axisLabel)
	}

	grid := &models.Grid{Dimension: dim, Ticker: axis.Ticker()}
	plot.Renderers = append(plot.Renderers, grid)

	if location != "" {
		return plot.AddLayout(axis, location)
	}
	return nil
}
