package bokeh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbarfett/bokeh/models"
	"github.com/pbarfett/bokeh/testutil"
)

func TestRangeOf(t *testing.T) {
	day := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  any
		expect models.Range
	}{
		{"nil is auto-fitting", nil, &models.DataRange1d{}},
		{"factors", []string{"a", "b", "c"}, &models.FactorRange{Factors: []string{"a", "b", "c"}}},
		{"factors via any", []any{"a", "b"}, &models.FactorRange{Factors: []string{"a", "b"}}},
		{"numeric pair", []float64{0, 10}, &models.Range1d{Start: 0.0, End: 10.0}},
		{"int pair", []int{-5, 5}, &models.Range1d{Start: -5.0, End: 5.0}},
		{"array pair", [2]float64{1.5, 2.5}, &models.Range1d{Start: 1.5, End: 2.5}},
		{"mixed numeric pair", []any{0, 10.5}, &models.Range1d{Start: 0.0, End: 10.5}},
		{"time pair", []time.Time{day, day.AddDate(0, 1, 0)}, &models.Range1d{Start: day, End: day.AddDate(0, 1, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RangeOf(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestRangeOf_Passthrough(t *testing.T) {
	rng := &models.FactorRange{Factors: []string{"x"}}
	got, err := RangeOf(rng)
	require.NoError(t, err)
	assert.Same(t, rng, got)
}

func TestRangeOf_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"scalar", 42},
		{"map", map[string]float64{"start": 0}},
		{"three numbers", []float64{0, 5, 10}},
		{"one number", []float64{0}},
		{"mixed strings and numbers", []any{"a", 1}},
		{"empty any slice", []any{}},
		{"pair of bools", []bool{true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RangeOf(tt.input)
			require.Error(t, err)
			var re *InvalidRangeError
			require.ErrorAs(t, err, &re)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestNewAxis(t *testing.T) {
	day := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		axisType AxisType
		rng      models.Range
		expect   any
	}{
		{"none", AxisNone, &models.DataRange1d{}, nil},
		{"linear", AxisLinear, &models.DataRange1d{}, &models.LinearAxis{}},
		{"log", AxisLog, &models.DataRange1d{}, &models.LogAxis{}},
		{"datetime", AxisDatetime, &models.DataRange1d{}, &models.DatetimeAxis{}},
		{"auto with factors", AxisAuto, &models.FactorRange{Factors: []string{"a"}}, &models.CategoricalAxis{}},
		{"auto with times", AxisAuto, &models.Range1d{Start: day, End: day}, &models.DatetimeAxis{}},
		{"auto with numbers", AxisAuto, &models.Range1d{Start: 0.0, End: 1.0}, &models.LinearAxis{}},
		{"auto with data range", AxisAuto, &models.DataRange1d{}, &models.LinearAxis{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, err := NewAxis(tt.axisType, tt.rng)
			require.NoError(t, err)
			if tt.expect == nil {
				assert.Nil(t, axis)
				return
			}
			assert.IsType(t, tt.expect, axis)
		})
	}
}

func TestNewAxis_Invalid(t *testing.T) {
	_, err := NewAxis("diagonal", &models.DataRange1d{})
	require.Error(t, err)
	var ae *InvalidAxisTypeError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AxisType("diagonal"), ae.Type)
}

func TestProcessAxisAndGrid(t *testing.T) {
	plot := testutil.NewTestPlot()
	rng := &models.Range1d{Start: 0.0, End: 10.0}

	require.NoError(t, ProcessAxisAndGrid(plot, AxisLinear, models.PlaceBelow, MinorTicksAuto, "time", rng, 0))

	require.Len(t, plot.Below, 1)
	axis, ok := plot.Below[0].(*models.LinearAxis)
	require.True(t, ok)
	assert.Equal(t, "time", axis.AxisLabel)
	ticker, ok := axis.Ticker().(*models.BasicTicker)
	require.True(t, ok)
	assert.Equal(t, 5, ticker.NumMinorTicks)

	require.Len(t, plot.Renderers, 1)
	grid, ok := plot.Renderers[0].(*models.Grid)
	require.True(t, ok)
	assert.Equal(t, 0, grid.Dimension)
	assert.Same(t, axis.Ticker(), grid.Ticker)
	assert.Empty(t, plot.XMapperType)
}

func TestProcessAxisAndGrid_Log(t *testing.T) {
	plot := testutil.NewTestPlot()
	rng := &models.Range1d{Start: 1.0, End: 1000.0}

	require.NoError(t, ProcessAxisAndGrid(plot, AxisLog, models.PlaceLeft, MinorTicksAuto, "", rng, 1))

	assert.Equal(t, "log", plot.YMapperType)
	assert.Empty(t, plot.XMapperType)
	require.Len(t, plot.Left, 1)
	axis := plot.Left[0].(*models.LogAxis)
	assert.Equal(t, 10, axis.Ticker().(*models.LogTicker).NumMinorTicks)
}

func TestProcessAxisAndGrid_MinorTicks(t *testing.T) {
	tests := []struct {
		name   string
		ticks  MinorTicks
		expect int
		err    bool
	}{
		{"auto", MinorTicksAuto, 5, false},
		{"none", MinorTicksNone, 0, false},
		{"explicit", MinorTicks(7), 7, false},
		{"one is invalid", MinorTicks(1), 0, true},
		{"negative is invalid", MinorTicks(-3), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plot := testutil.NewTestPlot()
			err := ProcessAxisAndGrid(plot, AxisLinear, models.PlaceBelow, tt.ticks, "", &models.DataRange1d{}, 0)
			if tt.err {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			axis := plot.Below[0].(*models.LinearAxis)
			assert.Equal(t, tt.expect, axis.Ticker().(*models.BasicTicker).NumMinorTicks)
		})
	}
}

func TestProcessAxisAndGrid_CategoricalSkipsMinorTicks(t *testing.T) {
	plot := testutil.NewTestPlot()
	rng := &models.FactorRange{Factors: []string{"a", "b"}}

	// MinorTicks(1) would be invalid for a continuous ticker; categorical
	// axes have none, so the value is never consulted.
	require.NoError(t, ProcessAxisAndGrid(plot, AxisAuto, models.PlaceBelow, MinorTicks(1), "", rng, 0))
	require.Len(t, plot.Below, 1)
	assert.IsType(t, &models.CategoricalAxis{}, plot.Below[0])
}

func TestProcessAxisAndGrid_NoAxis(t *testing.T) {
	plot := testutil.NewTestPlot()
	require.NoError(t, ProcessAxisAndGrid(plot, AxisNone, models.PlaceBelow, MinorTicksAuto, "", &models.DataRange1d{}, 0))
	assert.Empty(t, plot.Below)
	assert.Empty(t, plot.Renderers)
}

func TestProcessAxisAndGrid_GridOnly(t *testing.T) {
	plot := testutil.NewTestPlot()
	require.NoError(t, ProcessAxisAndGrid(plot, AxisLinear, "", MinorTicksAuto, "", &models.DataRange1d{}, 1))
	assert.Empty(t, plot.Below)
	assert.Empty(t, plot.Above)
	assert.Empty(t, plot.Left)
	assert.Empty(t, plot.Right)
	require.Len(t, plot.Renderers, 1)
	assert.IsType(t, &models.Grid{}, plot.Renderers[0])
}

func TestProcessAxisAndGrid_BadDimension(t *testing.T) {
	plot := testutil.NewTestPlot()
	err := ProcessAxisAndGrid(plot, AxisLinear, models.PlaceBelow, MinorTicksAuto, "", &models.DataRange1d{}, 2)
	require.Error(t, err)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "dimension", ce.Option)
}
