// Package testutil provides test helpers for bokeh (plot and source builders).
package testutil

import (
	"github.com/pbarfett/bokeh/models"
)

// NewTestPlot returns an empty plot with auto-fitting ranges and the given
// tools pre-installed on its toolbar.
func NewTestPlot(tools ...models.Tool) *models.Plot {
	p := &models.Plot{
		XRange: &models.DataRange1d{},
		YRange: &models.DataRange1d{},
	}
	p.Toolbar.Tools = append(p.Toolbar.Tools, tools...)
	return p
}

// NewTestSource returns a column data source pre-populated with columns.
func NewTestSource(columns map[string]any) *models.ColumnDataSource {
	s := models.NewColumnDataSource()
	for name, data := range columns {
		s.Add(name, data)
	}
	return s
}
