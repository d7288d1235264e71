package models

import (
	"slices"
)

// ColumnDataSource maps column names to equal-length data sequences. It is
// the backing store glyph dataspec properties refer to by column name.
type ColumnDataSource struct {
	Data map[string]any
}

// NewColumnDataSource returns an empty source.
func NewColumnDataSource() *ColumnDataSource {
	return &ColumnDataSource{Data: make(map[string]any)}
}

// Add stores data under name, replacing any existing column of that name.
func (s *ColumnDataSource) Add(name string, data any) {
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[name] = data
}

// Column returns the column stored under name.
func (s *ColumnDataSource) Column(name string) (any, bool) {
	data, ok := s.Data[name]
	return data, ok
}

// HasColumn reports whether a column named name exists.
func (s *ColumnDataSource) HasColumn(name string) bool {
	_, ok := s.Data[name]
	return ok
}

// ColumnNames returns the column names in sorted order.
func (s *ColumnDataSource) ColumnNames() []string {
	names := make([]string, 0, len(s.Data))
	for name := range s.Data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
