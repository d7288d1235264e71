package models

// Range is the domain mapped onto a plot axis.
type Range interface {
	isRange()
}

// DataRange1d is an auto-fitting range that follows the extent of the
// rendered data. Names optionally restricts the fit to renderers with
// matching names.
type DataRange1d struct {
	Names []string
}

func (*DataRange1d) isRange() {}

// Range1d is a fixed range. Start and End hold numeric values or time.Time
// for datetime axes.
type Range1d struct {
	Start any
	End   any
}

func (*Range1d) isRange() {}

// FactorRange is a categorical range over an ordered list of factors.
type FactorRange struct {
	Factors []string
}

func (*FactorRange) isRange() {}
