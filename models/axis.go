package models

// Ticker computes tick locations for an axis or grid.
type Ticker interface {
	isTicker()
}

// ContinuousTicker is implemented by tickers over continuous scales, which
// support subdividing major intervals into minor ticks.
type ContinuousTicker interface {
	Ticker
	SetNumMinorTicks(n int)
}

// BasicTicker picks nice round tick locations on a linear scale.
type BasicTicker struct {
	NumMinorTicks int
}

func (*BasicTicker) isTicker() {}
func (t *BasicTicker) SetNumMinorTicks(n int) { t.NumMinorTicks = n }

// LogTicker picks tick locations on a logarithmic scale.
type LogTicker struct {
	NumMinorTicks int
}

func (*LogTicker) isTicker() {}
func (t *LogTicker) SetNumMinorTicks(n int) { t.NumMinorTicks = n }

// DatetimeTicker picks tick locations at calendar-aware intervals.
type DatetimeTicker struct {
	NumMinorTicks int
}

func (*DatetimeTicker) isTicker() {}
func (t *DatetimeTicker) SetNumMinorTicks(n int) { t.NumMinorTicks = n }

// CategoricalTicker places one tick per factor. Not continuous.
type CategoricalTicker struct{}

func (*CategoricalTicker) isTicker() {}

// Axis is a guide renderer drawing one plot dimension's scale.
type Axis interface {
	Renderer
	Ticker() Ticker
	SetAxisLabel(label string)
}

// LinearAxis draws a continuous numeric scale.
type LinearAxis struct {
	AxisLabel string
	ticker    *BasicTicker
}

// NewLinearAxis returns a linear axis with a default basic ticker.
func NewLinearAxis() *LinearAxis {
	return &LinearAxis{ticker: &BasicTicker{NumMinorTicks: 5}}
}

func (*LinearAxis) isRenderer() {}
func (a *LinearAxis) Ticker() Ticker { return a.ticker }
func (a *LinearAxis) SetAxisLabel(label string) { a.AxisLabel = label }

// LogAxis draws a logarithmic scale.
type LogAxis struct {
	AxisLabel string
	ticker    *LogTicker
}

// NewLogAxis returns a log axis with a default log ticker.
func NewLogAxis() *LogAxis {
	return &LogAxis{ticker: &LogTicker{NumMinorTicks: 10}}
}

func (*LogAxis) isRenderer() {}
func (a *LogAxis) Ticker() Ticker { return a.ticker }
func (a *LogAxis) SetAxisLabel(label string) { a.AxisLabel = label }

// DatetimeAxis draws a time scale.
type DatetimeAxis struct {
	AxisLabel string
	ticker    *DatetimeTicker
}

// NewDatetimeAxis returns a datetime axis with a default datetime ticker.
func NewDatetimeAxis() *DatetimeAxis {
	return &DatetimeAxis{ticker: &DatetimeTicker{NumMinorTicks: 5}}
}

func (*DatetimeAxis) isRenderer() {}
func (a *DatetimeAxis) Ticker() Ticker { return a.ticker }
func (a *DatetimeAxis) SetAxisLabel(label string) { a.AxisLabel = label }

// CategoricalAxis draws one tick per factor of a FactorRange.
type CategoricalAxis struct {
	AxisLabel string
	ticker    *CategoricalTicker
}

// NewCategoricalAxis returns a categorical axis with a categorical ticker.
func NewCategoricalAxis() *CategoricalAxis {
	return &CategoricalAxis{ticker: &CategoricalTicker{}}
}

func (*CategoricalAxis) isRenderer() {}
func (a *CategoricalAxis) Ticker() Ticker { return a.ticker }
func (a *CategoricalAxis) SetAxisLabel(label string) { a.AxisLabel = label }

// Grid is a guide renderer drawing grid lines along one dimension,
// following the tick locations of its ticker.
type Grid struct {
	Dimension int // 0 for x, 1 for y
	Ticker    Ticker
}

func (*Grid) isRenderer() {}
