package bokeh

import "github.com/charmbracelet/log"

// logger receives the package's non-fatal warnings (repeated tools,
// deprecated source and literal combinations).
var logger = log.Default()

// SetLogger routes the package's warnings to l. Passing nil restores the
// default logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}
