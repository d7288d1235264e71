package bokeh

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for bokeh. Use errors.Is to check.
var (
	ErrUnknownTool     = errors.New("unknown tool name")
	ErrConfiguration   = errors.New("invalid configuration")
	ErrInvalidRange    = errors.New("invalid range input")
	ErrInvalidAxisType = errors.New("invalid axis type")
)

// UnknownToolError reports a tool name that did not resolve against the
// registry. Suggestions holds the closest matching registry keys when any
// are close (Similar true), otherwise the full sorted key set.
type UnknownToolError struct {
	Name        string
	Suggestions []string
	Similar     bool
}

func (e *UnknownToolError) Error() string {
	kind := "possible"
	if e.Similar {
		kind = "similar"
	}
	return fmt.Sprintf("unexpected tool name %q, %s tools are %s", e.Name, kind, niceJoin(e.Suggestions))
}

// Unwrap supports errors.Is(err, ErrUnknownTool).
func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// ConfigurationError reports a conflicting or malformed option combination.
// Option names the offending option or gesture (e.g. "active_drag").
type ConfigurationError struct {
	Option string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid configuration for %q", e.Option)
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap supports errors.Is(err, ErrConfiguration).
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvalidRangeError reports a range specification of an unsupported shape.
type InvalidRangeError struct {
	Input any
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("unrecognized range input: %v", e.Input)
}

// Unwrap supports errors.Is(err, ErrInvalidRange).
func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// InvalidAxisTypeError reports an unrecognized axis-type token.
type InvalidAxisTypeError struct {
	Type AxisType
}

func (e *InvalidAxisTypeError) Error() string {
	return fmt.Sprintf("unrecognized axis type: %q", string(e.Type))
}

// Unwrap supports errors.Is(err, ErrInvalidAxisType).
func (e *InvalidAxisTypeError) Unwrap() error { return ErrInvalidAxisType }

// IsConfigurationError returns true if err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsUnknownToolError returns true if err is or wraps an UnknownToolError.
func IsUnknownToolError(err error) bool {
	var ue *UnknownToolError
	return errors.As(err, &ue)
}

// niceJoin renders a human-readable list: "a, b or c".
func niceJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
