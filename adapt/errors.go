package adapt

import (
	"errors"
	"fmt"

	"github.com/wudi/geomkit/geom"
)

var (
	// ErrNoConversion is returned when no registered adapter turns the
	// source into the requested capability.
	ErrNoConversion = errors.New("adapt: no conversion available")
	ErrNilSource    = errors.New("adapt: nil source")
	// ErrBadDescriptor reports a descriptor whose constructor produced a
	// value that does not implement its declared target.
	ErrBadDescriptor = errors.New("adapt: descriptor built wrong type")
)

// ConversionError names the source and target of a failed conversion.
type ConversionError struct {
	Source string
	Target geom.Capability
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v: from %s to %s", ErrNoConversion, e.Source, e.Target)
}

func (e *ConversionError) Unwrap() error { return ErrNoConversion }

func describe(v any) string {
	if d, ok := v.(geom.Describer); ok {
		return fmt.Sprintf("%T (%s)", v, d.Capability())
	}
	return fmt.Sprintf("%T", v)
}
