// Package scripting runs channel conversions written in JavaScript.
package scripting

import (
	"context"
	"errors"
)

// ErrNotFunction is returned when a script does not define a function the
// caller asked for.
var ErrNotFunction = errors.New("scripting: not a function")

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute runs a script and returns the value of its last expression.
	Execute(ctx context.Context, script string) (interface{}, error)

	// Func returns a global function of one number defined by an earlier
	// Execute.
	Func(name string) (ScalarFunc, error)
}

// ScalarFunc is a scripted function of one number.
type ScalarFunc func(v float64) (float64, error)
