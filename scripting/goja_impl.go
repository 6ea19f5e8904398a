package scripting

import (
	"context"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// GojaEngine is an Engine backed by a single goja runtime. A goja runtime is
// not safe for concurrent use, so every call holds mu.
type GojaEngine struct {
	mu sync.Mutex
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		return nil, unwrapInterrupt(err)
	}
	return val.Export(), nil
}

func (e *GojaEngine) Func(name string) (ScalarFunc, error) {
	e.mu.Lock()
	fn, ok := goja.AssertFunction(e.vm.Get(name))
	e.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFunction, name)
	}
	return func(v float64) (float64, error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		res, err := fn(goja.Undefined(), e.vm.ToValue(v))
		if err != nil {
			return 0, unwrapInterrupt(err)
		}
		return res.ToFloat(), nil
	}, nil
}

func unwrapInterrupt(err error) error {
	if interruptedErr, ok := err.(*goja.InterruptedError); ok {
		if cause := interruptedErr.Unwrap(); cause != nil {
			return cause
		}
		return context.Canceled
	}
	return err
}
