package scripting

import (
	"context"
	"fmt"
	"math"

	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/observability"
)

// CompilePolicy builds a channel policy from a script defining
// narrow(v) and widen(v). Both functions are probed once with 0 so that
// scripts which throw fail here rather than on first use.
//
// Script results are coerced into the target channel with channel.Cast. A
// call that throws, or returns NaN, yields 0 and is logged at Warn.
func CompilePolicy[S, D channel.Type](ctx context.Context, script string, logger observability.Logger) (channel.Policy[S, D], error) {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	eng := NewEngine()
	if _, err := eng.Execute(ctx, script); err != nil {
		return channel.Policy[S, D]{}, fmt.Errorf("compile policy: %w", err)
	}
	narrow, err := eng.Func("narrow")
	if err != nil {
		return channel.Policy[S, D]{}, fmt.Errorf("compile policy: %w", err)
	}
	widen, err := eng.Func("widen")
	if err != nil {
		return channel.Policy[S, D]{}, fmt.Errorf("compile policy: %w", err)
	}
	for name, fn := range map[string]ScalarFunc{"narrow": narrow, "widen": widen} {
		if _, err := fn(0); err != nil {
			return channel.Policy[S, D]{}, fmt.Errorf("compile policy: probe %s: %w", name, err)
		}
	}

	return channel.Policy[S, D]{
		Narrow: scalar[S, D](narrow, "narrow", logger),
		Widen:  scalar[D, S](widen, "widen", logger),
	}, nil
}

func scalar[S, D channel.Type](fn ScalarFunc, name string, logger observability.Logger) channel.Func[S, D] {
	return func(v S) D {
		out, err := fn(float64(v))
		if err != nil {
			logger.Warn("scripted policy failed",
				observability.String("func", name),
				observability.Error("error", err))
			return 0
		}
		if math.IsNaN(out) {
			return 0
		}
		return channel.Cast[float64, D](out)
	}
}
