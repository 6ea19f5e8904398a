package channel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Func converts one component from channel S to channel D.
type Func[S, D Type] func(S) D

// Policy pairs the narrowing function (S to D) used for reads with the
// widening function (D back to S) used for writes.
type Policy[S, D Type] struct {
	Narrow Func[S, D]
	Widen  Func[D, S]
}

// Reverse swaps the directions of p.
func (p Policy[S, D]) Reverse() Policy[D, S] {
	return Policy[D, S]{Narrow: p.Widen, Widen: p.Narrow}
}

// Default returns the plain numeric policy between S and D.
func Default[S, D Type]() Policy[S, D] {
	return Policy[S, D]{Narrow: Cast[S, D], Widen: Cast[D, S]}
}

// Cast converts v to D. Float to integer conversions truncate toward zero.
// Results that do not fit in D saturate: uint8 clamps to [0,255] and int32
// clamps to its range. NaN converts to zero for integer destinations.
func Cast[S, D Type](v S) D {
	switch KindOf[D]() {
	case Uint8:
		f := float64(v)
		if f != f || f <= 0 {
			return 0
		}
		if f >= math.MaxUint8 {
			return D(math.MaxUint8)
		}
		return D(v)
	case Int32:
		f := float64(v)
		if f != f {
			return 0
		}
		if f >= math.MaxInt32 {
			hi := int32(math.MaxInt32)
			return D(hi)
		}
		if f <= math.MinInt32 {
			lo := int32(math.MinInt32)
			return D(lo)
		}
		return D(v)
	default:
		return D(v)
	}
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
