package interop

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// Fixed26_6 is a mutable int32 point backed by a fixed.Point26_6. Its
// components are raw 26.6 values: 64 units per pixel.
type Fixed26_6 struct {
	p *fixed.Point26_6
}

// FixedPoint wraps p.
func FixedPoint(p *fixed.Point26_6) Fixed26_6 { return Fixed26_6{p: p} }

func (f Fixed26_6) X() int32 { return int32(f.p.X) }
func (f Fixed26_6) Y() int32 { return int32(f.p.Y) }

func (f Fixed26_6) Get(s geom.Setter2) {
	s.SetValues(channel.ValueOf(int32(f.p.X)), channel.ValueOf(int32(f.p.Y)))
}

func (f Fixed26_6) SetX(v int32)   { f.p.X = fixed.Int26_6(v) }
func (f Fixed26_6) SetY(v int32)   { f.p.Y = fixed.Int26_6(v) }
func (f Fixed26_6) Set(x, y int32) { f.p.X, f.p.Y = fixed.Int26_6(x), fixed.Int26_6(y) }

func (f Fixed26_6) SetTuple(t geom.Tuple2[int32]) { f.Set(t.X(), t.Y()) }

func (Fixed26_6) PointRole() {}

func (Fixed26_6) Capability() geom.Capability {
	return geom.CapabilityOf[int32](2, geom.RolePoint, geom.ReadWrite)
}

// FixedPolicy converts raw 26.6 units to pixels and back, rounding to the
// nearest 1/64 on writes.
func FixedPolicy() channel.Policy[int32, float64] {
	return channel.Policy[int32, float64]{
		Narrow: func(v int32) float64 { return float64(v) / 64 },
		Widen: func(v float64) int32 {
			return channel.Cast[float64, int32](math.Round(v * 64))
		},
	}
}

// PixelPoint views p as a float64 point measured in pixels.
func PixelPoint(p *fixed.Point26_6) *adapt.MutablePoint2[int32, float64] {
	return adapt.NewMutablePoint2With[int32, float64](FixedPoint(p), FixedPolicy())
}
