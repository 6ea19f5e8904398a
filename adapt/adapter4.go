package adapt

import (
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// Tuple4 presents a geom.Tuple4[S] as a read-only geom.Tuple4[D].
type Tuple4[S, D channel.Type] struct {
	src    geom.Tuple4[S]
	narrow channel.Func[S, D]
}

// NewTuple4 wraps src with the default numeric policy.
func NewTuple4[S, D channel.Type](src geom.Tuple4[S]) *Tuple4[S, D] {
	return NewTuple4With(src, channel.Cast[S, D])
}

func NewTuple4With[S, D channel.Type](src geom.Tuple4[S], narrow channel.Func[S, D]) *Tuple4[S, D] {
	return &Tuple4[S, D]{src: src, narrow: narrow}
}

func (a *Tuple4[S, D]) X() D { return a.narrow(a.src.X()) }
func (a *Tuple4[S, D]) Y() D { return a.narrow(a.src.Y()) }
func (a *Tuple4[S, D]) Z() D { return a.narrow(a.src.Z()) }
func (a *Tuple4[S, D]) W() D { return a.narrow(a.src.W()) }

func (a *Tuple4[S, D]) Get(s geom.Setter4) { a.src.Get(s) }

func (a *Tuple4[S, D]) At(i int) (D, error) { return geom.Component4[D](a, i) }

// Source returns the wrapped tuple.
func (a *Tuple4[S, D]) Source() geom.Tuple4[S] { return a.src }

func (a *Tuple4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleTuple, geom.ReadOnly)
}

// MutableTuple4 presents a geom.MutableTuple4[S] as a geom.MutableTuple4[D].
// Writes are widened back to S and stored in the source.
type MutableTuple4[S, D channel.Type] struct {
	Tuple4[S, D]
	dst   geom.MutableTuple4[S]
	widen channel.Func[D, S]
	reg   *Registry
}

// NewMutableTuple4 wraps src with the default numeric policy.
func NewMutableTuple4[S, D channel.Type](src geom.MutableTuple4[S]) *MutableTuple4[S, D] {
	return NewMutableTuple4With(src, channel.Default[S, D]())
}

func NewMutableTuple4With[S, D channel.Type](src geom.MutableTuple4[S], p channel.Policy[S, D]) *MutableTuple4[S, D] {
	return &MutableTuple4[S, D]{
		Tuple4: Tuple4[S, D]{src: src, narrow: p.Narrow},
		dst:    src,
		widen:  p.Widen,
	}
}

func (a *MutableTuple4[S, D]) SetX(v D) { a.dst.SetX(a.widen(v)) }
func (a *MutableTuple4[S, D]) SetY(v D) { a.dst.SetY(a.widen(v)) }
func (a *MutableTuple4[S, D]) SetZ(v D) { a.dst.SetZ(a.widen(v)) }
func (a *MutableTuple4[S, D]) SetW(v D) { a.dst.SetW(a.widen(v)) }

func (a *MutableTuple4[S, D]) Set(x, y, z, w D) {
	a.dst.Set(a.widen(x), a.widen(y), a.widen(z), a.widen(w))
}

// SetTuple stores t through a source-channel view of t, not through the
// adapter's own widen function.
func (a *MutableTuple4[S, D]) SetTuple(t geom.Tuple4[D]) {
	a.dst.SetTuple(view4[D, S](a.reg, t))
}

func (a *MutableTuple4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleTuple, geom.ReadWrite)
}

func view4[D, S channel.Type](r *Registry, t geom.Tuple4[D]) geom.Tuple4[S] {
	if r == nil {
		r = Default()
	}
	if v, err := Convert(r, t, Tuple4Of[S]()); err == nil {
		return v
	}
	return NewTuple4[D, S](t)
}

type Point4[S, D channel.Type] struct{ Tuple4[S, D] }

func NewPoint4[S, D channel.Type](src geom.Point4[S]) *Point4[S, D] {
	return NewPoint4With(src, channel.Cast[S, D])
}

func NewPoint4With[S, D channel.Type](src geom.Point4[S], narrow channel.Func[S, D]) *Point4[S, D] {
	return &Point4[S, D]{Tuple4[S, D]{src: src, narrow: narrow}}
}

func (*Point4[S, D]) PointRole() {}

func (a *Point4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RolePoint, geom.ReadOnly)
}

type MutablePoint4[S, D channel.Type] struct{ MutableTuple4[S, D] }

func NewMutablePoint4[S, D channel.Type](src geom.MutablePoint4[S]) *MutablePoint4[S, D] {
	return NewMutablePoint4With(src, channel.Default[S, D]())
}

func NewMutablePoint4With[S, D channel.Type](src geom.MutablePoint4[S], p channel.Policy[S, D]) *MutablePoint4[S, D] {
	return &MutablePoint4[S, D]{*NewMutableTuple4With[S, D](src, p)}
}

func (*MutablePoint4[S, D]) PointRole() {}

func (a *MutablePoint4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RolePoint, geom.ReadWrite)
}

type Vector4[S, D channel.Type] struct{ Tuple4[S, D] }

func NewVector4[S, D channel.Type](src geom.Vector4[S]) *Vector4[S, D] {
	return NewVector4With(src, channel.Cast[S, D])
}

func NewVector4With[S, D channel.Type](src geom.Vector4[S], narrow channel.Func[S, D]) *Vector4[S, D] {
	return &Vector4[S, D]{Tuple4[S, D]{src: src, narrow: narrow}}
}

func (*Vector4[S, D]) VectorRole() {}

func (a *Vector4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleVector, geom.ReadOnly)
}

type MutableVector4[S, D channel.Type] struct{ MutableTuple4[S, D] }

func NewMutableVector4[S, D channel.Type](src geom.MutableVector4[S]) *MutableVector4[S, D] {
	return NewMutableVector4With(src, channel.Default[S, D]())
}

func NewMutableVector4With[S, D channel.Type](src geom.MutableVector4[S], p channel.Policy[S, D]) *MutableVector4[S, D] {
	return &MutableVector4[S, D]{*NewMutableTuple4With[S, D](src, p)}
}

func (*MutableVector4[S, D]) VectorRole() {}

func (a *MutableVector4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleVector, geom.ReadWrite)
}

// Color4 presents an RGBA color in another channel.
type Color4[S, D channel.Type] struct{ Tuple4[S, D] }

func NewColor4[S, D channel.Type](src geom.Color4[S]) *Color4[S, D] {
	return NewColor4With(src, channel.Cast[S, D])
}

func NewColor4With[S, D channel.Type](src geom.Color4[S], narrow channel.Func[S, D]) *Color4[S, D] {
	return &Color4[S, D]{Tuple4[S, D]{src: src, narrow: narrow}}
}

func (*Color4[S, D]) ColorRole() {}

func (a *Color4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleColor, geom.ReadOnly)
}

type MutableColor4[S, D channel.Type] struct{ MutableTuple4[S, D] }

func NewMutableColor4[S, D channel.Type](src geom.MutableColor4[S]) *MutableColor4[S, D] {
	return NewMutableColor4With(src, channel.Default[S, D]())
}

func NewMutableColor4With[S, D channel.Type](src geom.MutableColor4[S], p channel.Policy[S, D]) *MutableColor4[S, D] {
	return &MutableColor4[S, D]{*NewMutableTuple4With[S, D](src, p)}
}

func (*MutableColor4[S, D]) ColorRole() {}

func (a *MutableColor4[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](4, geom.RoleColor, geom.ReadWrite)
}
