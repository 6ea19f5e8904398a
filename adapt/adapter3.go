package adapt

import (
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// Tuple3 presents a geom.Tuple3[S] as a read-only geom.Tuple3[D]. Every
// accessor converts the current source component; nothing is cached.
type Tuple3[S, D channel.Type] struct {
	src    geom.Tuple3[S]
	narrow channel.Func[S, D]
}

// NewTuple3 wraps src with the default numeric policy.
func NewTuple3[S, D channel.Type](src geom.Tuple3[S]) *Tuple3[S, D] {
	return NewTuple3With(src, channel.Cast[S, D])
}

func NewTuple3With[S, D channel.Type](src geom.Tuple3[S], narrow channel.Func[S, D]) *Tuple3[S, D] {
	return &Tuple3[S, D]{src: src, narrow: narrow}
}

func (a *Tuple3[S, D]) X() D { return a.narrow(a.src.X()) }
func (a *Tuple3[S, D]) Y() D { return a.narrow(a.src.Y()) }
func (a *Tuple3[S, D]) Z() D { return a.narrow(a.src.Z()) }

// Get hands s to the source, which pushes its own unconverted components.
func (a *Tuple3[S, D]) Get(s geom.Setter3) { a.src.Get(s) }

func (a *Tuple3[S, D]) At(i int) (D, error) { return geom.Component3[D](a, i) }

// Source returns the wrapped tuple.
func (a *Tuple3[S, D]) Source() geom.Tuple3[S] { return a.src }

func (a *Tuple3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleTuple, geom.ReadOnly)
}

// MutableTuple3 presents a geom.MutableTuple3[S] as a geom.MutableTuple3[D].
// Writes are widened back to S and stored in the source.
type MutableTuple3[S, D channel.Type] struct {
	Tuple3[S, D]
	dst   geom.MutableTuple3[S]
	widen channel.Func[D, S]
	reg   *Registry
}

// NewMutableTuple3 wraps src with the default numeric policy.
func NewMutableTuple3[S, D channel.Type](src geom.MutableTuple3[S]) *MutableTuple3[S, D] {
	return NewMutableTuple3With(src, channel.Default[S, D]())
}

func NewMutableTuple3With[S, D channel.Type](src geom.MutableTuple3[S], p channel.Policy[S, D]) *MutableTuple3[S, D] {
	return &MutableTuple3[S, D]{
		Tuple3: Tuple3[S, D]{src: src, narrow: p.Narrow},
		dst:    src,
		widen:  p.Widen,
	}
}

func (a *MutableTuple3[S, D]) SetX(v D) { a.dst.SetX(a.widen(v)) }
func (a *MutableTuple3[S, D]) SetY(v D) { a.dst.SetY(a.widen(v)) }
func (a *MutableTuple3[S, D]) SetZ(v D) { a.dst.SetZ(a.widen(v)) }

func (a *MutableTuple3[S, D]) Set(x, y, z D) {
	a.dst.Set(a.widen(x), a.widen(y), a.widen(z))
}

// SetTuple stores t through a source-channel view of t, not through the
// adapter's own widen function.
func (a *MutableTuple3[S, D]) SetTuple(t geom.Tuple3[D]) {
	a.dst.SetTuple(view3[D, S](a.reg, t))
}

func (a *MutableTuple3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleTuple, geom.ReadWrite)
}

func view3[D, S channel.Type](r *Registry, t geom.Tuple3[D]) geom.Tuple3[S] {
	if r == nil {
		r = Default()
	}
	if v, err := Convert(r, t, Tuple3Of[S]()); err == nil {
		return v
	}
	return NewTuple3[D, S](t)
}

type Point3[S, D channel.Type] struct{ Tuple3[S, D] }

func NewPoint3[S, D channel.Type](src geom.Point3[S]) *Point3[S, D] {
	return NewPoint3With(src, channel.Cast[S, D])
}

func NewPoint3With[S, D channel.Type](src geom.Point3[S], narrow channel.Func[S, D]) *Point3[S, D] {
	return &Point3[S, D]{Tuple3[S, D]{src: src, narrow: narrow}}
}

func (*Point3[S, D]) PointRole() {}

func (a *Point3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RolePoint, geom.ReadOnly)
}

type MutablePoint3[S, D channel.Type] struct{ MutableTuple3[S, D] }

func NewMutablePoint3[S, D channel.Type](src geom.MutablePoint3[S]) *MutablePoint3[S, D] {
	return NewMutablePoint3With(src, channel.Default[S, D]())
}

func NewMutablePoint3With[S, D channel.Type](src geom.MutablePoint3[S], p channel.Policy[S, D]) *MutablePoint3[S, D] {
	return &MutablePoint3[S, D]{*NewMutableTuple3With[S, D](src, p)}
}

func (*MutablePoint3[S, D]) PointRole() {}

func (a *MutablePoint3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RolePoint, geom.ReadWrite)
}

type Vector3[S, D channel.Type] struct{ Tuple3[S, D] }

func NewVector3[S, D channel.Type](src geom.Vector3[S]) *Vector3[S, D] {
	return NewVector3With(src, channel.Cast[S, D])
}

func NewVector3With[S, D channel.Type](src geom.Vector3[S], narrow channel.Func[S, D]) *Vector3[S, D] {
	return &Vector3[S, D]{Tuple3[S, D]{src: src, narrow: narrow}}
}

func (*Vector3[S, D]) VectorRole() {}

func (a *Vector3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleVector, geom.ReadOnly)
}

type MutableVector3[S, D channel.Type] struct{ MutableTuple3[S, D] }

func NewMutableVector3[S, D channel.Type](src geom.MutableVector3[S]) *MutableVector3[S, D] {
	return NewMutableVector3With(src, channel.Default[S, D]())
}

func NewMutableVector3With[S, D channel.Type](src geom.MutableVector3[S], p channel.Policy[S, D]) *MutableVector3[S, D] {
	return &MutableVector3[S, D]{*NewMutableTuple3With[S, D](src, p)}
}

func (*MutableVector3[S, D]) VectorRole() {}

func (a *MutableVector3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleVector, geom.ReadWrite)
}

// Color3 presents an RGB color in another channel. Combined with
// channel.ColorPolicy it scales intensities instead of truncating them.
type Color3[S, D channel.Type] struct{ Tuple3[S, D] }

func NewColor3[S, D channel.Type](src geom.Color3[S]) *Color3[S, D] {
	return NewColor3With(src, channel.Cast[S, D])
}

func NewColor3With[S, D channel.Type](src geom.Color3[S], narrow channel.Func[S, D]) *Color3[S, D] {
	return &Color3[S, D]{Tuple3[S, D]{src: src, narrow: narrow}}
}

func (*Color3[S, D]) ColorRole() {}

func (a *Color3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleColor, geom.ReadOnly)
}

type MutableColor3[S, D channel.Type] struct{ MutableTuple3[S, D] }

func NewMutableColor3[S, D channel.Type](src geom.MutableColor3[S]) *MutableColor3[S, D] {
	return NewMutableColor3With(src, channel.Default[S, D]())
}

func NewMutableColor3With[S, D channel.Type](src geom.MutableColor3[S], p channel.Policy[S, D]) *MutableColor3[S, D] {
	return &MutableColor3[S, D]{*NewMutableTuple3With[S, D](src, p)}
}

func (*MutableColor3[S, D]) ColorRole() {}

func (a *MutableColor3[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](3, geom.RoleColor, geom.ReadWrite)
}
