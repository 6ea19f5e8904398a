package adapt

import (
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// Tuple2 presents a geom.Tuple2[S] as a read-only geom.Tuple2[D].
type Tuple2[S, D channel.Type] struct {
	src    geom.Tuple2[S]
	narrow channel.Func[S, D]
}

func NewTuple2[S, D channel.Type](src geom.Tuple2[S]) *Tuple2[S, D] {
	return NewTuple2With(src, channel.Cast[S, D])
}

func NewTuple2With[S, D channel.Type](src geom.Tuple2[S], narrow channel.Func[S, D]) *Tuple2[S, D] {
	return &Tuple2[S, D]{src: src, narrow: narrow}
}

func (a *Tuple2[S, D]) X() D { return a.narrow(a.src.X()) }
func (a *Tuple2[S, D]) Y() D { return a.narrow(a.src.Y()) }

func (a *Tuple2[S, D]) Get(s geom.Setter2) { a.src.Get(s) }

func (a *Tuple2[S, D]) At(i int) (D, error) { return geom.Component2[D](a, i) }

// Source returns the wrapped tuple.
func (a *Tuple2[S, D]) Source() geom.Tuple2[S] { return a.src }

func (a *Tuple2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RoleTuple, geom.ReadOnly)
}

// MutableTuple2 presents a geom.MutableTuple2[S] as a geom.MutableTuple2[D].
// Writes are widened back to S and stored in the source.
type MutableTuple2[S, D channel.Type] struct {
	Tuple2[S, D]
	dst   geom.MutableTuple2[S]
	widen channel.Func[D, S]
	reg   *Registry
}

func NewMutableTuple2[S, D channel.Type](src geom.MutableTuple2[S]) *MutableTuple2[S, D] {
	return NewMutableTuple2With(src, channel.Default[S, D]())
}

func NewMutableTuple2With[S, D channel.Type](src geom.MutableTuple2[S], p channel.Policy[S, D]) *MutableTuple2[S, D] {
	return &MutableTuple2[S, D]{
		Tuple2: Tuple2[S, D]{src: src, narrow: p.Narrow},
		dst:    src,
		widen:  p.Widen,
	}
}

func (a *MutableTuple2[S, D]) SetX(v D) { a.dst.SetX(a.widen(v)) }
func (a *MutableTuple2[S, D]) SetY(v D) { a.dst.SetY(a.widen(v)) }

func (a *MutableTuple2[S, D]) Set(x, y D) {
	a.dst.Set(a.widen(x), a.widen(y))
}

func (a *MutableTuple2[S, D]) SetTuple(t geom.Tuple2[D]) {
	a.dst.SetTuple(view2[D, S](a.reg, t))
}

func (a *MutableTuple2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RoleTuple, geom.ReadWrite)
}

func view2[D, S channel.Type](r *Registry, t geom.Tuple2[D]) geom.Tuple2[S] {
	if r == nil {
		r = Default()
	}
	if v, err := Convert(r, t, Tuple2Of[S]()); err == nil {
		return v
	}
	return NewTuple2[D, S](t)
}

type Point2[S, D channel.Type] struct{ Tuple2[S, D] }

func NewPoint2[S, D channel.Type](src geom.Point2[S]) *Point2[S, D] {
	return NewPoint2With(src, channel.Cast[S, D])
}

func NewPoint2With[S, D channel.Type](src geom.Point2[S], narrow channel.Func[S, D]) *Point2[S, D] {
	return &Point2[S, D]{Tuple2[S, D]{src: src, narrow: narrow}}
}

func (*Point2[S, D]) PointRole() {}

func (a *Point2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RolePoint, geom.ReadOnly)
}

type MutablePoint2[S, D channel.Type] struct{ MutableTuple2[S, D] }

func NewMutablePoint2[S, D channel.Type](src geom.MutablePoint2[S]) *MutablePoint2[S, D] {
	return NewMutablePoint2With(src, channel.Default[S, D]())
}

func NewMutablePoint2With[S, D channel.Type](src geom.MutablePoint2[S], p channel.Policy[S, D]) *MutablePoint2[S, D] {
	return &MutablePoint2[S, D]{*NewMutableTuple2With[S, D](src, p)}
}

func (*MutablePoint2[S, D]) PointRole() {}

func (a *MutablePoint2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RolePoint, geom.ReadWrite)
}

type Vector2[S, D channel.Type] struct{ Tuple2[S, D] }

func NewVector2[S, D channel.Type](src geom.Vector2[S]) *Vector2[S, D] {
	return NewVector2With(src, channel.Cast[S, D])
}

func NewVector2With[S, D channel.Type](src geom.Vector2[S], narrow channel.Func[S, D]) *Vector2[S, D] {
	return &Vector2[S, D]{Tuple2[S, D]{src: src, narrow: narrow}}
}

func (*Vector2[S, D]) VectorRole() {}

func (a *Vector2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RoleVector, geom.ReadOnly)
}

type MutableVector2[S, D channel.Type] struct{ MutableTuple2[S, D] }

func NewMutableVector2[S, D channel.Type](src geom.MutableVector2[S]) *MutableVector2[S, D] {
	return NewMutableVector2With(src, channel.Default[S, D]())
}

func NewMutableVector2With[S, D channel.Type](src geom.MutableVector2[S], p channel.Policy[S, D]) *MutableVector2[S, D] {
	return &MutableVector2[S, D]{*NewMutableTuple2With[S, D](src, p)}
}

func (*MutableVector2[S, D]) VectorRole() {}

func (a *MutableVector2[S, D]) Capability() geom.Capability {
	return geom.CapabilityOf[D](2, geom.RoleVector, geom.ReadWrite)
}
