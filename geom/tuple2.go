package geom

import "github.com/wudi/geomkit/channel"

// Setter2 receives the components of a 2-tuple in their stored channel.
type Setter2 interface {
	SetValues(x, y channel.Value)
}

// SetterFunc2 adapts a function to Setter2.
type SetterFunc2 func(x, y channel.Value)

func (f SetterFunc2) SetValues(x, y channel.Value) { f(x, y) }

// Tuple2 is the read capability of a 2-component tuple.
type Tuple2[T channel.Type] interface {
	X() T
	Y() T
	Get(s Setter2)
}

// Settable2 is the write capability of a 2-component tuple.
type Settable2[T channel.Type] interface {
	SetX(v T)
	SetY(v T)
	Set(x, y T)
	SetTuple(t Tuple2[T])
}

type MutableTuple2[T channel.Type] interface {
	Tuple2[T]
	Settable2[T]
}

type Point2[T channel.Type] interface {
	Tuple2[T]
	PointRole()
}

type MutablePoint2[T channel.Type] interface {
	MutableTuple2[T]
	PointRole()
}

type Vector2[T channel.Type] interface {
	Tuple2[T]
	VectorRole()
}

type MutableVector2[T channel.Type] interface {
	MutableTuple2[T]
	VectorRole()
}

// Component2 returns component i of t.
func Component2[T channel.Type](t Tuple2[T], i int) (T, error) {
	switch i {
	case 0:
		return t.X(), nil
	case 1:
		return t.Y(), nil
	}
	var zero T
	return zero, indexError(i, 2)
}

func push2[T channel.Type](s Setter2, x, y T) {
	s.SetValues(channel.ValueOf(x), channel.ValueOf(y))
}

// Vec2 is a 2-component vector stored in channel T.
type Vec2[T channel.Type] [2]T

func (v Vec2[T]) X() T                { return v[0] }
func (v Vec2[T]) Y() T                { return v[1] }
func (v Vec2[T]) Get(s Setter2)       { push2(s, v[0], v[1]) }
func (v Vec2[T]) At(i int) (T, error) { return Component2[T](v, i) }
func (Vec2[T]) VectorRole()           {}

func (v *Vec2[T]) SetX(x T)             { v[0] = x }
func (v *Vec2[T]) SetY(y T)             { v[1] = y }
func (v *Vec2[T]) Set(x, y T)           { *v = Vec2[T]{x, y} }
func (v *Vec2[T]) SetTuple(t Tuple2[T]) { *v = Vec2[T]{t.X(), t.Y()} }

func (v *Vec2[T]) SetValues(x, y channel.Value) {
	*v = Vec2[T]{channel.As[T](x), channel.As[T](y)}
}

func (v *Vec2[T]) Capability() Capability {
	return CapabilityOf[T](2, RoleVector, ReadWrite)
}

// Pt2 is a 2-component point stored in channel T.
type Pt2[T channel.Type] [2]T

func (p Pt2[T]) X() T                { return p[0] }
func (p Pt2[T]) Y() T                { return p[1] }
func (p Pt2[T]) Get(s Setter2)       { push2(s, p[0], p[1]) }
func (p Pt2[T]) At(i int) (T, error) { return Component2[T](p, i) }
func (Pt2[T]) PointRole()            {}

func (p *Pt2[T]) SetX(x T)             { p[0] = x }
func (p *Pt2[T]) SetY(y T)             { p[1] = y }
func (p *Pt2[T]) Set(x, y T)           { *p = Pt2[T]{x, y} }
func (p *Pt2[T]) SetTuple(t Tuple2[T]) { *p = Pt2[T]{t.X(), t.Y()} }

func (p *Pt2[T]) SetValues(x, y channel.Value) {
	*p = Pt2[T]{channel.As[T](x), channel.As[T](y)}
}

func (p *Pt2[T]) Capability() Capability {
	return CapabilityOf[T](2, RolePoint, ReadWrite)
}
