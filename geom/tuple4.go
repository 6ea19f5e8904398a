package geom

import "github.com/wudi/geomkit/channel"

// Setter4 receives the components of a 4-tuple in their stored channel.
type Setter4 interface {
	SetValues(x, y, z, w channel.Value)
}

// SetterFunc4 adapts a function to Setter4.
type SetterFunc4 func(x, y, z, w channel.Value)

func (f SetterFunc4) SetValues(x, y, z, w channel.Value) { f(x, y, z, w) }

// Tuple4 is the read capability of a 4-component tuple.
type Tuple4[T channel.Type] interface {
	X() T
	Y() T
	Z() T
	W() T
	Get(s Setter4)
}

// Settable4 is the write capability of a 4-component tuple.
type Settable4[T channel.Type] interface {
	SetX(v T)
	SetY(v T)
	SetZ(v T)
	SetW(v T)
	Set(x, y, z, w T)
	SetTuple(t Tuple4[T])
}

type MutableTuple4[T channel.Type] interface {
	Tuple4[T]
	Settable4[T]
}

type Point4[T channel.Type] interface {
	Tuple4[T]
	PointRole()
}

type MutablePoint4[T channel.Type] interface {
	MutableTuple4[T]
	PointRole()
}

type Vector4[T channel.Type] interface {
	Tuple4[T]
	VectorRole()
}

type MutableVector4[T channel.Type] interface {
	MutableTuple4[T]
	VectorRole()
}

// Color4 is an RGBA color; W is the alpha channel.
type Color4[T channel.Type] interface {
	Tuple4[T]
	ColorRole()
}

type MutableColor4[T channel.Type] interface {
	MutableTuple4[T]
	ColorRole()
}

// Component4 returns component i of t.
func Component4[T channel.Type](t Tuple4[T], i int) (T, error) {
	switch i {
	case 0:
		return t.X(), nil
	case 1:
		return t.Y(), nil
	case 2:
		return t.Z(), nil
	case 3:
		return t.W(), nil
	}
	var zero T
	return zero, indexError(i, 4)
}

func push4[T channel.Type](s Setter4, x, y, z, w T) {
	s.SetValues(channel.ValueOf(x), channel.ValueOf(y), channel.ValueOf(z), channel.ValueOf(w))
}

// Vec4 is a 4-component vector stored in channel T.
type Vec4[T channel.Type] [4]T

func (v Vec4[T]) X() T                { return v[0] }
func (v Vec4[T]) Y() T                { return v[1] }
func (v Vec4[T]) Z() T                { return v[2] }
func (v Vec4[T]) W() T                { return v[3] }
func (v Vec4[T]) Get(s Setter4)       { push4(s, v[0], v[1], v[2], v[3]) }
func (v Vec4[T]) At(i int) (T, error) { return Component4[T](v, i) }
func (Vec4[T]) VectorRole()           {}

func (v *Vec4[T]) SetX(x T)             { v[0] = x }
func (v *Vec4[T]) SetY(y T)             { v[1] = y }
func (v *Vec4[T]) SetZ(z T)             { v[2] = z }
func (v *Vec4[T]) SetW(w T)             { v[3] = w }
func (v *Vec4[T]) Set(x, y, z, w T)     { *v = Vec4[T]{x, y, z, w} }
func (v *Vec4[T]) SetTuple(t Tuple4[T]) { *v = Vec4[T]{t.X(), t.Y(), t.Z(), t.W()} }

func (v *Vec4[T]) SetValues(x, y, z, w channel.Value) {
	*v = Vec4[T]{channel.As[T](x), channel.As[T](y), channel.As[T](z), channel.As[T](w)}
}

func (v *Vec4[T]) Capability() Capability {
	return CapabilityOf[T](4, RoleVector, ReadWrite)
}

// Pt4 is a 4-component (homogeneous) point stored in channel T.
type Pt4[T channel.Type] [4]T

func (p Pt4[T]) X() T                { return p[0] }
func (p Pt4[T]) Y() T                { return p[1] }
func (p Pt4[T]) Z() T                { return p[2] }
func (p Pt4[T]) W() T                { return p[3] }
func (p Pt4[T]) Get(s Setter4)       { push4(s, p[0], p[1], p[2], p[3]) }
func (p Pt4[T]) At(i int) (T, error) { return Component4[T](p, i) }
func (Pt4[T]) PointRole()            {}

func (p *Pt4[T]) SetX(x T)             { p[0] = x }
func (p *Pt4[T]) SetY(y T)             { p[1] = y }
func (p *Pt4[T]) SetZ(z T)             { p[2] = z }
func (p *Pt4[T]) SetW(w T)             { p[3] = w }
func (p *Pt4[T]) Set(x, y, z, w T)     { *p = Pt4[T]{x, y, z, w} }
func (p *Pt4[T]) SetTuple(t Tuple4[T]) { *p = Pt4[T]{t.X(), t.Y(), t.Z(), t.W()} }

func (p *Pt4[T]) SetValues(x, y, z, w channel.Value) {
	*p = Pt4[T]{channel.As[T](x), channel.As[T](y), channel.As[T](z), channel.As[T](w)}
}

func (p *Pt4[T]) Capability() Capability {
	return CapabilityOf[T](4, RolePoint, ReadWrite)
}

// RGBA is a non-premultiplied color with an alpha channel.
type RGBA[T channel.Type] [4]T

func (c RGBA[T]) X() T                { return c[0] }
func (c RGBA[T]) Y() T                { return c[1] }
func (c RGBA[T]) Z() T                { return c[2] }
func (c RGBA[T]) W() T                { return c[3] }
func (c RGBA[T]) R() T                { return c[0] }
func (c RGBA[T]) G() T                { return c[1] }
func (c RGBA[T]) B() T                { return c[2] }
func (c RGBA[T]) A() T                { return c[3] }
func (c RGBA[T]) Get(s Setter4)       { push4(s, c[0], c[1], c[2], c[3]) }
func (c RGBA[T]) At(i int) (T, error) { return Component4[T](c, i) }
func (RGBA[T]) ColorRole()            {}

func (c *RGBA[T]) SetX(r T)             { c[0] = r }
func (c *RGBA[T]) SetY(g T)             { c[1] = g }
func (c *RGBA[T]) SetZ(b T)             { c[2] = b }
func (c *RGBA[T]) SetW(a T)             { c[3] = a }
func (c *RGBA[T]) Set(r, g, b, a T)     { *c = RGBA[T]{r, g, b, a} }
func (c *RGBA[T]) SetTuple(t Tuple4[T]) { *c = RGBA[T]{t.X(), t.Y(), t.Z(), t.W()} }

func (c *RGBA[T]) SetValues(r, g, b, a channel.Value) {
	*c = RGBA[T]{channel.As[T](r), channel.As[T](g), channel.As[T](b), channel.As[T](a)}
}

func (c *RGBA[T]) Capability() Capability {
	return CapabilityOf[T](4, RoleColor, ReadWrite)
}
