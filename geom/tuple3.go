package geom

import "github.com/wudi/geomkit/channel"

// Setter3 receives the components of a 3-tuple in the channel they are
// stored in. Implementations coerce the values themselves.
type Setter3 interface {
	SetValues(x, y, z channel.Value)
}

// SetterFunc3 adapts a function to Setter3.
type SetterFunc3 func(x, y, z channel.Value)

func (f SetterFunc3) SetValues(x, y, z channel.Value) { f(x, y, z) }

// Tuple3 is the read capability of a 3-component tuple.
type Tuple3[T channel.Type] interface {
	X() T
	Y() T
	Z() T
	// Get pushes the stored components, untouched, into s.
	Get(s Setter3)
}

// Settable3 is the write capability of a 3-component tuple.
type Settable3[T channel.Type] interface {
	SetX(v T)
	SetY(v T)
	SetZ(v T)
	Set(x, y, z T)
	SetTuple(t Tuple3[T])
}

// MutableTuple3 is a 3-component tuple that can be read and written.
type MutableTuple3[T channel.Type] interface {
	Tuple3[T]
	Settable3[T]
}

type Point3[T channel.Type] interface {
	Tuple3[T]
	PointRole()
}

type MutablePoint3[T channel.Type] interface {
	MutableTuple3[T]
	PointRole()
}

type Vector3[T channel.Type] interface {
	Tuple3[T]
	VectorRole()
}

type MutableVector3[T channel.Type] interface {
	MutableTuple3[T]
	VectorRole()
}

// Color3 is an RGB color; X, Y and Z are the red, green and blue channels.
type Color3[T channel.Type] interface {
	Tuple3[T]
	ColorRole()
}

type MutableColor3[T channel.Type] interface {
	MutableTuple3[T]
	ColorRole()
}

// Component3 returns component i of t.
func Component3[T channel.Type](t Tuple3[T], i int) (T, error) {
	switch i {
	case 0:
		return t.X(), nil
	case 1:
		return t.Y(), nil
	case 2:
		return t.Z(), nil
	}
	var zero T
	return zero, indexError(i, 3)
}

func push3[T channel.Type](s Setter3, x, y, z T) {
	s.SetValues(channel.ValueOf(x), channel.ValueOf(y), channel.ValueOf(z))
}

// Vec3 is a 3-component vector stored in channel T.
type Vec3[T channel.Type] [3]T

func (v Vec3[T]) X() T                { return v[0] }
func (v Vec3[T]) Y() T                { return v[1] }
func (v Vec3[T]) Z() T                { return v[2] }
func (v Vec3[T]) Get(s Setter3)       { push3(s, v[0], v[1], v[2]) }
func (v Vec3[T]) At(i int) (T, error) { return Component3[T](v, i) }
func (Vec3[T]) VectorRole()           {}

func (v *Vec3[T]) SetX(x T)             { v[0] = x }
func (v *Vec3[T]) SetY(y T)             { v[1] = y }
func (v *Vec3[T]) SetZ(z T)             { v[2] = z }
func (v *Vec3[T]) Set(x, y, z T)        { *v = Vec3[T]{x, y, z} }
func (v *Vec3[T]) SetTuple(t Tuple3[T]) { *v = Vec3[T]{t.X(), t.Y(), t.Z()} }

// SetValues lets a Vec3 collect the components pushed by any Tuple3.Get.
func (v *Vec3[T]) SetValues(x, y, z channel.Value) {
	*v = Vec3[T]{channel.As[T](x), channel.As[T](y), channel.As[T](z)}
}

func (v *Vec3[T]) Capability() Capability {
	return CapabilityOf[T](3, RoleVector, ReadWrite)
}

// Pt3 is a 3-component point stored in channel T.
type Pt3[T channel.Type] [3]T

func (p Pt3[T]) X() T                { return p[0] }
func (p Pt3[T]) Y() T                { return p[1] }
func (p Pt3[T]) Z() T                { return p[2] }
func (p Pt3[T]) Get(s Setter3)       { push3(s, p[0], p[1], p[2]) }
func (p Pt3[T]) At(i int) (T, error) { return Component3[T](p, i) }
func (Pt3[T]) PointRole()            {}

func (p *Pt3[T]) SetX(x T)             { p[0] = x }
func (p *Pt3[T]) SetY(y T)             { p[1] = y }
func (p *Pt3[T]) SetZ(z T)             { p[2] = z }
func (p *Pt3[T]) Set(x, y, z T)        { *p = Pt3[T]{x, y, z} }
func (p *Pt3[T]) SetTuple(t Tuple3[T]) { *p = Pt3[T]{t.X(), t.Y(), t.Z()} }

func (p *Pt3[T]) SetValues(x, y, z channel.Value) {
	*p = Pt3[T]{channel.As[T](x), channel.As[T](y), channel.As[T](z)}
}

func (p *Pt3[T]) Capability() Capability {
	return CapabilityOf[T](3, RolePoint, ReadWrite)
}

// RGB is a color with red, green and blue channels of type T. Float
// channels hold intensities in [0,1]; uint8 channels hold [0,255].
type RGB[T channel.Type] [3]T

func (c RGB[T]) X() T                { return c[0] }
func (c RGB[T]) Y() T                { return c[1] }
func (c RGB[T]) Z() T                { return c[2] }
func (c RGB[T]) R() T                { return c[0] }
func (c RGB[T]) G() T                { return c[1] }
func (c RGB[T]) B() T                { return c[2] }
func (c RGB[T]) Get(s Setter3)       { push3(s, c[0], c[1], c[2]) }
func (c RGB[T]) At(i int) (T, error) { return Component3[T](c, i) }
func (RGB[T]) ColorRole()            {}

func (c *RGB[T]) SetX(r T)             { c[0] = r }
func (c *RGB[T]) SetY(g T)             { c[1] = g }
func (c *RGB[T]) SetZ(b T)             { c[2] = b }
func (c *RGB[T]) Set(r, g, b T)        { *c = RGB[T]{r, g, b} }
func (c *RGB[T]) SetTuple(t Tuple3[T]) { *c = RGB[T]{t.X(), t.Y(), t.Z()} }

func (c *RGB[T]) SetValues(r, g, b channel.Value) {
	*c = RGB[T]{channel.As[T](r), channel.As[T](g), channel.As[T](b)}
}

func (c *RGB[T]) Capability() Capability {
	return CapabilityOf[T](3, RoleColor, ReadWrite)
}
