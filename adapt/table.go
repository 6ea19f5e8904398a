package adapt

import (
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

func registerStandard(b *builder) {
	registerPair(b, channel.Default[float64, float32](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[float64, int32](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[float64, uint8](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[float32, float64](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[float32, int32](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[float32, uint8](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[int32, float64](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[int32, float32](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[int32, uint8](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[uint8, float64](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[uint8, float32](), DefaultWeight, TagNone)
	registerPair(b, channel.Default[uint8, int32](), DefaultWeight, TagNone)
}

// registerColor adds the float32/uint8 adapters that scale intensities.
// They only apply to sources that are colors.
func registerColor(b *builder, weight int) {
	registerColorPair(b, channel.ColorPolicy(), weight)
	registerColorPair(b, channel.ColorPolicyReverse(), weight)
}

func registerPair[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	tuples2(b, p, weight, tag)
	roles2(b, p, weight, tag)
	tuples3(b, p, weight, tag)
	roles3(b, p, weight, tag)
	colors3(b, p, weight, tag)
	tuples4(b, p, weight, tag)
	roles4(b, p, weight, tag)
	colors4(b, p, weight, tag)
}

func registerColorPair[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int) {
	tuples3(b, p, weight, TagColor)
	tuples4(b, p, weight, TagColor)
	colors3(b, p, weight, TagColor)
	colors4(b, p, weight, TagColor)
}

// entry adds a descriptor between the same shape over channels S and D.
func entry[S, D channel.Type, SC, DC any](b *builder, dim int, role geom.Role, access geom.Access, tag Tag, weight int, build func(*Registry, SC) DC) {
	b.add(NewDescriptor(
		geom.CapabilityOf[S](dim, role, access),
		tag,
		geom.CapabilityOf[D](dim, role, access),
		weight,
		build,
	))
}

func tuples2[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 2, geom.RoleTuple, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Tuple2[S]) geom.Tuple2[D] {
			return NewTuple2With(s, p.Narrow)
		})
	entry[S, D](b, 2, geom.RoleTuple, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableTuple2[S]) geom.MutableTuple2[D] {
			a := NewMutableTuple2With(s, p)
			a.reg = r
			return a
		})
}

func roles2[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 2, geom.RolePoint, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Point2[S]) geom.Point2[D] {
			return NewPoint2With(s, p.Narrow)
		})
	entry[S, D](b, 2, geom.RolePoint, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutablePoint2[S]) geom.MutablePoint2[D] {
			a := NewMutablePoint2With(s, p)
			a.reg = r
			return a
		})
	entry[S, D](b, 2, geom.RoleVector, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Vector2[S]) geom.Vector2[D] {
			return NewVector2With(s, p.Narrow)
		})
	entry[S, D](b, 2, geom.RoleVector, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableVector2[S]) geom.MutableVector2[D] {
			a := NewMutableVector2With(s, p)
			a.reg = r
			return a
		})
}

func tuples3[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 3, geom.RoleTuple, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Tuple3[S]) geom.Tuple3[D] {
			return NewTuple3With(s, p.Narrow)
		})
	entry[S, D](b, 3, geom.RoleTuple, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableTuple3[S]) geom.MutableTuple3[D] {
			a := NewMutableTuple3With(s, p)
			a.reg = r
			return a
		})
}

func roles3[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 3, geom.RolePoint, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Point3[S]) geom.Point3[D] {
			return NewPoint3With(s, p.Narrow)
		})
	entry[S, D](b, 3, geom.RolePoint, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutablePoint3[S]) geom.MutablePoint3[D] {
			a := NewMutablePoint3With(s, p)
			a.reg = r
			return a
		})
	entry[S, D](b, 3, geom.RoleVector, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Vector3[S]) geom.Vector3[D] {
			return NewVector3With(s, p.Narrow)
		})
	entry[S, D](b, 3, geom.RoleVector, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableVector3[S]) geom.MutableVector3[D] {
			a := NewMutableVector3With(s, p)
			a.reg = r
			return a
		})
}

func colors3[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 3, geom.RoleColor, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Color3[S]) geom.Color3[D] {
			return NewColor3With(s, p.Narrow)
		})
	entry[S, D](b, 3, geom.RoleColor, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableColor3[S]) geom.MutableColor3[D] {
			a := NewMutableColor3With(s, p)
			a.reg = r
			return a
		})
}

func tuples4[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 4, geom.RoleTuple, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Tuple4[S]) geom.Tuple4[D] {
			return NewTuple4With(s, p.Narrow)
		})
	entry[S, D](b, 4, geom.RoleTuple, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableTuple4[S]) geom.MutableTuple4[D] {
			a := NewMutableTuple4With(s, p)
			a.reg = r
			return a
		})
}

func roles4[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 4, geom.RolePoint, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Point4[S]) geom.Point4[D] {
			return NewPoint4With(s, p.Narrow)
		})
	entry[S, D](b, 4, geom.RolePoint, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutablePoint4[S]) geom.MutablePoint4[D] {
			a := NewMutablePoint4With(s, p)
			a.reg = r
			return a
		})
	entry[S, D](b, 4, geom.RoleVector, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Vector4[S]) geom.Vector4[D] {
			return NewVector4With(s, p.Narrow)
		})
	entry[S, D](b, 4, geom.RoleVector, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableVector4[S]) geom.MutableVector4[D] {
			a := NewMutableVector4With(s, p)
			a.reg = r
			return a
		})
}

func colors4[S, D channel.Type](b *builder, p channel.Policy[S, D], weight int, tag Tag) {
	entry[S, D](b, 4, geom.RoleColor, geom.ReadOnly, tag, weight,
		func(_ *Registry, s geom.Color4[S]) geom.Color4[D] {
			return NewColor4With(s, p.Narrow)
		})
	entry[S, D](b, 4, geom.RoleColor, geom.ReadWrite, tag, weight,
		func(r *Registry, s geom.MutableColor4[S]) geom.MutableColor4[D] {
			a := NewMutableColor4With(s, p)
			a.reg = r
			return a
		})
}
