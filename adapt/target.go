package adapt

import (
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// Target names the capability a conversion must produce. D is the Go
// interface the result is returned as.
type Target[D any] struct {
	cap geom.Capability
}

func (t Target[D]) Capability() geom.Capability { return t.cap }

func (t Target[D]) String() string { return t.cap.String() }

func target[D any, T channel.Type](dim int, role geom.Role, access geom.Access) Target[D] {
	return Target[D]{cap: geom.CapabilityOf[T](dim, role, access)}
}

func Tuple2Of[T channel.Type]() Target[geom.Tuple2[T]] {
	return target[geom.Tuple2[T], T](2, geom.RoleTuple, geom.ReadOnly)
}

func MutableTuple2Of[T channel.Type]() Target[geom.MutableTuple2[T]] {
	return target[geom.MutableTuple2[T], T](2, geom.RoleTuple, geom.ReadWrite)
}

func Point2Of[T channel.Type]() Target[geom.Point2[T]] {
	return target[geom.Point2[T], T](2, geom.RolePoint, geom.ReadOnly)
}

func MutablePoint2Of[T channel.Type]() Target[geom.MutablePoint2[T]] {
	return target[geom.MutablePoint2[T], T](2, geom.RolePoint, geom.ReadWrite)
}

func Vector2Of[T channel.Type]() Target[geom.Vector2[T]] {
	return target[geom.Vector2[T], T](2, geom.RoleVector, geom.ReadOnly)
}

func MutableVector2Of[T channel.Type]() Target[geom.MutableVector2[T]] {
	return target[geom.MutableVector2[T], T](2, geom.RoleVector, geom.ReadWrite)
}

func Tuple3Of[T channel.Type]() Target[geom.Tuple3[T]] {
	return target[geom.Tuple3[T], T](3, geom.RoleTuple, geom.ReadOnly)
}

func MutableTuple3Of[T channel.Type]() Target[geom.MutableTuple3[T]] {
	return target[geom.MutableTuple3[T], T](3, geom.RoleTuple, geom.ReadWrite)
}

func Point3Of[T channel.Type]() Target[geom.Point3[T]] {
	return target[geom.Point3[T], T](3, geom.RolePoint, geom.ReadOnly)
}

func MutablePoint3Of[T channel.Type]() Target[geom.MutablePoint3[T]] {
	return target[geom.MutablePoint3[T], T](3, geom.RolePoint, geom.ReadWrite)
}

func Vector3Of[T channel.Type]() Target[geom.Vector3[T]] {
	return target[geom.Vector3[T], T](3, geom.RoleVector, geom.ReadOnly)
}

func MutableVector3Of[T channel.Type]() Target[geom.MutableVector3[T]] {
	return target[geom.MutableVector3[T], T](3, geom.RoleVector, geom.ReadWrite)
}

func Color3Of[T channel.Type]() Target[geom.Color3[T]] {
	return target[geom.Color3[T], T](3, geom.RoleColor, geom.ReadOnly)
}

func MutableColor3Of[T channel.Type]() Target[geom.MutableColor3[T]] {
	return target[geom.MutableColor3[T], T](3, geom.RoleColor, geom.ReadWrite)
}

func Tuple4Of[T channel.Type]() Target[geom.Tuple4[T]] {
	return target[geom.Tuple4[T], T](4, geom.RoleTuple, geom.ReadOnly)
}

func MutableTuple4Of[T channel.Type]() Target[geom.MutableTuple4[T]] {
	return target[geom.MutableTuple4[T], T](4, geom.RoleTuple, geom.ReadWrite)
}

func Point4Of[T channel.Type]() Target[geom.Point4[T]] {
	return target[geom.Point4[T], T](4, geom.RolePoint, geom.ReadOnly)
}

func MutablePoint4Of[T channel.Type]() Target[geom.MutablePoint4[T]] {
	return target[geom.MutablePoint4[T], T](4, geom.RolePoint, geom.ReadWrite)
}

func Vector4Of[T channel.Type]() Target[geom.Vector4[T]] {
	return target[geom.Vector4[T], T](4, geom.RoleVector, geom.ReadOnly)
}

func MutableVector4Of[T channel.Type]() Target[geom.MutableVector4[T]] {
	return target[geom.MutableVector4[T], T](4, geom.RoleVector, geom.ReadWrite)
}

func Color4Of[T channel.Type]() Target[geom.Color4[T]] {
	return target[geom.Color4[T], T](4, geom.RoleColor, geom.ReadOnly)
}

func MutableColor4Of[T channel.Type]() Target[geom.MutableColor4[T]] {
	return target[geom.MutableColor4[T], T](4, geom.RoleColor, geom.ReadWrite)
}
