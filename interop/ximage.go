package interop

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/geom"
)

// F32Vec2 views v as a mutable float32 vector. Writes go to v.
func F32Vec2(v *f32.Vec2) *geom.Vec2[float32] { return (*geom.Vec2[float32])(v) }

func F32Vec3(v *f32.Vec3) *geom.Vec3[float32] { return (*geom.Vec3[float32])(v) }

func F32Vec4(v *f32.Vec4) *geom.Vec4[float32] { return (*geom.Vec4[float32])(v) }

// F64Vec2 views v as a mutable float64 vector. Writes go to v.
func F64Vec2(v *f64.Vec2) *geom.Vec2[float64] { return (*geom.Vec2[float64])(v) }

func F64Vec3(v *f64.Vec3) *geom.Vec3[float64] { return (*geom.Vec3[float64])(v) }

func F64Vec4(v *f64.Vec4) *geom.Vec4[float64] { return (*geom.Vec4[float64])(v) }

// ToF32Vec3 reads any 3-component value into an f32.Vec3, converting
// through the Default registry.
func ToF32Vec3(src any) (f32.Vec3, error) {
	t, err := adapt.As(src, adapt.Tuple3Of[float32]())
	if err != nil {
		return f32.Vec3{}, err
	}
	return f32.Vec3{t.X(), t.Y(), t.Z()}, nil
}

// ToF64Vec3 reads any 3-component value into an f64.Vec3.
func ToF64Vec3(src any) (f64.Vec3, error) {
	t, err := adapt.As(src, adapt.Tuple3Of[float64]())
	if err != nil {
		return f64.Vec3{}, err
	}
	return f64.Vec3{t.X(), t.Y(), t.Z()}, nil
}

// ToF64Vec2 reads any 2-component value into an f64.Vec2.
func ToF64Vec2(src any) (f64.Vec2, error) {
	t, err := adapt.As(src, adapt.Tuple2Of[float64]())
	if err != nil {
		return f64.Vec2{}, err
	}
	return f64.Vec2{t.X(), t.Y()}, nil
}

// ToF32Vec4 reads any 4-component value into an f32.Vec4. Colors stored as
// bytes come back as intensities in [0,1].
func ToF32Vec4(src any) (f32.Vec4, error) {
	t, err := adapt.As(src, adapt.Tuple4Of[float32]())
	if err != nil {
		return f32.Vec4{}, err
	}
	return f32.Vec4{t.X(), t.Y(), t.Z(), t.W()}, nil
}
