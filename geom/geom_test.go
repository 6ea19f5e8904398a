package geom

import (
	"errors"
	"testing"

	"github.com/wudi/geomkit/channel"
)

func TestComponentOutOfRange(t *testing.T) {
	v := Vec3[float64]{1, 2, 3}
	for i := 0; i < 3; i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != float64(i+1) {
			t.Errorf("At(%d) = %v", i, got)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := v.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if _, err := Component2[int32](Pt2[int32]{}, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Component2: got %v", err)
	}
	if w, err := Component4[uint8](RGBA[uint8]{1, 2, 3, 4}, 3); err != nil || w != 4 {
		t.Errorf("Component4(3) = %v, %v", w, err)
	}
}

func TestSetters(t *testing.T) {
	var p Pt3[float32]
	p.SetX(1)
	p.SetY(2)
	p.SetZ(3)
	if p != (Pt3[float32]{1, 2, 3}) {
		t.Fatalf("SetX/Y/Z: %v", p)
	}
	p.Set(4, 5, 6)
	if p != (Pt3[float32]{4, 5, 6}) {
		t.Fatalf("Set: %v", p)
	}
	p.SetTuple(Vec3[float32]{7, 8, 9})
	if p != (Pt3[float32]{7, 8, 9}) {
		t.Fatalf("SetTuple: %v", p)
	}

	var c RGBA[uint8]
	c.Set(10, 20, 30, 40)
	if c.R() != 10 || c.A() != 40 {
		t.Fatalf("RGBA accessors: %v", c)
	}
}

func TestGetPushesNativeChannel(t *testing.T) {
	src := Vec3[float64]{1.75, -2, 300}
	var kinds []channel.Kind
	src.Get(SetterFunc3(func(x, y, z channel.Value) {
		kinds = append(kinds, x.Kind(), y.Kind(), z.Kind())
	}))
	for _, k := range kinds {
		if k != channel.Float64 {
			t.Fatalf("expected float64 values, got %v", kinds)
		}
	}

	var dst Vec3[uint8]
	src.Get(&dst)
	if dst != (Vec3[uint8]{1, 0, 255}) {
		t.Errorf("collected %v", dst)
	}
}

func TestCapabilityString(t *testing.T) {
	p := &Pt3[float32]{}
	if got := p.Capability().String(); got != "Point3<float32,rw>" {
		t.Errorf("got %q", got)
	}
	c := CapabilityOf[uint8](4, RoleColor, ReadOnly)
	if got := c.String(); got != "Color4<uint8,ro>" {
		t.Errorf("got %q", got)
	}
	if c.Shape() != (Shape{Dim: 4, Role: RoleColor}) {
		t.Errorf("shape %v", c.Shape())
	}
}

func TestRoleInterfaces(t *testing.T) {
	var _ MutableVector2[float64] = &Vec2[float64]{}
	var _ MutablePoint2[int32] = &Pt2[int32]{}
	var _ MutableVector3[float32] = &Vec3[float32]{}
	var _ MutablePoint3[float64] = &Pt3[float64]{}
	var _ MutableColor3[uint8] = &RGB[uint8]{}
	var _ MutableVector4[float64] = &Vec4[float64]{}
	var _ MutablePoint4[float32] = &Pt4[float32]{}
	var _ MutableColor4[float32] = &RGBA[float32]{}
	var _ Colored = RGB[float32]{}
	var _ Setter4 = &RGBA[uint8]{}

	var v any = Vec3[float64]{}
	if _, ok := v.(Point3[float64]); ok {
		t.Fatalf("a vector must not satisfy the point capability")
	}
	if _, ok := v.(MutableTuple3[float64]); ok {
		t.Fatalf("a Vec3 value is read-only")
	}
}
