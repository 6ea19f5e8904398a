package interop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/geom"
)

func TestF64Vec3Aliases(t *testing.T) {
	raw := f64.Vec3{1, 2, 3}
	v := F64Vec3(&raw)

	view, err := adapt.As(v, adapt.MutableVector3Of[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(2), view.Y())

	view.Set(1.5, 2.5, 3.5)
	assert.Equal(t, f64.Vec3{1.5, 2.5, 3.5}, raw)
}

func TestF32Helpers(t *testing.T) {
	raw := f32.Vec2{0.5, 4}
	F32Vec2(&raw).SetX(9)
	assert.Equal(t, f32.Vec2{9, 4}, raw)

	r4 := f32.Vec4{}
	F32Vec4(&r4).Set(1, 2, 3, 4)
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, r4)

	got, err := ToF32Vec3(&geom.Pt3[int32]{-1, 0, 7})
	require.NoError(t, err)
	assert.Equal(t, f32.Vec3{-1, 0, 7}, got)

	v64, err := ToF64Vec3(F32Vec3(&f32.Vec3{0.25, 0.5, 1}))
	require.NoError(t, err)
	assert.Equal(t, f64.Vec3{0.25, 0.5, 1}, v64)

	_, err = ToF64Vec3(geom.Vec2[float64]{})
	assert.ErrorIs(t, err, adapt.ErrNoConversion)
}

func TestToF64Vec2(t *testing.T) {
	raw := f64.Vec2{3, 4}
	got, err := ToF64Vec2(F64Vec2(&raw))
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	fromBytes, err := ToF64Vec2(geom.Vec2[uint8]{7, 8})
	require.NoError(t, err)
	assert.Equal(t, f64.Vec2{7, 8}, fromBytes)
}

func TestFixedPoint(t *testing.T) {
	p := fixed.Point26_6{X: fixed.I(3), Y: fixed.I(-2) + 32}

	raw := FixedPoint(&p)
	assert.Equal(t, int32(192), raw.X())

	px := PixelPoint(&p)
	assert.Equal(t, 3.0, px.X())
	assert.Equal(t, -1.5, px.Y())

	px.Set(10.25, 0.5)
	assert.Equal(t, fixed.Int26_6(656), p.X)
	assert.Equal(t, fixed.Int26_6(32), p.Y)

	// Through the registry the raw units convert numerically.
	f, err := adapt.As(raw, adapt.Point2Of[float64]())
	require.NoError(t, err)
	assert.Equal(t, 656.0, f.X())
}

func TestNRGBA(t *testing.T) {
	c := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	w := WrapNRGBA(&c)

	f, err := adapt.As(w, adapt.MutableColor4Of[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(1), f.X())

	f.SetZ(0.2)
	assert.Equal(t, uint8(51), c.B)

	got, err := ToNRGBA(&geom.RGBA[float32]{1, 0.5, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, got)

	plain, err := ToNRGBA(&geom.Vec4[float32]{1, 0.5, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 1, G: 0, B: 0, A: 1}, plain)
}
