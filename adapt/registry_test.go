package adapt

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
	"github.com/wudi/geomkit/observability"
)

func TestIdentityFastPath(t *testing.T) {
	r := New()
	v := &geom.Vec3[float32]{1, 2, 3}

	got, err := Convert(r, v, MutableVector3Of[float32]())
	require.NoError(t, err)
	assert.Same(t, v, got)

	tuple, err := Convert(r, v, Tuple3Of[float32]())
	require.NoError(t, err)
	assert.Same(t, v, tuple)

	c := geom.RGB[uint8]{1, 2, 3}
	ct, err := Convert(r, c, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, c, ct)
}

func TestEachConversionBuildsNewAdapter(t *testing.T) {
	r := New()
	v := &geom.Vec2[float64]{1, 2}
	a, err := Convert(r, v, Vector2Of[float32]())
	require.NoError(t, err)
	b, err := Convert(r, v, Vector2Of[float32]())
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestColorWeightWins(t *testing.T) {
	r := New()

	color := &geom.RGB[float32]{0.5, 1.5, -0.5}
	bytesView, err := Convert(r, color, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(128), bytesView.X())
	assert.Equal(t, uint8(255), bytesView.Y())
	assert.Equal(t, uint8(0), bytesView.Z())

	d, ok := r.Select(color, Tuple3Of[uint8]().Capability())
	require.True(t, ok)
	assert.Equal(t, ColorWeight, d.Weight)
	assert.Equal(t, TagColor, d.Tag)

	plain := &geom.Vec3[float32]{0.5, 1.5, -0.5}
	plainView, err := Convert(r, plain, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), plainView.X())
	assert.Equal(t, uint8(1), plainView.Y())
	assert.Equal(t, uint8(0), plainView.Z())

	d, ok = r.Select(plain, Tuple3Of[uint8]().Capability())
	require.True(t, ok)
	assert.Equal(t, DefaultWeight, d.Weight)
}

func TestColorWriteThroughTuple4(t *testing.T) {
	c := &geom.RGBA[float32]{}
	v, err := Convert(New(), c, MutableTuple4Of[uint8]())
	require.NoError(t, err)

	v.Set(255, 0, 51, 255)
	assert.Equal(t, geom.RGBA[float32]{1, 0, 0.2, 1}, *c)
	assert.Equal(t, uint8(51), v.Z())
}

func TestColorRoleConversion(t *testing.T) {
	c := &geom.RGB[uint8]{0, 255, 51}
	f, err := Convert(New(), c, MutableColor3Of[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(1), f.Y())

	f.SetX(0.5)
	assert.Equal(t, uint8(128), c.X())
}

func TestWithoutColor(t *testing.T) {
	r := New(WithoutColor())
	v, err := Convert(r, &geom.RGB[float32]{0.5, 1, 0}, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v.X())
	assert.Equal(t, uint8(1), v.Y())
	assert.Equal(t, New().Len()-16, r.Len())
}

func TestWithColorWeight(t *testing.T) {
	r := New(WithColorWeight(5))
	d, ok := r.Select(&geom.RGB[float32]{}, Tuple3Of[uint8]().Capability())
	require.True(t, ok)
	assert.Equal(t, DefaultWeight, d.Weight, "a positive color weight loses to the plain adapter")
}

func TestNoConversionAvailable(t *testing.T) {
	r := New()

	_, err := Convert(r, &geom.Vec3[float64]{}, Point3Of[float32]())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConversion)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, Point3Of[float32]().Capability(), convErr.Target)
	assert.Contains(t, err.Error(), "Vector3<float64,rw>")
	assert.Contains(t, err.Error(), "Point3<float32,ro>")

	_, err = Convert(r, geom.Vec2[float64]{}, Tuple3Of[float32]())
	assert.ErrorIs(t, err, ErrNoConversion)

	// A value Vec3 is read-only and cannot back a mutable view.
	_, err = Convert(r, geom.Vec3[float64]{}, MutableTuple3Of[float32]())
	assert.ErrorIs(t, err, ErrNoConversion)

	_, err = Convert(r, "not a tuple", Tuple2Of[int32]())
	assert.ErrorIs(t, err, ErrNoConversion)

	_, err = Convert(r, nil, Tuple2Of[int32]())
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestMustConvertPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustConvert(New(), geom.Vec4[uint8]{}, Point4Of[float64]())
	})
	assert.NotPanics(t, func() {
		MustConvert(nil, geom.Vec4[uint8]{}, Vector4Of[float64]())
	})
}

func TestTableShape(t *testing.T) {
	r := New()
	// 12 ordered channel pairs x 22 adapters, plus 16 color adapters.
	assert.Equal(t, 12*22+16, r.Len())

	tuple3 := geom.Shape{Dim: 3, Role: geom.RoleTuple}
	list := r.Lookup(tuple3, tuple3)
	require.NotEmpty(t, list)
	assert.Equal(t, ColorWeight, list[0].Weight)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Weight, list[i].Weight)
	}

	cands := r.Candidates(Tuple3Of[uint8]().Capability())
	require.Len(t, cands, 4)
	assert.Equal(t, TagColor, cands[0].Tag)
	assert.Equal(t, channel.Float64, cands[1].Source.Kind)
	assert.Equal(t, channel.Float32, cands[2].Source.Kind)
	assert.Equal(t, channel.Int32, cands[3].Source.Kind)

	assert.Empty(t, r.Lookup(geom.Shape{Dim: 2, Role: geom.RoleColor}, geom.Shape{Dim: 2, Role: geom.RoleColor}))
	assert.Equal(t, "Tuple2<float64,ro> -> Tuple2<float32,ro> weight=0", r.Descriptors()[0].String())
}

func TestWithPolicyOverrides(t *testing.T) {
	r := New(WithPolicy(channel.SRGBPolicy(), -1, TagNone))
	v, err := Convert(r, &geom.Vec3[float32]{0.5, 0, 1}, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(188), v.X())

	// Colors keep their stronger preference.
	c, err := Convert(r, &geom.RGB[float32]{0.5, 0, 1}, Tuple3Of[uint8]())
	require.NoError(t, err)
	assert.Equal(t, uint8(128), c.X())
}

type vectorAsPoint struct {
	geom.Vector3[float64]
}

func (vectorAsPoint) PointRole() {}

func TestWithDescriptors(t *testing.T) {
	vec := geom.CapabilityOf[float64](3, geom.RoleVector, geom.ReadOnly)
	pt := geom.CapabilityOf[float64](3, geom.RolePoint, geom.ReadOnly)
	r := New(WithDescriptors(NewDescriptor(vec, TagNone, pt, DefaultWeight,
		func(_ *Registry, v geom.Vector3[float64]) geom.Point3[float64] {
			return vectorAsPoint{v}
		})))

	p, err := Convert(r, geom.Vec3[float64]{1, 2, 3}, Point3Of[float64]())
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Y())

	bad := New(WithDescriptors(NewDescriptor(vec, TagNone, pt, DefaultWeight,
		func(_ *Registry, v geom.Vector3[float64]) geom.Tuple3[float64] {
			return v
		})))
	_, err = Convert(bad, geom.Vec3[float64]{}, Point3Of[float64]())
	assert.ErrorIs(t, err, ErrBadDescriptor)

	assert.Panics(t, func() {
		New(WithDescriptors(Descriptor{Source: vec, Target: pt}))
	})
}

func TestRegistryLogs(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	r := New(WithLogger(observability.NewSlogLogger(slog.New(h))))

	_, err := Convert(r, geom.Vec2[uint8]{}, Point2Of[uint8]())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "conversion registry populated")
	assert.Contains(t, out, "descriptors=280")
	assert.Contains(t, out, "no conversion available")
	assert.Contains(t, out, "target=Point2<uint8,ro>")
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	v, err := As(&geom.Vec3[float64]{1, 2, 3}, Vector3Of[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(3), v.Z())
}

func TestConcurrentLookups(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := &geom.Pt3[int32]{int32(i), 1, 2}
			for j := 0; j < 100; j++ {
				p, err := Convert(r, src, Point3Of[float64]())
				if err != nil {
					t.Error(err)
					return
				}
				if p.X() != float64(i) {
					t.Errorf("got %v, want %d", p.X(), i)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
