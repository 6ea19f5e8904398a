package interop

import (
	"image/color"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
)

// NRGBA is a mutable byte color backed by a color.NRGBA.
type NRGBA struct {
	c *color.NRGBA
}

// WrapNRGBA wraps c.
func WrapNRGBA(c *color.NRGBA) NRGBA { return NRGBA{c: c} }

func (n NRGBA) X() uint8 { return n.c.R }
func (n NRGBA) Y() uint8 { return n.c.G }
func (n NRGBA) Z() uint8 { return n.c.B }
func (n NRGBA) W() uint8 { return n.c.A }

func (n NRGBA) Get(s geom.Setter4) {
	s.SetValues(channel.ValueOf(n.c.R), channel.ValueOf(n.c.G), channel.ValueOf(n.c.B), channel.ValueOf(n.c.A))
}

func (n NRGBA) SetX(v uint8) { n.c.R = v }
func (n NRGBA) SetY(v uint8) { n.c.G = v }
func (n NRGBA) SetZ(v uint8) { n.c.B = v }
func (n NRGBA) SetW(v uint8) { n.c.A = v }

func (n NRGBA) Set(r, g, b, a uint8) { *n.c = color.NRGBA{R: r, G: g, B: b, A: a} }

func (n NRGBA) SetTuple(t geom.Tuple4[uint8]) { n.Set(t.X(), t.Y(), t.Z(), t.W()) }

func (NRGBA) ColorRole() {}

func (NRGBA) Capability() geom.Capability {
	return geom.CapabilityOf[uint8](4, geom.RoleColor, geom.ReadWrite)
}

// ToNRGBA converts any 4-component value to a color.NRGBA. Float colors
// are scaled from [0,1]; other float tuples are clamped and truncated.
func ToNRGBA(src any) (color.NRGBA, error) {
	t, err := adapt.As(src, adapt.Tuple4Of[uint8]())
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: t.X(), G: t.Y(), B: t.Z(), A: t.W()}, nil
}
