// Package geom declares the tuple, point, vector and color capabilities that
// the rest of the library is written against, and small array-backed types
// implementing them for every channel type.
//
// Read access and write access are separate capabilities. Tuple3[T] is the
// read capability of a 3-component tuple stored in channel T, Settable3[T]
// its write capability, and MutableTuple3[T] the composition of both. Roles
// (point, vector, color) are expressed with marker methods on top of the
// tuple capabilities.
package geom

import (
	"errors"
	"fmt"

	"github.com/wudi/geomkit/channel"
)

// ErrIndexOutOfRange is returned by index-style accessors for indices
// outside [0, N).
var ErrIndexOutOfRange = errors.New("geom: index out of range")

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, n)
}

// Role distinguishes tuples with the same dimensionality and channel.
type Role uint8

const (
	RoleTuple Role = iota
	RolePoint
	RoleVector
	RoleColor
)

func (r Role) String() string {
	switch r {
	case RoleTuple:
		return "Tuple"
	case RolePoint:
		return "Point"
	case RoleVector:
		return "Vector"
	case RoleColor:
		return "Color"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Access tells read-only capabilities from read-write ones.
type Access uint8

const (
	ReadOnly Access = iota
	ReadWrite
)

func (a Access) String() string {
	if a == ReadWrite {
		return "rw"
	}
	return "ro"
}

// Shape is the part of a capability that conversions preserve.
type Shape struct {
	Dim  int
	Role Role
}

func (s Shape) String() string {
	return fmt.Sprintf("%s%d", s.Role, s.Dim)
}

// Capability identifies one adapter-facing interface, e.g. the read-write
// 3-component point stored as float32.
type Capability struct {
	Dim    int
	Role   Role
	Kind   channel.Kind
	Access Access
}

// CapabilityOf builds the capability of role and access over channel T.
func CapabilityOf[T channel.Type](dim int, role Role, access Access) Capability {
	return Capability{Dim: dim, Role: role, Kind: channel.KindOf[T](), Access: access}
}

// Shape drops the channel and access of c.
func (c Capability) Shape() Shape {
	return Shape{Dim: c.Dim, Role: c.Role}
}

func (c Capability) String() string {
	return fmt.Sprintf("%s<%s,%s>", c.Shape(), c.Kind, c.Access)
}

// Describer is implemented by values that can name their own capability.
type Describer interface {
	Capability() Capability
}

// Colored tags a tuple as a color. Color-aware conversions scale intensities
// instead of truncating them.
type Colored interface {
	ColorRole()
}
