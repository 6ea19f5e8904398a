// Package channel defines the numeric representations a tuple component can
// be stored in and the narrowing/widening functions used to move a component
// from one representation to another.
package channel

import "fmt"

// Kind identifies the numeric representation of one tuple component.
type Kind uint8

const (
	Float64 Kind = iota
	Float32
	Int32
	Uint8
)

// Kinds lists every channel kind in declaration order.
var Kinds = []Kind{Float64, Float32, Int32, Uint8}

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a kind name (as printed by Kind.String, or one of the
// aliases double, float, int, byte) back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "float64", "double":
		return Float64, nil
	case "float32", "float":
		return Float32, nil
	case "int32", "int":
		return Int32, nil
	case "uint8", "byte":
		return Uint8, nil
	}
	return 0, fmt.Errorf("channel: unknown kind %q", s)
}

// Type is the set of Go types a channel can be stored in.
type Type interface {
	~float64 | ~float32 | ~int32 | ~uint8
}

// KindOf reports the Kind of T. Named types resolve to the kind of their
// underlying representation.
func KindOf[T Type]() Kind {
	half := 0.5
	if T(half) == 0 {
		// integer
		var x T
		x--
		if x > 0 {
			return Uint8
		}
		return Int32
	}
	fine := 1 + 1e-10
	if float64(T(fine)) != 1 {
		return Float64
	}
	return Float32
}
