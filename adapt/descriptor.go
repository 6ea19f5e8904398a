package adapt

import (
	"fmt"

	"github.com/wudi/geomkit/geom"
)

// Tag is a secondary capability a source must also carry for a descriptor
// to apply.
type Tag uint8

const (
	TagNone Tag = iota
	TagColor
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagColor:
		return "color"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

func (t Tag) matches(v any) bool {
	switch t {
	case TagNone:
		return true
	case TagColor:
		_, ok := v.(geom.Colored)
		return ok
	}
	return false
}

const (
	// DefaultWeight is the weight of the plain numeric descriptors.
	DefaultWeight = 0
	// ColorWeight is the weight of the color descriptors. Lower wins.
	ColorWeight = -1000
)

// Descriptor declares one adapter: the capability it consumes, the
// capability it produces, and how strongly it is preferred.
type Descriptor struct {
	Source geom.Capability
	Tag    Tag
	Target geom.Capability
	Weight int

	seq    int
	accept func(any) bool
	build  func(*Registry, any) any
}

// NewDescriptor declares an adapter that builds a DC from any value
// satisfying SC. SC and DC are the Go interfaces of source and target.
func NewDescriptor[SC, DC any](source geom.Capability, tag Tag, target geom.Capability, weight int, build func(r *Registry, src SC) DC) Descriptor {
	return Descriptor{
		Source: source,
		Tag:    tag,
		Target: target,
		Weight: weight,
		accept: func(v any) bool {
			_, ok := v.(SC)
			return ok
		},
		build: func(r *Registry, v any) any {
			return build(r, v.(SC))
		},
	}
}

// Matches reports whether d can adapt v.
func (d Descriptor) Matches(v any) bool {
	return d.accept != nil && d.accept(v) && d.Tag.matches(v)
}

func (d Descriptor) String() string {
	s := fmt.Sprintf("%s -> %s weight=%d", d.Source, d.Target, d.Weight)
	if d.Tag != TagNone {
		s += " tag=" + d.Tag.String()
	}
	return s
}
