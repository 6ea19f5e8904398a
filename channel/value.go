package channel

import "strconv"

// Value is a single component tagged with the channel it was read from.
// Every channel type converts to float64 exactly, so a Value never loses
// information about the component it carries.
type Value struct {
	kind Kind
	v    float64
}

// ValueOf tags v with the kind of T.
func ValueOf[T Type](v T) Value {
	return Value{kind: KindOf[T](), v: float64(v)}
}

// As converts v into T with the default numeric policy.
func As[T Type](v Value) T {
	return Cast[float64, T](v.v)
}

// Kind reports the channel the value was read from.
func (v Value) Kind() Kind { return v.kind }

// Float64 returns the component as a float64.
func (v Value) Float64() float64 { return v.v }

func (v Value) String() string {
	return strconv.FormatFloat(v.v, 'g', -1, 64) + ":" + v.kind.String()
}
