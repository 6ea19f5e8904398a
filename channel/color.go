package channel

import "math"

// ColorNarrow maps a color intensity in [0,1] to a byte in [0,255] with
// rounding. Inputs outside [0,1] clamp; NaN maps to 0.
func ColorNarrow(v float32) uint8 {
	if v != v {
		return 0
	}
	return uint8(math.Round(float64(clamp(v, 0, 1)) * 255))
}

// ColorWiden maps a byte in [0,255] to a color intensity in [0,1].
func ColorWiden(v uint8) float32 {
	return float32(v) / 255
}

// ColorPolicy returns the float32 to uint8 policy for color channels.
// ColorPolicy().Narrow(ColorPolicy().Widen(b)) == b for every byte b.
func ColorPolicy() Policy[float32, uint8] {
	return Policy[float32, uint8]{Narrow: ColorNarrow, Widen: ColorWiden}
}

// ColorPolicyReverse returns the uint8 to float32 policy for color channels.
func ColorPolicyReverse() Policy[uint8, float32] {
	return ColorPolicy().Reverse()
}

// SRGBPolicy narrows linear float32 intensities into sRGB-encoded bytes and
// widens them back to linear light. It is not used unless injected.
func SRGBPolicy() Policy[float32, uint8] {
	return Policy[float32, uint8]{
		Narrow: func(v float32) uint8 { return ColorNarrow(LinearToSRGB(v)) },
		Widen:  func(v uint8) float32 { return SRGBToLinear(ColorWiden(v)) },
	}
}

// SRGBToLinear applies the sRGB electro-optical transfer function.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB applies the inverse sRGB transfer function.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}
