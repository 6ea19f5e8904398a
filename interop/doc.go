// Package interop exposes foreign vector and color storage through the geom
// capabilities so the conversion registry can adapt it.
//
// The x/image math vectors share their memory layout with the geom vector
// types, so the F32/F64 helpers alias the caller's array instead of copying
// it. Fixed-point and image/color values are wrapped.
package interop
