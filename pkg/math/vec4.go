package math

import "math"

// Vec4 is a 4-component vector. The editor uses it for RGBA colors and
// homogeneous light positions.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / scalar.
func (v Vec4) Div(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Length returns the magnitude over all four components.
func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)))
}

// Normalize returns a unit vector. A zero vector is returned unchanged.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// XYZ drops the fourth component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Array returns the components as a fixed array for GL uniform uploads.
func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// RGBA builds a color from an RGB triple and an alpha value.
func RGBA(rgb Vec3, alpha float32) Vec4 {
	return Vec4{rgb.X, rgb.Y, rgb.Z, alpha}
}
