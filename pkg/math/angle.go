package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// WrapDegrees normalizes an angle into [0, 360).
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	// Mod of a tiny negative value can round back up to 360.
	if w >= 360 {
		w -= 360
	}
	return w
}

// ShortestArc returns the signed rotation in (-180, 180] that takes from to
// to along the shorter way around the circle.
func ShortestArc(from, to float32) float32 {
	d := WrapDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
