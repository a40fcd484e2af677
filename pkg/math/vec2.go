package math

// Vec2 is a 2D vector, used for points projected onto an axis plane.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// InRect reports whether v lies inside the closed rectangle spanned by min
// and max.
func (v Vec2) InRect(min, max Vec2) bool {
	return min.X <= v.X && v.X <= max.X && min.Y <= v.Y && v.Y <= max.Y
}
