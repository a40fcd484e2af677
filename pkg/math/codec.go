package math

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// Text codec errors.
var (
	ErrMalformedTuple  = errors.New("malformed tuple: expected '(' ... ')'")
	ErrComponentCount  = errors.New("wrong number of tuple components")
	ErrInvalidNumber   = errors.New("invalid number in tuple")
	ErrReservedInTuple = errors.New("tuple contains a reserved delimiter")
)

// TupleSeparator separates components inside an encoded tuple.
const TupleSeparator = ", "

// FormatFloat renders f in the fixed textual form used by every encoded
// tuple: fixed-point notation, shortest digits that round-trip a float32.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// ParseFloat parses a component written by FormatFloat. Surrounding blanks
// are ignored. NaN and infinities are rejected since FormatFloat's output
// never contains them.
func ParseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return float32(v), nil
}

func formatTuple(components ...float32) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range components {
		if i > 0 {
			b.WriteString(TupleSeparator)
		}
		b.WriteString(FormatFloat(c))
	}
	b.WriteByte(')')
	return b.String()
}

func parseTuple(s string, n int) ([]float32, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTuple, s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d, got %d in %q", ErrComponentCount, n, len(parts), s)
	}
	out := make([]float32, n)
	for i, p := range parts {
		v, err := ParseFloat(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// String encodes v as "(x, y)".
func (v Vec2) String() string {
	return formatTuple(v.X, v.Y)
}

// String encodes v as "(x, y, z)".
func (v Vec3) String() string {
	return formatTuple(v.X, v.Y, v.Z)
}

// String encodes v as "(x, y, z, w)".
func (v Vec4) String() string {
	return formatTuple(v.X, v.Y, v.Z, v.W)
}

// ParseVec2 decodes a tuple written by Vec2.String.
func ParseVec2(s string) (Vec2, error) {
	c, err := parseTuple(s, 2)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{c[0], c[1]}, nil
}

// ParseVec3 decodes a tuple written by Vec3.String.
func ParseVec3(s string) (Vec3, error) {
	c, err := parseTuple(s, 3)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{c[0], c[1], c[2]}, nil
}

// ParseVec4 decodes a tuple written by Vec4.String.
func ParseVec4(s string) (Vec4, error) {
	c, err := parseTuple(s, 4)
	if err != nil {
		return Vec4{}, err
	}
	return Vec4{c[0], c[1], c[2], c[3]}, nil
}

// CheckTuple reports ErrReservedInTuple if an encoded tuple contains any of
// the delimiters in reserved. Encoded floats never do, but callers that embed
// tuples inside a larger grammar validate before writing.
func CheckTuple(encoded, reserved string) error {
	body := strings.TrimSuffix(strings.TrimPrefix(encoded, "("), ")")
	body = strings.ReplaceAll(body, TupleSeparator, "")
	if i := strings.IndexAny(body, reserved); i >= 0 {
		return fmt.Errorf("%w: %q in %q", ErrReservedInTuple, body[i], encoded)
	}
	return nil
}
