// Package math provides the vector and matrix types used by the cone renderer.
package math

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDegenerateVector is returned when a vector with zero or non-finite length
// is normalized.
var ErrDegenerateVector = errors.New("math: degenerate (zero-length or non-finite) vector")

// Number is the set of component types a vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float32 and int instantiations used throughout the engine.
type (
	Vec2  = Vector2[float32]
	Vec3  = Vector3[float32]
	Vec4  = Vector4[float32]
	IVec2 = Vector2[int]
	IVec3 = Vector3[int]
	IVec4 = Vector4[int]
)

// ConvertVector2 converts the components of v to another numeric type.
func ConvertVector2[To, From Number](v Vector2[From]) Vector2[To] {
	return Vector2[To]{To(v.X), To(v.Y)}
}

// ConvertVector3 converts the components of v to another numeric type.
func ConvertVector3[To, From Number](v Vector3[From]) Vector3[To] {
	return Vector3[To]{To(v.X), To(v.Y), To(v.Z)}
}

// ConvertVector4 converts the components of v to another numeric type.
func ConvertVector4[To, From Number](v Vector4[From]) Vector4[To] {
	return Vector4[To]{To(v.X), To(v.Y), To(v.Z), To(v.W)}
}

// lerp is (1-t)*a + t*b evaluated in float64 so integer vectors interpolate too.
// At t=0 and t=1 the result is exactly a and b.
func lerp[T Number](a, b T, t float32) T {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	ft := float64(t)
	return T(float64(a)*(1-ft) + float64(b)*ft)
}

// norm returns the Euclidean length of c. Components are scaled by the largest
// magnitude first, as hypot does, so squaring neither overflows nor underflows.
func norm(c ...float64) float64 {
	var m float64
	for _, x := range c {
		m = max(m, math.Abs(x))
	}
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	var sum float64
	for _, x := range c {
		x /= m
		sum += x * x
	}
	return m * math.Sqrt(sum)
}

// divisor returns the length c is divided by to normalize it, or false when
// the length is zero or non-finite.
func divisor(c ...float64) (float64, bool) {
	l := norm(c...)
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return 0, false
	}
	return l, true
}
