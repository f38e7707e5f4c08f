package math

// Vector4 is a 4D vector, mostly used for RGBA colors.
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// V4 returns a Vector4 with the given components.
func V4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// V4FromV3 extends a Vector3 with a W component.
func V4FromV3[T Number](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Add returns v + other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Neg returns -v.
func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v * s.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / s.
func (v Vector4[T]) Div(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// LengthSquared returns the squared magnitude.
func (v Vector4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the magnitude, computed without intermediate overflow.
func (v Vector4[T]) Length() T {
	return T(norm(float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)))
}

// Normalize scales v to unit length in place.
// A vector with zero or non-finite length is left unchanged and
// ErrDegenerateVector is returned.
func (v *Vector4[T]) Normalize() error {
	x, y, z, w := float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)
	l, ok := divisor(x, y, z, w)
	if !ok {
		return ErrDegenerateVector
	}
	*v = Vector4[T]{T(x / l), T(y / l), T(z / l), T(w / l)}
	return nil
}

// Normalized returns a unit-length copy of v, or the zero vector if v has no length.
func (v Vector4[T]) Normalized() Vector4[T] {
	if err := v.Normalize(); err != nil {
		return Vector4[T]{}
	}
	return v
}

// TryNormalized returns a unit-length copy of v or ErrDegenerateVector.
func (v Vector4[T]) TryNormalized() (Vector4[T], error) {
	err := v.Normalize()
	return v, err
}

// Lerp interpolates between v (t=0) and other (t=1). t is not clamped.
func (v Vector4[T]) Lerp(t float32, other Vector4[T]) Vector4[T] {
	return Vector4[T]{
		lerp(v.X, other.X, t),
		lerp(v.Y, other.Y, t),
		lerp(v.Z, other.Z, t),
		lerp(v.W, other.W, t),
	}
}

// Equal reports exact componentwise equality.
func (v Vector4[T]) Equal(other Vector4[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

// Pointer returns the address of the first component.
func (v *Vector4[T]) Pointer() *T {
	return &v.X
}

// Write stores the components at the front of dst and returns the rest of dst.
func (v Vector4[T]) Write(dst []T) []T {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = v.X, v.Y, v.Z, v.W
	return dst[4:]
}

// Append appends the components to dst.
func (v Vector4[T]) Append(dst []T) []T {
	return append(dst, v.X, v.Y, v.Z, v.W)
}

// XYZ drops the W component.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// Float returns v with float32 components.
func (v Vector4[T]) Float() Vec4 {
	return ConvertVector4[float32](v)
}
