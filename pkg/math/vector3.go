package math

// Vector3 is a 3D vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

// V3 returns a Vector3 with the given components.
func V3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s.
func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude, computed without intermediate overflow.
func (v Vector3[T]) Length() T {
	return T(norm(float64(v.X), float64(v.Y), float64(v.Z)))
}

// Normalize scales v to unit length in place.
// A vector with zero or non-finite length is left unchanged and
// ErrDegenerateVector is returned.
func (v *Vector3[T]) Normalize() error {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	l, ok := divisor(x, y, z)
	if !ok {
		return ErrDegenerateVector
	}
	*v = Vector3[T]{T(x / l), T(y / l), T(z / l)}
	return nil
}

// Normalized returns a unit-length copy of v, or the zero vector if v has no length.
func (v Vector3[T]) Normalized() Vector3[T] {
	if err := v.Normalize(); err != nil {
		return Vector3[T]{}
	}
	return v
}

// TryNormalized returns a unit-length copy of v or ErrDegenerateVector.
func (v Vector3[T]) TryNormalized() (Vector3[T], error) {
	err := v.Normalize()
	return v, err
}

// Lerp interpolates between v (t=0) and other (t=1). t is not clamped.
func (v Vector3[T]) Lerp(t float32, other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		lerp(v.X, other.X, t),
		lerp(v.Y, other.Y, t),
		lerp(v.Z, other.Z, t),
	}
}

// Equal reports exact componentwise equality.
func (v Vector3[T]) Equal(other Vector3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Pointer returns the address of the first component.
func (v *Vector3[T]) Pointer() *T {
	return &v.X
}

// Write stores the components at the front of dst and returns the rest of dst.
func (v Vector3[T]) Write(dst []T) []T {
	_ = dst[2]
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	return dst[3:]
}

// Append appends the components to dst.
func (v Vector3[T]) Append(dst []T) []T {
	return append(dst, v.X, v.Y, v.Z)
}

// Float returns v with float32 components.
func (v Vector3[T]) Float() Vec3 {
	return ConvertVector3[float32](v)
}
