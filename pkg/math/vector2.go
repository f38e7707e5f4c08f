package math

// Vector2 is a 2D vector.
type Vector2[T Number] struct {
	X, Y T
}

// V2 returns a Vector2 with the given components.
func V2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Neg returns -v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Scale returns v * s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// Div returns v / s.
func (v Vector2[T]) Div(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

// Dot returns the dot product.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude, computed without intermediate overflow.
func (v Vector2[T]) Length() T {
	return T(norm(float64(v.X), float64(v.Y)))
}

// Normalize scales v to unit length in place.
// A vector with zero or non-finite length is left unchanged and
// ErrDegenerateVector is returned.
func (v *Vector2[T]) Normalize() error {
	x, y := float64(v.X), float64(v.Y)
	l, ok := divisor(x, y)
	if !ok {
		return ErrDegenerateVector
	}
	*v = Vector2[T]{T(x / l), T(y / l)}
	return nil
}

// Normalized returns a unit-length copy of v, or the zero vector if v has no length.
func (v Vector2[T]) Normalized() Vector2[T] {
	if err := v.Normalize(); err != nil {
		return Vector2[T]{}
	}
	return v
}

// TryNormalized returns a unit-length copy of v or ErrDegenerateVector.
func (v Vector2[T]) TryNormalized() (Vector2[T], error) {
	err := v.Normalize()
	return v, err
}

// Lerp interpolates between v (t=0) and other (t=1). t is not clamped.
func (v Vector2[T]) Lerp(t float32, other Vector2[T]) Vector2[T] {
	return Vector2[T]{lerp(v.X, other.X, t), lerp(v.Y, other.Y, t)}
}

// Equal reports exact componentwise equality.
func (v Vector2[T]) Equal(other Vector2[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

// Pointer returns the address of the first component.
// The components are contiguous, so two values can be read from it.
func (v *Vector2[T]) Pointer() *T {
	return &v.X
}

// Write stores the components at the front of dst and returns the rest of dst.
func (v Vector2[T]) Write(dst []T) []T {
	_ = dst[1]
	dst[0], dst[1] = v.X, v.Y
	return dst[2:]
}

// Append appends the components to dst.
func (v Vector2[T]) Append(dst []T) []T {
	return append(dst, v.X, v.Y)
}

// Float returns v with float32 components.
func (v Vector2[T]) Float() Vec2 {
	return ConvertVector2[float32](v)
}
