package core

import "math"

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewVec4FromValue creates a Vec4 with every component set to value
func NewVec4FromValue(value float64) Vec4 {
	return Vec4{X: value, Y: value, Z: value, W: value}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4) Divide(scalar float64) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

func (v Vec4) MultiplyVec(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) DivideVec(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// ScalarDivide returns scalar / v for every component
func (v Vec4) ScalarDivide(scalar float64) Vec4 {
	return Vec4{scalar / v.X, scalar / v.Y, scalar / v.Z, scalar / v.W}
}

func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// A zero vector produces NaN components.
func (v Vec4) Normalize() Vec4 {
	return v.Divide(v.Length())
}

func (v Vec4) Abs() Vec4 {
	return Vec4{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)}
}

func (v Vec4) Min(other Vec4) Vec4 {
	return Vec4{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z), math.Min(v.W, other.W)}
}

func (v Vec4) Max(other Vec4) Vec4 {
	return Vec4{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z), math.Max(v.W, other.W)}
}

func (v Vec4) Reciprocal() Vec4 {
	return v.ScalarDivide(1)
}

// Index returns component i (0=X, 1=Y, 2=Z, 3=W). Any other index returns X.
func (v Vec4) Index(i int) float64 {
	switch i {
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		return v.X
	}
}
