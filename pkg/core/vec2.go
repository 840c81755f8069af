package core

import "math"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2FromValue creates a Vec2 with both components set to value
func NewVec2FromValue(value float64) Vec2 {
	return Vec2{X: value, Y: value}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Divide(scalar float64) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

func (v Vec2) MultiplyVec(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) DivideVec(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// ScalarDivide returns scalar / v for every component
func (v Vec2) ScalarDivide(scalar float64) Vec2 {
	return Vec2{scalar / v.X, scalar / v.Y}
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// A zero vector produces NaN components.
func (v Vec2) Normalize() Vec2 {
	return v.Divide(v.Length())
}

func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

func (v Vec2) Reciprocal() Vec2 {
	return v.ScalarDivide(1)
}

// Index returns component i (0=X, 1=Y). Any other index returns X.
func (v Vec2) Index(i int) float64 {
	if i == 1 {
		return v.Y
	}
	return v.X
}
