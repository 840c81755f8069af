package core

import "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3FromValue creates a Vec3 with every component set to value
func NewVec3FromValue(value float64) Vec3 {
	return Vec3{X: value, Y: value, Z: value}
}

// Vec3FromColor3 reinterprets a color as a vector
func Vec3FromColor3(c Color3) Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds a scalar to every component
func (v Vec3) AddScalar(scalar float64) Vec3 {
	return Vec3{v.X + scalar, v.Y + scalar, v.Z + scalar}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractScalar subtracts a scalar from every component
func (v Vec3) SubtractScalar(scalar float64) Vec3 {
	return Vec3{v.X - scalar, v.Y - scalar, v.Z - scalar}
}

// ScalarSubtract returns scalar - v for every component
func (v Vec3) ScalarSubtract(scalar float64) Vec3 {
	return Vec3{scalar - v.X, scalar - v.Y, scalar - v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// ScalarDivide returns scalar / v for every component
func (v Vec3) ScalarDivide(scalar float64) Vec3 {
	return Vec3{scalar / v.X, scalar / v.Y, scalar / v.Z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points
func (v Vec3) Distance(other Vec3) float64 {
	return v.Subtract(other).Length()
}

// DistanceSquared returns the squared distance between two points
func (v Vec3) DistanceSquared(other Vec3) float64 {
	return v.Subtract(other).LengthSquared()
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero vector produces NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Abs returns the component-wise absolute value
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Exp returns the component-wise natural exponential
func (v Vec3) Exp() Vec3 {
	return Vec3{math.Exp(v.X), math.Exp(v.Y), math.Exp(v.Z)}
}

// Log returns the component-wise natural logarithm
func (v Vec3) Log() Vec3 {
	return Vec3{math.Log(v.X), math.Log(v.Y), math.Log(v.Z)}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Reciprocal returns 1/v for every component
func (v Vec3) Reciprocal() Vec3 {
	return v.ScalarDivide(1)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Index returns component i (0=X, 1=Y, 2=Z). Any other index returns X.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.X
	}
}

// Reflect mirrors the vector around the given unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// ProjectOnto returns the component of v along other
func (v Vec3) ProjectOnto(other Vec3) Vec3 {
	return other.Multiply(v.Dot(other) / other.Dot(other))
}

// BuildPerpendicularVector returns a vector perpendicular to v. It crosses v
// with the axis on which v has the smallest magnitude, without branching on
// the sign of any component.
func (v Vec3) BuildPerpendicularVector() Vec3 {
	a := v.Abs()

	var xm, ym uint8
	if a.X-a.Y < 0 && a.X-a.Z < 0 {
		xm = 1
	}
	if a.Y-a.Z < 0 {
		ym = 1 ^ xm
	}
	zm := 1 ^ (xm | ym)

	return v.Cross(NewVec3(float64(xm), float64(ym), float64(zm)))
}

// Refract bends a unit incoming direction through a surface whose unit normal
// faces against it, going from a medium with index fromIndex into toIndex.
// Total internal reflection returns the zero vector.
func Refract(incoming, normal Vec3, fromIndex, toIndex float64) Vec3 {
	n := fromIndex / toIndex
	cos := -incoming.Dot(normal)

	k := 1 - n*n*(1-cos*cos)
	if k < 0 {
		return Vec3{}
	}
	return incoming.Multiply(n).Add(normal.Multiply(n*cos - math.Sqrt(k)))
}

// SchlickApproximation estimates the Fresnel reflectance at an interface
func SchlickApproximation(incoming, normal Vec3, fromIndex, toIndex float64) float64 {
	r := (fromIndex / toIndex) / (fromIndex + toIndex)
	r2 := r * r

	x := 1 + incoming.Dot(normal)
	return r2 + (1-r2)*x*x*x*x*x
}
