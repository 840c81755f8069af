package core

import "math"

// Color3 represents an RGB color with unbounded linear components
type Color3 struct {
	R, G, B float64
}

// NewColor3 creates a new Color3
func NewColor3(r, g, b float64) Color3 {
	return Color3{R: r, G: g, B: b}
}

// NewColor3FromValue creates a gray Color3
func NewColor3FromValue(value float64) Color3 {
	return Color3{R: value, G: value, B: value}
}

// Color3FromVec3 reinterprets a vector as a color
func Color3FromVec3(v Vec3) Color3 {
	return Color3{R: v.X, G: v.Y, B: v.Z}
}

func (c Color3) Add(other Color3) Color3 {
	return Color3{c.R + other.R, c.G + other.G, c.B + other.B}
}

func (c Color3) Subtract(other Color3) Color3 {
	return Color3{c.R - other.R, c.G - other.G, c.B - other.B}
}

func (c Color3) Negate() Color3 {
	return Color3{-c.R, -c.G, -c.B}
}

// Multiply scales the color by a scalar
func (c Color3) Multiply(scalar float64) Color3 {
	return Color3{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide divides the color by a scalar
func (c Color3) Divide(scalar float64) Color3 {
	return Color3{c.R / scalar, c.G / scalar, c.B / scalar}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color3) MultiplyColor(other Color3) Color3 {
	return Color3{c.R * other.R, c.G * other.G, c.B * other.B}
}

// DivideColor returns the component-wise quotient of two colors
func (c Color3) DivideColor(other Color3) Color3 {
	return Color3{c.R / other.R, c.G / other.G, c.B / other.B}
}

// ScalarDivide returns scalar / c for every component
func (c Color3) ScalarDivide(scalar float64) Color3 {
	return Color3{scalar / c.R, scalar / c.G, scalar / c.B}
}

func (c Color3) Dot(other Color3) float64 {
	return c.R*other.R + c.G*other.G + c.B*other.B
}

func (c Color3) Abs() Color3 {
	return Color3{math.Abs(c.R), math.Abs(c.G), math.Abs(c.B)}
}

func (c Color3) Exp() Color3 {
	return Color3{math.Exp(c.R), math.Exp(c.G), math.Exp(c.B)}
}

func (c Color3) Log() Color3 {
	return Color3{math.Log(c.R), math.Log(c.G), math.Log(c.B)}
}

func (c Color3) Min(other Color3) Color3 {
	return Color3{math.Min(c.R, other.R), math.Min(c.G, other.G), math.Min(c.B, other.B)}
}

func (c Color3) Max(other Color3) Color3 {
	return Color3{math.Max(c.R, other.R), math.Max(c.G, other.G), math.Max(c.B, other.B)}
}

// Clamp returns a color with components clamped to [min, max]
func (c Color3) Clamp(minVal, maxVal float64) Color3 {
	return Color3{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// GammaCorrect applies gamma correction to color values
func (c Color3) GammaCorrect(gamma float64) Color3 {
	invGamma := 1.0 / gamma
	return Color3{
		R: math.Pow(c.R, invGamma),
		G: math.Pow(c.G, invGamma),
		B: math.Pow(c.B, invGamma),
	}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color3) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Index returns channel i (0=R, 1=G, 2=B). Any other index returns R.
func (c Color3) Index(i int) float64 {
	switch i {
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.R
	}
}

// IsBlack reports whether every channel is zero
func (c Color3) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Color4 represents an RGBA color
type Color4 struct {
	R, G, B, A float64
}

// NewColor4 creates a new Color4
func NewColor4(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// NewColor4FromColor3 extends an RGB color with an alpha channel
func NewColor4FromColor3(c Color3, alpha float64) Color4 {
	return Color4{R: c.R, G: c.G, B: c.B, A: alpha}
}

func (c Color4) Add(other Color4) Color4 {
	return Color4{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

func (c Color4) Subtract(other Color4) Color4 {
	return Color4{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

func (c Color4) Multiply(scalar float64) Color4 {
	return Color4{c.R * scalar, c.G * scalar, c.B * scalar, c.A * scalar}
}

func (c Color4) Divide(scalar float64) Color4 {
	return Color4{c.R / scalar, c.G / scalar, c.B / scalar, c.A / scalar}
}

func (c Color4) MultiplyColor(other Color4) Color4 {
	return Color4{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// RGB drops the alpha channel
func (c Color4) RGB() Color3 {
	return Color3{R: c.R, G: c.G, B: c.B}
}

// Index returns channel i (0=R, 1=G, 2=B, 3=A). Any other index returns R.
func (c Color4) Index(i int) float64 {
	switch i {
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	default:
		return c.R
	}
}
