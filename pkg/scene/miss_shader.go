package scene

import "github.com/df07/go-yart/pkg/core"

// MissShader supplies the color of rays that hit nothing
type MissShader interface {
	Color(ray core.Ray) core.Color3
}

// ConstantMissShader returns the same color in every direction
type ConstantMissShader struct {
	Background core.Color3
}

// NewConstantMissShader creates a constant background
func NewConstantMissShader(color core.Color3) *ConstantMissShader {
	return &ConstantMissShader{Background: color}
}

func (c *ConstantMissShader) Color(_ core.Ray) core.Color3 {
	return c.Background
}

// GradientMissShader blends linearly from Bottom to Top with the height of
// the ray direction
type GradientMissShader struct {
	Top    core.Color3
	Bottom core.Color3
}

// NewGradientMissShader creates a vertical gradient background
func NewGradientMissShader(top, bottom core.Color3) *GradientMissShader {
	return &GradientMissShader{Top: top, Bottom: bottom}
}

func (g *GradientMissShader) Color(ray core.Ray) core.Color3 {
	unitDirection := ray.Direction().Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1)
	return g.Bottom.Multiply(1 - t).Add(g.Top.Multiply(t))
}
