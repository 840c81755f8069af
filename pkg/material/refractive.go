package material

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// Refractive is a clear solid that bends light at entry and exit. There is no
// Fresnel reflection; total internal reflection at either interface renders black.
type Refractive struct {
	RefractiveIndex float64
}

// NewRefractive creates a new refractive material
func NewRefractive(refractiveIndex float64) *Refractive {
	return &Refractive{RefractiveIndex: refractiveIndex}
}

func (r *Refractive) CalculateRenderingEquation(
	random *rand.Rand,
	scene Scene,
	depth int,
	hitGeometry geometry.Geometry,
	hitPosition, hitNormal, incomingDirection core.Vec3,
) core.Color3 {
	refracted := core.Refract(incomingDirection, hitNormal, 1, r.RefractiveIndex)
	if refracted.LengthSquared() < core.Epsilon {
		return core.Color3{}
	}

	inside := core.NewRay(hitPosition, refracted.Normalize())
	intersection, ok := hitGeometry.Intersect(inside)
	if !ok {
		return core.Color3{}
	}
	exitPosition := inside.PositionAlong(intersection.ExitDistance)

	// Reversing the ray makes the normal face out of the solid
	exitNormal := hitGeometry.Normal(inside.Reverse(), exitPosition)
	exitPosition = exitPosition.Add(exitNormal.Multiply(core.NormalBump))

	outgoing := core.Refract(inside.Direction(), exitNormal.Negate(), r.RefractiveIndex, 1)
	if outgoing.LengthSquared() < core.Epsilon {
		return core.Color3{}
	}

	return scene.CastRayColor(random, core.NewRay(exitPosition, outgoing.Normalize()), depth+1)
}
