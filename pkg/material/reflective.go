package material

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// Reflective is a perfect mirror
type Reflective struct{}

// NewReflective creates a new mirror material
func NewReflective() *Reflective {
	return &Reflective{}
}

func (r *Reflective) CalculateRenderingEquation(
	random *rand.Rand,
	scene Scene,
	depth int,
	_ geometry.Geometry,
	hitPosition, hitNormal, incomingDirection core.Vec3,
) core.Color3 {
	direction := incomingDirection.Reflect(hitNormal).Normalize()
	return scene.CastRayColor(random, core.NewRay(hitPosition, direction), depth+1)
}
