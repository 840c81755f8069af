package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
)

// Lambertian represents a perfectly diffuse material lit by the scene's area
// lights. Each evaluation takes one sample toward one randomly chosen light.
type Lambertian struct {
	Albedo core.Color3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// CalculateRenderingEquation estimates direct lighting as
// (1/π) · albedo · Li · inversePDF · max(0, n·ωo). Scenes without area lights
// render black.
func (l *Lambertian) CalculateRenderingEquation(
	random *rand.Rand,
	scene Scene,
	depth int,
	_ geometry.Geometry,
	hitPosition, hitNormal, incomingDirection core.Vec3,
) core.Color3 {
	areaLight, ok := lights.ChooseAreaLight(random, scene.GetAreaLights())
	if !ok {
		return core.Color3{}
	}

	outgoing := areaLight.DirectionTowardsLight(random, hitPosition, hitNormal)
	incomingRadiance := scene.CastRayColor(random, core.NewRay(hitPosition, outgoing), depth+1)

	inversePDF := areaLight.InversePDF(random, hitPosition, hitNormal, incomingDirection, outgoing)
	cosTheta := math.Max(0, hitNormal.Dot(outgoing))

	return l.Albedo.
		MultiplyColor(incomingRadiance).
		Multiply(core.OneOverPi * inversePDF * cosTheta)
}
