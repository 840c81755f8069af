package material

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
)

// Scene is what materials need from the renderer's scene: recursive color
// casts, shadow queries and the light lists
type Scene interface {
	core.DistanceCaster

	CastRayColor(random *rand.Rand, ray core.Ray, depth int) core.Color3
	GetLights() []lights.Light
	GetAreaLights() []lights.AreaLight
}

// Material evaluates outgoing radiance at a surface point
type Material interface {
	// CalculateRenderingEquation returns the color seen along incomingDirection
	// at hitPosition. Secondary rays are cast through scene at depth+1.
	CalculateRenderingEquation(
		random *rand.Rand,
		scene Scene,
		depth int,
		hitGeometry geometry.Geometry,
		hitPosition, hitNormal, incomingDirection core.Vec3,
	) core.Color3
}
