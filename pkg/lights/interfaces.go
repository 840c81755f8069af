package lights

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// Light is a delta light (point or directional) used by Phong shading
type Light interface {
	Color() core.Color3

	// DirectionTowardsLight returns the unit direction from hitPosition to the light
	DirectionTowardsLight(hitPosition, hitNormal core.Vec3) core.Vec3

	// IsInShadow casts a shadow ray through caster and reports whether the light is blocked
	IsInShadow(caster core.DistanceCaster, hitPosition, hitNormal, directionToLight core.Vec3) bool
}

// AreaLight is a surface that can be sampled for next event estimation
type AreaLight interface {
	// PointOnLight samples a point uniformly over the light's surface
	PointOnLight(random *rand.Rand, hitPosition, hitNormal core.Vec3) core.Vec3

	// DirectionTowardsLight returns the unit direction to a freshly sampled point
	DirectionTowardsLight(random *rand.Rand, hitPosition, hitNormal core.Vec3) core.Vec3

	// IsInShadow reports whether something blocks the segment to pointOnLight
	IsInShadow(caster core.DistanceCaster, hitPosition, hitNormal, pointOnLight core.Vec3) bool

	// InversePDF is the Monte Carlo weight of one sample
	InversePDF(random *rand.Rand, hitPosition, hitNormal, incomingDirection, outgoingDirection core.Vec3) float64
}

var _ AreaLight = (*geometry.Parallelogram)(nil)
