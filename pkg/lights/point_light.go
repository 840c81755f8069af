package lights

import "github.com/df07/go-yart/pkg/core"

// PointLight emits from a single position
type PointLight struct {
	Position  core.Vec3
	Intensity core.Color3
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, color core.Color3) *PointLight {
	return &PointLight{Position: position, Intensity: color}
}

func (pl *PointLight) Color() core.Color3 {
	return pl.Intensity
}

func (pl *PointLight) DirectionTowardsLight(hitPosition, _ core.Vec3) core.Vec3 {
	return pl.Position.Subtract(hitPosition).Normalize()
}

// IsInShadow reports a shadow only when the nearest hit lies before the light,
// with core.Epsilon of slack at the light's own distance
func (pl *PointLight) IsInShadow(caster core.DistanceCaster, hitPosition, _, _ core.Vec3) bool {
	toLight := pl.Position.Subtract(hitPosition)
	distanceToLight := toLight.Length()

	distance, hit := caster.CastRayDistance(core.NewRay(hitPosition, toLight.Normalize()))
	return hit && distance < distanceToLight-core.Epsilon
}
