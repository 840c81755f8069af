package lights

import "github.com/df07/go-yart/pkg/core"

// DirectionalLight is infinitely far away and shines along Direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels
	Intensity core.Color3

	reversed core.Vec3
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(direction core.Vec3, color core.Color3) *DirectionalLight {
	d := direction.Normalize()
	return &DirectionalLight{
		Direction: d,
		Intensity: color,
		reversed:  d.Negate(),
	}
}

func (dl *DirectionalLight) Color() core.Color3 {
	return dl.Intensity
}

func (dl *DirectionalLight) DirectionTowardsLight(_, _ core.Vec3) core.Vec3 {
	return dl.reversed
}

// IsInShadow treats any hit along the reversed direction as an occluder
func (dl *DirectionalLight) IsInShadow(caster core.DistanceCaster, hitPosition, _, _ core.Vec3) bool {
	_, hit := caster.CastRayDistance(core.NewRay(hitPosition, dl.reversed))
	return hit
}
