package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// Phong is the classic ambient + diffuse + specular model over the scene's
// point and directional lights. Area lights do not contribute.
type Phong struct {
	Ambient   core.Color3
	Diffuse   core.Color3
	Specular  core.Color3
	Shininess float64
}

// NewPhong creates a new Phong material
func NewPhong(ambient, diffuse, specular core.Color3, shininess float64) *Phong {
	return &Phong{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

func (p *Phong) CalculateRenderingEquation(
	_ *rand.Rand,
	scene Scene,
	_ int,
	_ geometry.Geometry,
	hitPosition, hitNormal, incomingDirection core.Vec3,
) core.Color3 {
	var diffuse, specular core.Color3

	for _, light := range scene.GetLights() {
		toLight := light.DirectionTowardsLight(hitPosition, hitNormal)
		if light.IsInShadow(scene, hitPosition, hitNormal, toLight) {
			continue
		}

		lightDotNormal := toLight.Dot(hitNormal)
		if lightDotNormal < 0 {
			continue
		}
		diffuse = diffuse.Add(p.Diffuse.MultiplyColor(light.Color()).Multiply(lightDotNormal))

		reflectionDotView := toLight.Reflect(hitNormal).Dot(incomingDirection)
		if reflectionDotView >= 0 {
			highlight := math.Pow(reflectionDotView, p.Shininess)
			specular = specular.Add(p.Specular.MultiplyColor(light.Color()).Multiply(highlight))
		}
	}

	return p.Ambient.Add(diffuse).Add(specular)
}
