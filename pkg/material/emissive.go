package material

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// Emissive returns a constant color and never recurses
type Emissive struct {
	Emission core.Color3
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Color3) *Emissive {
	return &Emissive{Emission: emission}
}

func (e *Emissive) CalculateRenderingEquation(_ *rand.Rand, _ Scene, _ int, _ geometry.Geometry, _, _, _ core.Vec3) core.Color3 {
	return e.Emission
}
