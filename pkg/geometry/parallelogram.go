package geometry

import (
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
)

// Parallelogram is the surface position + a*Edge1 + b*Edge2 for a, b in [0, 1].
// It is single sided: rays that approach from behind the Edge1 × Edge2 normal
// pass through. A parallelogram can also be sampled as an area light.
type Parallelogram struct {
	Position core.Vec3
	Edge1    core.Vec3
	Edge2    core.Vec3
	Material MaterialIndex

	normal core.Vec3
	area   float64
}

// NewParallelogram creates a parallelogram with corner position and the two edges
func NewParallelogram(position, edge1, edge2 core.Vec3, material MaterialIndex) *Parallelogram {
	cross := edge1.Cross(edge2)
	return &Parallelogram{
		Position: position,
		Edge1:    edge1,
		Edge2:    edge2,
		Material: material,
		normal:   cross.Normalize(),
		area:     cross.Length(),
	}
}

// Intersect tests the ray using the same determinant formulation as the
// triangle test, restricted to the unit square of edge fractions
func (p *Parallelogram) Intersect(ray core.Ray) (Intersection, bool) {
	pv := ray.Direction().Cross(p.Edge2)
	determinant := p.Edge1.Dot(pv)
	if determinant < 0 {
		return Intersection{}, false
	}

	invDet := 1 / determinant
	t := ray.Origin().Subtract(p.Position)

	a := invDet * t.Dot(pv)
	if a < 0 || a > 1 {
		return Intersection{}, false
	}

	q := t.Cross(p.Edge1)
	b := invDet * ray.Direction().Dot(q)
	if b < 0 || b > 1 {
		return Intersection{}, false
	}

	distance := invDet * p.Edge2.Dot(q)
	if distance >= 0 {
		return NewIntersection(p, distance, distance), true
	}
	return Intersection{}, false
}

func (p *Parallelogram) Normal(ray core.Ray, _ core.Vec3) core.Vec3 {
	return faceAgainst(ray, p.normal)
}

func (p *Parallelogram) MaterialIndex() MaterialIndex {
	return p.Material
}

// BoundingBox returns the box around the four corners
func (p *Parallelogram) BoundingBox() core.BoundingBox {
	return core.NewBoundingBoxFromPoints(
		p.Position,
		p.Position.Add(p.Edge1),
		p.Position.Add(p.Edge2),
		p.Position.Add(p.Edge1).Add(p.Edge2),
	)
}

// Area returns the surface area |Edge1 × Edge2|
func (p *Parallelogram) Area() float64 {
	return p.area
}

// PointOnLight samples a point uniformly over the surface
func (p *Parallelogram) PointOnLight(random *rand.Rand, _, _ core.Vec3) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	return p.Position.Add(p.Edge1.Multiply(r1)).Add(p.Edge2.Multiply(r2))
}

// DirectionTowardsLight returns the unit direction from hitPosition to a
// freshly sampled point on the surface
func (p *Parallelogram) DirectionTowardsLight(random *rand.Rand, hitPosition, hitNormal core.Vec3) core.Vec3 {
	return p.PointOnLight(random, hitPosition, hitNormal).Subtract(hitPosition).Normalize()
}

// IsInShadow reports whether something blocks the segment from hitPosition to pointOnLight
func (p *Parallelogram) IsInShadow(caster core.DistanceCaster, hitPosition, _, pointOnLight core.Vec3) bool {
	toLight := pointOnLight.Subtract(hitPosition)
	distanceToLight := toLight.Length()

	distance, hit := caster.CastRayDistance(core.NewRay(hitPosition, toLight.Normalize()))
	return hit && distance < distanceToLight-core.Epsilon
}

// InversePDF returns the Monte Carlo weight of a uniform area sample, which is the area
func (p *Parallelogram) InversePDF(_ *rand.Rand, _, _, _, _ core.Vec3) float64 {
	return p.area
}
