package geometry

import "github.com/df07/go-yart/pkg/core"

// MaterialIndex is a handle into the scene's material table. Slot 0 holds an
// inert black material, so 0 also means "no override" on an Intersection.
type MaterialIndex int

// Intersectable is any node of the geometry tree that can report the nearest
// hit of a ray inside its subtree
type Intersectable interface {
	Intersect(ray core.Ray) (Intersection, bool)
	BoundingBox() core.BoundingBox
}

// Geometry is a primitive surface that can be shaded
type Geometry interface {
	Intersectable

	// Normal returns the unit surface normal at hitPosition, oriented against the ray
	Normal(ray core.Ray, hitPosition core.Vec3) core.Vec3
	MaterialIndex() MaterialIndex
}

// BoundingVolume is a cheap conservative ray test used to skip subtrees
type BoundingVolume interface {
	RayIntersects(ray core.Ray) bool
}

// faceAgainst returns normal, flipped if needed so it opposes the ray direction
func faceAgainst(ray core.Ray, normal core.Vec3) core.Vec3 {
	if ray.Direction().Dot(normal) < 0 {
		return normal
	}
	return normal.Negate()
}
