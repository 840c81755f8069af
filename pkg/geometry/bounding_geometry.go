package geometry

import "github.com/df07/go-yart/pkg/core"

// BoundingGeometry only descends into its child when the ray hits the volume
type BoundingGeometry struct {
	Volume BoundingVolume
	Child  Intersectable
}

// NewBoundingGeometry gates child behind volume
func NewBoundingGeometry(volume BoundingVolume, child Intersectable) *BoundingGeometry {
	return &BoundingGeometry{Volume: volume, Child: child}
}

func (bg *BoundingGeometry) Intersect(ray core.Ray) (Intersection, bool) {
	if !bg.Volume.RayIntersects(ray) {
		return Intersection{}, false
	}
	return bg.Child.Intersect(ray)
}

func (bg *BoundingGeometry) BoundingBox() core.BoundingBox {
	return bg.Child.BoundingBox()
}

// BoundingSphere is a spherical bounding volume
type BoundingSphere struct {
	Center core.Vec3
	Radius float64
}

// NewBoundingSphere creates a sphere that encloses box
func NewBoundingSphere(box core.BoundingBox) BoundingSphere {
	center := box.Center()
	return BoundingSphere{Center: center, Radius: box.Max.Subtract(center).Length()}
}

// RayIntersects reports whether the ray passes through the sphere ahead of its origin
func (bs BoundingSphere) RayIntersects(ray core.Ray) bool {
	_, hit := (&Sphere{Center: bs.Center, Radius: bs.Radius}).Intersect(ray)
	return hit
}
