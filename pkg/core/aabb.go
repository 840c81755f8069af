package core

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewBoundingBox creates a new box from min and max points
func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// NewInfiniteBoundingBox returns a box that encloses all of space
func NewInfiniteBoundingBox() BoundingBox {
	return BoundingBox{
		Min: NewVec3FromValue(math.Inf(-1)),
		Max: NewVec3FromValue(math.Inf(1)),
	}
}

// NewInverseInfiniteBoundingBox returns a box that encloses nothing. It is
// the identity for AddPoint and Union.
func NewInverseInfiniteBoundingBox() BoundingBox {
	return BoundingBox{
		Min: NewVec3FromValue(math.Inf(1)),
		Max: NewVec3FromValue(math.Inf(-1)),
	}
}

// NewBoundingBoxFromPoints creates a box that bounds all given points
func NewBoundingBoxFromPoints(points ...Vec3) BoundingBox {
	box := NewInverseInfiniteBoundingBox()
	for _, point := range points {
		box = box.AddPoint(point)
	}
	return box
}

// AddPoint grows the box to contain the point
func (b BoundingBox) AddPoint(point Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Min(point), Max: b.Max.Max(point)}
}

// Union returns a box that bounds both this box and another
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// AddMargin expands the box by margin on each side
func (b BoundingBox) AddMargin(margin Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Subtract(margin), Max: b.Max.Add(margin)}
}

// Center returns the center point of the box
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b BoundingBox) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b BoundingBox) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsEmpty reports whether the box encloses no points
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Contains reports whether the point lies inside the box, boundary included
func (b BoundingBox) Contains(point Vec3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// RayIntersects tests the ray against the box using the slab method. The
// cached inverse direction makes axis-parallel rays produce infinite slab
// distances instead of needing a special case. NaN distances (ray origin on a
// slab plane with a zero direction component) never tighten the interval.
func (b BoundingBox) RayIntersects(ray Ray) bool {
	origin := ray.Origin()
	inverse := ray.InverseDirection()

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		near := b.Min.Index(axis)
		far := b.Max.Index(axis)
		inv := inverse.Index(axis)
		if math.Signbit(inv) {
			near, far = far, near
		}

		o := origin.Index(axis)
		t0 := (near - o) * inv
		t1 := (far - o) * inv

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
	}

	return tMax >= 0 && tMin <= tMax
}
