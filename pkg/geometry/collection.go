package geometry

import "github.com/df07/go-yart/pkg/core"

// IntersectableCollection tests every child and keeps the nearest hit
type IntersectableCollection struct {
	Children []Intersectable
}

// NewIntersectableCollection creates a collection over the given children
func NewIntersectableCollection(children ...Intersectable) *IntersectableCollection {
	return &IntersectableCollection{Children: children}
}

// Add appends a child to the collection
func (c *IntersectableCollection) Add(child Intersectable) {
	c.Children = append(c.Children, child)
}

// Intersect returns the child hit with the smallest entrance distance. On
// ties the earlier child wins.
func (c *IntersectableCollection) Intersect(ray core.Ray) (Intersection, bool) {
	var closest Intersection
	hitAnything := false

	for _, child := range c.Children {
		intersection, hit := child.Intersect(ray)
		if !hit {
			continue
		}
		if !hitAnything || intersection.EntranceDistance < closest.EntranceDistance {
			closest = intersection
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of the children's boxes, or an empty box
// when there are no children
func (c *IntersectableCollection) BoundingBox() core.BoundingBox {
	box := core.NewInverseInfiniteBoundingBox()
	for _, child := range c.Children {
		box = box.Union(child.BoundingBox())
	}
	return box
}
