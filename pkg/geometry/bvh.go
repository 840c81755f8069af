package geometry

import (
	"sort"

	"github.com/df07/go-yart/pkg/core"
)

// maxLeafCount is how many leaves the hierarchy builder partitions children into
const maxLeafCount = 8

// BoundingBoxLeaf is a collection gated by the box around its children
type BoundingBoxLeaf struct {
	Box        core.BoundingBox
	Collection *IntersectableCollection
}

// NewBoundingBoxLeaf wraps children in a collection and computes their box
func NewBoundingBoxLeaf(children []Intersectable) *BoundingBoxLeaf {
	collection := NewIntersectableCollection(children...)
	return &BoundingBoxLeaf{
		Box:        collection.BoundingBox(),
		Collection: collection,
	}
}

func (l *BoundingBoxLeaf) Intersect(ray core.Ray) (Intersection, bool) {
	if !l.Box.RayIntersects(ray) {
		return Intersection{}, false
	}
	return l.Collection.Intersect(ray)
}

func (l *BoundingBoxLeaf) BoundingBox() core.BoundingBox {
	return l.Box
}

// BuildBoundingBoxHierarchy partitions children along the longest axis of
// their combined box. Children are sorted by box center on that axis and cut
// into at most eight equally sized runs, each becoming a BoundingBoxLeaf. The
// leaves are returned in a single collection. depth is reserved for recursive
// subdivision and currently unused.
func BuildBoundingBoxHierarchy(children []Intersectable, depth int) *IntersectableCollection {
	if len(children) == 0 {
		return NewIntersectableCollection()
	}

	// Copy so callers keep their original ordering
	sorted := make([]Intersectable, len(children))
	copy(sorted, children)

	bounds := core.NewInverseInfiniteBoundingBox()
	for _, child := range sorted {
		bounds = bounds.Union(child.BoundingBox())
	}
	axis := bounds.LongestAxis()

	sortByAxis(sorted, axis)

	chunkSize := max(1, (len(sorted)+maxLeafCount-1)/maxLeafCount)

	root := NewIntersectableCollection()
	for start := 0; start < len(sorted); start += chunkSize {
		end := min(start+chunkSize, len(sorted))
		root.Add(NewBoundingBoxLeaf(sorted[start:end:end]))
	}

	return root
}

// sortByAxis sorts children by their bounding box center along the specified axis
func sortByAxis(children []Intersectable, axis int) {
	type keyed struct {
		child  Intersectable
		center float64
	}

	keys := make([]keyed, len(children))
	for i, child := range children {
		keys[i] = keyed{child: child, center: child.BoundingBox().Center().Index(axis)}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].center < keys[j].center
	})

	for i, k := range keys {
		children[i] = k.child
	}
}
