package geometry

import "github.com/df07/go-yart/pkg/core"

// Triangle represents a triangle with per-vertex normals for smooth shading
type Triangle struct {
	V0, V1, V2 core.Vec3 // Vertices
	N0, N1, N2 core.Vec3 // Vertex normals
	Material   MaterialIndex
}

// NewTriangle creates a smooth-shaded triangle
func NewTriangle(v0, v1, v2, n0, n1, n2 core.Vec3, material MaterialIndex) *Triangle {
	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		Material: material,
	}
}

// NewFlatTriangle creates a triangle whose vertex normals all equal the face normal
func NewFlatTriangle(v0, v1, v2 core.Vec3, material MaterialIndex) *Triangle {
	n := FaceNormal(v0, v1, v2)
	return NewTriangle(v0, v1, v2, n, n, n, material)
}

// FaceNormal returns the unit normal of the triangle (v0, v1, v2) with
// counter-clockwise winding
func FaceNormal(v0, v1, v2 core.Vec3) core.Vec3 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
}

// Intersect uses the Möller–Trumbore algorithm. There is no parallel-ray
// guard: a zero determinant yields Inf/NaN barycentrics which fail the
// range checks.
func (tr *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction().Cross(edge2)
	a := edge1.Dot(h)

	f := 1 / a
	s := ray.Origin().Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction().Dot(q)
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	distance := f * edge2.Dot(q)
	if distance >= 0 {
		return NewIntersection(tr, distance, distance), true
	}
	return Intersection{}, false
}

// Barycentric returns the weights of V0, V1 and V2 for a point in the triangle's plane
func (tr *Triangle) Barycentric(point core.Vec3) core.Vec3 {
	e0 := tr.V1.Subtract(tr.V0)
	e1 := tr.V2.Subtract(tr.V0)
	e2 := point.Subtract(tr.V0)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	invDenominator := 1 / (d00*d11 - d01*d01)
	v := (d11*d20 - d01*d21) * invDenominator
	w := (d00*d21 - d01*d20) * invDenominator

	return core.NewVec3(1-v-w, v, w)
}

// Normal interpolates the vertex normals at hitPosition, oriented against the ray
func (tr *Triangle) Normal(ray core.Ray, hitPosition core.Vec3) core.Vec3 {
	b := tr.Barycentric(hitPosition)
	normal := tr.N0.Multiply(b.X).
		Add(tr.N1.Multiply(b.Y)).
		Add(tr.N2.Multiply(b.Z)).
		Normalize()
	return faceAgainst(ray, normal)
}

func (tr *Triangle) MaterialIndex() MaterialIndex {
	return tr.Material
}

// BoundingBox returns the box around the three vertices
func (tr *Triangle) BoundingBox() core.BoundingBox {
	return core.NewBoundingBoxFromPoints(tr.V0, tr.V1, tr.V2)
}
