package renderer

import (
	"image"
	"math/rand"
)

// Patch is a rectangular block of pixels rendered as one unit of work
type Patch struct {
	ID     int             // Position in the grid, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Patch-private generator; only the worker holding the patch uses it
}

// NewPatch creates a patch whose generator is seeded from seed and the patch ID
func NewPatch(id int, bounds image.Rectangle, seed int64) *Patch {
	return &Patch{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewPatchGrid covers a width x height image with square patches. Patches on
// the right and bottom edges are clipped to the image.
func NewPatchGrid(width, height, patchSize int, seed int64) []*Patch {
	patchesX := (width + patchSize - 1) / patchSize
	patchesY := (height + patchSize - 1) / patchSize
	patches := make([]*Patch, 0, patchesX*patchesY)

	for py := 0; py < patchesY; py++ {
		for px := 0; px < patchesX; px++ {
			x0 := px * patchSize
			y0 := py * patchSize
			x1 := min(x0+patchSize, width)
			y1 := min(y0+patchSize, height)

			patches = append(patches, NewPatch(len(patches), image.Rect(x0, y0, x1, y1), seed))
		}
	}

	return patches
}
