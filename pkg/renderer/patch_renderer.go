package renderer

import (
	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/scene"
)

// renderPatch adds one iteration of every pixel in patch to accum, a
// row-major buffer of the given width. Each pixel receives the mean of its
// subpixel samples. Returns the number of primary rays cast.
func renderPatch(s *scene.Scene, patch *Patch, accum []core.Color3, width int) int {
	count := s.Camera.SubpixelCount()
	weight := 1.0 / float64(count*count)
	rays := 0

	for y := patch.Bounds.Min.Y; y < patch.Bounds.Max.Y; y++ {
		for x := patch.Bounds.Min.X; x < patch.Bounds.Max.X; x++ {
			var pixel core.Color3
			for sy := 0; sy < count; sy++ {
				for sx := 0; sx < count; sx++ {
					ray := s.Camera.CreateRay(x, y, sx, sy)
					pixel = pixel.Add(s.CastRayColor(patch.Random, ray, 1).Multiply(weight))
					rays++
				}
			}
			accum[y*width+x] = accum[y*width+x].Add(pixel)
		}
	}

	return rays
}
