package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/df07/go-yart/pkg/core"
)

// ToImage converts a linear pixel buffer to 8-bit RGBA. Each channel is
// clamped to [clamp.X, clamp.Y] and mapped linearly onto 0..255.
func ToImage(pixels []core.Color3, width, height int, clamp core.Vec2) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.R, clamp),
				G: toByte(c.G, clamp),
				B: toByte(c.B, clamp),
				A: 255,
			})
		}
	}

	return img
}

// ToImageWithGamma is ToImage followed by gamma correction of the 8-bit
// channels. A gamma of 1 or less than or equal to 0 leaves the image as is.
func ToImageWithGamma(pixels []core.Color3, width, height int, clamp core.Vec2, gamma float64) *image.RGBA {
	img := ToImage(pixels, width, height, clamp)
	if gamma <= 0 || gamma == 1 {
		return img
	}
	return adjust.Gamma(img, gamma)
}

func toByte(value float64, clamp core.Vec2) uint8 {
	span := clamp.Y - clamp.X
	if span <= 0 || math.IsNaN(value) {
		return 0
	}

	t := (max(clamp.X, min(clamp.Y, value)) - clamp.X) / span
	return uint8(t * 255)
}
