package skybiten

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
)

var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// glowImage is a round, soft particle sprite.
var glowImage = sync.OnceValue(func() *ebiten.Image {
	const size = 32

	pixels := make([]byte, 4*size*size)

	for y := range size {
		for x := range size {
			dx := (float64(x) + 0.5 - size/2) / (size / 2)
			dy := (float64(y) + 0.5 - size/2) / (size / 2)

			alpha := 1 - math.Sqrt(dx*dx+dy*dy)
			alpha = max(0, min(1, alpha))
			alpha *= alpha

			value := byte(alpha * 255)

			// premultiplied white
			idx := 4 * (y*size + x)
			pixels[idx+0] = value
			pixels[idx+1] = value
			pixels[idx+2] = value
			pixels[idx+3] = value
		}
	}

	img := ebiten.NewImage(size, size)
	img.WritePixels(pixels)
	return img
})

// Material describes how the device shades a mesh or particles.
type Material struct {
	Name  string
	Color color.Color

	// unlit materials ignore all lights
	Unlit bool

	// sprite used for particles, defaults to a plain square
	Image func() *ebiten.Image
}

var _ gfx.Material = (*Material)(nil)

func (m *Material) MaterialName() string {
	return m.Name
}

func (m *Material) image() *ebiten.Image {
	if m == nil || m.Image == nil {
		return whiteImage()
	}

	return m.Image()
}

// materialOf returns the material as *Material, or a plain white
// lit material for foreign implementations.
func materialOf(material gfx.Material) *Material {
	if m, ok := material.(*Material); ok && m != nil {
		return m
	}

	return &defaultMaterial
}

var defaultMaterial = Material{Name: "default", Color: color.White}
