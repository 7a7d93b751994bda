// pkg/render/reticle.go
package render

import (
	"image"
	"image/color"

	"github.com/opd-ai/go-hovercraft/pkg/config"
)

// ReticleStyle is the static look of the target marker: a square outline
// whose border thickness is a fraction of the marker size.
type ReticleStyle struct {
	BorderWidth float64 // fraction of the reticle size, in [0, 1]
	Border      color.RGBA
	Fill        color.RGBA
}

// StyleFromConfig builds a ReticleStyle from configuration
func StyleFromConfig(cfg config.ReticleConfig) ReticleStyle {
	return ReticleStyle{
		BorderWidth: cfg.BorderWidth,
		Border:      color.RGBA{R: cfg.BorderColor.R, G: cfg.BorderColor.G, B: cfg.BorderColor.B, A: cfg.BorderColor.A},
		Fill:        color.RGBA{R: cfg.FillColor.R, G: cfg.FillColor.G, B: cfg.FillColor.B, A: cfg.FillColor.A},
	}
}

// EdgeDistance returns the minimum distance from a point in the unit
// square to any of the square's four edges. Points outside the square
// yield negative distances.
func EdgeDistance(u, v float64) float64 {
	d := u
	if 1-u < d {
		d = 1 - u
	}
	if v < d {
		d = v
	}
	if 1-v < d {
		d = 1 - v
	}
	return d
}

// Evaluate decides the color of one sample of the reticle. A sample closer
// to an edge than the border width is opaque border; everything else is
// the transparent fill. The boundary itself is fill: the comparison is
// strictly less-than.
func Evaluate(u, v float64, style ReticleStyle) color.RGBA {
	if EdgeDistance(u, v) < style.BorderWidth {
		return style.Border
	}
	return style.Fill
}

// Rasterize renders the reticle into a size x size image by evaluating
// every texel at its center. Backends upload this as the marker texture
// for the currently selected target.
func Rasterize(style ReticleStyle, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		v := (float64(y) + 0.5) / float64(size)
		for x := 0; x < size; x++ {
			u := (float64(x) + 0.5) / float64(size)
			img.SetNRGBA(x, y, nrgba(Evaluate(u, v, style)))
		}
	}
	return img
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
