package raster

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jaeseopark/lens-barrel-preview/internal/mathutil"
)

// Shading controls the schematic cylinder look of the barrel fill.
// Brightness at a lateral position t across the barrel is
// Ambient + Curvature*sqrt(1-(2t-1)^2) plus a Gaussian highlight band,
// scaled by a mild vertical lift toward the top of the card.
type Shading struct {
	Ambient   float64 // base brightness at the barrel edges
	Curvature float64 // lateral rounding strength
	Highlight float64 // specular band gain
	BandPos   float64 // highlight band center, 0..1 left to right
	BandWidth float64 // highlight band width fraction
	TopLight  float64 // vertical lift, + brightens the top half
}

// DefaultShading returns the standard barrel shading.
func DefaultShading() Shading {
	return Shading{
		Ambient:   0.62,
		Curvature: 0.46,
		Highlight: 0.22,
		BandPos:   0.36,
		BandWidth: 0.16,
		TopLight:  0.10,
	}
}

// shade returns the brightness multiplier at lateral position t in [0,1].
func (s Shading) shade(t float64) float64 {
	u := 2*t - 1
	curve := 1 - u*u
	if curve < 0 {
		curve = 0
	}
	v := s.Ambient + s.Curvature*math.Sqrt(curve)
	if s.Highlight > 0 && s.BandWidth > 0 {
		d := (t - s.BandPos) / s.BandWidth
		v += s.Highlight * math.Exp(-d*d)
	}
	return v
}

// fillBarrel paints the masked barrel region onto dst with cylinder
// shading. Mask coverage doubles as blend alpha, so the antialiased
// outline edge stays soft.
func fillBarrel(dst *image.NRGBA, mask *image.Alpha, base colorful.Color, s Shading) {
	if s == (Shading{}) {
		s = DefaultShading()
	}
	r8, g8, b8 := base.RGB255()
	br, bg, bb := float64(r8), float64(g8), float64(b8)

	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		lo, hi := rowExtent(row)
		if lo < 0 {
			continue
		}
		span := float64(hi - lo)
		yFrac := 0.0
		if h > 1 {
			yFrac = float64(y) / float64(h-1)
		}
		vert := 1 + s.TopLight*(1-2*yFrac)

		for x := lo; x <= hi; x++ {
			a := row[x]
			if a == 0 {
				continue
			}
			t := 0.5
			if span > 0 {
				t = float64(x-lo) / span
			}
			bright := s.shade(t) * vert
			sr := mathutil.Clamp8(br * bright)
			sg := mathutil.Clamp8(bg * bright)
			sb := mathutil.Clamp8(bb * bright)

			di := y*dst.Stride + x*4
			if a == 255 {
				dst.Pix[di] = sr
				dst.Pix[di+1] = sg
				dst.Pix[di+2] = sb
			} else {
				ia := int(255 - a)
				dst.Pix[di] = uint8((int(sr)*int(a) + int(dst.Pix[di])*ia + 127) / 255)
				dst.Pix[di+1] = uint8((int(sg)*int(a) + int(dst.Pix[di+1])*ia + 127) / 255)
				dst.Pix[di+2] = uint8((int(sb)*int(a) + int(dst.Pix[di+2])*ia + 127) / 255)
			}
			dst.Pix[di+3] = 255
		}
	}
}

// rowExtent returns the first and last covered column of a mask row,
// or (-1, -1) when the row is empty.
func rowExtent(row []uint8) (lo, hi int) {
	lo, hi = -1, -1
	for x, a := range row {
		if a != 0 {
			if lo < 0 {
				lo = x
			}
			hi = x
		}
	}
	return lo, hi
}
