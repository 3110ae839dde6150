package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelMargin is the gap between the top edge and the label, in pixels.
const labelMargin = 8

// DrawLabel draws text centered near the top edge of the card, where the
// height margin leaves headroom above the barrel. Empty text is a no-op.
// Call this after downsampling: the bitmap face has one fixed size.
func DrawLabel(img *image.NRGBA, text string, col color.NRGBA) {
	if text == "" {
		return
	}

	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	b := img.Bounds()
	x := (b.Dx() - w) / 2
	if x < 2 {
		x = 2
	}
	y := labelMargin + face.Ascent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(b.Min.X+x, b.Min.Y+y),
	}
	d.DrawString(text)
}
