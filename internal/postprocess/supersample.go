// Package postprocess reduces supersampled renders to their final size.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/jaeseopark/lens-barrel-preview/internal/mathutil"
)

// Downsample reduces an image to the target size with premultiplied-alpha
// Catmull-Rom filtering. Premultiplying first prevents dark halo artifacts
// at transparent edges. Images already at the target size pass through.
func Downsample(img *image.NRGBA, targetW, targetH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == targetW && b.Dy() == targetH {
		return img
	}

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	// Scale with CatmullRom (approximates Lanczos)
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = mathutil.Clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = mathutil.Clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = mathutil.Clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}
