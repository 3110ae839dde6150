// Package raster renders lens preview cards: a background gradient, the
// camera body photo, a soft drop shadow, and the shaded barrel outline.
package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jaeseopark/lens-barrel-preview/internal/camera"
	"github.com/jaeseopark/lens-barrel-preview/internal/mathutil"
	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
	"github.com/jaeseopark/lens-barrel-preview/internal/theme"
)

const (
	// bodyWidthRatio is the camera photo width as a fraction of card width
	// before the config transform scale applies.
	bodyWidthRatio = 0.88

	shadowOpacity = 0.35
	shadowOffsetX = 2.0 // card pixels
	shadowOffsetY = 3.0
	shadowRadius  = 5.0
)

// CardSpec describes one card render.
type CardSpec struct {
	Polygon     []silhouette.Point // barrel outline in card-resolution space
	Tags        []string           // lens tags, drive the background color
	Width       int                // final card size in pixels
	Height      int
	Supersample int              // render scale factor, <1 treated as 1
	Body        *image.NRGBA     // camera photo, nil renders without one
	Transform   camera.Transform // body placement, zero Scale uses the default
	Theme       *theme.Theme     // nil uses the default palette
	Shading     Shading          // zero value uses DefaultShading
}

// RenderCard draws one card at supersampled resolution. Callers
// downsample the result and add the label once it is at final size.
// Draw order matters: the barrel is painted last so it occludes the
// camera body at the mount, matching the top-down view.
func RenderCard(spec CardSpec) *image.NRGBA {
	k := spec.Supersample
	if k < 1 {
		k = 1
	}
	w, h := spec.Width*k, spec.Height*k
	th := spec.Theme
	if th == nil {
		th = theme.Default()
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top, bottom := theme.BackgroundStops(th.CardBackground(spec.Tags))
	fillVertical(img, top, bottom)

	if spec.Body != nil {
		drawBody(img, spec.Body, spec.Transform, k)
	}

	mask := Mask(scalePolygon(spec.Polygon, float64(k)), w, h)
	drawShadow(img, mask, k)
	fillBarrel(img, mask, th.Barrel, spec.Shading)

	return img
}

// fillVertical paints a top-to-bottom gradient between two stops.
func fillVertical(img *image.NRGBA, top, bottom colorful.Color) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r := mathutil.Clamp8(255 * mathutil.Lerp(top.R, bottom.R, t))
		g := mathutil.Clamp8(255 * mathutil.Lerp(top.G, bottom.G, t))
		bl := mathutil.Clamp8(255 * mathutil.Lerp(top.B, bottom.B, t))
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			row[x] = r
			row[x+1] = g
			row[x+2] = bl
			row[x+3] = 255
		}
	}
}

// drawBody composes the camera photo bottom-center. The photo is fitted
// to the card width, then the config transform scales and offsets it.
func drawBody(img *image.NRGBA, body *image.NRGBA, tf camera.Transform, k int) {
	if tf.Scale == 0 {
		tf.Scale = camera.DefaultBodyScale
	}
	srcW, srcH := body.Bounds().Dx(), body.Bounds().Dy()
	if srcW == 0 || srcH == 0 {
		return
	}
	b := img.Bounds()
	bw := int(float64(b.Dx())*bodyWidthRatio*tf.Scale + 0.5)
	if bw < 1 {
		return
	}
	bh := bw * srcH / srcW
	if bh < 1 {
		return
	}
	resized := imaging.Resize(body, bw, bh, imaging.Lanczos)

	x := (b.Dx()-bw)/2 + int(tf.TranslateX*float64(k))
	y := b.Dy() - bh + int(tf.TranslateY*float64(k))
	overNRGBA(img, resized, x, y)
}

// overNRGBA composites a straight-alpha image over dst at (ox, oy),
// clipping to the destination bounds. dst is assumed opaque.
func overNRGBA(dst, src *image.NRGBA, ox, oy int) {
	db := dst.Bounds()
	sb := src.Bounds()
	for sy := 0; sy < sb.Dy(); sy++ {
		dy := oy + sy
		if dy < 0 || dy >= db.Dy() {
			continue
		}
		for sx := 0; sx < sb.Dx(); sx++ {
			dx := ox + sx
			if dx < 0 || dx >= db.Dx() {
				continue
			}
			si := sy*src.Stride + sx*4
			a := src.Pix[si+3]
			if a == 0 {
				continue
			}
			di := dy*dst.Stride + dx*4
			if a == 255 {
				dst.Pix[di] = src.Pix[si]
				dst.Pix[di+1] = src.Pix[si+1]
				dst.Pix[di+2] = src.Pix[si+2]
				continue
			}
			ia := int(255 - a)
			dst.Pix[di] = uint8((int(src.Pix[si])*int(a) + int(dst.Pix[di])*ia + 127) / 255)
			dst.Pix[di+1] = uint8((int(src.Pix[si+1])*int(a) + int(dst.Pix[di+1])*ia + 127) / 255)
			dst.Pix[di+2] = uint8((int(src.Pix[si+2])*int(a) + int(dst.Pix[di+2])*ia + 127) / 255)
		}
	}
}

// drawShadow blurs the barrel mask into a soft black shadow and darkens
// dst through it at a small down-right offset.
func drawShadow(img *image.NRGBA, mask *image.Alpha, k int) {
	b := mask.Bounds()
	shadow := image.NewNRGBA(b)
	for i, a := range mask.Pix {
		if a != 0 {
			shadow.Pix[i*4+3] = uint8(float64(a)*shadowOpacity + 0.5)
		}
	}
	blurred := blur.Gaussian(shadow, shadowRadius*float64(k))

	ox := int(shadowOffsetX) * k
	oy := int(shadowOffsetY) * k
	db := img.Bounds()
	for sy := 0; sy < b.Dy(); sy++ {
		dy := oy + sy
		if dy < 0 || dy >= db.Dy() {
			continue
		}
		for sx := 0; sx < b.Dx(); sx++ {
			dx := ox + sx
			if dx < 0 || dx >= db.Dx() {
				continue
			}
			a := blurred.Pix[sy*blurred.Stride+sx*4+3]
			if a == 0 {
				continue
			}
			ia := int(255 - a)
			di := dy*img.Stride + dx*4
			img.Pix[di] = uint8((int(img.Pix[di])*ia + 127) / 255)
			img.Pix[di+1] = uint8((int(img.Pix[di+1])*ia + 127) / 255)
			img.Pix[di+2] = uint8((int(img.Pix[di+2])*ia + 127) / 255)
		}
	}
}
