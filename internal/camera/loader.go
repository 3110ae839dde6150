package camera

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

// LoadImage reads a camera body photo and returns an NRGBA image.
// PNG, JPEG, TGA and WebP are recognized by content sniffing.
func LoadImage(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("camera: read %s: %w", path, err)
	}

	img, err := decodeBody(raw)
	if err != nil {
		return nil, fmt.Errorf("camera: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// decodeBody picks the decoder by magic bytes. TGA carries no signature,
// so it is the fallback when nothing else matches.
func decodeBody(raw []byte) (image.Image, error) {
	switch {
	case bytes.HasPrefix(raw, []byte("\x89PNG\r\n\x1a\n")):
		return png.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, []byte{0xff, 0xd8}):
		return jpeg.Decode(bytes.NewReader(raw))
	case len(raw) >= 12 && bytes.Equal(raw[:4], []byte("RIFF")) && bytes.Equal(raw[8:12], []byte("WEBP")):
		return webp.Decode(bytes.NewReader(raw))
	default:
		return tga.Decode(bytes.NewReader(raw))
	}
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel in the source; force it opaque
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	return dst
}
