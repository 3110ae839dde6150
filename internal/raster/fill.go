package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
)

// Mask rasterizes a closed polygon into an antialiased coverage mask.
// Outlines with fewer than 3 points produce an empty mask.
func Mask(poly []silhouette.Point, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(poly) < 3 {
		return mask
	}

	r := vector.NewRasterizer(w, h)
	r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// scalePolygon maps a card-space outline to supersampled pixel space.
// Outline coordinates scale linearly, so this is equivalent to computing
// the outline at the higher resolution directly.
func scalePolygon(poly []silhouette.Point, k float64) []silhouette.Point {
	if k == 1 {
		return poly
	}
	out := make([]silhouette.Point, len(poly))
	for i, p := range poly {
		out[i] = silhouette.Point{X: p.X * k, Y: p.Y * k}
	}
	return out
}
