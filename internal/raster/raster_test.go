package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/jaeseopark/lens-barrel-preview/internal/camera"
	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
	"github.com/jaeseopark/lens-barrel-preview/internal/theme"
)

var testMount = silhouette.Mount{StepDistance: 10, StepLength: 15, OuterDiameter: 62}

func TestMask(t *testing.T) {
	poly := []silhouette.Point{{X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 10}}
	mask := Mask(poly, 30, 30)

	if got := mask.AlphaAt(15, 15).A; got != 255 {
		t.Errorf("inside coverage: got %d, want 255", got)
	}
	if got := mask.AlphaAt(2, 2).A; got != 0 {
		t.Errorf("outside coverage: got %d, want 0", got)
	}
	if got := mask.AlphaAt(25, 15).A; got != 0 {
		t.Errorf("right of polygon: got %d, want 0", got)
	}
}

func TestMask_Degenerate(t *testing.T) {
	mask := Mask([]silhouette.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}, 10, 10)
	for _, a := range mask.Pix {
		if a != 0 {
			t.Fatal("mask from a 2-point outline should be empty")
		}
	}
}

func TestScalePolygon(t *testing.T) {
	poly := []silhouette.Point{{X: 3, Y: 4}, {X: 5, Y: 6}}
	got := scalePolygon(poly, 2)
	want := []silhouette.Point{{X: 6, Y: 8}, {X: 10, Y: 12}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if same := scalePolygon(poly, 1); &same[0] != &poly[0] {
		t.Error("unit scale should return the outline unchanged")
	}
}

func TestShade(t *testing.T) {
	s := DefaultShading()
	if !(s.shade(0.5) > s.shade(0.0)) {
		t.Error("barrel center should be brighter than its edge")
	}
	if !(s.shade(s.BandPos) > s.shade(1-s.BandPos)) {
		t.Error("highlight band should brighten its side of the barrel")
	}

	flat := Shading{Ambient: 0.8}
	if got := flat.shade(0.2); got != 0.8 {
		t.Errorf("ambient-only shading: got %v, want 0.8", got)
	}
}

func TestRowExtent(t *testing.T) {
	if lo, hi := rowExtent([]uint8{0, 0, 0}); lo != -1 || hi != -1 {
		t.Errorf("empty row: got (%d,%d)", lo, hi)
	}
	if lo, hi := rowExtent([]uint8{0, 10, 255, 3, 0}); lo != 1 || hi != 3 {
		t.Errorf("covered row: got (%d,%d), want (1,3)", lo, hi)
	}
}

func TestRenderCard(t *testing.T) {
	poly := silhouette.ComputePolygon(62, 70, testMount, 1, 120, 120)
	card := RenderCard(CardSpec{
		Polygon:     poly,
		Width:       120,
		Height:      120,
		Supersample: 1,
	})

	if card.Bounds().Dx() != 120 || card.Bounds().Dy() != 120 {
		t.Fatalf("card size: got %v", card.Bounds())
	}
	for i := 3; i < len(card.Pix); i += 4 {
		if card.Pix[i] != 255 {
			t.Fatalf("card should be opaque, alpha %d at %d", card.Pix[i], i)
		}
	}

	sum := func(x, y int) int {
		c := card.NRGBAAt(x, y)
		return int(c.R) + int(c.G) + int(c.B)
	}
	// Barrel spans x 29..91, y 50..120 at these dimensions.
	if !(sum(5, 5) > sum(60, 90)+100) {
		t.Errorf("barrel should be much darker than the background: bg %d, barrel %d",
			sum(5, 5), sum(60, 90))
	}
}

func TestRenderCard_Supersample(t *testing.T) {
	poly := silhouette.ComputePolygon(62, 70, testMount, 1, 60, 60)
	card := RenderCard(CardSpec{Polygon: poly, Width: 60, Height: 60, Supersample: 2})
	if card.Bounds().Dx() != 120 || card.Bounds().Dy() != 120 {
		t.Fatalf("supersampled size: got %v, want 120x120", card.Bounds())
	}
}

func TestRenderCard_TagColor(t *testing.T) {
	th, err := theme.Custom("", "", map[string]string{"owned": "#cc2222"})
	if err != nil {
		t.Fatal(err)
	}
	poly := silhouette.ComputePolygon(62, 70, testMount, 1, 120, 120)
	card := RenderCard(CardSpec{
		Polygon: poly,
		Tags:    []string{"owned"},
		Width:   120,
		Height:  120,
		Theme:   th,
	})

	c := card.NRGBAAt(5, 5)
	if !(c.R > c.B+50) {
		t.Errorf("tagged card background should be red-dominant, got %v", c)
	}
}

func TestRenderCard_BodyComposed(t *testing.T) {
	body := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for i := 0; i < len(body.Pix); i += 4 {
		body.Pix[i] = 128
		body.Pix[i+1] = 128
		body.Pix[i+2] = 128
		body.Pix[i+3] = 255
	}

	poly := silhouette.ComputePolygon(62, 70, testMount, 1, 120, 120)
	cfg := RenderCard(CardSpec{
		Polygon: poly,
		Width:   120,
		Height:  120,
		Body:    body,
	})

	// Bottom-right corner of the body area, clear of barrel and shadow.
	c := cfg.NRGBAAt(105, 115)
	if c.R < 120 || c.R > 136 {
		t.Errorf("body pixel should be the photo gray, got %v", c)
	}
}

func TestRenderCard_TransformDefaults(t *testing.T) {
	body := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for i := 3; i < len(body.Pix); i += 4 {
		body.Pix[i] = 255
	}
	poly := silhouette.ComputePolygon(62, 70, testMount, 1, 120, 120)

	zero := RenderCard(CardSpec{Polygon: poly, Width: 120, Height: 120, Body: body})
	scaled := RenderCard(CardSpec{
		Polygon: poly,
		Width:   120,
		Height:  120,
		Body:    body,
		Transform: camera.Transform{
			Scale: camera.DefaultBodyScale,
		},
	})
	bare := RenderCard(CardSpec{Polygon: poly, Width: 120, Height: 120})

	if bytes.Equal(zero.Pix, bare.Pix) {
		t.Error("zero-value transform should still draw the body")
	}
	if !bytes.Equal(zero.Pix, scaled.Pix) {
		t.Error("zero-value transform should draw the body at the default scale")
	}
}

func TestDrawLabel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 60))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	before := append([]uint8(nil), img.Pix...)

	DrawLabel(img, "", color.NRGBA{A: 255})
	if !bytes.Equal(before, img.Pix) {
		t.Fatal("empty label should not draw")
	}

	DrawLabel(img, "XF 35mm", color.NRGBA{R: 20, G: 20, B: 20, A: 255})
	changed := false
	for y := labelMargin; y < labelMargin+13 && !changed; y++ {
		for x := 0; x < 100; x++ {
			if img.NRGBAAt(x, y).R != 255 {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("label should draw glyphs in the top band")
	}
}
