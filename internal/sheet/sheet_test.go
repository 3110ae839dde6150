package sheet

import (
	"image"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func solidCard(w, h int, r, g, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
	return img
}

func TestCompose(t *testing.T) {
	cards := []*image.NRGBA{
		solidCard(30, 40, 255, 0, 0),
		solidCard(30, 40, 0, 255, 0),
		solidCard(30, 40, 0, 0, 255),
	}
	bg := colorful.Color{R: 1, G: 1, B: 1}

	// (110-5)/(30+5) = 3 columns, one row.
	got := Compose(cards, 30, 40, 5, 110, bg)

	if got.Bounds().Dx() != 110 || got.Bounds().Dy() != 50 {
		t.Fatalf("sheet size: got %v, want 110x50", got.Bounds())
	}

	// Card centers in reading order.
	if c := got.NRGBAAt(20, 25); c.R != 255 || c.G != 0 {
		t.Errorf("first card: got %v", c)
	}
	if c := got.NRGBAAt(55, 25); c.G != 255 {
		t.Errorf("second card: got %v", c)
	}
	if c := got.NRGBAAt(90, 25); c.B != 255 {
		t.Errorf("third card: got %v", c)
	}

	// Gutter pixel stays background.
	if c := got.NRGBAAt(2, 25); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("gutter: got %v", c)
	}
}

func TestCompose_WrapsRows(t *testing.T) {
	cards := make([]*image.NRGBA, 5)
	for i := range cards {
		cards[i] = solidCard(30, 40, 100, 100, 100)
	}

	// Two columns fit, so five cards need three rows.
	got := Compose(cards, 30, 40, 5, 75, colorful.Color{})
	if got.Bounds().Dx() != 75 || got.Bounds().Dy() != 140 {
		t.Fatalf("sheet size: got %v, want 75x140", got.Bounds())
	}

	// Last card sits alone at row 2, column 0.
	if c := got.NRGBAAt(20, 115); c.R != 100 {
		t.Errorf("last card cell: got %v", c)
	}
	// The empty cell next to it keeps the background.
	if c := got.NRGBAAt(55, 115); c.R != 0 {
		t.Errorf("empty cell: got %v", c)
	}
}

func TestCompose_NilCardLeavesCell(t *testing.T) {
	cards := []*image.NRGBA{solidCard(30, 40, 255, 0, 0), nil}
	got := Compose(cards, 30, 40, 5, 110, colorful.Color{R: 1, G: 1, B: 1})

	if c := got.NRGBAAt(55, 25); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("nil card cell should stay background, got %v", c)
	}
}

func TestCompose_Empty(t *testing.T) {
	got := Compose(nil, 30, 40, 5, 110, colorful.Color{})
	if got.Bounds().Dx() != 0 || got.Bounds().Dy() != 0 {
		t.Errorf("empty batch should produce an empty sheet, got %v", got.Bounds())
	}
}
