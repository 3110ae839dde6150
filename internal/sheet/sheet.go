// Package sheet lays rendered cards out on a single contact sheet.
package sheet

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jaeseopark/lens-barrel-preview/internal/layout"
)

// Compose arranges cards in reading order on one sheet. The column count
// follows the available width; gutters separate cards and border the
// grid. Nil cards leave their cell showing the background.
func Compose(cards []*image.NRGBA, cardW, cardH, gutter, maxWidth int, bg colorful.Color) *image.NRGBA {
	cols, rows := layout.Grid(len(cards), cardW, gutter, maxWidth)
	if cols == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	w, h := layout.SheetSize(cols, rows, cardW, cardH, gutter)

	sheet := image.NewNRGBA(image.Rect(0, 0, w, h))
	r8, g8, b8 := bg.RGB255()
	fill := image.NewUniform(color.NRGBA{R: r8, G: g8, B: b8, A: 255})
	draw.Draw(sheet, sheet.Bounds(), fill, image.Point{}, draw.Src)

	for i, card := range cards {
		if card == nil {
			continue
		}
		x, y := layout.CellOrigin(i%cols, i/cols, cardW, cardH, gutter)
		cell := image.Rect(x, y, x+cardW, y+cardH)
		draw.Draw(sheet, cell, card, card.Bounds().Min, draw.Src)
	}
	return sheet
}
