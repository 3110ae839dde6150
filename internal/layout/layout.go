// Package layout computes shared card dimensions and sheet grid geometry.
//
// Every card in a batch shares one canvas size so the longest lens sets the
// height for all of them. Cards are laid out on the sheet in row-major order.
package layout

import "math"

// heightMargin is the headroom above the tallest silhouette. The longest
// lens fills 1/1.2 of the card height, leaving room for the label and the
// camera body peeking out below short lenses.
const heightMargin = 1.2

// ComputeSharedCardHeight returns the card height that fits the longest
// lens in the batch at the given scale, with margin, and never less than
// the card width.
func ComputeSharedCardHeight(lengths []float64, lensScale float64, cardWidth int) int {
	maxLen := 0.0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	h := math.Ceil(maxLen * lensScale * heightMargin)
	if h < float64(cardWidth) {
		return cardWidth
	}
	return int(h)
}

// Grid returns the column and row counts for laying out n cards within
// maxWidth. Columns are as many as fit with gutters on both sides, at
// least 1 and never more than n.
func Grid(n, cardWidth, gutter, maxWidth int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = (maxWidth - gutter) / (cardWidth + gutter)
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return cols, rows
}

// CellOrigin returns the top-left pixel of cell (col, row) on the sheet,
// with a gutter-sized border around the whole grid.
func CellOrigin(col, row, cardWidth, cardHeight, gutter int) (x, y int) {
	x = gutter + col*(cardWidth+gutter)
	y = gutter + row*(cardHeight+gutter)
	return x, y
}

// SheetSize returns the pixel dimensions of a sheet holding the given grid.
func SheetSize(cols, rows, cardWidth, cardHeight, gutter int) (w, h int) {
	w = cols*cardWidth + (cols+1)*gutter
	h = rows*cardHeight + (rows+1)*gutter
	return w, h
}
