package silhouette

// ComputePolygon maps a lens barrel onto a card canvas as a closed polygon.
//
// diameter and length are millimeters; scale converts millimeters to pixels.
// The mount sits at the bottom-center of the canvas (canvasWidth/2,
// canvasHeight) and the barrel extends upward by length*scale pixels. The
// returned vertices run counter-clockwise from the back-left mount corner:
// left side mount to front, across the front, right side front to mount. The
// first point is not repeated at the end.
//
// The function is pure and total: non-positive or non-finite inputs produce
// degenerate (possibly collapsed) polygons rather than an error. Callers that
// need validation perform it upstream, before rendering.
func ComputePolygon(diameter, length float64, mount Mount, scale, canvasWidth, canvasHeight float64) []Point {
	centerX := canvasWidth / 2
	mountY := canvasHeight
	frontY := canvasHeight - length*scale

	fullRadius := diameter * scale / 2
	mountRadius := mount.OuterDiameter * scale / 2

	needsStepping := diameter > mount.OuterDiameter
	applyStepping := needsStepping &&
		diameter*initialStepRatio > mount.OuterDiameter &&
		mount.StepDistance+mount.StepLength <= length

	if !applyStepping {
		radius := fullRadius
		if needsStepping {
			// Stepping that cannot be drawn hides the oversized barrel
			// behind the mount width instead of showing a full-width slab.
			radius = mountRadius
		}
		return []Point{
			{centerX - radius, mountY},
			{centerX - radius, frontY},
			{centerX + radius, frontY},
			{centerX + radius, mountY},
		}
	}

	stops := buildProfile(profileSpec{
		fullRadius:  fullRadius,
		mountRadius: mountRadius,
		mountY:      mountY,
		frontY:      frontY,
		stepDist:    mount.StepDistance * scale,
		stepLen:     mount.StepLength * scale,
		transition:  transitionMM * scale,
		bumps:       defaultBumpCount,
	})

	points := make([]Point, 0, 2*len(stops))
	for _, s := range stops {
		points = append(points, Point{centerX - s.radius, s.y})
	}
	for i := len(stops) - 1; i >= 0; i-- {
		points = append(points, Point{centerX + stops[i].radius, stops[i].y})
	}
	return points
}
