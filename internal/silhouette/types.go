package silhouette

// Point is a polygon vertex in canvas pixel space. Y grows downward, matching
// image coordinates.
type Point struct {
	X float64
	Y float64
}

// Mount describes where a lens barrel visually steps down to meet the camera
// mount. All fields are millimeters; one Mount is shared by every lens drawn
// against the same camera.
type Mount struct {
	// StepDistance is how far from the mount flange the step transition begins.
	StepDistance float64
	// StepLength is the distance over which the step transition runs.
	StepLength float64
	// OuterDiameter is the physical mount's outer diameter. It is also the
	// drawn width for any barrel that cannot show its own stepping.
	OuterDiameter float64
}
