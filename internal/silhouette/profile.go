package silhouette

import "github.com/jaeseopark/lens-barrel-preview/internal/mathutil"

// Barrel profile constants. Radii are expressed as fractions of the lens's
// full radius.
const (
	// defaultBumpCount is the number of interpolation steps across the
	// graduated region; the region is split into defaultBumpCount+1 segments.
	defaultBumpCount = 2

	// initialStepRatio is the diameter fraction the barrel drops to right
	// after the mount step.
	initialStepRatio = 0.90

	// bumpStartRatio is the diameter fraction the first graduated bump ramps
	// to; the last bump always lands on the full diameter.
	bumpStartRatio = 0.95

	// transitionMM is the length of one bump ramp in millimeters.
	transitionMM = 5.0

	// transitionCap bounds a ramp to this fraction of its segment so the
	// ramp never swallows the hold that precedes it.
	transitionCap = 0.90
)

// stop is one vertex of the half-profile: a barrel radius at a canvas height.
type stop struct {
	radius float64
	y      float64
}

// profileSpec carries the pixel-space quantities the profile builder works in.
type profileSpec struct {
	fullRadius  float64
	mountRadius float64
	mountY      float64
	frontY      float64
	stepDist    float64
	stepLen     float64
	transition  float64
	bumps       int
}

// buildProfile returns the left half of a stepped barrel outline as ordered
// (radius, y) stops from the mount corner to the front corner. The caller
// mirrors the stops to obtain the right half, so the builder never mutates
// shared state between sides.
func buildProfile(p profileSpec) []stop {
	bumps := p.bumps
	if bumps < 1 {
		bumps = 1
	}

	stops := make([]stop, 0, 3+2*(bumps+1))
	stops = append(stops, stop{p.mountRadius, p.mountY})
	if p.stepDist > 0 {
		stops = append(stops, stop{p.mountRadius, p.mountY - p.stepDist})
	}

	stepEndY := p.mountY - p.stepDist - p.stepLen
	initial := p.fullRadius * initialStepRatio
	stops = append(stops, stop{initial, stepEndY})

	remaining := stepEndY - p.frontY
	if remaining <= 0 {
		// Nothing left to graduate: jump straight to the full radius at the
		// front line.
		stops = append(stops, stop{p.fullRadius, p.frontY})
		return stops
	}

	segLen := remaining / float64(bumps+1)
	ramp := p.transition
	if limit := segLen * transitionCap; ramp > limit {
		ramp = limit
	}

	segEnd := stepEndY
	prev := initial
	for i := 0; i <= bumps; i++ {
		segEnd -= segLen
		if i == bumps {
			// Absorb float drift so the last stop sits exactly on the front.
			segEnd = p.frontY
		}
		t := float64(i) / float64(bumps)
		target := p.fullRadius * mathutil.Lerp(bumpStartRatio, 1, t)

		stops = append(stops, stop{prev, segEnd + ramp})
		stops = append(stops, stop{target, segEnd})
		prev = target
	}

	return stops
}
