package silhouette

import (
	"math"
	"reflect"
	"testing"
)

var testMount = Mount{StepDistance: 10, StepLength: 15, OuterDiameter: 62}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePolygon_Rectangles(t *testing.T) {
	tests := []struct {
		name             string
		diameter, length float64
		canvasW, canvasH float64
		wantHalfWidth    float64
	}{
		// Diameter equal to the mount never steps; drawn at its own width.
		{"equal to mount", 62, 70, 300, 300, 31},
		{"narrower than mount", 52, 40, 300, 300, 26},
		// Wider than the mount but the first step (90%) would not clear it:
		// drawn at the mount's width, not its own.
		{"first step below mount", 64, 120, 300, 300, 31},
		// Wider than the mount but too short for the step region to fit.
		{"step region does not fit", 88, 20, 300, 300, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePolygon(tt.diameter, tt.length, testMount, 1, tt.canvasW, tt.canvasH)
			if len(got) != 4 {
				t.Fatalf("vertex count: got %d, want 4", len(got))
			}

			cx := tt.canvasW / 2
			frontY := tt.canvasH - tt.length
			want := []Point{
				{cx - tt.wantHalfWidth, tt.canvasH},
				{cx - tt.wantHalfWidth, frontY},
				{cx + tt.wantHalfWidth, frontY},
				{cx + tt.wantHalfWidth, tt.canvasH},
			}
			for i := range want {
				if !approx(got[i].X, want[i].X) || !approx(got[i].Y, want[i].Y) {
					t.Errorf("point %d: got (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
				}
			}
		})
	}
}

func TestComputePolygon_SteppedShape(t *testing.T) {
	// 88mm barrel against a 62mm mount: 90% of 88 clears the mount and the
	// 25mm step region fits inside 136mm, so the full stepped profile applies.
	got := ComputePolygon(88, 136, testMount, 1, 300, 408)

	if len(got) < 8 {
		t.Fatalf("vertex count: got %d, want >= 8", len(got))
	}
	if len(got)%2 != 0 {
		t.Fatalf("vertex count: got %d, want even", len(got))
	}

	// Mount corners sit on the bottom edge at the mount's radius.
	first, last := got[0], got[len(got)-1]
	if !approx(first.X, 150-31) || !approx(first.Y, 408) {
		t.Errorf("back-left corner: got (%v, %v), want (119, 408)", first.X, first.Y)
	}
	if !approx(last.X, 150+31) || !approx(last.Y, 408) {
		t.Errorf("back-right corner: got (%v, %v), want (181, 408)", last.X, last.Y)
	}

	// The widest vertices sit on the front line at the full radius.
	frontY := 408.0 - 136
	var maxHalf float64
	for _, p := range got {
		if half := math.Abs(p.X - 150); half > maxHalf {
			maxHalf = half
		}
	}
	if !approx(maxHalf, 44) {
		t.Errorf("max half-width: got %v, want 44", maxHalf)
	}
	for _, p := range got {
		if approx(math.Abs(p.X-150), maxHalf) && !approx(p.Y, frontY) {
			t.Errorf("widest point at y=%v, want %v", p.Y, frontY)
		}
	}
}

func TestComputePolygon_Symmetry(t *testing.T) {
	got := ComputePolygon(88, 136, testMount, 1, 300, 408)

	n := len(got)
	for i := 0; i < n/2; i++ {
		l, r := got[i], got[n-1-i]
		if !approx(l.Y, r.Y) {
			t.Errorf("pair %d: y mismatch %v vs %v", i, l.Y, r.Y)
		}
		if !approx(l.X+r.X, 300) {
			t.Errorf("pair %d: x not mirrored about center: %v and %v", i, l.X, r.X)
		}
	}
}

func TestComputePolygon_LeftSideMonotonic(t *testing.T) {
	// Walking the left side from mount to front, the radius only grows, so
	// the x coordinate only shrinks. This is what keeps the outline free of
	// self-intersections.
	got := ComputePolygon(96, 180, testMount, 1.5, 400, 500)

	for i := 1; i < len(got)/2; i++ {
		if got[i].X > got[i-1].X+1e-9 {
			t.Fatalf("left side x increased at %d: %v -> %v", i-1, got[i-1].X, got[i].X)
		}
		if got[i].Y > got[i-1].Y+1e-9 {
			t.Fatalf("left side y increased at %d: %v -> %v", i-1, got[i-1].Y, got[i].Y)
		}
	}
}

func TestComputePolygon_StepRegionExactFit(t *testing.T) {
	// length exactly equals stepDistance+stepLength: stepping still applies
	// but no room remains for graduated bumps, so the profile jumps straight
	// from the initial step radius to the full radius on the front line.
	got := ComputePolygon(88, 25, testMount, 1, 300, 300)

	if len(got) != 8 {
		t.Fatalf("vertex count: got %d, want 8", len(got))
	}
	frontY := 300.0 - 25
	if !approx(got[2].Y, frontY) || !approx(got[3].Y, frontY) {
		t.Errorf("front vertices at y %v and %v, want %v", got[2].Y, got[3].Y, frontY)
	}
	if !approx(got[2].X, 150-39.6) {
		t.Errorf("initial step radius: got x=%v, want %v", got[2].X, 150-39.6)
	}
	if !approx(got[3].X, 150-44) {
		t.Errorf("full radius at front: got x=%v, want %v", got[3].X, 150-44)
	}
}

func TestComputePolygon_ScaleApplies(t *testing.T) {
	got := ComputePolygon(88, 136, testMount, 2, 600, 816)

	if !approx(got[0].X, 300-62) || !approx(got[0].Y, 816) {
		t.Errorf("scaled mount corner: got (%v, %v), want (238, 816)", got[0].X, got[0].Y)
	}
	var minY float64 = math.Inf(1)
	for _, p := range got {
		if p.Y < minY {
			minY = p.Y
		}
	}
	if !approx(minY, 816-272) {
		t.Errorf("scaled front line: got y=%v, want %v", minY, 816-272)
	}
}

func TestComputePolygon_Idempotent(t *testing.T) {
	a := ComputePolygon(88, 136, testMount, 1, 300, 408)
	b := ComputePolygon(88, 136, testMount, 1, 300, 408)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different polygons")
	}
}

func TestComputePolygon_DegenerateInputs(t *testing.T) {
	// The engine is total: implausible inputs collapse, they never panic.
	tests := []struct {
		name             string
		diameter, length float64
	}{
		{"zero diameter", 0, 70},
		{"zero length", 62, 0},
		{"negative diameter", -10, 70},
		{"negative length", 62, -5},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePolygon(tt.diameter, tt.length, testMount, 1, 300, 300)
			if len(got) != 4 {
				t.Fatalf("vertex count: got %d, want 4", len(got))
			}
			for _, p := range got {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("unexpected NaN in %+v", got)
				}
			}
		})
	}
}
