package sweep

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/eigenlab/internal/linalg"
)

func TestRun2_RotationScale(t *testing.T) {
	// Sweep the top-left entry of [[a, -1], [1, 0]]: complex pair for
	// small |a|, two real eigenvalues once |a| ≥ 2.
	m := linalg.Mat2{0, -1, 1, 0}
	points, err := Run2(m, Spec{Row: 0, Col: 0, Min: -3, Max: 3, Steps: 7})
	if err != nil {
		t.Fatalf("Run2 failed: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	// a = -3 and a = 3 give real spectra, a = 0 is a pure rotation.
	if points[0].Reals != 2 {
		t.Errorf("a=-3: expected 2 real roots, got %d", points[0].Reals)
	}
	if points[3].Reals != 0 {
		t.Errorf("a=0: expected complex pair, got %d real roots", points[3].Reals)
	}
	if points[6].Reals != 2 {
		t.Errorf("a=3: expected 2 real roots, got %d", points[6].Reals)
	}
}

func TestRun3_LineCounts(t *testing.T) {
	// Sweeping the last diagonal entry of diag(1, 2, x): three lines
	// everywhere except where x collides with 1 or 2.
	m := linalg.Mat3Diag(1, 2, 0)
	points, err := Run3(m, Spec{Row: 2, Col: 2, Min: 0, Max: 4, Steps: 5})
	if err != nil {
		t.Fatalf("Run3 failed: %v", err)
	}

	for _, p := range points {
		x := p.Param
		collides := math.Abs(x-1) < 1e-9 || math.Abs(x-2) < 1e-9
		if collides {
			// x equals an existing eigenvalue: the doubled eigenvalue owns
			// a plane, the remaining one a line.
			if p.Planes != 1 || p.Lines != 1 {
				t.Errorf("x=%v: got %d lines, %d planes; want 1 and 1", x, p.Lines, p.Planes)
			}
		} else if p.Lines != 3 || p.Planes != 0 {
			t.Errorf("x=%v: got %d lines, %d planes; want 3 and 0", x, p.Lines, p.Planes)
		}
	}
}

func TestRun_EntryRange(t *testing.T) {
	if _, err := Run3(linalg.Mat3Identity(), Spec{Row: 3, Col: 0, Steps: 2}); !errors.Is(err, ErrEntryRange) {
		t.Errorf("expected ErrEntryRange, got %v", err)
	}
	if _, err := Run2(linalg.Mat2Identity(), Spec{Row: 0, Col: 2, Steps: 2}); !errors.Is(err, ErrEntryRange) {
		t.Errorf("expected ErrEntryRange, got %v", err)
	}
}

func TestTraces(t *testing.T) {
	points, err := Run3(linalg.Mat3Diag(1, 2, 0), Spec{Row: 2, Col: 2, Min: 0, Max: 4, Steps: 9})
	if err != nil {
		t.Fatalf("Run3 failed: %v", err)
	}

	traces := Traces(points)
	if len(traces) != 3 {
		t.Fatalf("expected 3 traces, got %d", len(traces))
	}
	for i, tr := range traces {
		if len(tr) != 9 {
			t.Errorf("trace %d has %d samples, want 9", i, len(tr))
		}
	}

	// Roots are sorted per step, so each trace is bounded by the next.
	for j := range points {
		if traces[0][j] > traces[1][j]+1e-9 || traces[1][j] > traces[2][j]+1e-9 {
			t.Errorf("step %d: traces not ordered: %v %v %v", j, traces[0][j], traces[1][j], traces[2][j])
		}
	}
}
