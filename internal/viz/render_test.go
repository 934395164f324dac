package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
	"github.com/san-kum/eigenlab/internal/sweep"
)

func TestRenderObjects(t *testing.T) {
	objs := spectral.Assemble3(linalg.Mat3Diag(2, 2, 5))
	out := RenderObjects(objs, false)

	if !strings.Contains(out, "plane") || !strings.Contains(out, "line") {
		t.Errorf("expected both kinds in output:\n%s", out)
	}
	if !strings.Contains(out, "normal") || !strings.Contains(out, "direction") {
		t.Errorf("expected axis labels in output:\n%s", out)
	}
}

func TestRenderObjects_Degenerate(t *testing.T) {
	if out := RenderObjects(nil, true); !strings.Contains(out, "uniform scaling") {
		t.Errorf("uniform scaling notice missing:\n%s", out)
	}
	if out := RenderObjects(nil, false); !strings.Contains(out, "no invariant") {
		t.Errorf("empty notice missing:\n%s", out)
	}
}

func TestRenderRoots_TagsComplex(t *testing.T) {
	a := spectral.Analyze2(linalg.Mat2Rotation(1))
	out := RenderRoots(a.Roots)

	if strings.Count(out, "complex") != 2 {
		t.Errorf("expected two complex tags:\n%s", out)
	}
}

func TestRenderMatrix_Cursor(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}}
	out := RenderMatrix(rows, 0, 0, true)

	if !strings.Contains(out, "1.000") || !strings.Contains(out, "0.000") {
		t.Errorf("matrix values missing:\n%s", out)
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 2 {
		t.Errorf("expected two rows:\n%s", out)
	}
}

func TestPlotSweep(t *testing.T) {
	points, err := sweep.Run3(linalg.Mat3Diag(1, 2, 0), sweep.Spec{Row: 2, Col: 2, Min: 0, Max: 4, Steps: 16})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	out := PlotSweep(points, "eigenvalues")
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "eigenvalues") {
		t.Error("caption missing")
	}

	if PlotSweep(nil, "x") != "" {
		t.Error("expected empty plot for no points")
	}
}
