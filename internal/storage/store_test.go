package storage

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/eigenlab/internal/linalg"
	"github.com/san-kum/eigenlab/internal/spectral"
)

func TestSaveLoad_Roundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	m := linalg.Mat3Diag(2, 2, 5)
	a := spectral.Analyze3(m)
	matrix := [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 5}}

	id, err := st.Save("plane_scale", matrix, a)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.Name != "plane_scale" || meta.Dim != 3 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Lines != 1 || meta.Planes != 1 {
		t.Errorf("expected 1 line and 1 plane, got %d and %d", meta.Lines, meta.Planes)
	}
	if len(meta.RealEigenvalues) != 2 {
		t.Errorf("expected 2 distinct real eigenvalues, got %v", meta.RealEigenvalues)
	}

	objs, err := st.LoadObjects(id)
	if err != nil {
		t.Fatalf("LoadObjects failed: %v", err)
	}
	if len(objs) != len(a.Objects) {
		t.Fatalf("expected %d objects, got %d", len(a.Objects), len(objs))
	}
	for i, o := range objs {
		if o.Kind != a.Objects[i].Kind {
			t.Errorf("object %d kind = %v, want %v", i, o.Kind, a.Objects[i].Kind)
		}
		if math.Abs(o.Eigenvalue-a.Objects[i].Eigenvalue) > 1e-6 {
			t.Errorf("object %d eigenvalue = %v, want %v", i, o.Eigenvalue, a.Objects[i].Eigenvalue)
		}
		if math.Abs(o.Axis.Norm()-1) > 1e-6 {
			t.Errorf("object %d axis not unit after roundtrip: %v", i, o.Axis)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	matrix := [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}
	a := spectral.Analyze3(linalg.Mat3Diag(1, 2, 3))
	if _, err := st.Save("first", matrix, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := st.Save("second", matrix, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Timestamp.After(runs[1].Timestamp) {
		t.Error("runs not sorted oldest first")
	}
}

func TestLoad_NotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing_run"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadObjects("missing_run"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}
