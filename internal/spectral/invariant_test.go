package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/eigenlab/internal/linalg"
)

func TestAssemble2_Identity(t *testing.T) {
	assert.Empty(t, Assemble2(linalg.Mat2Identity()))
}

func TestAssemble2_UniformScale(t *testing.T) {
	// diag(2,2) leaves every line invariant: nothing to single out.
	assert.Empty(t, Assemble2(linalg.Mat2Diag(2, 2)))
}

func TestAssemble2_Rotation(t *testing.T) {
	// Complex spectrum: no invariant lines.
	assert.Empty(t, Assemble2(linalg.Mat2Rotation(math.Pi/4)))
}

func TestAssemble2_Shear(t *testing.T) {
	objs := Assemble2(linalg.Mat2{1, 0.5, 0, 1})

	require.Len(t, objs, 1)
	assert.Equal(t, Line, objs[0].Kind)
	assert.InDelta(t, 1.0, objs[0].Eigenvalue, 1e-9)
	assert.InDelta(t, 1.0, math.Abs(objs[0].Axis.Dot(linalg.Vec3{1, 0, 0})), 1e-9)
}

func TestAssemble2_TwoLines(t *testing.T) {
	objs := Assemble2(linalg.Mat2Diag(3, -2))

	require.Len(t, objs, 2)
	for _, o := range objs {
		assert.Equal(t, Line, o.Kind)
		assert.InDelta(t, 1.0, o.Axis.Norm(), 1e-9)
		assert.InDelta(t, 0.0, o.Axis[2], 1e-12, "2×2 axes embed with z = 0")
	}
}

func TestAssemble3_Identity(t *testing.T) {
	assert.Empty(t, Assemble3(linalg.Mat3Identity()))
}

func TestAssemble3_ThreeLines(t *testing.T) {
	objs := Assemble3(linalg.Mat3Diag(1, 2, 3))

	require.Len(t, objs, 3)
	seen := map[float64]bool{}
	for _, o := range objs {
		require.Equal(t, Line, o.Kind)
		var want linalg.Vec3
		switch {
		case math.Abs(o.Eigenvalue-1) < 1e-6:
			want = linalg.Vec3{1, 0, 0}
		case math.Abs(o.Eigenvalue-2) < 1e-6:
			want = linalg.Vec3{0, 1, 0}
		case math.Abs(o.Eigenvalue-3) < 1e-6:
			want = linalg.Vec3{0, 0, 1}
		default:
			t.Fatalf("unexpected eigenvalue %v", o.Eigenvalue)
		}
		assert.InDelta(t, 1.0, math.Abs(o.Axis.Dot(want)), 1e-8)
		seen[math.Round(o.Eigenvalue)] = true
	}
	assert.Len(t, seen, 3)
}

func TestAssemble3_PlaneAndLine(t *testing.T) {
	// Uniform scale in the xy-plane, different scale along z: an invariant
	// plane with normal ±e3 plus the z-axis line.
	objs := Assemble3(linalg.Mat3Diag(2, 2, 5))

	require.Len(t, objs, 2)

	var plane, line *Object
	for i := range objs {
		switch objs[i].Kind {
		case Plane:
			plane = &objs[i]
		case Line:
			line = &objs[i]
		}
	}
	require.NotNil(t, plane, "missing invariant plane")
	require.NotNil(t, line, "missing invariant line")

	assert.InDelta(t, 2.0, plane.Eigenvalue, 1e-6)
	assert.InDelta(t, 1.0, math.Abs(plane.Axis.Dot(linalg.Vec3{0, 0, 1})), 1e-8)

	assert.InDelta(t, 5.0, line.Eigenvalue, 1e-6)
	assert.InDelta(t, 1.0, math.Abs(line.Axis.Dot(linalg.Vec3{0, 0, 1})), 1e-8)
}

func TestAssemble3_DefectiveJordanBlock(t *testing.T) {
	// Triple eigenvalue, 1-dimensional eigenspace: one Line, no Plane.
	m := linalg.Mat3{
		2, 1, 0,
		0, 2, 1,
		0, 0, 2,
	}
	objs := Assemble3(m)

	require.Len(t, objs, 1)
	assert.Equal(t, Line, objs[0].Kind)
	assert.InDelta(t, 2.0, objs[0].Eigenvalue, 1e-6)
	assert.InDelta(t, 1.0, math.Abs(objs[0].Axis.Dot(linalg.Vec3{1, 0, 0})), 1e-8)
}

func TestAssemble3_RotationAboutAxis(t *testing.T) {
	// Rotation about z: one real eigenvalue (1) with the z-axis line; the
	// complex pair contributes nothing.
	theta := math.Pi / 5
	c, s := math.Cos(theta), math.Sin(theta)
	m := linalg.Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
	objs := Assemble3(m)

	require.Len(t, objs, 1)
	assert.Equal(t, Line, objs[0].Kind)
	assert.InDelta(t, 1.0, objs[0].Eigenvalue, 1e-8)
	assert.InDelta(t, 1.0, math.Abs(objs[0].Axis.Dot(linalg.Vec3{0, 0, 1})), 1e-8)
}

func TestAssemble3_DiscriminantBoundary(t *testing.T) {
	// p = 1e-5 with the cubic discriminant inside the zero tolerance. Every
	// emitted object must carry a finite eigenvalue and a unit axis that
	// actually satisfies the residual bound.
	m := linalg.Mat3{
		0, 0, 0,
		1, 0, -1e-5,
		0, 1, 0,
	}
	objs := Assemble3(m)

	require.NotEmpty(t, objs, "λ = 0 is a genuine eigenvalue of a singular matrix")
	for _, o := range objs {
		require.Equal(t, Line, o.Kind)
		require.False(t, math.IsNaN(o.Eigenvalue))
		assert.InDelta(t, 1.0, o.Axis.Norm(), 1e-6)
		res := m.Shifted(o.Eigenvalue).MulVec(o.Axis).Norm()
		assert.Less(t, res, 0.01, "axis %v fails the residual bound", o.Axis)
	}
}

func TestDecompose2_Shear(t *testing.T) {
	pairs := Decompose2(linalg.Mat2{1, 0.5, 0, 1})

	require.Len(t, pairs, 1)
	assert.InDelta(t, 1.0, pairs[0].Value, 1e-9)
}

func TestDecompose3_AtMostDimVectors(t *testing.T) {
	ms := []linalg.Mat3{
		linalg.Mat3Diag(1, 2, 3),
		linalg.Mat3Diag(2, 2, 5),
		linalg.Mat3Diag(4, 4, 4),
		{2, 1, 0, 0, 2, 1, 0, 0, 2},
	}
	for _, m := range ms {
		assert.LessOrEqual(t, len(Decompose3(m)), 3)
	}
}

func TestAnalyze_Bundles(t *testing.T) {
	a := Analyze3(linalg.Mat3Diag(2, 2, 5))
	assert.Equal(t, 3, a.Dim)
	assert.False(t, a.UniformScaling)
	assert.Len(t, a.Roots, 3)
	assert.Equal(t, 1, a.CountKind(Plane))
	assert.Equal(t, 1, a.CountKind(Line))
	assert.Len(t, a.RealEigenvalues(), 2)

	a = Analyze2(linalg.Mat2Rotation(1))
	assert.Equal(t, 2, a.Dim)
	assert.Empty(t, a.Pairs)
	assert.Empty(t, a.Objects)

	a = Analyze2(linalg.Mat2Diag(7, 7))
	assert.True(t, a.UniformScaling)
	assert.Empty(t, a.Objects)
}
