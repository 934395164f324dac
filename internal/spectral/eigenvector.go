package spectral

import (
	"math"

	"github.com/san-kum/eigenlab/internal/linalg"
)

const (
	// offDiagTol decides which row of a shifted 2×2 matrix still carries a
	// usable off-diagonal term.
	offDiagTol = 1e-10

	// zeroRowTol classifies a row of A−λI as vanished.
	zeroRowTol = 1e-8

	// parallelRowTol is the relative cross-product norm below which two
	// rows count as parallel.
	parallelRowTol = 1e-8

	// degenerateTol rejects candidate vectors with no usable direction.
	degenerateTol = 1e-12
)

var axes3 = [3]linalg.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Eigenvector2 finds a unit eigenvector of a 2×2 matrix for the real
// eigenvalue lambda, skipping directions parallel to any vector in found.
// It returns false when no independent eigenvector validates.
func Eigenvector2(m linalg.Mat2, lambda float64, found []linalg.Vec2) (linalg.Vec2, bool) {
	s := m.Shifted(lambda)
	for _, c := range candidates2(s) {
		if c.Norm() < degenerateTol {
			continue
		}
		v := c.Normalize()
		if accept2(s, v, found) {
			return v, true
		}
	}
	return linalg.Vec2{}, false
}

// candidates2 derives eigenvector candidates from the shifted matrix,
// preferring whichever row still has a non-vanished off-diagonal term.
func candidates2(s linalg.Mat2) []linalg.Vec2 {
	a, b := s[0], s[1]
	c, d := s[2], s[3]
	switch {
	case math.Abs(b) > offDiagTol:
		// Row 0: a·x + b·y = 0.
		return []linalg.Vec2{{b, -a}}
	case math.Abs(c) > offDiagTol:
		// Row 1: c·x + d·y = 0.
		return []linalg.Vec2{{-d, c}}
	}
	// Both off-diagonals vanished, so the shifted matrix is diagonal and an
	// axis is an eigenvector exactly when its diagonal entry vanished too.
	// Try the closer-to-zero entry first; for an exactly scalar matrix both
	// axes validate and the first doubles as the arbitrary-axis fallback.
	if math.Abs(a) <= math.Abs(d) {
		return []linalg.Vec2{{1, 0}, {0, 1}}
	}
	return []linalg.Vec2{{0, 1}, {1, 0}}
}

func accept2(s linalg.Mat2, v linalg.Vec2, found []linalg.Vec2) bool {
	// Acceptance form: a NaN residual must fail, not slip past a >= test.
	if res := s.MulVec(v).Norm(); !(res < residualTol) {
		return false
	}
	for _, f := range found {
		if math.Abs(v.Dot(f)) > parallelTol {
			return false
		}
	}
	return true
}

// Eigenvector3 finds a unit eigenvector of a 3×3 matrix for the real
// eigenvalue lambda, skipping directions parallel to any vector in found.
//
// Candidates come from an ordered strategy chain over the rows of A−λI:
// the vanished-matrix case (eigenspace is the whole space), the rank-1
// case (eigenspace is a plane), pairwise row cross products, and finally
// direct elimination. Every candidate must pass the residual bound
// ‖(A−λI)v‖ < 0.01 before it is returned.
func Eigenvector3(m linalg.Mat3, lambda float64, found []linalg.Vec3) (linalg.Vec3, bool) {
	s := m.Shifted(lambda)
	rows := [3]linalg.Vec3{s.Row(0), s.Row(1), s.Row(2)}

	strategies := []func([3]linalg.Vec3, []linalg.Vec3) []linalg.Vec3{
		wholeSpaceCandidates,
		planeCandidates,
		crossCandidates,
		eliminationCandidates,
	}
	for _, strat := range strategies {
		for _, c := range strat(rows, found) {
			if c.Norm() < degenerateTol {
				continue
			}
			v := c.Normalize()
			if accept3(s, v, found) {
				return v, true
			}
		}
	}
	return linalg.Vec3{}, false
}

// wholeSpaceCandidates handles a vanished A−λI: every direction is an
// eigenvector, so pick one orthogonal to everything found so far.
func wholeSpaceCandidates(rows [3]linalg.Vec3, found []linalg.Vec3) []linalg.Vec3 {
	for _, r := range rows {
		if r.Norm() >= zeroRowTol {
			return nil
		}
	}
	switch len(found) {
	case 0:
		return []linalg.Vec3{axes3[0]}
	case 1:
		// Any axis not parallel to the first vector gives a usable cross.
		return []linalg.Vec3{
			found[0].Cross(axes3[0]),
			found[0].Cross(axes3[1]),
			found[0].Cross(axes3[2]),
		}
	default:
		return []linalg.Vec3{found[0].Cross(found[1])}
	}
}

// planeCandidates handles rank-1 A−λI: all nonzero rows are parallel, the
// eigenspace is the plane they annihilate, and the shared row direction is
// its normal.
func planeCandidates(rows [3]linalg.Vec3, found []linalg.Vec3) []linalg.Vec3 {
	var normal linalg.Vec3
	for _, r := range rows {
		n := r.Norm()
		if n < zeroRowTol {
			continue
		}
		if normal.Norm() == 0 {
			normal = r
			continue
		}
		if r.Cross(normal).Norm() > parallelRowTol*n*normal.Norm() {
			return nil // two independent rows: not rank 1
		}
		if n > normal.Norm() {
			normal = r
		}
	}
	if normal.Norm() == 0 {
		return nil
	}
	normal = normal.Normalize()

	// In-plane and orthogonal to what was already found, then arbitrary
	// in-plane directions as fallback.
	cands := make([]linalg.Vec3, 0, len(found)+3)
	for _, f := range found {
		cands = append(cands, normal.Cross(f))
	}
	for _, axis := range axes3 {
		cands = append(cands, normal.Cross(axis))
	}
	return cands
}

// crossCandidates covers the general rank-2 case: the eigenspace line is
// orthogonal to two independent rows, i.e. along one of their cross
// products.
func crossCandidates(rows [3]linalg.Vec3, _ []linalg.Vec3) []linalg.Vec3 {
	return []linalg.Vec3{
		rows[0].Cross(rows[1]),
		rows[0].Cross(rows[2]),
		rows[1].Cross(rows[2]),
	}
}

// eliminationCandidates is the last resort when every cross product was
// degenerate or failed validation: fix one coordinate to 1 wherever a 2×2
// minor of a row pair is non-singular and solve for the remaining two.
func eliminationCandidates(rows [3]linalg.Vec3, _ []linalg.Vec3) []linalg.Vec3 {
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	var cands []linalg.Vec3
	for _, pr := range pairs {
		ra, rb := rows[pr[0]], rows[pr[1]]
		for fix := 0; fix < 3; fix++ {
			i, j := (fix+1)%3, (fix+2)%3
			det := ra[i]*rb[j] - ra[j]*rb[i]
			if math.Abs(det) < degenerateTol {
				continue
			}
			var v linalg.Vec3
			v[fix] = 1
			v[i] = (-ra[fix]*rb[j] + ra[j]*rb[fix]) / det
			v[j] = (-ra[i]*rb[fix] + ra[fix]*rb[i]) / det
			cands = append(cands, v)
		}
	}
	return cands
}

func accept3(s linalg.Mat3, v linalg.Vec3, found []linalg.Vec3) bool {
	// Acceptance form: a NaN residual must fail, not slip past a >= test.
	if res := s.MulVec(v).Norm(); !(res < residualTol) {
		return false
	}
	for _, f := range found {
		if math.Abs(v.Dot(f)) > parallelTol {
			return false
		}
	}
	return true
}
