package spectral

import (
	"math"

	"github.com/san-kum/eigenlab/internal/linalg"
)

// uniformTol bounds how far a matrix may stray from a scalar multiple of
// the identity and still count as one.
const uniformTol = 1e-6

// IsUniformScaling2 reports whether m is a scalar multiple of the 2×2
// identity. Such a map leaves every line invariant, so callers draw
// nothing instead of everything.
func IsUniformScaling2(m linalg.Mat2) bool {
	return math.Abs(m[1]) < uniformTol &&
		math.Abs(m[2]) < uniformTol &&
		math.Abs(m[0]-m[3]) < uniformTol
}

// IsUniformScaling3 reports whether m is a scalar multiple of the 3×3
// identity.
func IsUniformScaling3(m linalg.Mat3) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r != c && math.Abs(m.At(r, c)) >= uniformTol {
				return false
			}
		}
	}
	return math.Abs(m[0]-m[4]) < uniformTol && math.Abs(m[4]-m[8]) < uniformTol
}

// cluster is one group of real eigenvalues considered equal: a
// representative value and its algebraic multiplicity.
type cluster struct {
	value float64
	count int
}

// clusterValues groups real eigenvalues by closeness. Two values belong to
// the same cluster when they differ by less than groupTol.
func clusterValues(values []float64) []cluster {
	var clusters []cluster
	for _, v := range values {
		placed := false
		for i := range clusters {
			if math.Abs(clusters[i].value-v) < groupTol {
				clusters[i].count++
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, cluster{value: v, count: 1})
		}
	}
	return clusters
}

// group2 and group3 pair an eigenvalue cluster with the independent
// eigenvectors actually recovered for it. The geometric multiplicity is
// len(vectors), which stays below the algebraic multiplicity for a
// defective eigenvalue.
type group2 struct {
	value   float64
	vectors []linalg.Vec2
}

type group3 struct {
	value   float64
	vectors []linalg.Vec3
}
