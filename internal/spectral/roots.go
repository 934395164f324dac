package spectral

import (
	"math"

	"github.com/san-kum/eigenlab/internal/linalg"
)

const (
	// rootTol separates real roots from complex ones and guards the
	// discriminant branches of the cubic.
	rootTol = 1e-10

	// groupTol decides when two real eigenvalues count as the same root.
	groupTol = 1e-6

	// residualTol bounds ‖(A−λI)v‖ for an accepted eigenvector.
	residualTol = 1e-2

	// parallelTol is the maximum |v·w| between two eigenvectors of the
	// same eigenvalue before they count as duplicates.
	parallelTol = 0.99
)

// Root is one root of a characteristic polynomial.
type Root struct {
	Re float64
	Im float64
}

// IsReal reports whether the imaginary part is negligible.
func (r Root) IsReal() bool {
	return math.Abs(r.Im) < rootTol
}

// CharRoots2 returns both roots of det(A − λI) for a 2×2 matrix, complex
// conjugate pairs included.
func CharRoots2(m linalg.Mat2) [2]Root {
	tr := m.Trace()
	det := m.Det()
	disc := tr*tr - 4*det

	if disc < -rootTol {
		im := math.Sqrt(-disc) / 2
		return [2]Root{{tr / 2, im}, {tr / 2, -im}}
	}

	// Clamp: rounding can push a zero discriminant slightly negative.
	s := math.Sqrt(math.Max(0, disc))
	return [2]Root{{(tr + s) / 2, 0}, {(tr - s) / 2, 0}}
}

// CharRoots3 returns all three roots of det(A − λI) for a 3×3 matrix.
//
// The monic characteristic polynomial λ³ − tr·λ² + m₂·λ − det (m₂ the sum
// of principal 2×2 minors) is depressed by λ = t + tr/3 into t³ + pt + q,
// then solved by the trigonometric formula when all roots are real and by
// Cardano's formula when a conjugate pair exists.
func CharRoots3(m linalg.Mat3) [3]Root {
	tr := m.Trace()
	m2 := m.MinorSum()
	det := m.Det()

	// Coefficients of the depressed cubic t³ + pt + q.
	p := m2 - tr*tr/3
	q := -2*tr*tr*tr/27 + tr*m2/3 - det
	shift := tr / 3

	disc := -(4*p*p*p + 27*q*q)

	if disc >= -rootTol {
		// Three real roots. A positive p can reach this branch only when
		// the discriminant is itself within tolerance of zero, and the
		// trigonometric formula would take sqrt of a negative there, so the
		// whole p ≥ −ε sliver goes through the cube root.
		if p > -rootTol {
			// Triple (or near-triple) root: t³ = −q.
			t := math.Cbrt(-q)
			r := Root{t + shift, 0}
			return [3]Root{r, r, r}
		}

		// p ≤ −ε here, the trigonometric arguments are well defined.
		a := 2 * math.Sqrt(-p/3)
		arg := -q / (2 * math.Pow(-p/3, 1.5))
		theta := math.Acos(math.Max(-1, math.Min(1, arg))) / 3

		var roots [3]Root
		for k := 0; k < 3; k++ {
			t := a * math.Cos(theta-2*math.Pi*float64(k)/3)
			roots[k] = Root{t + shift, 0}
		}
		return roots
	}

	// One real root, one complex conjugate pair (Cardano).
	s := math.Sqrt(-disc / 108)
	ca := math.Cbrt(-q/2 + s)
	cb := math.Cbrt(-q/2 - s)

	real := Root{ca + cb + shift, 0}
	re := -(ca+cb)/2 + shift
	im := math.Abs(ca-cb) * math.Sqrt(3) / 2
	return [3]Root{real, {re, im}, {re, -im}}
}

// realParts filters a root multiset down to the real eigenvalues.
func realParts(roots []Root) []float64 {
	reals := make([]float64, 0, len(roots))
	for _, r := range roots {
		if r.IsReal() {
			reals = append(reals, r.Re)
		}
	}
	return reals
}
