package spectral

import "github.com/san-kum/eigenlab/internal/linalg"

// Analysis bundles everything the presentation layers need about one
// matrix: the full root multiset, the recovered eigen-pairs (2×2 vectors
// embedded with z = 0), and the assembled invariant objects.
type Analysis struct {
	Dim            int
	UniformScaling bool
	Roots          []Root
	Pairs          []EigenPair3
	Objects        []Object
}

// Analyze2 runs the whole pipeline on a 2×2 matrix.
func Analyze2(m linalg.Mat2) Analysis {
	roots := CharRoots2(m)
	a := Analysis{
		Dim:            2,
		UniformScaling: IsUniformScaling2(m),
		Roots:          roots[:],
		Objects:        Assemble2(m),
	}
	for _, p := range Decompose2(m) {
		a.Pairs = append(a.Pairs, EigenPair3{Value: p.Value, Vector: p.Vector.Embed()})
	}
	return a
}

// Analyze3 runs the whole pipeline on a 3×3 matrix.
func Analyze3(m linalg.Mat3) Analysis {
	roots := CharRoots3(m)
	a := Analysis{
		Dim:            3,
		UniformScaling: IsUniformScaling3(m),
		Roots:          roots[:],
		Pairs:          Decompose3(m),
		Objects:        Assemble3(m),
	}
	return a
}

// RealEigenvalues returns the distinct real eigenvalues in root order.
func (a Analysis) RealEigenvalues() []float64 {
	var vals []float64
	for _, cl := range clusterValues(realParts(a.Roots)) {
		vals = append(vals, cl.value)
	}
	return vals
}

// CountKind returns how many invariant objects of kind k were assembled.
func (a Analysis) CountKind(k Kind) int {
	n := 0
	for _, o := range a.Objects {
		if o.Kind == k {
			n++
		}
	}
	return n
}
