package spectral

import "github.com/san-kum/eigenlab/internal/linalg"

// Kind tags the geometric type of an invariant object.
type Kind int

const (
	// Line is a 1-dimensional eigenspace; Axis is its unit direction.
	Line Kind = iota
	// Plane is a 2-dimensional eigenspace; Axis is its unit normal.
	Plane
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Plane:
		return "plane"
	}
	return "unknown"
}

// Object is a line or plane through the origin mapped into itself by the
// linear transformation. Vectors from 2×2 maps are embedded with z = 0.
type Object struct {
	Kind       Kind
	Axis       linalg.Vec3
	Eigenvalue float64
}

// EigenPair2 couples a real eigenvalue of a 2×2 matrix with one unit
// eigenvector. Eigenvalues with a 2-dimensional eigenspace appear in two
// pairs sharing the value.
type EigenPair2 struct {
	Value  float64
	Vector linalg.Vec2
}

// EigenPair3 couples a real eigenvalue of a 3×3 matrix with one unit
// eigenvector.
type EigenPair3 struct {
	Value  float64
	Vector linalg.Vec3
}

// Decompose2 returns every recovered eigen-pair of a 2×2 matrix. Complex
// eigenvalues contribute nothing; a repeated eigenvalue contributes as
// many pairs as independent eigenvectors were found.
func Decompose2(m linalg.Mat2) []EigenPair2 {
	var pairs []EigenPair2
	for _, g := range eigengroups2(m) {
		for _, v := range g.vectors {
			pairs = append(pairs, EigenPair2{Value: g.value, Vector: v})
		}
	}
	return pairs
}

// Decompose3 returns every recovered eigen-pair of a 3×3 matrix.
func Decompose3(m linalg.Mat3) []EigenPair3 {
	var pairs []EigenPair3
	for _, g := range eigengroups3(m) {
		for _, v := range g.vectors {
			pairs = append(pairs, EigenPair3{Value: g.value, Vector: v})
		}
	}
	return pairs
}

// Assemble2 returns the invariant objects of a 2×2 linear map: one Line
// per eigenvalue whose eigenspace is a line. Uniform scalings and maps
// with a complex spectrum yield an empty result.
func Assemble2(m linalg.Mat2) []Object {
	if IsUniformScaling2(m) {
		return nil
	}
	var objs []Object
	for _, g := range eigengroups2(m) {
		// Two independent eigenvectors mean the whole plane: nothing to
		// single out.
		if len(g.vectors) == 1 {
			objs = append(objs, Object{Kind: Line, Axis: g.vectors[0].Embed(), Eigenvalue: g.value})
		}
	}
	return objs
}

// Assemble3 returns the invariant objects of a 3×3 linear map: a Line per
// 1-dimensional eigenspace, a Plane per 2-dimensional one. A 3-dimensional
// eigenspace is the whole space and yields nothing.
func Assemble3(m linalg.Mat3) []Object {
	if IsUniformScaling3(m) {
		return nil
	}
	var objs []Object
	for _, g := range eigengroups3(m) {
		switch len(g.vectors) {
		case 1:
			objs = append(objs, Object{Kind: Line, Axis: g.vectors[0], Eigenvalue: g.value})
		case 2:
			n := g.vectors[0].Cross(g.vectors[1]).Normalize()
			if n.Norm() > 0 {
				objs = append(objs, Object{Kind: Plane, Axis: n, Eigenvalue: g.value})
			}
		}
	}
	return objs
}

// eigengroups2 clusters the real eigenvalues of m and recovers one
// eigenvector per algebraic root, each call aware of the vectors already
// found for the same cluster.
func eigengroups2(m linalg.Mat2) []group2 {
	roots := CharRoots2(m)
	clusters := clusterValues(realParts(roots[:]))
	groups := make([]group2, 0, len(clusters))
	for _, cl := range clusters {
		var found []linalg.Vec2
		for call := 0; call < cl.count; call++ {
			v, ok := Eigenvector2(m, cl.value, found)
			if !ok {
				break
			}
			found = append(found, v)
		}
		groups = append(groups, group2{value: cl.value, vectors: found})
	}
	return groups
}

// eigengroups3 is the 3×3 counterpart of eigengroups2.
func eigengroups3(m linalg.Mat3) []group3 {
	roots := CharRoots3(m)
	clusters := clusterValues(realParts(roots[:]))
	groups := make([]group3, 0, len(clusters))
	for _, cl := range clusters {
		var found []linalg.Vec3
		for call := 0; call < cl.count; call++ {
			v, ok := Eigenvector3(m, cl.value, found)
			if !ok {
				break
			}
			found = append(found, v)
		}
		groups = append(groups, group3{value: cl.value, vectors: found})
	}
	return groups
}
