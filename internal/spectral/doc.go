// Package spectral computes closed-form eigen-decompositions of real 2×2
// and 3×3 matrices and derives the invariant lines and planes of the
// corresponding linear maps.
//
// The pipeline runs in four stages:
//
//   - [CharRoots2] / [CharRoots3]: real and complex roots of the
//     characteristic polynomial (quadratic formula, depressed cubic).
//   - [Eigenvector2] / [Eigenvector3]: one unit eigenvector per call for a
//     known real eigenvalue, avoiding directions already found so that
//     repeated eigenvalues yield an independent basis of their eigenspace.
//   - [IsUniformScaling2] / [IsUniformScaling3]: scalar multiples of the
//     identity, for which every line is invariant and nothing is reported.
//   - [Assemble2] / [Assemble3]: eigenvalue groups turned into [Object]
//     records: a Line per 1-dimensional eigenspace, a Plane per
//     2-dimensional one.
//
// Every returned eigenvector is unit length, satisfies the residual bound
// ‖(A−λI)v‖ < 0.01, and is non-parallel (|dot| ≤ 0.99) to the other
// vectors of its eigenvalue group. Degenerate inputs never produce an
// error; they degrade to fewer or zero invariant objects.
//
// All computation is pure and synchronous: the same matrix always yields
// the same decomposition up to eigenvector sign, and concurrent calls on
// different matrices share no state.
package spectral
