// Package linalg provides fixed-size vector and matrix value types for
// 2- and 3-dimensional real linear algebra.
//
// Matrices are stored row-major in flat arrays ([Mat2], [Mat3]) and vectors
// as plain arrays ([Vec2], [Vec3]), so every operation works on the stack
// with zero heap allocation. All types are immutable values; operations
// return new values.
package linalg
