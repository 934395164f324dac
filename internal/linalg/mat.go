package linalg

import "math"

// Mat2 is a 2×2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
type Mat2 [4]float64

func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

func Mat2Diag(x, y float64) Mat2 {
	return Mat2{x, 0, 0, y}
}

// Mat2Rotation returns the counter-clockwise rotation by theta radians.
func Mat2Rotation(theta float64) Mat2 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat2{c, -s, s, c}
}

func (m Mat2) At(r, c int) float64 {
	return m[r*2+c]
}

func (m Mat2) Row(r int) Vec2 {
	return Vec2{m[r*2], m[r*2+1]}
}

// MulVec returns M × v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

func (m Mat2) Trace() float64 {
	return m[0] + m[3]
}

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Shifted returns M − λI.
func (m Mat2) Shifted(lambda float64) Mat2 {
	m[0] -= lambda
	m[3] -= lambda
	return m
}

func (m Mat2) IsFinite() bool {
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[r*3], m[r*3+1], m[r*3+2]}
}

// MulVec returns M × v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func (m Mat3) Trace() float64 {
	return m[0] + m[4] + m[8]
}

func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// MinorSum returns the sum of the three principal 2×2 minors, the
// λ-coefficient of the characteristic polynomial.
func (m Mat3) MinorSum() float64 {
	return m[4]*m[8] - m[5]*m[7] +
		m[0]*m[8] - m[2]*m[6] +
		m[0]*m[4] - m[1]*m[3]
}

// Shifted returns M − λI.
func (m Mat3) Shifted(lambda float64) Mat3 {
	m[0] -= lambda
	m[4] -= lambda
	m[8] -= lambda
	return m
}

func (m Mat3) IsFinite() bool {
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
