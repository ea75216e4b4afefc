package math2d

import "math"

// Mat2 is a row-major 2x2 matrix, mostly used as a rotation.
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

// Rotation returns the matrix rotating counter-clockwise by radians.
func Rotation(radians float64) Mat2 {
	var m Mat2
	m.Set(radians)
	return m
}

// NewMat2 builds a matrix from its entries in row order.
func NewMat2(a, b, c, d float64) Mat2 {
	return Mat2{M00: a, M01: b, M10: c, M11: d}
}

// Set turns m into a rotation by radians.
func (m *Mat2) Set(radians float64) {
	c := math.Cos(radians)
	s := math.Sin(radians)
	m.M00, m.M01 = c, -s
	m.M10, m.M11 = s, c
}

func (m Mat2) Abs() Mat2 {
	return Mat2{
		M00: math.Abs(m.M00), M01: math.Abs(m.M01),
		M10: math.Abs(m.M10), M11: math.Abs(m.M11),
	}
}

// AxisX is the first column: the rotated x axis.
func (m Mat2) AxisX() Vec2 {
	return Vec2{X: m.M00, Y: m.M10}
}

// AxisY is the second column: the rotated y axis.
func (m Mat2) AxisY() Vec2 {
	return Vec2{X: m.M01, Y: m.M11}
}

// Transpose is the inverse for a pure rotation.
func (m Mat2) Transpose() Mat2 {
	return Mat2{M00: m.M00, M01: m.M10, M10: m.M01, M11: m.M11}
}

func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		M00: m.M00*o.M00 + m.M01*o.M10,
		M01: m.M00*o.M01 + m.M01*o.M11,
		M10: m.M10*o.M00 + m.M11*o.M10,
		M11: m.M10*o.M01 + m.M11*o.M11,
	}
}

func (m Mat2) ApproxEqual(o Mat2) bool {
	return Equal(m.M00, o.M00) && Equal(m.M01, o.M01) &&
		Equal(m.M10, o.M10) && Equal(m.M11, o.M11)
}
