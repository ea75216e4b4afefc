package math2d

import "math"

// Vec2 is a 2D vector. It is a plain value; copy it freely.
type Vec2 struct {
	X float64
	Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

func (v *Vec2) AddInPlace(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) SubInPlace(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vec2) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
}

func (v *Vec2) DivInPlace(s float64) {
	v.X /= s
	v.Y /= s
}

func (v Vec2) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v to unit length in place. Vectors not longer than
// Epsilon are left untouched.
func (v *Vec2) Normalize() {
	l := v.Len()
	if l > Epsilon {
		inv := 1.0 / l
		v.X *= inv
		v.Y *= inv
	}
}

// Normalized returns a unit-length copy of v, following Normalize rules.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Rotate rotates v counter-clockwise by radians in place.
func (v *Vec2) Rotate(radians float64) {
	c := math.Cos(radians)
	s := math.Sin(radians)
	x := v.X*c - v.Y*s
	y := v.X*s + v.Y*c
	v.X = x
	v.Y = y
}

// ApproxEqual compares both components with Equal.
func (v Vec2) ApproxEqual(o Vec2) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y)
}

func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - b.X*a.Y
}

// CrossVS is the cross product of a vector with a scalar z axis.
func CrossVS(v Vec2, s float64) Vec2 {
	return Vec2{X: s * v.Y, Y: -s * v.X}
}

// CrossSV is the cross product of a scalar z axis with a vector.
func CrossSV(s float64, v Vec2) Vec2 {
	return Vec2{X: -s * v.Y, Y: s * v.X}
}

func Min(a, b Vec2) Vec2 {
	return Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func Max(a, b Vec2) Vec2 {
	return Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func DistSqr(a, b Vec2) float64 {
	c := a.Sub(b)
	return Dot(c, c)
}
