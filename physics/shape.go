// Package physics is the narrow-phase and contact core of a small 2D
// impulse engine: rigid bodies, circle and convex polygon shapes, the
// pairwise collision routines that fill a Manifold, and a Scene that
// steps them.
package physics

import (
	"fmt"
	"math"

	"github.com/koteyur/vector2d/math2d"
)

const (
	MaxPolyVertexCount = 64
	CircleVertices     = 24
)

// ShapeKind tags the variant stored in a Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
	shapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is a closed union over circles and convex polygons. Only the
// fields of its Kind are meaningful. Vertices and normals live in
// fixed arrays, so plain assignment is a deep copy.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	// Orient rotates local polygon vertices into world space.
	Orient math2d.Mat2

	VertexCount int
	Vertices    [MaxPolyVertexCount]math2d.Vec2
	// Normals[i] is the outward unit normal of the edge Vertices[i] -> Vertices[i+1].
	Normals [MaxPolyVertexCount]math2d.Vec2
}

// MassData is what a shape contributes to its body.
type MassData struct {
	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64
}

func NewCircle(radius float64) Shape {
	return Shape{
		Kind:   ShapeCircle,
		Radius: radius,
		Orient: math2d.Rotation(0),
	}
}

// NewBox returns an axis aligned rectangle centered on the local origin.
func NewBox(hw, hh float64) Shape {
	s := Shape{Kind: ShapePolygon}
	s.SetBox(hw, hh)
	return s
}

// NewPolygon returns the convex hull of points. It panics on degenerate
// input, see Set.
func NewPolygon(points []math2d.Vec2) Shape {
	s := Shape{Kind: ShapePolygon}
	s.Set(points)
	return s
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return s
}

// SetOrient updates the rotation matrix of a polygon. Circles are
// rotation invariant and ignore it.
func (s *Shape) SetOrient(radians float64) {
	if s.Kind == ShapePolygon {
		s.Orient.Set(radians)
	}
}

// SetBox turns s into a 4-vertex rectangle with half extents hw and hh.
func (s *Shape) SetBox(hw, hh float64) {
	s.Kind = ShapePolygon
	s.Orient = math2d.Rotation(0)
	s.VertexCount = 4
	s.Vertices[0].Set(-hw, -hh)
	s.Vertices[1].Set(hw, -hh)
	s.Vertices[2].Set(hw, hh)
	s.Vertices[3].Set(-hw, hh)
	s.Normals[0].Set(0, -1)
	s.Normals[1].Set(1, 0)
	s.Normals[2].Set(0, 1)
	s.Normals[3].Set(-1, 0)
}

// MassData computes mass and rotational inertia for the given density.
// Polygons are integrated as a triangle fan from the local origin, so
// their vertices must already be wound counter-clockwise.
func (s Shape) MassData(density float64) MassData {
	var md MassData
	switch s.Kind {
	case ShapeCircle:
		md.Mass = math2d.Pi * s.Radius * s.Radius * density
		md.Inertia = md.Mass * s.Radius * s.Radius
	case ShapePolygon:
		const inv3 = 1.0 / 3.0
		area := 0.0
		inertia := 0.0
		for i1 := 0; i1 < s.VertexCount; i1++ {
			p1 := s.Vertices[i1]
			p2 := s.Vertices[s.next(i1)]

			d := math2d.Cross(p1, p2)
			area += 0.5 * d

			intx2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
			inty2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
			inertia += (0.25 * inv3 * d) * (intx2 + inty2)
		}
		md.Mass = density * area
		md.Inertia = density * inertia
	default:
		panic(fmt.Sprintf("physics: mass of unknown %v", s.Kind))
	}
	if md.Mass != 0 {
		md.InvMass = 1.0 / md.Mass
	}
	if md.Inertia != 0 {
		md.InvInertia = 1.0 / md.Inertia
	}
	return md
}

// Support returns the local vertex furthest along dir. The first vertex
// wins ties.
func (s Shape) Support(dir math2d.Vec2) math2d.Vec2 {
	bestProjection := -math.MaxFloat64
	var bestVertex math2d.Vec2
	for i := 0; i < s.VertexCount; i++ {
		v := s.Vertices[i]
		projection := math2d.Dot(v, dir)
		if projection > bestProjection {
			bestVertex = v
			bestProjection = projection
		}
	}
	return bestVertex
}

func (s Shape) next(i int) int {
	if i+1 < s.VertexCount {
		return i + 1
	}
	return 0
}
