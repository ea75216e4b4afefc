package physics

import (
	"errors"
	"fmt"

	"github.com/koteyur/vector2d/math2d"
)

var (
	ErrTooFewPoints = errors.New("physics: polygon needs at least 3 points")
	ErrDegenerate   = errors.New("physics: degenerate polygon")
)

// ValidatePoints reports whether Set would accept points, without
// panicking.
func ValidatePoints(points []math2d.Vec2) error {
	ps := weld(points)
	if len(ps) < 3 {
		return fmt.Errorf("%w: %d distinct of %d given", ErrTooFewPoints, len(ps), len(points))
	}
	hull, ok := giftWrap(ps)
	if !ok || len(hull) < 3 {
		return fmt.Errorf("%w: points are collinear", ErrDegenerate)
	}
	return nil
}

// Set replaces s with the convex hull of points, wound counter-clockwise
// starting from the rightmost (then lowest) point, and derives the edge
// normals. Points beyond MaxPolyVertexCount are ignored. Fewer than
// three distinct points, a collinear set or a zero length edge panic.
func (s *Shape) Set(points []math2d.Vec2) {
	if len(points) < 3 {
		panic(fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points)))
	}
	ps := weld(points)
	if len(ps) < 3 {
		panic(fmt.Errorf("%w: %d distinct of %d given", ErrTooFewPoints, len(ps), len(points)))
	}
	hull, ok := giftWrap(ps)
	if !ok || len(hull) < 3 {
		panic(fmt.Errorf("%w: points are collinear", ErrDegenerate))
	}

	s.Kind = ShapePolygon
	s.Orient = math2d.Rotation(0)
	s.VertexCount = len(hull)
	for i, idx := range hull {
		s.Vertices[i] = ps[idx]
	}
	for i1 := 0; i1 < s.VertexCount; i1++ {
		face := s.Vertices[s.next(i1)].Sub(s.Vertices[i1])
		if face.LenSqr() <= math2d.Epsilon*math2d.Epsilon {
			panic(fmt.Errorf("%w: edge %d has zero length", ErrDegenerate, i1))
		}
		n := math2d.V(face.Y, -face.X)
		n.Normalize()
		s.Normals[i1] = n
	}
}

// weld drops points closer than Epsilon to an earlier one and truncates
// to MaxPolyVertexCount.
func weld(points []math2d.Vec2) []math2d.Vec2 {
	n := min(len(points), MaxPolyVertexCount)
	ps := make([]math2d.Vec2, 0, n)
	for _, v := range points[:n] {
		unique := true
		for _, p := range ps {
			if math2d.DistSqr(v, p) < math2d.Epsilon*math2d.Epsilon {
				unique = false
				break
			}
		}
		if unique {
			ps = append(ps, v)
		}
	}
	return ps
}

// giftWrap returns hull indices into ps. ok is false if the walk fails
// to close within MaxPolyVertexCount steps.
func giftWrap(ps []math2d.Vec2) (hull []int, ok bool) {
	n := len(ps)

	// Rightmost point, lowest y on ties.
	i0 := 0
	x0 := ps[0].X
	for i := 1; i < n; i++ {
		x := ps[i].X
		if x > x0 || (x == x0 && ps[i].Y < ps[i0].Y) {
			i0 = i
			x0 = x
		}
	}

	ih := i0
	for len(hull) < MaxPolyVertexCount {
		hull = append(hull, ih)

		// Most clockwise candidate; everything else ends up on its left.
		ie := 0
		for j := 1; j < n; j++ {
			if ie == ih {
				ie = j
				continue
			}
			r := ps[ie].Sub(ps[ih])
			v := ps[j].Sub(ps[ih])
			c := math2d.Cross(r, v)
			if c < 0 {
				ie = j
			}
			// Collinear: keep the farther point.
			if c == 0 && v.LenSqr() > r.LenSqr() {
				ie = j
			}
		}

		ih = ie
		if ie == i0 {
			return hull, true
		}
	}
	return hull, false
}
