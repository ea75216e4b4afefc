package physics

import (
	"math"

	"github.com/koteyur/vector2d/math2d"
)

// All routines write the normal pointing from a towards b. ContactCount
// is zero when the shapes do not touch; the other fields are then
// meaningless.

// CircleToCircle collides two circle bodies.
func CircleToCircle(m *Manifold, a, b *Body) {
	m.ContactCount = 0

	normal := b.Position.Sub(a.Position)
	distSqr := normal.LenSqr()
	radius := a.Shape.Radius + b.Shape.Radius
	if distSqr >= radius*radius {
		return
	}

	distance := math.Sqrt(distSqr)
	m.ContactCount = 1
	m.Penetration = radius - distance
	if distance == 0 {
		// Coincident centers: any unit normal will do.
		m.Normal = math2d.V(1, 0)
		m.Contacts[0] = a.Position
		return
	}
	m.Normal = normal.Div(distance)
	m.Contacts[0] = a.Position.Add(m.Normal.Scale(a.Shape.Radius))
}

// CircleToPolygon collides circle a with polygon b.
func CircleToPolygon(m *Manifold, a, b *Body) {
	circleToPolygon(m, a, b)
}

// PolygonToCircle collides polygon a with circle b by mirroring
// CircleToPolygon.
func PolygonToCircle(m *Manifold, a, b *Body) {
	circleToPolygon(m, b, a)
	m.Normal = m.Normal.Neg()
}

// circleToPolygon leaves the normal pointing from circle to poly.
func circleToPolygon(m *Manifold, circle, poly *Body) {
	m.ContactCount = 0
	radius := circle.Shape.Radius
	shape := &poly.Shape

	// Circle center in the polygon's frame.
	center := shape.Orient.Transpose().MulVec(circle.Position.Sub(poly.Position))

	separation := -math.MaxFloat64
	faceNormal := 0
	for i := 0; i < shape.VertexCount; i++ {
		s := math2d.Dot(shape.Normals[i], center.Sub(shape.Vertices[i]))
		if s > radius {
			return
		}
		if s > separation {
			separation = s
			faceNormal = i
		}
	}

	v1 := shape.Vertices[faceNormal]
	v2 := shape.Vertices[shape.next(faceNormal)]

	// Center inside the polygon.
	if separation < math2d.Epsilon {
		m.ContactCount = 1
		m.Normal = shape.Orient.MulVec(shape.Normals[faceNormal]).Neg()
		m.Contacts[0] = circle.Position.Add(m.Normal.Scale(radius))
		m.Penetration = radius - separation
		return
	}

	dot1 := math2d.Dot(center.Sub(v1), v2.Sub(v1))
	dot2 := math2d.Dot(center.Sub(v2), v1.Sub(v2))

	switch {
	case dot1 <= 0:
		polygonVertexContact(m, circle, poly, center, v1)
	case dot2 <= 0:
		polygonVertexContact(m, circle, poly, center, v2)
	default:
		n := shape.Normals[faceNormal]
		if math2d.Dot(center.Sub(v1), n) > radius {
			return
		}
		m.ContactCount = 1
		m.Normal = shape.Orient.MulVec(n).Neg()
		m.Contacts[0] = circle.Position.Add(m.Normal.Scale(radius))
		m.Penetration = radius - separation
	}
}

// polygonVertexContact handles a circle whose closest feature is the
// polygon vertex v (local space).
func polygonVertexContact(m *Manifold, circle, poly *Body, center, v math2d.Vec2) {
	radius := circle.Shape.Radius
	distSqr := math2d.DistSqr(center, v)
	if distSqr > radius*radius {
		return
	}
	m.ContactCount = 1
	n := poly.Shape.Orient.MulVec(v.Sub(center))
	n.Normalize()
	m.Normal = n
	m.Penetration = radius - math.Sqrt(distSqr)
	m.Contacts[0] = poly.Shape.Orient.MulVec(v).Add(poly.Position)
}

// PolygonToPolygon collides two polygons with the separating axis test,
// then clips the incident edge against the reference edge. The reference
// is A unless B's axis is decisively shallower. If clipping leaves no
// point behind the reference face, the other body's face is tried, and
// failing that the deepest vertex along the chosen axis is the contact.
func PolygonToPolygon(m *Manifold, a, b *Body) {
	m.ContactCount = 0

	faceA, penetrationA := findAxisLeastPenetration(a, b)
	if penetrationA >= 0 {
		return
	}
	faceB, penetrationB := findAxisLeastPenetration(b, a)
	if penetrationB >= 0 {
		return
	}

	if math2d.BiasGreaterThan(penetrationB, penetrationA) {
		if clipContacts(m, b, a, faceB, true) || clipContacts(m, a, b, faceA, false) {
			return
		}
		deepestContact(m, b, a, faceB, penetrationB, true)
		return
	}
	if clipContacts(m, a, b, faceA, false) || clipContacts(m, b, a, faceB, true) {
		return
	}
	deepestContact(m, a, b, faceA, penetrationA, false)
}

// clipContacts fills m from reference face referenceIndex of ref and
// reports whether any contact point survived. flip is set when ref is
// the manifold's B.
func clipContacts(m *Manifold, ref, inc *Body, referenceIndex int, flip bool) bool {
	incidentFace := findIncidentFace(ref, inc, referenceIndex)

	refShape := &ref.Shape
	v1 := refShape.Orient.MulVec(refShape.Vertices[referenceIndex]).Add(ref.Position)
	v2 := refShape.Orient.MulVec(refShape.Vertices[refShape.next(referenceIndex)]).Add(ref.Position)

	sidePlaneNormal := v2.Sub(v1)
	sidePlaneNormal.Normalize()
	refFaceNormal := math2d.V(sidePlaneNormal.Y, -sidePlaneNormal.X)

	refC := math2d.Dot(refFaceNormal, v1)
	negSide := -math2d.Dot(sidePlaneNormal, v1)
	posSide := math2d.Dot(sidePlaneNormal, v2)

	n := clip(sidePlaneNormal.Neg(), negSide, &incidentFace, 2)
	n = clip(sidePlaneNormal, posSide, &incidentFace, n)

	count := 0
	penetration := 0.0
	var contacts [2]math2d.Vec2
	for _, p := range incidentFace[:n] {
		separation := math2d.Dot(refFaceNormal, p) - refC
		if separation <= 0 {
			contacts[count] = p
			penetration = math.Max(penetration, -separation)
			count++
		}
	}
	if count == 0 {
		return false
	}

	m.Normal = refFaceNormal
	if flip {
		m.Normal = refFaceNormal.Neg()
	}
	m.Contacts = contacts
	m.ContactCount = count
	m.Penetration = penetration
	return true
}

// deepestContact reports the vertex of inc furthest behind the reference
// face's line as the single contact, at the axis separation.
func deepestContact(m *Manifold, ref, inc *Body, referenceIndex int, separation float64, flip bool) {
	normal := ref.Shape.Orient.MulVec(ref.Shape.Normals[referenceIndex])
	local := inc.Shape.Orient.Transpose().MulVec(normal.Neg())
	support := inc.Shape.Orient.MulVec(inc.Shape.Support(local)).Add(inc.Position)

	m.Normal = normal
	if flip {
		m.Normal = normal.Neg()
	}
	m.Contacts[0] = support
	m.ContactCount = 1
	m.Penetration = -separation
}

// findAxisLeastPenetration returns the face of a whose normal gives the
// largest separation from b, and that separation (negative when the
// shapes overlap along it).
func findAxisLeastPenetration(a, b *Body) (int, float64) {
	bestDistance := -math.MaxFloat64
	bestIndex := 0
	sa, sb := &a.Shape, &b.Shape
	buT := sb.Orient.Transpose()

	for i := 0; i < sa.VertexCount; i++ {
		// Face normal in b's frame.
		n := buT.MulVec(sa.Orient.MulVec(sa.Normals[i]))
		support := sb.Support(n.Neg())

		// Face vertex in b's frame.
		v := sa.Orient.MulVec(sa.Vertices[i]).Add(a.Position)
		v = buT.MulVec(v.Sub(b.Position))

		d := math2d.Dot(n, support.Sub(v))
		if d > bestDistance {
			bestDistance = d
			bestIndex = i
		}
	}
	return bestIndex, bestDistance
}

// findIncidentFace returns, in world space, the edge of inc most
// anti-parallel to the reference face normal.
func findIncidentFace(ref, inc *Body, referenceIndex int) [2]math2d.Vec2 {
	rs, is := &ref.Shape, &inc.Shape

	referenceNormal := rs.Orient.MulVec(rs.Normals[referenceIndex])
	referenceNormal = is.Orient.Transpose().MulVec(referenceNormal)

	incidentFace := 0
	minDot := math.MaxFloat64
	for i := 0; i < is.VertexCount; i++ {
		d := math2d.Dot(referenceNormal, is.Normals[i])
		if d < minDot {
			minDot = d
			incidentFace = i
		}
	}

	return [2]math2d.Vec2{
		is.Orient.MulVec(is.Vertices[incidentFace]).Add(inc.Position),
		is.Orient.MulVec(is.Vertices[is.next(incidentFace)]).Add(inc.Position),
	}
}

// clip keeps the part of the first count points of face behind the plane
// dot(n, x) = c and returns how many points survived.
func clip(n math2d.Vec2, c float64, face *[2]math2d.Vec2, count int) int {
	var out [2]math2d.Vec2
	var d [2]float64
	sp := 0
	for i := 0; i < count; i++ {
		d[i] = math2d.Dot(n, face[i]) - c
		if d[i] <= 0 {
			out[sp] = face[i]
			sp++
		}
	}

	// Points on opposite sides: add the intersection.
	if count == 2 && d[0]*d[1] < 0 {
		alpha := d[0] / (d[0] - d[1])
		out[sp] = face[0].Add(face[1].Sub(face[0]).Scale(alpha))
		sp++
	}

	*face = out
	return sp
}
