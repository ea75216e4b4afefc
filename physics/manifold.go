package physics

import (
	"fmt"
	"math"

	"github.com/koteyur/vector2d/math2d"
)

// Manifold describes the contact between two bodies for one step. It
// borrows A and B; they must outlive it.
type Manifold struct {
	A, B *Body

	Penetration  float64
	Normal       math2d.Vec2 // from A towards B
	Contacts     [2]math2d.Vec2
	ContactCount int

	Restitution     float64
	StaticFriction  float64
	DynamicFriction float64
}

func NewManifold(a, b *Body) Manifold {
	return Manifold{A: a, B: b}
}

// Solve runs the narrow-phase routine matching the pair of shape kinds.
func (m *Manifold) Solve() {
	switch m.A.Shape.Kind {
	case ShapeCircle:
		switch m.B.Shape.Kind {
		case ShapeCircle:
			CircleToCircle(m, m.A, m.B)
			return
		case ShapePolygon:
			CircleToPolygon(m, m.A, m.B)
			return
		}
	case ShapePolygon:
		switch m.B.Shape.Kind {
		case ShapeCircle:
			PolygonToCircle(m, m.A, m.B)
			return
		case ShapePolygon:
			PolygonToPolygon(m, m.A, m.B)
			return
		}
	}
	panic(fmt.Sprintf("physics: no collision routine for %v/%v", m.A.Shape.Kind, m.B.Shape.Kind))
}

// Colliding reports whether the last Solve found any contact.
func (m *Manifold) Colliding() bool {
	return m.ContactCount > 0
}

// CombineMaterials sets the pair's restitution to the smaller of the two
// and each friction coefficient to the geometric mean.
func (m *Manifold) CombineMaterials() {
	m.Restitution = math.Min(m.A.Restitution, m.B.Restitution)
	m.StaticFriction = math.Sqrt(m.A.StaticFriction * m.B.StaticFriction)
	m.DynamicFriction = math.Sqrt(m.A.DynamicFriction * m.B.DynamicFriction)
}

// Initialize prepares the manifold for impulse resolution. Contacts
// slower than one step of gravity do not bounce.
func (m *Manifold) Initialize(gravity math2d.Vec2, dt float64) {
	m.CombineMaterials()

	resting := gravity.Scale(dt).LenSqr() + math2d.Epsilon
	for i := 0; i < m.ContactCount; i++ {
		if m.relativeVelocity(i).LenSqr() < resting {
			m.Restitution = 0
		}
	}
}

func (m *Manifold) relativeVelocity(i int) math2d.Vec2 {
	a, b := m.A, m.B
	ra := m.Contacts[i].Sub(a.Position)
	rb := m.Contacts[i].Sub(b.Position)
	return b.Velocity.Add(math2d.CrossSV(b.AngularVelocity, rb)).
		Sub(a.Velocity).Sub(math2d.CrossSV(a.AngularVelocity, ra))
}

// ApplyImpulse resolves one iteration of normal and friction impulses
// through Body.ApplyImpulse.
func (m *Manifold) ApplyImpulse() {
	a, b := m.A, m.B
	if a.InvMass+b.InvMass == 0 {
		m.InfiniteMassCorrection()
		return
	}

	for i := 0; i < m.ContactCount; i++ {
		ra := m.Contacts[i].Sub(a.Position)
		rb := m.Contacts[i].Sub(b.Position)

		rv := m.relativeVelocity(i)
		contactVel := math2d.Dot(rv, m.Normal)
		// Already separating at this point.
		if contactVel > 0 {
			continue
		}

		raCrossN := math2d.Cross(ra, m.Normal)
		rbCrossN := math2d.Cross(rb, m.Normal)
		invMassSum := a.InvMass + b.InvMass +
			math2d.Sqr(raCrossN)*a.InvInertia + math2d.Sqr(rbCrossN)*b.InvInertia

		j := -(1 + m.Restitution) * contactVel
		j /= invMassSum
		j /= float64(m.ContactCount)

		impulse := m.Normal.Scale(j)
		a.ApplyImpulse(impulse.Neg(), ra)
		b.ApplyImpulse(impulse, rb)

		// Friction along the contact tangent.
		rv = m.relativeVelocity(i)
		t := rv.Sub(m.Normal.Scale(math2d.Dot(rv, m.Normal)))
		t.Normalize()

		jt := -math2d.Dot(rv, t)
		jt /= invMassSum
		jt /= float64(m.ContactCount)
		if math2d.Equal(jt, 0) {
			continue
		}

		var tangentImpulse math2d.Vec2
		if math.Abs(jt) < j*m.StaticFriction {
			tangentImpulse = t.Scale(jt)
		} else {
			tangentImpulse = t.Scale(-j * m.DynamicFriction)
		}
		a.ApplyImpulse(tangentImpulse.Neg(), ra)
		b.ApplyImpulse(tangentImpulse, rb)
	}
}

// PositionalCorrection pushes the bodies apart along the normal by
// percent of the penetration beyond allowance, weighted by inverse mass.
func (m *Manifold) PositionalCorrection(allowance, percent float64) {
	a, b := m.A, m.B
	invMassSum := a.InvMass + b.InvMass
	if invMassSum == 0 {
		return
	}
	depth := math.Max(m.Penetration-allowance, 0)
	correction := m.Normal.Scale(depth / invMassSum * percent)
	a.Position.SubInPlace(correction.Scale(a.InvMass))
	b.Position.AddInPlace(correction.Scale(b.InvMass))
}

// InfiniteMassCorrection stops two bodies that both have infinite mass.
func (m *Manifold) InfiniteMassCorrection() {
	m.A.Velocity = math2d.Vec2{}
	m.B.Velocity = math2d.Vec2{}
}
