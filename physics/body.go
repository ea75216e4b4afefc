package physics

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/koteyur/vector2d/math2d"
)

// Color is a cosmetic RGB triple in [0, 1]; physics never reads it.
type Color struct {
	R, G, B float64
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math2d.Clamp(0, 1, c.R) * 255),
		G: uint8(math2d.Clamp(0, 1, c.G) * 255),
		B: uint8(math2d.Clamp(0, 1, c.B) * 255),
		A: 255,
	}
}

// BodyID addresses a body inside a Scene.
type BodyID int

// Body is one rigid object. A zero InvMass / InvInertia means infinite
// mass: forces and impulses never move it.
type Body struct {
	ID    BodyID
	Shape Shape

	Position        math2d.Vec2
	Velocity        math2d.Vec2
	Force           math2d.Vec2
	Orient          float64
	AngularVelocity float64
	Torque          float64

	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64

	StaticFriction  float64
	DynamicFriction float64
	Restitution     float64

	Color Color
}

// NewBody attaches shape to a fresh body at (x, y). Orientation and color
// are drawn from rng; a nil rng falls back to a fixed seed. Mass comes
// from the shape at density 1.
func NewBody(shape Shape, x, y float64, rng *rand.Rand) *Body {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	b := &Body{
		Shape:           shape,
		Position:        math2d.V(x, y),
		StaticFriction:  0.5,
		DynamicFriction: 0.3,
		Restitution:     0.2,
	}
	b.SetOrient(math2d.Random(rng, -math2d.Pi, math2d.Pi))
	b.Color = Color{
		R: math2d.Random(rng, 0.2, 1),
		G: math2d.Random(rng, 0.2, 1),
		B: math2d.Random(rng, 0.2, 1),
	}
	b.Initialize()
	return b
}

// Initialize computes mass properties at density 1.
func (b *Body) Initialize() {
	b.ComputeMass(1)
}

// ComputeMass overwrites the mass fields from the attached shape.
func (b *Body) ComputeMass(density float64) {
	md := b.Shape.MassData(density)
	b.Mass = md.Mass
	b.InvMass = md.InvMass
	b.Inertia = md.Inertia
	b.InvInertia = md.InvInertia
}

func (b *Body) ApplyForce(f math2d.Vec2) {
	b.Force.AddInPlace(f)
}

// ApplyTorque accumulates torque until the next Scene step clears it.
func (b *Body) ApplyTorque(torque float64) {
	b.Torque += torque
}

// ApplyImpulse changes velocity immediately; contact is the lever arm
// from the center of mass to the application point.
func (b *Body) ApplyImpulse(impulse, contact math2d.Vec2) {
	b.Velocity.AddInPlace(impulse.Scale(b.InvMass))
	b.AngularVelocity += b.InvInertia * math2d.Cross(contact, impulse)
}

// SetStatic gives b infinite mass and inertia.
func (b *Body) SetStatic() {
	b.Mass = 0
	b.InvMass = 0
	b.Inertia = 0
	b.InvInertia = 0
}

func (b *Body) IsStatic() bool {
	return b.InvMass == 0 && b.InvInertia == 0
}

func (b *Body) SetOrient(radians float64) {
	b.Orient = radians
	b.Shape.SetOrient(radians)
}

// VertexCount is the number of outline points Vertex yields.
func (b *Body) VertexCount() int {
	switch b.Shape.Kind {
	case ShapeCircle:
		return CircleVertices
	case ShapePolygon:
		return b.Shape.VertexCount
	}
	return 0
}

// Vertex returns the i-th outline point in world space. Circles are
// approximated by CircleVertices points starting at the body's
// orientation.
func (b *Body) Vertex(i int) math2d.Vec2 {
	switch b.Shape.Kind {
	case ShapeCircle:
		theta := b.Orient + 2*math2d.Pi*float64(i)/CircleVertices
		return math2d.V(
			b.Position.X+math.Cos(theta)*b.Shape.Radius,
			b.Position.Y+math.Sin(theta)*b.Shape.Radius,
		)
	case ShapePolygon:
		return b.Position.Add(b.Shape.Orient.MulVec(b.Shape.Vertices[i]))
	}
	return b.Position
}
