package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/vector2d/math2d"
)

func TestNewBody_Defaults(t *testing.T) {
	b := NewBody(NewCircle(1), 3, 4, rand.New(rand.NewSource(5)))

	assert.Equal(t, math2d.V(3, 4), b.Position)
	assert.Zero(t, b.Velocity)
	assert.Zero(t, b.AngularVelocity)
	assert.Equal(t, 0.5, b.StaticFriction)
	assert.Equal(t, 0.3, b.DynamicFriction)
	assert.Equal(t, 0.2, b.Restitution)
	assert.InDelta(t, math2d.Pi, b.Mass, 1e-9)

	assert.GreaterOrEqual(t, b.Orient, -math2d.Pi)
	assert.Less(t, b.Orient, math2d.Pi)
	for _, c := range []float64{b.Color.R, b.Color.G, b.Color.B} {
		assert.GreaterOrEqual(t, c, 0.2)
		assert.Less(t, c, 1.0)
	}
}

func TestNewBody_SeededIsDeterministic(t *testing.T) {
	a := NewBody(NewBox(1, 1), 0, 0, rand.New(rand.NewSource(9)))
	b := NewBody(NewBox(1, 1), 0, 0, rand.New(rand.NewSource(9)))
	assert.Equal(t, a.Orient, b.Orient)
	assert.Equal(t, a.Color, b.Color)
	assert.True(t, a.Shape.Orient.ApproxEqual(math2d.Rotation(a.Orient)), "shape follows body orientation")

	assert.NotPanics(t, func() { NewBody(NewCircle(1), 0, 0, nil) })
}

func TestBody_ApplyForceAccumulates(t *testing.T) {
	b := testBody(NewCircle(1), 0, 0)
	b.ApplyForce(math2d.V(1, 2))
	b.ApplyForce(math2d.V(-3, 1))
	assert.Equal(t, math2d.V(-2, 3), b.Force)
}

func TestBody_ApplyTorque(t *testing.T) {
	b := testBody(NewCircle(1), 0, 0)
	b.ApplyTorque(2)
	b.ApplyTorque(-0.5)
	assert.Equal(t, 1.5, b.Torque)
}

func TestBody_TorqueSpinsInScene(t *testing.T) {
	s := NewScene(Config{})
	b, err := s.Add(NewBox(1, 1), 0, 0)
	require.NoError(t, err)
	b.ApplyTorque(10)
	s.Step()
	assert.Greater(t, b.AngularVelocity, 0.0)
	assert.Zero(t, b.Torque)
}

func TestBody_ApplyImpulse(t *testing.T) {
	b := testBody(NewBox(0.5, 0.5), 0, 0)
	require.InDelta(t, 1.0, b.InvMass, 1e-9)

	b.ApplyImpulse(math2d.V(0, 2), math2d.V(1, 0))
	assert.True(t, b.Velocity.ApproxEqual(math2d.V(0, 2)))
	assert.InDelta(t, 2*b.InvInertia, b.AngularVelocity, 1e-9, "counter-clockwise spin")
}

func TestBody_StaticIgnoresImpulse(t *testing.T) {
	b := testBody(NewBox(1, 1), 0, 0)
	b.SetStatic()
	require.True(t, b.IsStatic())
	assert.Zero(t, b.Mass)
	assert.Zero(t, b.Inertia)

	b.ApplyImpulse(math2d.V(10, -4), math2d.V(1, 1))
	assert.Zero(t, b.Velocity)
	assert.Zero(t, b.AngularVelocity)
}

func TestBody_SetOrient(t *testing.T) {
	b := testBody(NewBox(1, 1), 0, 0)
	b.SetOrient(0.5)
	assert.Equal(t, 0.5, b.Orient)
	assert.True(t, b.Shape.Orient.ApproxEqual(math2d.Rotation(0.5)))
}

func TestBody_Vertices(t *testing.T) {
	box := testBody(NewBox(0.5, 0.5), 2, 3)
	require.Equal(t, 4, box.VertexCount())
	assert.True(t, box.Vertex(0).ApproxEqual(math2d.V(1.5, 2.5)))
	assert.True(t, box.Vertex(2).ApproxEqual(math2d.V(2.5, 3.5)))

	box.SetOrient(math2d.Pi / 2)
	assert.True(t, box.Vertex(0).ApproxEqual(math2d.V(2.5, 2.5)), "got %v", box.Vertex(0))

	circle := testBody(NewCircle(2), 1, 1)
	require.Equal(t, CircleVertices, circle.VertexCount())
	assert.True(t, circle.Vertex(0).ApproxEqual(math2d.V(3, 1)))
	for i := 0; i < CircleVertices; i++ {
		assert.InDelta(t, 2.0, circle.Vertex(i).Sub(circle.Position).Len(), 1e-9)
	}
}

func TestColor_RGBA(t *testing.T) {
	c := Color{R: 1, G: 0, B: 2}.RGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}
