package physics

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/koteyur/vector2d/math2d"
)

var (
	ErrSceneFull   = errors.New("physics: scene is full")
	ErrUnknownBody = errors.New("physics: unknown body")
)

// Scene owns its bodies and steps them at a fixed rate. Bodies are
// addressed by BodyID; a removed ID may be handed out again. Not safe
// for concurrent use.
type Scene struct {
	cfg Config
	log Logger
	rng *rand.Rand

	bodies   []*Body
	free     []BodyID
	count    int
	contacts []Manifold
	steps    uint64
}

type Option func(*Scene)

func WithLogger(l Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithRand sets the source for body orientation and color.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) { s.rng = rng }
}

func NewScene(cfg Config, opts ...Option) *Scene {
	s := &Scene{cfg: cfg.withDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = NewNopLogger()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	return s
}

func (s *Scene) Config() Config {
	return s.cfg
}

// Add creates a body for shape at (x, y).
func (s *Scene) Add(shape Shape, x, y float64) (*Body, error) {
	if s.count >= s.cfg.MaxBodies {
		s.log.Warnf("cannot add %v at (%.2f, %.2f): %d bodies", shape.Kind, x, y, s.count)
		return nil, fmt.Errorf("%w: limit is %d", ErrSceneFull, s.cfg.MaxBodies)
	}

	b := NewBody(shape, x, y, s.rng)
	if n := len(s.free); n > 0 {
		b.ID = s.free[n-1]
		s.free = s.free[:n-1]
		s.bodies[b.ID] = b
	} else {
		b.ID = BodyID(len(s.bodies))
		s.bodies = append(s.bodies, b)
	}
	s.count++
	s.log.Debugf("added %v body %d at (%.2f, %.2f) mass=%.3f", shape.Kind, b.ID, x, y, b.Mass)
	return b, nil
}

// Body returns the body for id, or nil.
func (s *Scene) Body(id BodyID) *Body {
	if id < 0 || int(id) >= len(s.bodies) {
		return nil
	}
	return s.bodies[id]
}

// Remove drops a body. Manifolds from the last Step that reference it
// are discarded.
func (s *Scene) Remove(id BodyID) error {
	b := s.Body(id)
	if b == nil {
		return fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	s.bodies[id] = nil
	s.free = append(s.free, id)
	s.count--

	kept := s.contacts[:0]
	for _, m := range s.contacts {
		if m.A != b && m.B != b {
			kept = append(kept, m)
		}
	}
	s.contacts = kept
	s.log.Debugf("removed body %d", id)
	return nil
}

// Len is the number of live bodies.
func (s *Scene) Len() int {
	return s.count
}

// Bodies returns the live bodies in ID order.
func (s *Scene) Bodies() []*Body {
	out := make([]*Body, 0, s.count)
	for _, b := range s.bodies {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// Contacts returns a copy of the colliding manifolds of the last Step.
func (s *Scene) Contacts() []Manifold {
	return slices.Clone(s.contacts)
}

func (s *Scene) Steps() uint64 {
	return s.steps
}

// Step advances the simulation by one TimeStep.
func (s *Scene) Step() {
	s.steps++
	dt := s.cfg.TimeStep
	bodies := s.Bodies()

	s.contacts = s.contacts[:0]
	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if a.InvMass == 0 && b.InvMass == 0 {
				continue
			}
			m := NewManifold(a, b)
			m.Solve()
			if m.Colliding() {
				s.contacts = append(s.contacts, m)
			}
		}
	}

	for _, b := range bodies {
		s.integrateForces(b, dt)
	}

	for i := range s.contacts {
		s.contacts[i].Initialize(s.cfg.Gravity, dt)
	}

	for j := 0; j < s.cfg.Iterations; j++ {
		for i := range s.contacts {
			s.contacts[i].ApplyImpulse()
		}
	}

	for _, b := range bodies {
		s.integrateVelocity(b, dt)
	}

	for i := range s.contacts {
		s.contacts[i].PositionalCorrection(s.cfg.PenetrationAllowance, s.cfg.PenetrationCorrection)
	}

	for _, b := range bodies {
		b.Force = math2d.Vec2{}
		b.Torque = 0
	}
}

// integrateForces applies half a step of force, torque and gravity.
func (s *Scene) integrateForces(b *Body, dt float64) {
	if b.InvMass == 0 {
		return
	}
	half := dt / 2
	b.Velocity.AddInPlace(b.Force.Scale(b.InvMass).Add(s.cfg.Gravity).Scale(half))
	b.AngularVelocity += b.Torque * b.InvInertia * half
}

func (s *Scene) integrateVelocity(b *Body, dt float64) {
	if b.InvMass == 0 {
		return
	}
	b.Position.AddInPlace(b.Velocity.Scale(dt))
	b.SetOrient(b.Orient + b.AngularVelocity*dt)
	s.integrateForces(b, dt)
}
