package physics

import "github.com/koteyur/vector2d/math2d"

const gravityScale = 5.0

// Config holds the tunables of a Scene.
type Config struct {
	// Gravity is added to every dynamic body's acceleration.
	Gravity math2d.Vec2
	// TimeStep is the fixed dt of one Step, in seconds.
	TimeStep float64
	// Iterations is the number of impulse passes per Step.
	Iterations int

	// Penetration below the allowance is left alone so resting contacts
	// do not jitter; the correction fraction is applied per Step.
	PenetrationAllowance  float64
	PenetrationCorrection float64

	// MaxBodies caps the arena.
	MaxBodies int
}

func DefaultConfig() Config {
	return Config{
		Gravity:               math2d.V(0, 10*gravityScale),
		TimeStep:              1.0 / 60.0,
		Iterations:            10,
		PenetrationAllowance:  0.05,
		PenetrationCorrection: 0.4,
		MaxBodies:             64,
	}
}

// withDefaults fills zero fields from DefaultConfig. Gravity is kept as
// given since a zero vector is a valid choice.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TimeStep <= 0 {
		c.TimeStep = d.TimeStep
	}
	if c.Iterations <= 0 {
		c.Iterations = d.Iterations
	}
	if c.PenetrationAllowance < 0 {
		c.PenetrationAllowance = d.PenetrationAllowance
	}
	if c.PenetrationCorrection <= 0 {
		c.PenetrationCorrection = d.PenetrationCorrection
	}
	if c.MaxBodies <= 0 {
		c.MaxBodies = d.MaxBodies
	}
	return c
}
