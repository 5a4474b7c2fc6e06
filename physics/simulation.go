package physics

import (
	"fmt"
	"time"

	"github.com/meghashyamc/orbit2d/geometry"
)

// BodyState is what a renderer needs to draw one body for a frame.
type BodyState struct {
	Name       string
	Position   geometry.Vector
	Velocity   geometry.Vector
	Radius     float64
	AssetIndex int
}

// Simulation owns the star, the orbiting bodies and the current timestep.
// It is not safe for concurrent use.
type Simulation struct {
	star     *FixedMass
	bodies   []*Body
	forces   []geometry.Vector
	timestep *TimestepController

	steps         uint64
	simulatedTime float64
}

// NewSimulation validates the initial conditions and seeds every body on a
// circular orbit. Invalid conditions are the only fatal error a simulation
// can have.
func NewSimulation(star StarSpec, bodies []BodySpec, timestep TimestepConfig) (*Simulation, error) {
	if err := Validate(star, bodies); err != nil {
		return nil, err
	}
	controller, err := NewTimestepController(timestep)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		star:     NewFixedMass(star),
		bodies:   make([]*Body, len(bodies)),
		forces:   make([]geometry.Vector, len(bodies)),
		timestep: controller,
	}
	for i, spec := range bodies {
		s.bodies[i] = NewBody(spec)
	}
	return s, nil
}

// Step advances every body by timestep seconds. Each phase finishes for all
// bodies before the next one starts, so forces always come from a single
// snapshot of positions.
func (s *Simulation) Step(timestep float64) error {
	if err := s.accumulateForces(); err != nil {
		return err
	}
	s.deriveAccelerations()
	s.integrateVelocities(timestep)
	s.integratePositions(timestep)
	return nil
}

// Advance steps with the controller's current timestep.
func (s *Simulation) Advance() error {
	timestep := s.timestep.Timestep()
	if err := s.Step(timestep); err != nil {
		return err
	}
	s.steps++
	s.simulatedTime += timestep
	return nil
}

// RescaleTimestep feeds the wall-clock duration of the last frame to the
// timestep controller.
func (s *Simulation) RescaleTimestep(elapsed time.Duration) Adjustment {
	return s.timestep.Rescale(elapsed)
}

// accumulateForces computes every resultant force before storing any, so a
// coincidence error leaves the bodies untouched.
func (s *Simulation) accumulateForces() error {
	for i, body := range s.bodies {
		resultant, err := body.ForceTo(s.star)
		if err != nil {
			return fmt.Errorf("step %d: %w", s.steps, err)
		}
		for _, other := range s.bodies {
			if other == body {
				continue
			}
			force, err := body.ForceTo(other)
			if err != nil {
				return fmt.Errorf("step %d: %w", s.steps, err)
			}
			resultant = resultant.Add(force)
		}
		s.forces[i] = resultant
	}
	for i, body := range s.bodies {
		body.force = s.forces[i]
	}
	return nil
}

func (s *Simulation) deriveAccelerations() {
	for _, body := range s.bodies {
		body.acceleration = body.force.Scale(1 / body.mass)
	}
}

func (s *Simulation) integrateVelocities(timestep float64) {
	for _, body := range s.bodies {
		body.velocity = body.velocity.Add(body.acceleration.Scale(timestep))
	}
}

// integratePositions uses the velocities just updated, which makes this
// semi-implicit Euler rather than explicit Euler.
func (s *Simulation) integratePositions(timestep float64) {
	for _, body := range s.bodies {
		body.position = body.position.Add(body.velocity.Scale(timestep))
	}
}

// Bodies returns a snapshot of every body in configuration order.
func (s *Simulation) Bodies() []BodyState {
	states := make([]BodyState, len(s.bodies))
	for i, b := range s.bodies {
		states[i] = BodyState{
			Name:       b.name,
			Position:   b.position,
			Velocity:   b.velocity,
			Radius:     b.radius,
			AssetIndex: b.assetIndex,
		}
	}
	return states
}

func (s *Simulation) Star() BodyState {
	return BodyState{
		Name:       s.star.name,
		Position:   s.star.position,
		Radius:     s.star.radius,
		AssetIndex: -1,
	}
}

// Body returns the i-th body for inspection.
func (s *Simulation) Body(i int) *Body {
	return s.bodies[i]
}

func (s *Simulation) Len() int {
	return len(s.bodies)
}

func (s *Simulation) Timestep() float64 {
	return s.timestep.Timestep()
}

func (s *Simulation) FramesPerSecond() float64 {
	return s.timestep.FramesPerSecond()
}

// SimulatedTime is the total simulated duration covered by Advance, in
// seconds.
func (s *Simulation) SimulatedTime() float64 {
	return s.simulatedTime
}

func (s *Simulation) Steps() uint64 {
	return s.steps
}

// Energy returns the total mechanical energy in joules: kinetic energy of the
// bodies plus the potential of every pair, the star included. Under
// semi-implicit Euler it oscillates but should not drift far.
func (s *Simulation) Energy() float64 {
	var kinetic, potential float64
	for i, a := range s.bodies {
		kinetic += 0.5 * a.mass * a.velocity.DotProduct(a.velocity)
		potential -= G * a.mass * s.star.mass / a.Distance(s.star)
		for _, b := range s.bodies[i+1:] {
			potential -= G * a.mass * b.mass / a.Distance(b)
		}
	}
	return kinetic + potential
}
