package physics

import (
	"errors"

	"github.com/meghashyamc/orbit2d/geometry"
)

var (
	// ErrDivideByZero is returned when two bodies share a position or a body
	// has no mass.
	ErrDivideByZero = geometry.ErrDivideByZero

	// ErrInvalidConfig is returned by NewSimulation for initial conditions that
	// cannot be simulated.
	ErrInvalidConfig = errors.New("invalid initial conditions")
)
