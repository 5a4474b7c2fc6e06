package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivideByZero is returned when a vector of zero length would have to be
// divided by its magnitude.
var ErrDivideByZero = errors.New("divide by zero")

type Vector struct {
	X float64
	Y float64
}

// Set overwrites both components in place. It is meant for initial placement;
// every other operation returns a new Vector.
func (v *Vector) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing the same way as v.
func (v Vector) Normalize() (Vector, error) {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{}, fmt.Errorf("normalize %v: %w", v, ErrDivideByZero)
	}
	return Vector{v.X / magnitude, v.Y / magnitude}, nil
}

// Distance returns the length of the vector from a to b.
func Distance(a, b Vector) float64 {
	return b.Sub(a).Magnitude()
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
