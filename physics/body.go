package physics

import (
	"fmt"

	"github.com/meghashyamc/orbit2d/geometry"
)

// G is the gravitational constant in N·m²/kg².
const G = 6.67e-11

// Attractor is anything that pulls on a body: another body or the star.
type Attractor interface {
	Position() geometry.Vector
	Mass() float64
}

type Body struct {
	name         string
	position     geometry.Vector
	velocity     geometry.Vector
	acceleration geometry.Vector // scratch, rewritten every step
	force        geometry.Vector // scratch, rewritten every step
	mass         float64
	radius       float64
	assetIndex   int
}

// NewBody places the body on the positive x axis at its orbital radius and
// gives it a velocity perpendicular to the radius vector.
func NewBody(spec BodySpec) *Body {
	b := &Body{
		name:       spec.Name,
		velocity:   geometry.Vector{X: 0, Y: spec.OrbitalSpeed},
		mass:       spec.Mass,
		radius:     spec.Radius,
		assetIndex: spec.AssetIndex,
	}
	b.SetPosition(spec.OrbitalRadius, 0)
	return b
}

func (b *Body) SetPosition(x, y float64) {
	b.position.Set(x, y)
}

func (b *Body) Name() string                  { return b.name }
func (b *Body) Position() geometry.Vector     { return b.position }
func (b *Body) Velocity() geometry.Vector     { return b.velocity }
func (b *Body) Acceleration() geometry.Vector { return b.acceleration }
func (b *Body) Force() geometry.Vector        { return b.force }
func (b *Body) Mass() float64                 { return b.mass }
func (b *Body) Radius() float64               { return b.radius }
func (b *Body) AssetIndex() int               { return b.assetIndex }

// Direction returns the vector from b to other.
func (b *Body) Direction(other Attractor) geometry.Vector {
	return other.Position().Sub(b.position)
}

func (b *Body) Distance(other Attractor) float64 {
	return b.Direction(other).Magnitude()
}

// ForceTo returns the gravitational force exerted on b by other. The result
// points from b toward other.
func (b *Body) ForceTo(other Attractor) (geometry.Vector, error) {
	direction, err := b.Direction(other).Normalize()
	if err != nil {
		return geometry.Vector{}, fmt.Errorf("force on %s: %w", b.name, err)
	}
	distance := b.Distance(other)
	magnitude := G * b.mass * other.Mass() / (distance * distance)
	return direction.Scale(magnitude), nil
}

func (b *Body) String() string {
	return fmt.Sprintf("%s mass: %g, radius: %g", b.name, b.mass, b.radius)
}

// FixedMass is the star. It sits at the origin, attracts every body and is
// never integrated.
type FixedMass struct {
	name     string
	position geometry.Vector
	mass     float64
	radius   float64
}

func NewFixedMass(spec StarSpec) *FixedMass {
	return &FixedMass{
		name:   spec.Name,
		mass:   spec.Mass,
		radius: spec.Radius,
	}
}

func (f *FixedMass) Name() string              { return f.name }
func (f *FixedMass) Position() geometry.Vector { return f.position }
func (f *FixedMass) Mass() float64             { return f.mass }
func (f *FixedMass) Radius() float64           { return f.radius }
