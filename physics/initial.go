package physics

import (
	"fmt"
	"math"
)

// BodySpec describes one orbiting body at startup. Lengths are in metres,
// speeds in m/s and masses in kg.
type BodySpec struct {
	Name          string  `mapstructure:"name"`
	Mass          float64 `mapstructure:"mass"`
	Radius        float64 `mapstructure:"radius"`
	OrbitalRadius float64 `mapstructure:"orbital_radius"`
	OrbitalSpeed  float64 `mapstructure:"orbital_speed"`
	AssetIndex    int     `mapstructure:"asset_index"`
}

type StarSpec struct {
	Name   string  `mapstructure:"name"`
	Mass   float64 `mapstructure:"mass"`
	Radius float64 `mapstructure:"radius"`
}

// ReferenceBodies returns the eight planets and Pluto, innermost first.
func ReferenceBodies() []BodySpec {
	return []BodySpec{
		{Name: "mercury", Mass: 0.330e24, Radius: 4879e3 / 2, OrbitalRadius: 57.9e9, OrbitalSpeed: 47400, AssetIndex: 0},
		{Name: "venus", Mass: 4.87e24, Radius: 12104e3 / 2, OrbitalRadius: 108.2e9, OrbitalSpeed: 35000, AssetIndex: 1},
		{Name: "earth", Mass: 5.97e24, Radius: 12756e3 / 2, OrbitalRadius: 149.6e9, OrbitalSpeed: 29800, AssetIndex: 2},
		{Name: "mars", Mass: 0.642e24, Radius: 6792e3 / 2, OrbitalRadius: 228e9, OrbitalSpeed: 24100, AssetIndex: 3},
		{Name: "jupiter", Mass: 1898e24, Radius: 142984e3 / 2, OrbitalRadius: 778.5e9, OrbitalSpeed: 13100, AssetIndex: 4},
		{Name: "saturn", Mass: 568e24, Radius: 120536e3 / 2, OrbitalRadius: 1432e9, OrbitalSpeed: 9700, AssetIndex: 5},
		{Name: "uranus", Mass: 86.8e24, Radius: 51118e3 / 2, OrbitalRadius: 2867e9, OrbitalSpeed: 6800, AssetIndex: 6},
		{Name: "neptune", Mass: 102e24, Radius: 49628e3 / 2, OrbitalRadius: 4515e9, OrbitalSpeed: 5400, AssetIndex: 7},
		{Name: "pluto", Mass: 0.0130e24, Radius: 2376e3 / 2, OrbitalRadius: 5906e9, OrbitalSpeed: 4700, AssetIndex: 8},
	}
}

func ReferenceStar() StarSpec {
	return StarSpec{Name: "sun", Mass: 1988500e24, Radius: 1392700e3 / 2}
}

// Validate reports initial conditions under which a force or acceleration
// would divide by zero. Bodies all start on the x axis, so distinct non-zero
// orbital radii guarantee distinct positions.
func Validate(star StarSpec, bodies []BodySpec) error {
	if !finite(star.Mass, star.Radius) {
		return fmt.Errorf("%w: star %q has a non-finite mass or radius", ErrInvalidConfig, star.Name)
	}
	if star.Mass <= 0 {
		return fmt.Errorf("%w: star %q mass %g must be positive", ErrInvalidConfig, star.Name, star.Mass)
	}
	if len(bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalidConfig)
	}

	seen := make(map[float64]string, len(bodies))
	for i, b := range bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		switch {
		case !finite(b.Mass, b.Radius, b.OrbitalRadius, b.OrbitalSpeed):
			return fmt.Errorf("%w: body %s has a non-finite mass, radius, orbital radius or orbital speed", ErrInvalidConfig, name)
		case b.Mass == 0:
			return fmt.Errorf("%w: body %s has zero mass: %w", ErrInvalidConfig, name, ErrDivideByZero)
		case b.Mass < 0:
			return fmt.Errorf("%w: body %s mass %g must be positive", ErrInvalidConfig, name, b.Mass)
		case b.Radius <= 0:
			return fmt.Errorf("%w: body %s radius %g must be positive", ErrInvalidConfig, name, b.Radius)
		case b.OrbitalRadius == 0:
			return fmt.Errorf("%w: body %s coincides with the star: %w", ErrInvalidConfig, name, ErrDivideByZero)
		}
		if other, ok := seen[b.OrbitalRadius]; ok {
			return fmt.Errorf("%w: bodies %s and %s share orbital radius %g: %w",
				ErrInvalidConfig, other, name, b.OrbitalRadius, ErrDivideByZero)
		}
		seen[b.OrbitalRadius] = name
	}
	return nil
}

// finite reports whether none of values is NaN or infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
