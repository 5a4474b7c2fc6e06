package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/orbit2d/geometry"
)

func newTestBody(name string, mass, x, y float64) *Body {
	b := NewBody(BodySpec{Name: name, Mass: mass, Radius: 1})
	b.SetPosition(x, y)
	return b
}

func TestNewBodySeedsCircularOrbit(t *testing.T) {
	b := NewBody(BodySpec{Name: "earth", Mass: 5.97e24, Radius: 6378e3, OrbitalRadius: 149.6e9, OrbitalSpeed: 29800, AssetIndex: 2})

	assert.Equal(t, geometry.Vector{X: 149.6e9, Y: 0}, b.Position())
	assert.Equal(t, geometry.Vector{X: 0, Y: 29800}, b.Velocity())
	assert.Equal(t, 2, b.AssetIndex())
	assert.Equal(t, "earth mass: 5.97e+24, radius: 6.378e+06", b.String())
}

func TestForceToFollowsNewtonsLaw(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
	}{
		{"along x", newTestBody("a", 5e24, 0, 0), newTestBody("b", 7e22, 3.8e8, 0)},
		{"diagonal", newTestBody("a", 1e20, -1e9, 2e9), newTestBody("b", 3e21, 4e9, -6e9)},
		{"unequal masses", newTestBody("a", 1, 10, 10), newTestBody("b", 1e30, 10, 1e11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			force, err := tt.a.ForceTo(tt.b)
			require.NoError(t, err)

			d := tt.a.Distance(tt.b)
			want := G * tt.a.Mass() * tt.b.Mass() / (d * d)
			assert.InEpsilon(t, want, force.Magnitude(), 1e-12)

			// force and direction are parallel and point the same way
			dir := tt.a.Direction(tt.b)
			assert.InDelta(t, 0, force.X*dir.Y-force.Y*dir.X, want*d*1e-12)
			assert.Greater(t, force.DotProduct(dir), 0.0)
		})
	}
}

func TestForceToIsAntisymmetric(t *testing.T) {
	a := newTestBody("a", 6e24, 1.5e11, 0)
	b := newTestBody("b", 1.9e27, -3e11, 7.7e11)

	ab, err := a.ForceTo(b)
	require.NoError(t, err)
	ba, err := b.ForceTo(a)
	require.NoError(t, err)

	assert.InEpsilon(t, ab.Magnitude(), ba.Magnitude(), 1e-12)
	sum := ab.Add(ba)
	assert.InDelta(t, 0, sum.Magnitude(), ab.Magnitude()*1e-12)
}

func TestForceToStar(t *testing.T) {
	star := NewFixedMass(ReferenceStar())
	b := newTestBody("earth", 5.97e24, 149.6e9, 0)

	force, err := b.ForceTo(star)
	require.NoError(t, err)
	assert.Less(t, force.X, 0.0)
	assert.Equal(t, 0.0, force.Y)
	assert.Equal(t, geometry.Vector{}, star.Position())
}

func TestForceToCoincidentBodies(t *testing.T) {
	a := newTestBody("a", 1, 5, 5)
	b := newTestBody("b", 1, 5, 5)

	_, err := a.ForceTo(b)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestDistanceAndDirection(t *testing.T) {
	a := newTestBody("a", 1, 1, 2)
	b := newTestBody("b", 1, 4, 6)

	assert.Equal(t, geometry.Vector{X: 3, Y: 4}, a.Direction(b))
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
	assert.False(t, math.Signbit(a.Distance(b)))
}
