package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/orbit2d/physics"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultsWithoutFile(t *testing.T) {
	cfg := loadFile("")

	assert.Equal(t, 1000, cfg.GetWindowWidth())
	assert.Equal(t, 1000, cfg.GetWindowHeight())
	assert.Equal(t, RenderWindow, cfg.GetRenderMode())
	assert.Equal(t, 6e12, cfg.GetViewExtent())
	assert.Equal(t, physics.DefaultTimestepConfig(), cfg.GetTimestepConfig())
	assert.Equal(t, uint64(0), cfg.GetMaxFrames())

	star, err := cfg.GetStar()
	require.NoError(t, err)
	assert.Equal(t, physics.ReferenceStar(), star)

	bodies, err := cfg.GetBodies()
	require.NoError(t, err)
	assert.Equal(t, physics.ReferenceBodies(), bodies)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  height: 480
  title: binary
render:
  mode: Headless
simulation:
  timestep_scale: 2.0e+7
  max_frames: 300
log:
  level: warn
star:
  name: proxima
  mass: 2.4e+29
  radius: 1.07e+8
bodies:
  - name: b
    mass: 7.6e+24
    radius: 7.0e+6
    orbital_radius: 7.5e+9
    orbital_speed: 47000
    asset_index: 3
`)
	cfg := loadFile(path)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 480, cfg.GetWindowHeight())
	assert.Equal(t, "binary", cfg.GetWindowTitle())
	assert.Equal(t, RenderHeadless, cfg.GetRenderMode())
	assert.Equal(t, uint64(300), cfg.GetMaxFrames())
	assert.Equal(t, "warn", cfg.GetLogLevel())

	ts := cfg.GetTimestepConfig()
	assert.Equal(t, 2e7, ts.Scale)
	assert.Equal(t, 50000.0, ts.Initial)

	star, err := cfg.GetStar()
	require.NoError(t, err)
	assert.Equal(t, physics.StarSpec{Name: "proxima", Mass: 2.4e29, Radius: 1.07e8}, star)

	bodies, err := cfg.GetBodies()
	require.NoError(t, err)
	require.Len(t, bodies, 1)
	assert.Equal(t, physics.BodySpec{
		Name:          "b",
		Mass:          7.6e24,
		Radius:        7e6,
		OrbitalRadius: 7.5e9,
		OrbitalSpeed:  47000,
		AssetIndex:    3,
	}, bodies[0])
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 640\nsimulation:\n  max_timestep: 90000\n")
	t.Setenv("WINDOW_WIDTH", "1280")
	t.Setenv("SIMULATION_MAX_TIMESTEP", "120000")
	t.Setenv("RENDER_MODE", "terminal")

	cfg := loadFile(path)

	assert.Equal(t, 1280, cfg.GetWindowWidth())
	assert.Equal(t, 120000.0, cfg.GetTimestepConfig().Max)
	assert.Equal(t, RenderTerminal, cfg.GetRenderMode())
}

func TestLocalConfigMatchesReferenceBodies(t *testing.T) {
	cfg, err := Load(envLocal)
	require.NoError(t, err)

	bodies, err := cfg.GetBodies()
	require.NoError(t, err)
	want := physics.ReferenceBodies()
	require.Len(t, bodies, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, bodies[i].Name)
		assert.InEpsilon(t, want[i].Mass, bodies[i].Mass, 1e-12, want[i].Name)
		assert.InEpsilon(t, want[i].Radius, bodies[i].Radius, 1e-12, want[i].Name)
		assert.InEpsilon(t, want[i].OrbitalRadius, bodies[i].OrbitalRadius, 1e-12, want[i].Name)
		assert.Equal(t, want[i].OrbitalSpeed, bodies[i].OrbitalSpeed, want[i].Name)
		assert.Equal(t, want[i].AssetIndex, bodies[i].AssetIndex, want[i].Name)
	}

	star, err := cfg.GetStar()
	require.NoError(t, err)
	assert.InEpsilon(t, physics.ReferenceStar().Mass, star.Mass, 1e-12)
}

func TestLoadMissingEnvironmentFallsBack(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "orbit2d", cfg.GetWindowTitle())
}

func TestExplicitZeroIsNotUnset(t *testing.T) {
	path := writeConfig(t, "simulation:\n  log_every: 0\n  max_frames: 0\n")
	cfg := loadFile(path)

	assert.Equal(t, uint64(0), cfg.GetLogEvery())
	assert.Equal(t, uint64(0), cfg.GetMaxFrames())

	assert.Equal(t, uint64(60), loadFile("").GetLogEvery())
}

func TestEnvironmentZeroOverridesFile(t *testing.T) {
	path := writeConfig(t, "simulation:\n  log_every: 30\n")
	t.Setenv("SIMULATION_LOG_EVERY", "0")

	assert.Equal(t, uint64(0), loadFile(path).GetLogEvery())
}

func TestNegativeCountsClampToZero(t *testing.T) {
	path := writeConfig(t, "simulation:\n  log_every: -5\n  max_frames: -1\n")
	cfg := loadFile(path)

	assert.Equal(t, uint64(0), cfg.GetLogEvery())
	assert.Equal(t, uint64(0), cfg.GetMaxFrames())
}
