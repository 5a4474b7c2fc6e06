package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/meghashyamc/orbit2d/physics"
)

const keyEnv = "ENV"
const envLocal = "local"

// Render modes.
const (
	RenderWindow   = "window"
	RenderTerminal = "terminal"
	RenderHeadless = "headless"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)
	if err != nil {
		configPath = ""
	}

	return loadFile(configPath), nil
}

// loadFile reads path if it is not empty. Environment variables are always
// consulted.
func loadFile(path string) *Config {
	viperConfig := viper.New()
	if len(path) > 0 {
		viperConfig.SetConfigFile(path)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	return &Config{
		config: viperConfig,
	}
}

// getInt and getFloat treat an explicit zero as a value. Only a key that is
// set neither in the environment nor in the file falls back.
func (c *Config) getInt(envKey, key string, fallback int) int {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetInt(envKey)
	case c.config.IsSet(key):
		return c.config.GetInt(key)
	}

	return fallback
}

// getCount is getInt for counts. Negative values become 0.
func (c *Config) getCount(envKey, key string, fallback int) uint64 {
	value := c.getInt(envKey, key, fallback)
	if value < 0 {
		slog.Warn("negative count in config, using 0", "key", key, "value", value)
		value = 0
	}

	return uint64(value)
}

func (c *Config) getFloat(envKey, key string, fallback float64) float64 {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetFloat64(envKey)
	case c.config.IsSet(key):
		return c.config.GetFloat64(key)
	}

	return fallback
}

func (c *Config) getString(envKey, key string, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(key)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", 1000)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", 1000)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", "orbit2d")
}

// GetRenderMode returns one of RenderWindow, RenderTerminal or RenderHeadless.
func (c *Config) GetRenderMode() string {
	return strings.ToLower(c.getString("RENDER_MODE", "render.mode", RenderWindow))
}

func (c *Config) GetViewExtent() float64 {
	return c.getFloat("RENDER_EXTENT_METERS", "render.extent_meters", 6e12)
}

func (c *Config) GetDiameterScale() float64 {
	return c.getFloat("RENDER_DIAMETER_SCALE", "render.diameter_scale", 15)
}

func (c *Config) GetMinDiameter() float64 {
	return c.getFloat("RENDER_MIN_DIAMETER", "render.min_diameter", 5)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", "debug")
}

// GetMaxFrames is the frame budget of a headless run. Zero runs until
// interrupted.
func (c *Config) GetMaxFrames() uint64 {
	return c.getCount("SIMULATION_MAX_FRAMES", "simulation.max_frames", 0)
}

// GetLogEvery is how many frames pass between logged frame statistics. Zero
// disables them.
func (c *Config) GetLogEvery() uint64 {
	return c.getCount("SIMULATION_LOG_EVERY", "simulation.log_every", 60)
}

func (c *Config) GetTimestepConfig() physics.TimestepConfig {
	defaults := physics.DefaultTimestepConfig()
	return physics.TimestepConfig{
		Initial: c.getFloat("SIMULATION_INITIAL_TIMESTEP", "simulation.initial_timestep", defaults.Initial),
		Scale:   c.getFloat("SIMULATION_TIMESTEP_SCALE", "simulation.timestep_scale", defaults.Scale),
		Max:     c.getFloat("SIMULATION_MAX_TIMESTEP", "simulation.max_timestep", defaults.Max),
		Default: c.getFloat("SIMULATION_DEFAULT_TIMESTEP", "simulation.default_timestep", defaults.Default),
	}
}

// GetStar returns the configured star, or the Sun when none is configured.
func (c *Config) GetStar() (physics.StarSpec, error) {
	if !c.config.IsSet("star") {
		return physics.ReferenceStar(), nil
	}

	var star physics.StarSpec
	if err := c.config.UnmarshalKey("star", &star); err != nil {
		return physics.StarSpec{}, fmt.Errorf("failed to decode star: %w", err)
	}

	return star, nil
}

// GetBodies returns the configured initial conditions, or the reference
// planets when none are configured.
func (c *Config) GetBodies() ([]physics.BodySpec, error) {
	if !c.config.IsSet("bodies") {
		return physics.ReferenceBodies(), nil
	}

	var bodies []physics.BodySpec
	if err := c.config.UnmarshalKey("bodies", &bodies); err != nil {
		return nil, fmt.Errorf("failed to decode bodies: %w", err)
	}

	return bodies, nil
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
