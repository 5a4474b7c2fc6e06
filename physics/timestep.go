package physics

import (
	"fmt"
	"time"
)

// TimestepConfig tunes the adaptive timestep. Timesteps are seconds of
// simulated time per integration step.
type TimestepConfig struct {
	Initial float64 // timestep used for the first frame
	Scale   float64 // simulated seconds per real second of frame time
	Max     float64 // rescaled timesteps above this are replaced by Default
	Default float64
}

func DefaultTimestepConfig() TimestepConfig {
	return TimestepConfig{
		Initial: 50000,
		Scale:   1e7,
		Max:     100000,
		Default: 50000,
	}
}

func (c TimestepConfig) validate() error {
	switch {
	case !finite(c.Initial, c.Scale, c.Max, c.Default):
		return fmt.Errorf("%w: timestep config %+v has non-finite values", ErrInvalidConfig, c)
	case c.Initial <= 0:
		return fmt.Errorf("%w: initial timestep %g must be positive", ErrInvalidConfig, c.Initial)
	case c.Scale <= 0:
		return fmt.Errorf("%w: timestep scale %g must be positive", ErrInvalidConfig, c.Scale)
	case c.Default <= 0 || c.Default > c.Max:
		return fmt.Errorf("%w: default timestep %g must be in (0, %g]", ErrInvalidConfig, c.Default, c.Max)
	}
	return nil
}

// Adjustment is the outcome of a single rescale.
type Adjustment int

const (
	// AdjustmentNone means no frame was measured.
	AdjustmentNone Adjustment = iota
	// AdjustmentScaled means the timestep now tracks the measured frame time.
	AdjustmentScaled
	// AdjustmentRetained means the clock reported a non-positive duration and
	// the previous timestep was kept.
	AdjustmentRetained
	// AdjustmentClamped means the rescaled timestep overflowed the bound and
	// was reset to the default.
	AdjustmentClamped
)

func (a Adjustment) String() string {
	switch a {
	case AdjustmentNone:
		return "none"
	case AdjustmentScaled:
		return "scaled"
	case AdjustmentRetained:
		return "non_monotonic_clock"
	case AdjustmentClamped:
		return "timestep_overflow"
	}
	return fmt.Sprintf("Adjustment(%d)", int(a))
}

// TimestepController ties the simulated timestep to the measured cost of the
// previous frame: timestep = Scale * elapsed seconds. Slower frames therefore
// advance simulated time further per step.
type TimestepController struct {
	cfg      TimestepConfig
	timestep float64
}

func NewTimestepController(cfg TimestepConfig) (*TimestepController, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TimestepController{cfg: cfg, timestep: cfg.Initial}, nil
}

func (c *TimestepController) Timestep() float64 {
	return c.timestep
}

// Rescale derives the next timestep from the wall-clock duration of the
// previous full frame.
func (c *TimestepController) Rescale(elapsed time.Duration) Adjustment {
	if elapsed <= 0 {
		return AdjustmentRetained
	}

	timestep := c.cfg.Scale * float64(elapsed.Nanoseconds()) / float64(time.Second)
	if timestep > c.cfg.Max {
		c.timestep = c.cfg.Default
		return AdjustmentClamped
	}

	c.timestep = timestep
	return AdjustmentScaled
}

// FramesPerSecond inverts the rescale formula to recover the frame rate the
// current timestep corresponds to.
func (c *TimestepController) FramesPerSecond() float64 {
	return c.cfg.Scale / c.timestep
}
