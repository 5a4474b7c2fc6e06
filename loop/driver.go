package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/meghashyamc/orbit2d/logger"
	"github.com/meghashyamc/orbit2d/physics"
)

// Simulation is the part of physics.Simulation the driver needs.
type Simulation interface {
	Advance() error
	RescaleTimestep(elapsed time.Duration) physics.Adjustment
	Timestep() float64
	FramesPerSecond() float64
	SimulatedTime() float64
	Energy() float64
	Bodies() []physics.BodyState
	Star() physics.BodyState
}

// Frame is the state handed to a host after one physics step.
type Frame struct {
	Index         uint64
	Timestep      float64 // timestep the step was integrated with
	SimulatedTime float64
	Energy        float64
	Bodies        []physics.BodyState
	Star          physics.BodyState
}

// Host renders frames and reports whether the user still wants the loop to
// run.
type Host interface {
	Running() bool
	Render(frame Frame) error
}

// Driver times each frame and feeds the duration back into the simulation's
// timestep. A frame is everything between BeginFrame and EndFrame, so hosts
// that render between the two calls have their render cost included.
type Driver struct {
	sim      Simulation
	clock    Clock
	logger   logger.Logger
	logEvery uint64

	frames  uint64
	started time.Time
	inFrame bool
}

type Option func(*Driver)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(d *Driver) {
		d.clock = clock
	}
}

// WithStatsEvery logs frame statistics every n frames. Zero disables them.
func WithStatsEvery(n uint64) Option {
	return func(d *Driver) {
		d.logEvery = n
	}
}

func NewDriver(sim Simulation, log logger.Logger, opts ...Option) *Driver {
	d := &Driver{
		sim:      sim,
		clock:    SystemClock(),
		logger:   log,
		logEvery: 60,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BeginFrame starts the frame clock and advances the simulation by one step.
func (d *Driver) BeginFrame() (Frame, error) {
	d.started = d.clock.Now()
	d.inFrame = true

	timestep := d.sim.Timestep()
	if err := d.sim.Advance(); err != nil {
		d.inFrame = false
		return Frame{}, fmt.Errorf("frame %d: %w", d.frames, err)
	}
	d.frames++

	return Frame{
		Index:         d.frames,
		Timestep:      timestep,
		SimulatedTime: d.sim.SimulatedTime(),
		Energy:        d.sim.Energy(),
		Bodies:        d.sim.Bodies(),
		Star:          d.sim.Star(),
	}, nil
}

// EndFrame measures the frame started by BeginFrame and rescales the
// timestep for the next one. Calling it outside a frame does nothing.
func (d *Driver) EndFrame() physics.Adjustment {
	if !d.inFrame {
		return physics.AdjustmentNone
	}
	d.inFrame = false

	elapsed := d.clock.Now().Sub(d.started)
	previous := d.sim.Timestep()
	adjustment := d.sim.RescaleTimestep(elapsed)

	switch adjustment {
	case physics.AdjustmentClamped:
		d.logger.Debug("timestep overflow, reset to default",
			"frame", d.frames,
			"elapsed", elapsed,
			"timestep", d.sim.Timestep(),
		)
	case physics.AdjustmentRetained:
		d.logger.Debug("non-positive frame duration, keeping timestep",
			"frame", d.frames,
			"elapsed", elapsed,
			"timestep", previous,
		)
	}

	if d.logEvery > 0 && d.frames%d.logEvery == 0 {
		d.logger.Debug("frame stats",
			"frame", d.frames,
			"fps", d.sim.FramesPerSecond(),
			"timestep", d.sim.Timestep(),
			"simulated_days", d.sim.SimulatedTime()/86400,
		)
	}
	return adjustment
}

func (d *Driver) Frames() uint64 {
	return d.frames
}

// Run steps and renders until the host stops running or ctx is done. The stop
// condition is checked once per frame, before the frame starts; a frame that
// has begun always completes.
func (d *Driver) Run(ctx context.Context, host Host) error {
	d.logger.Info("frame loop started")
	for host.Running() && ctx.Err() == nil {
		frame, err := d.BeginFrame()
		if err != nil {
			return err
		}
		renderErr := host.Render(frame)
		d.EndFrame()
		if renderErr != nil {
			return fmt.Errorf("render frame %d: %w", frame.Index, renderErr)
		}
	}
	d.logger.Info("frame loop stopped", "frames", d.frames, "simulated_days", d.sim.SimulatedTime()/86400)
	return nil
}
