package loop

import (
	"github.com/meghashyamc/orbit2d/logger"
)

// LogHost is a headless host that writes body positions to the log instead of
// drawing them.
type LogHost struct {
	logger    logger.Logger
	maxFrames uint64 // 0 runs until the context is cancelled
	every     uint64
	rendered  uint64
}

func NewLogHost(log logger.Logger, maxFrames, every uint64) *LogHost {
	return &LogHost{
		logger:    log,
		maxFrames: maxFrames,
		every:     every,
	}
}

func (h *LogHost) Running() bool {
	return h.maxFrames == 0 || h.rendered < h.maxFrames
}

func (h *LogHost) Render(frame Frame) error {
	h.rendered++
	if h.every == 0 || frame.Index%h.every != 0 {
		return nil
	}

	h.logger.Info("frame",
		"frame", frame.Index,
		"timestep", frame.Timestep,
		"simulated_days", frame.SimulatedTime/86400,
		"energy", frame.Energy,
	)
	for _, body := range frame.Bodies {
		h.logger.Info("body",
			"frame", frame.Index,
			"name", body.Name,
			"asset_index", body.AssetIndex,
			"x", body.Position.X,
			"y", body.Position.Y,
		)
	}
	return nil
}

func (h *LogHost) Rendered() uint64 {
	return h.rendered
}
