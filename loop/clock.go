package loop

import "time"

// Clock supplies the wall-clock readings used to time a frame. Readings must
// carry a monotonic component, as time.Now does, so that Sub is unaffected by
// wall-clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
