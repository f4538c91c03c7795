package renderer

import (
	"time"
)

// RenderStats summarizes one completed render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int
	RaysTraced      int64
	Duration        time.Duration
}

// RaysPerSecond returns the primary-ray throughput of the render
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RaysTraced) / s.Duration.Seconds()
}
