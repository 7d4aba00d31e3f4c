package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels int           // Pixels traced
	HitPixels   int           // Pixels whose primary ray hit an object
	Elapsed     time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of pixels whose primary ray hit something
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels (%.1f%% hit) in %v", s.TotalPixels, 100*s.HitRatio(), s.Elapsed.Round(time.Millisecond))
}
