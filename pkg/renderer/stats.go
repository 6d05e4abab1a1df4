package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // 4 with antialiasing, otherwise 1
	TotalSamples    int           // Total number of primary rays traced
	Tiles           int           // Number of tiles the image was split into
	Workers         int           // Number of parallel workers, 1 for sequential renders
	Duration        time.Duration // Wall-clock render time
}

func newRenderStats(width, height int, antialias bool, tiles, workers int) RenderStats {
	spp := SamplesPerPixel(antialias)
	return RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: spp,
		TotalSamples:    width * height * spp,
		Tiles:           tiles,
		Workers:         workers,
	}
}

// SamplesPerSecond returns the primary ray throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

func (rs RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples/pixel, %d tiles, %d workers in %v",
		rs.TotalPixels, rs.SamplesPerPixel, rs.Tiles, rs.Workers, rs.Duration.Round(time.Millisecond))
}
