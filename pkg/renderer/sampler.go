package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/trace"
)

// subPixelOffsets are the fixed antialiasing sample positions within a pixel cell
var subPixelOffsets = [4]core.Vec2{
	{X: 0.25, Y: 0.25},
	{X: 0.25, Y: 0.75},
	{X: 0.75, Y: 0.25},
	{X: 0.75, Y: 0.75},
}

// SamplePositions returns the pixel-space sample points for pixel (x, y).
// Without antialiasing the single sample sits on the pixel corner.
func SamplePositions(x, y int, antialias bool) []core.Vec2 {
	corner := core.NewVec2(float32(x), float32(y))
	if !antialias {
		return []core.Vec2{corner}
	}

	samples := make([]core.Vec2, len(subPixelOffsets))
	for i, offset := range subPixelOffsets {
		samples[i] = corner.Add(offset)
	}
	return samples
}

// SamplesPerPixel returns how many rays are traced for each pixel
func SamplesPerPixel(antialias bool) int {
	if antialias {
		return len(subPixelOffsets)
	}
	return 1
}

// PixelRay maps a pixel-space sample onto the view plane and returns the
// direction from the camera through it. Pixel space is y-up: sample y = 0 lies
// on the bottom edge of the view plane and y = height on the top edge.
//
// Image row r holds pixel y = height-1-r, so its corner sample sits one unit
// below the row's top edge, i.e. on its bottom edge. The antialiasing offsets
// 0.25 and 0.75 are symmetric within the cell and land a quarter and three
// quarters of a unit below the top edge either way.
func PixelRay(s *scene.Scene, params scene.Params, sample core.Vec2) core.Vec3 {
	height := float32(s.Height)

	return params.TopPixel.
		Add(params.HorVec.Multiply(params.AspectRatio * sample.X)).
		Add(s.Up.Multiply(-(height - sample.Y))).
		Subtract(s.Camera)
}

// PixelColor traces every sample of pixel (x, y) and averages them with equal weight
func PixelColor(s *scene.Scene, params scene.Params, x, y int) core.Vec3 {
	samples := SamplePositions(x, y, params.Antialias)
	weight := 1 / float32(len(samples))

	var color core.Vec3
	for _, sample := range samples {
		ray := PixelRay(s, params, sample)
		color = color.Add(trace.TraceScene(s, ray, s.Camera).Multiply(weight))
	}
	return color
}
