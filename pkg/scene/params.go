package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Params are the per-render projection parameters derived from a Scene.
// The view plane is measured in pixels: one pixel step moves one unit along
// HorVec or Up.
type Params struct {
	AspectRatio float32   // Width / Height
	ViewLen     float32   // Distance from the camera to the view plane
	HorVec      core.Vec3 // Unit horizontal axis of the view plane (view × up)
	TopPixel    core.Vec3 // World position of the top-left corner of the view plane
	Antialias   bool      // Sample 4 sub-pixel positions per pixel
}

// Setup validates the scene and derives the projection parameters.
// The field of view uses the half-angle convention:
// viewLen = height / tan(radians(fov / 2)).
func Setup(s *Scene, antialias bool) (Params, error) {
	if err := s.Validate(); err != nil {
		return Params{}, fmt.Errorf("invalid scene: %w", err)
	}

	width := float32(s.Width)
	height := float32(s.Height)

	horVec, err := s.View.Cross(s.Up).SafeNormalize()
	if err != nil {
		return Params{}, fmt.Errorf("view plane basis: %w", ErrParallelViewUp)
	}

	viewLen := height / math32.Tan(radians(s.FOV/2))
	centerPixel := s.Camera.Add(s.View.Multiply(viewLen))
	topPixel := centerPixel.
		Add(horVec.Multiply(width / -2)).
		Add(s.Up.Multiply(height / 2))

	return Params{
		AspectRatio: width / height,
		ViewLen:     viewLen,
		HorVec:      horVec,
		TopPixel:    topPixel,
		Antialias:   antialias,
	}, nil
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
