package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

var (
	ErrInvalidDimensions = errors.New("image width and height must be positive")
	ErrInvalidFOV        = errors.New("field of view must be in (0, 180) degrees")
	ErrParallelViewUp    = errors.New("view and up directions are parallel")
	ErrNotUnitVector     = errors.New("direction is not a unit vector")
	ErrNilPrimitive      = errors.New("nil primitive")
)

// Light is a point light with no attenuation
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewLight creates a point light
func NewLight(position, color core.Vec3) Light {
	return Light{Position: position, Color: color}
}

// Scene contains everything needed to render one image.
// It is built once and only read while rendering, so workers share it without locking.
type Scene struct {
	Lights     []Light
	Primitives []geometry.Primitive
	Ambient    core.Vec3 // Ambient light, modulated by each material's diffuse color
	Camera     core.Vec3 // Camera position
	View       core.Vec3 // Unit forward direction
	Up         core.Vec3 // Unit up direction, not parallel to View
	Width      int       // Image width in pixels
	Height     int       // Image height in pixels
	FOV        float32   // Field of view in degrees
}

// Validate checks the scene for configuration errors that would make the view
// plane undefined or the output grid empty
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}

	if !(s.FOV > 0 && s.FOV < 180) {
		return fmt.Errorf("%w: got %g", ErrInvalidFOV, s.FOV)
	}

	if _, err := s.View.SafeNormalize(); err != nil {
		return fmt.Errorf("view direction: %w", err)
	}
	if _, err := s.Up.SafeNormalize(); err != nil {
		return fmt.Errorf("up direction: %w", err)
	}

	// The view plane is measured in Up-lengths, so both directions must be unit
	if !isUnit(s.View) {
		return fmt.Errorf("view direction: %w: length %g", ErrNotUnitVector, s.View.Length())
	}
	if !isUnit(s.Up) {
		return fmt.Errorf("up direction: %w: length %g", ErrNotUnitVector, s.Up.Length())
	}

	// Cross product vanishes (relative to the input lengths) for parallel vectors
	cross := s.View.Cross(s.Up)
	if cross.Length() < core.EPSILON*s.View.Length()*s.Up.Length() {
		return fmt.Errorf("%w: view=%v up=%v", ErrParallelViewUp, s.View, s.Up)
	}

	for i, p := range s.Primitives {
		if p == nil {
			return fmt.Errorf("primitive %d: %w", i, ErrNilPrimitive)
		}
	}

	return nil
}

// unitTolerance bounds how far a direction's length may drift from 1
const unitTolerance = 1e-3

func isUnit(v core.Vec3) bool {
	d := v.Length() - 1
	return d > -unitTolerance && d < unitTolerance
}

// AddSphere adds a sphere primitive to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float32, material geometry.Material) {
	s.Primitives = append(s.Primitives, geometry.NewSphere(center, radius, material))
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(position, color core.Vec3) {
	s.Lights = append(s.Lights, NewLight(position, color))
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}
