package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func smallScene() *Scene {
	s := NewReferenceScene()
	s.Width = 64
	s.Height = 64
	return s
}

func TestSetup_ReferenceParams(t *testing.T) {
	s := smallScene()

	params, err := Setup(s, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedViewLen := 64 / math32.Tan(math32.Pi/8)
	if math32.Abs(params.ViewLen-expectedViewLen) > 1e-3 {
		t.Errorf("Expected view length %f, got %f", expectedViewLen, params.ViewLen)
	}

	if params.AspectRatio != 1 {
		t.Errorf("Expected aspect ratio 1, got %f", params.AspectRatio)
	}

	if params.HorVec.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-6 {
		t.Errorf("Expected horizontal vector (1,0,0), got %v", params.HorVec)
	}

	expectedTop := core.NewVec3(-32, 32, 800-expectedViewLen)
	if params.TopPixel.Subtract(expectedTop).Length() > 1e-3 {
		t.Errorf("Expected top pixel %v, got %v", expectedTop, params.TopPixel)
	}

	if !params.Antialias {
		t.Error("Expected antialias flag to be carried into params")
	}
}

func TestSetup_AspectRatio(t *testing.T) {
	s := smallScene()
	s.Width = 200
	s.Height = 100

	params, err := Setup(s, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if params.AspectRatio != 2 {
		t.Errorf("Expected aspect ratio 2, got %f", params.AspectRatio)
	}
	if params.Antialias {
		t.Error("Expected antialias to be off")
	}
}

func TestSetup_IsPure(t *testing.T) {
	s := smallScene()
	before := *s

	p1, err1 := Setup(s, true)
	p2, err2 := Setup(s, true)
	if err1 != nil || err2 != nil {
		t.Fatalf("Unexpected errors: %v, %v", err1, err2)
	}
	if p1 != p2 {
		t.Errorf("Expected identical params, got %+v and %+v", p1, p2)
	}
	if s.Camera != before.Camera || s.View != before.View || s.Up != before.Up ||
		s.Width != before.Width || s.Height != before.Height || s.FOV != before.FOV {
		t.Error("Setup mutated the scene")
	}
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(s *Scene)
		expected error
	}{
		{"parallel view and up", func(s *Scene) { s.Up = core.NewVec3(0, 0, 1) }, ErrParallelViewUp},
		{"identical view and up", func(s *Scene) { s.Up = s.View }, ErrParallelViewUp},
		{"zero view", func(s *Scene) { s.View = core.Vec3{} }, core.ErrZeroVector},
		{"zero up", func(s *Scene) { s.Up = core.Vec3{} }, core.ErrZeroVector},
		{"non-unit view", func(s *Scene) { s.View = core.NewVec3(0, 0, -3) }, ErrNotUnitVector},
		{"non-unit up", func(s *Scene) { s.Up = core.NewVec3(0, 2, 0) }, ErrNotUnitVector},
		{"slightly long up", func(s *Scene) { s.Up = core.NewVec3(0, 1.01, 0) }, ErrNotUnitVector},
		{"zero width", func(s *Scene) { s.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(s *Scene) { s.Height = -4 }, ErrInvalidDimensions},
		{"zero fov", func(s *Scene) { s.FOV = 0 }, ErrInvalidFOV},
		{"fov 180", func(s *Scene) { s.FOV = 180 }, ErrInvalidFOV},
		{"nan fov", func(s *Scene) { s.FOV = math32.NaN() }, ErrInvalidFOV},
		{"nil primitive", func(s *Scene) { s.Primitives = append(s.Primitives, nil) }, ErrNilPrimitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := smallScene()
			tt.modify(s)

			_, err := Setup(s, false)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected error %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestReferenceScene(t *testing.T) {
	s := NewReferenceScene()

	if err := s.Validate(); err != nil {
		t.Fatalf("Reference scene should be valid: %v", err)
	}
	if s.GetPrimitiveCount() != 5 {
		t.Errorf("Expected 5 primitives, got %d", s.GetPrimitiveCount())
	}
	if len(s.Lights) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(s.Lights))
	}
	if s.Width != 1024 || s.Height != 1024 || s.FOV != 45 {
		t.Errorf("Unexpected image settings %dx%d fov %f", s.Width, s.Height, s.FOV)
	}

	sphere, ok := s.Primitives[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first primitive to be a sphere, got %T", s.Primitives[0])
	}
	if sphere.Center != core.NewVec3(0, 0, -400) || sphere.Radius != 100 {
		t.Errorf("Unexpected first sphere %+v", sphere)
	}
}
