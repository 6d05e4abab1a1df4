package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewReferenceScene creates the reference scene: four spheres resting above a
// large ground sphere, lit by a white and a magenta point light
func NewReferenceScene() *Scene {
	// Create materials
	green := geometry.NewMaterial(core.NewVec3(0.7, 1.0, 0.7), core.NewVec3(0.5, 0.7, 0.5), 25, 0.3)
	grey := geometry.NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.7, 0.5), 25, 0.3)
	orange := geometry.NewMaterial(core.NewVec3(1.0, 0.6, 0.1), core.NewVec3(0.5, 0.7, 0.5), 25, 0.3)

	s := &Scene{
		Ambient: core.NewVec3(0.3, 0.3, 0.3),
		Camera:  core.NewVec3(0, 0, 800),
		View:    core.NewVec3(0, 0, -1),
		Up:      core.NewVec3(0, 1, 0),
		Width:   1024,
		Height:  1024,
		FOV:     45,
	}

	s.AddLight(core.NewVec3(-100, 150, 400), core.NewVec3(0.7, 0.7, 0.7))
	s.AddLight(core.NewVec3(400, 100, 150), core.NewVec3(0.7, 0.0, 0.7))

	s.AddSphere(core.NewVec3(0, 0, -400), 100, green)
	s.AddSphere(core.NewVec3(200, 50, -100), 150, green)
	s.AddSphere(core.NewVec3(0, -1200, -500), 1000, grey) // ground
	s.AddSphere(core.NewVec3(-100, 25, -300), 50, orange)
	s.AddSphere(core.NewVec3(0, 100, -250), 25, green)

	return s
}
