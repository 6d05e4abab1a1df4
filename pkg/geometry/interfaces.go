package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Primitive is anything the tracer can intersect and shade.
// Spheres are the only implementation; new shapes plug in here without
// changes to the trace engine.
type Primitive interface {
	// Intersect tests a ray (direction, not necessarily unit length) cast from origin.
	// Distances are reported in multiples of the ray's own length.
	Intersect(ray, origin core.Vec3) (Intersection, bool)
	Material() Material
}

// Intersection is the nearest accepted hit of a ray on a primitive
type Intersection struct {
	Distance  float32   // Ray parameter t, > EPSILON
	HitVector core.Vec3 // ray*t - (position - origin); normal direction for spheres
	Primitive Primitive // The primitive that was hit
}

// Material describes how a primitive responds to light
type Material struct {
	Diffuse   core.Vec3 // Diffuse reflectance (also modulates ambient)
	Specular  core.Vec3 // Specular reflectance
	Shininess float32   // Phong exponent
	Mirror    float32   // Reflectivity; carried with the material but not traced
}

// NewMaterial creates a material
func NewMaterial(diffuse, specular core.Vec3, shininess, mirror float32) Material {
	return Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Mirror:    mirror,
	}
}
