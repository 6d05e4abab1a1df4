package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center core.Vec3
	Radius float32
	Mat    Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    material,
	}
}

// Material returns the sphere's material
func (s *Sphere) Material() Material {
	return s.Mat
}

// Intersect solves |origin + ray*t - center|² = r² for the closest root
func (s *Sphere) Intersect(ray, origin core.Vec3) (Intersection, bool) {
	// Vector from ray origin to sphere center
	line := s.Center.Subtract(origin)

	roots := QuadRoot(
		ray.LengthSquared(),
		-2.0*line.Dot(ray),
		line.LengthSquared()-s.Radius*s.Radius,
	)

	t, ok := roots.Nearest()
	if !ok {
		return Intersection{}, false
	}

	// Reject hits behind or on the origin, and non-finite roots from the linear fallback
	if !(t > core.EPSILON) || math32.IsInf(t, 0) {
		return Intersection{}, false
	}

	return Intersection{
		Distance:  t,
		HitVector: ray.Multiply(t).Subtract(line),
		Primitive: s,
	}, true
}
