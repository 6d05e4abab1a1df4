package trace

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Background is the color of rays that escape the scene
var Background = core.Vec3{}

// IntersectNodes returns the nearest intersection of the ray with any primitive.
// Ties keep the primitive that comes first.
func IntersectNodes(primitives []geometry.Primitive, ray, origin core.Vec3) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	hitAnything := false

	for _, p := range primitives {
		if hit, isHit := p.Intersect(ray, origin); isHit {
			if !hitAnything || hit.Distance < closest.Distance {
				closest = hit
				hitAnything = true
			}
		}
	}

	return closest, hitAnything
}

// Occluded reports whether any primitive intersects the ray.
// Same visibility answer as IntersectNodes, but stops at the first hit.
func Occluded(primitives []geometry.Primitive, ray, origin core.Vec3) bool {
	for _, p := range primitives {
		if _, isHit := p.Intersect(ray, origin); isHit {
			return true
		}
	}
	return false
}

// Shade returns the diffuse and specular contributions of one unoccluded light.
// normal and viewDir must be unit vectors; toLight need not be.
func Shade(mat geometry.Material, normal, viewDir, toLight, lightColor core.Vec3) (diffuse, specular core.Vec3) {
	l := toLight.Normalize()

	diffuseCoef := normal.Dot(l)

	// Reflect the light direction about the normal and compare with the incoming ray
	reflected := l.Subtract(normal.Multiply(2 * diffuseCoef))
	specularCoef := math32.Pow(math32.Abs(reflected.Dot(viewDir)), mat.Shininess)

	if diffuseCoef > core.EPSILON {
		diffuse = mat.Diffuse.Multiply(diffuseCoef).MultiplyVec(lightColor)
	}
	if specularCoef > core.EPSILON {
		specular = mat.Specular.Multiply(specularCoef).MultiplyVec(lightColor)
	}

	return diffuse, specular
}

// Trace returns the color seen along a ray: Lambert diffuse plus Phong specular
// for every light the hit point can see, plus ambient modulated by the
// material's diffuse color. Escaping rays return Background.
func Trace(primitives []geometry.Primitive, ambient, ray, origin core.Vec3, lights []scene.Light) core.Vec3 {
	hit, isHit := IntersectNodes(primitives, ray, origin)
	if !isHit {
		return Background
	}

	point := origin.Add(ray.Multiply(hit.Distance))
	normal := hit.HitVector.Normalize()
	viewDir := ray.Normalize()
	mat := hit.Primitive.Material()

	var diffuse, specular core.Vec3
	for _, light := range lights {
		shadowRay := light.Position.Subtract(point)

		// The epsilon guard in Intersect keeps the surface from shadowing itself
		if Occluded(primitives, shadowRay, point) {
			continue
		}

		d, s := Shade(mat, normal, viewDir, shadowRay, light.Color)
		diffuse = diffuse.Add(d)
		specular = specular.Add(s)
	}

	return diffuse.Add(specular).Add(ambient.MultiplyVec(mat.Diffuse))
}

// TraceScene traces a ray against a scene's primitives and lights
func TraceScene(s *scene.Scene, ray, origin core.Vec3) core.Vec3 {
	return Trace(s.Primitives, s.Ambient, ray, origin, s.Lights)
}
