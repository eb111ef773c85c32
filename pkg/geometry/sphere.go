package geometry

import (
	"math"

	"github.com/jmblake/go-pathtracer/pkg/brdf"
	"github.com/jmblake/go-pathtracer/pkg/core"
)

// hitEpsilon rejects intersection roots at or behind the ray origin, so a
// ray starting on a surface does not immediately re-hit it
const hitEpsilon = 1e-4

// Sphere represents a sphere surface with optional emission. Spheres are
// built once at scene construction and never mutated, so they are safe for
// unsynchronized concurrent reads during rendering.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Emission core.Vec3 // emitted radiance, black for non-emitters
	BRDF     brdf.BRDF // shared reflectance model
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, emission core.Vec3, b brdf.BRDF) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Emission: emission,
		BRDF:     b,
	}
}

// Intersect solves the ray/sphere quadratic and returns the distance to the
// nearest root exceeding hitEpsilon. The ray direction is assumed to be unit
// length. A negative discriminant means no real intersection and is treated
// as a miss.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Solve t² + 2t·(o-p)·d + (o-p)·(o-p) - r² = 0 for unit d
	op := s.Center.Subtract(ray.Origin)
	b := op.Dot(ray.Direction)
	det := b*b - op.Dot(op) + s.Radius*s.Radius
	if det < 0 {
		return 0, false
	}

	det = math.Sqrt(det)
	if t := b - det; t > hitEpsilon {
		return t, true
	}
	if t := b + det; t > hitEpsilon {
		return t, true
	}
	return 0, false
}
