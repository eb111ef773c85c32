package brdf

import (
	"math"

	"github.com/jmblake/go-pathtracer/pkg/core"
)

// Diffuse represents an ideal (Lambertian) diffuse reflector
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse creates a diffuse BRDF with the given reflectance
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Evaluate returns the Lambertian constant albedo/π for any direction pair
func (d *Diffuse) Evaluate(normal, outgoing, incoming core.Vec3) core.Vec3 {
	return d.Albedo.Multiply(1.0 / math.Pi)
}

// Sample draws a cosine-weighted direction on the hemisphere around normal.
// The returned pdf is cos(θ)/π, matching the sampling density so that the
// cosine term cancels when the estimator divides by it.
func (d *Diffuse) Sample(normal, outgoing core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	u1, u2 := sampler.Get2D()
	incoming := core.SampleCosineHemisphere(normal, u1, u2)
	pdf := normal.Dot(incoming) / math.Pi
	return incoming, pdf
}
