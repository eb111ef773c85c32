package brdf

import (
	"github.com/jmblake/go-pathtracer/pkg/core"
)

// mirrorToleranceSq bounds the squared distance between a queried incoming
// direction and the exact mirror direction. The reflection is a delta
// function, so Evaluate only responds to directions produced by Sample;
// the tolerance absorbs floating-point rounding between the two call sites
// rather than requiring bit-exact equality.
const mirrorToleranceSq = 1e-12

// Specular represents an ideal mirror reflector
type Specular struct {
	Reflectance core.Vec3
}

// NewSpecular creates a specular BRDF with the given reflectance
func NewSpecular(reflectance core.Vec3) *Specular {
	return &Specular{Reflectance: reflectance}
}

// Evaluate returns reflectance/cos(θ) when incoming is the mirror direction
// of outgoing, and black otherwise. The 1/cos(θ) factor cancels the cosine
// the estimator multiplies in, leaving the reflectance unchanged.
func (s *Specular) Evaluate(normal, outgoing, incoming core.Vec3) core.Vec3 {
	mirror := Mirror(normal, outgoing)
	if incoming.Subtract(mirror).LengthSquared() > mirrorToleranceSq {
		return core.Vec3{}
	}
	return s.Reflectance.Multiply(1.0 / normal.Dot(incoming))
}

// Sample is deterministic: it returns the mirror direction with a nominal
// pdf of 1, since this path carries no stochastic branching
func (s *Specular) Sample(normal, outgoing core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	return Mirror(normal, outgoing), 1.0
}
