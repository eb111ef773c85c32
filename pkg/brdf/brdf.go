// Package brdf implements the surface reflectance models used by the path
// tracer. The capability set is closed: ideal diffuse and ideal specular
// reflection. Models are stateless and shared across surfaces; they are safe
// for concurrent use.
package brdf

import (
	"github.com/jmblake/go-pathtracer/pkg/core"
)

// BRDF describes how a surface scatters incoming light into outgoing
// directions. All direction arguments are unit vectors pointing away from
// the surface point; normal is the outward-facing surface normal.
type BRDF interface {
	// Evaluate returns the reflectance for light arriving from incoming
	// and leaving toward outgoing
	Evaluate(normal, outgoing, incoming core.Vec3) core.Vec3

	// Sample draws an incoming direction and its probability density for
	// the given outgoing direction
	Sample(normal, outgoing core.Vec3, sampler core.Sampler) (incoming core.Vec3, pdf float64)
}

// Mirror returns the perfect mirror reflection of outgoing about normal
func Mirror(normal, outgoing core.Vec3) core.Vec3 {
	return normal.Multiply(2 * normal.Dot(outgoing)).Subtract(outgoing)
}
