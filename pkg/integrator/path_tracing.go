// Package integrator implements the Monte Carlo radiance estimator. Each
// traced path combines emitted radiance, next-event-estimated direct
// lighting, and Russian-roulette-terminated indirect lighting per bounce.
package integrator

import (
	"math"

	"github.com/jmblake/go-pathtracer/pkg/core"
	"github.com/jmblake/go-pathtracer/pkg/geometry"
)

// lightHitToleranceSq is the squared-distance tolerance for deciding that a
// visibility ray reached the sampled light point. It is an equality test
// against numerical error, not a general occlusion distance, so it stays
// small relative to the scene's units.
const lightHitToleranceSq = 1e-4

// rouletteMinDepth and rouletteSurvival define the termination policy for
// indirect bounces: paths continue unconditionally through rouletteMinDepth
// bounces, then survive each further bounce with probability
// rouletteSurvival. Depth is otherwise unbounded; dividing surviving paths
// by the survival probability keeps the infinite-bounce sum unbiased.
const (
	rouletteMinDepth = 5
	rouletteSurvival = 0.9
)

// PathTracer estimates the radiance arriving along rays in a scene
type PathTracer struct {
	scene *geometry.Scene
}

// NewPathTracer creates a path tracer for the given scene
func NewPathTracer(scene *geometry.Scene) *PathTracer {
	return &PathTracer{scene: scene}
}

// Radiance returns the radiance received along the ray. depth counts the
// bounces taken so far; primary rays start at depth 1. All randomness is
// drawn from the caller's sampler, which must not be shared across
// goroutines.
func (pt *PathTracer) Radiance(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	t, idx, ok := pt.scene.Intersect(ray)
	if !ok {
		return core.Vec3{}
	}
	surf := pt.scene.Spheres[idx]

	x := ray.At(t)
	o := ray.Direction.Negate()

	// Outward-facing normal, flipped if it opposes the view direction
	n := x.Subtract(surf.Center).Normalize()
	if n.Dot(o) < 0 {
		n = n.Negate()
	}

	// Emitted light is seen directly, then reflected light splits into the
	// explicitly light-sampled direct term and the BRDF-sampled indirect term
	direct := pt.directRadiance(x, n, o, surf, sampler)
	indirect := pt.indirectRadiance(x, n, o, surf, depth, sampler)
	return surf.Emission.Add(direct).Add(indirect)
}

// sampleLight draws a uniformly distributed point on the designated light
// sphere, returning the point, its surface normal, and the area pdf
func (pt *PathTracer) sampleLight(sampler core.Sampler) (point, normal core.Vec3, pdf float64) {
	light := pt.scene.LightSphere()
	u1, u2 := sampler.Get2D()
	normal = core.SampleUniformSphere(u1, u2)
	point = light.Center.Add(normal.Multiply(light.Radius))
	pdf = 1.0 / (4.0 * math.Pi * light.Radius * light.Radius)
	return point, normal, pdf
}

// directRadiance estimates the direct contribution from the light surface
// via next-event estimation: sample a light point, cast a visibility ray
// toward it, and count the contribution only if the recorded hit coincides
// with the sampled point.
func (pt *PathTracer) directRadiance(x, n, o core.Vec3, surf *geometry.Sphere, sampler core.Sampler) core.Vec3 {
	light := pt.scene.LightSphere()
	lightPoint, lightNormal, lightPDF := pt.sampleLight(sampler)

	toLight := lightPoint.Subtract(x)
	distSq := toLight.LengthSquared()
	if distSq < lightHitToleranceSq {
		// The sampled point coincides with the shading point itself, which
		// can happen when x lies on the light surface. The direction and
		// the 1/distSq geometry term are both degenerate there.
		return core.Vec3{}
	}
	i := toLight.Normalize()

	t, _, ok := pt.scene.Intersect(core.NewRay(x, i))
	if !ok {
		return core.Vec3{}
	}
	hitPoint := x.Add(i.Multiply(t))
	if hitPoint.Subtract(lightPoint).LengthSquared() >= lightHitToleranceSq {
		// Occluded, or the visibility ray struck a different part of the
		// scene than the sampled point
		return core.Vec3{}
	}

	f := surf.BRDF.Evaluate(n, o, i)
	cosSurface := n.Dot(i)
	cosLight := lightNormal.Dot(i.Negate())
	return light.Emission.MultiplyVec(f).Multiply(cosSurface * cosLight / (distSq * lightPDF))
}

// indirectRadiance estimates the reflected contribution from all other
// directions by sampling the BRDF and recursing, with Russian roulette
// deciding whether the path continues
func (pt *PathTracer) indirectRadiance(x, n, o core.Vec3, surf *geometry.Sphere, depth int, sampler core.Sampler) core.Vec3 {
	p := 1.0
	if depth > rouletteMinDepth {
		p = rouletteSurvival
	}
	if sampler.Get1D() > p {
		return core.Vec3{}
	}

	i, pdf := surf.BRDF.Sample(n, o, sampler)
	f := surf.BRDF.Evaluate(n, o, i)
	incoming := pt.Radiance(core.NewRay(x, i), depth+1, sampler)
	return incoming.MultiplyVec(f).Multiply(n.Dot(i) / (pdf * p))
}
