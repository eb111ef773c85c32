package geometry

import (
	"math"

	"github.com/jmblake/go-pathtracer/pkg/core"
)

// Scene holds the fixed collection of surfaces being rendered. The slice
// order carries no meaning except as the tie-break for intersection: later
// surfaces only replace the current nearest hit on a strictly smaller
// distance. Scenes are immutable after construction.
type Scene struct {
	Spheres []*Sphere
	Light   int // index of the designated light surface for direct sampling
}

// NewScene creates a scene from a surface list and the light surface index
func NewScene(spheres []*Sphere, light int) *Scene {
	return &Scene{Spheres: spheres, Light: light}
}

// LightSphere returns the designated light surface
func (sc *Scene) LightSphere() *Sphere {
	return sc.Spheres[sc.Light]
}

// Intersect finds the nearest surface struck by the ray via a linear scan.
// Returns the hit distance and surface index, or ok=false on a miss.
func (sc *Scene) Intersect(ray core.Ray) (t float64, idx int, ok bool) {
	t = math.Inf(1)
	for i, s := range sc.Spheres {
		if d, hit := s.Intersect(ray); hit && d < t {
			t = d
			idx = i
			ok = true
		}
	}
	return t, idx, ok
}
