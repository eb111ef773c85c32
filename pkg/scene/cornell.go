// Package scene provides the built-in scene descriptions consumed by the
// renderer. A description is configuration data: an ordered surface list, a
// designated light, an eye ray, and image dimensions.
package scene

import (
	"github.com/jmblake/go-pathtracer/pkg/brdf"
	"github.com/jmblake/go-pathtracer/pkg/core"
	"github.com/jmblake/go-pathtracer/pkg/geometry"
)

// Description is an immutable scene description ready to render
type Description struct {
	World  *geometry.Scene
	Eye    core.Ray // camera position plus normalized view direction
	Width  int
	Height int
}

// Cornell builds the classic enclosed box scene: five huge wall spheres
// approximating planes, a diffuse ball, a mirror ball, and a spherical area
// light near the ceiling. BRDF instances are shared across the surfaces
// that use them.
func Cornell() *Description {
	leftWall := brdf.NewDiffuse(core.NewVec3(0.75, 0.25, 0.25))
	rightWall := brdf.NewDiffuse(core.NewVec3(0.25, 0.25, 0.75))
	otherWall := brdf.NewDiffuse(core.NewVec3(0.75, 0.75, 0.75))
	blackSurf := brdf.NewDiffuse(core.NewVec3(0, 0, 0))
	brightSurf := brdf.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9))
	mirrorSurf := brdf.NewSpecular(core.NewVec3(0.999, 0.999, 0.999))

	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(1e5+1, 40.8, 81.6), 1e5, core.Vec3{}, leftWall),
		geometry.NewSphere(core.NewVec3(-1e5+99, 40.8, 81.6), 1e5, core.Vec3{}, rightWall),
		geometry.NewSphere(core.NewVec3(50, 40.8, 1e5), 1e5, core.Vec3{}, otherWall),
		geometry.NewSphere(core.NewVec3(50, 1e5, 81.6), 1e5, core.Vec3{}, otherWall),
		geometry.NewSphere(core.NewVec3(50, -1e5+81.6, 81.6), 1e5, core.Vec3{}, otherWall),
		geometry.NewSphere(core.NewVec3(27, 16.5, 47), 16.5, core.Vec3{}, brightSurf),
		geometry.NewSphere(core.NewVec3(73, 16.5, 78), 16.5, core.Vec3{}, mirrorSurf),
		geometry.NewSphere(core.NewVec3(50, 70.0, 81.6), 5.0, core.NewVec3(50, 50, 50), blackSurf),
	}

	return &Description{
		World:  geometry.NewScene(spheres, len(spheres)-1),
		Eye:    core.NewRay(core.NewVec3(50, 52, 295.6), core.NewVec3(0, -0.042612, -1).Normalize()),
		Width:  480,
		Height: 360,
	}
}
