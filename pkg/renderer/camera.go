package renderer

import (
	"github.com/jmblake/go-pathtracer/pkg/core"
)

// fieldScale sets the width of the image plane relative to the view
// direction, matching a roughly 29-degree vertical field of view
const fieldScale = 0.5135

// Camera generates primary rays for pixel and sub-pixel coordinates. The
// image is sampled on a fixed 2x2 sub-pixel grid with tent-filtered jitter
// inside each cell.
type Camera struct {
	position  core.Vec3
	direction core.Vec3
	cx, cy    core.Vec3 // image plane basis vectors
	width     int
	height    int
}

// NewCamera creates a camera from an eye ray (position plus normalized view
// direction) and the output image dimensions
func NewCamera(eye core.Ray, width, height int) *Camera {
	cx := core.NewVec3(float64(width)*fieldScale/float64(height), 0, 0)
	cy := cx.Cross(eye.Direction).Normalize().Multiply(fieldScale)
	return &Camera{
		position:  eye.Origin,
		direction: eye.Direction,
		cx:        cx,
		cy:        cy,
		width:     width,
		height:    height,
	}
}

// PrimaryRay returns a jittered primary ray for pixel (x, y) and sub-pixel
// cell (sx, sy), with sx and sy in {0, 1}. Jitter is drawn through the tent
// filter so samples concentrate at the cell center with support [-1, 1].
func (c *Camera) PrimaryRay(x, y, sx, sy int, sampler core.Sampler) core.Ray {
	dx := core.TentFilter(sampler.Get1D())
	dy := core.TentFilter(sampler.Get1D())

	u := ((float64(sx)+0.5+dx)/2+float64(x))/float64(c.width) - 0.5
	v := ((float64(sy)+0.5+dy)/2+float64(y))/float64(c.height) - 0.5

	d := c.cx.Multiply(u).Add(c.cy.Multiply(v)).Add(c.direction)
	return core.NewRay(c.position, d.Normalize())
}
