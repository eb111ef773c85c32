// Package renderer drives the parallel per-pixel sampling loop: it
// partitions the image into rows, dispatches them across a fixed worker
// pool, accumulates per-pixel color, and converts the result to a raster
// image.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/jmblake/go-pathtracer/pkg/core"
	"github.com/jmblake/go-pathtracer/pkg/geometry"
	"github.com/jmblake/go-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	Width              int   // Output image width in pixels
	Height             int   // Output image height in pixels
	SamplesPerSubPixel int   // Rays traced per 2x2 sub-pixel cell
	Workers            int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base RNG seed (0 = seed from entropy)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:              480,
		Height:             360,
		SamplesPerSubPixel: 1,
		Workers:            0,
		Seed:               0,
	}
}

// Renderer renders a scene into an image using a pool of row workers
type Renderer struct {
	world  *geometry.Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and eye ray
func NewRenderer(world *geometry.Scene, eye core.Ray, config Config, logger core.Logger) *Renderer {
	return &Renderer{
		world:  world,
		camera: NewCamera(eye, config.Width, config.Height),
		config: config,
		logger: logger,
	}
}

// Render traces the full image and returns it as an RGBA raster, top row
// first. Rows are claimed dynamically by the workers to balance uneven
// per-row cost; each row writes a disjoint slice of the framebuffer, so the
// hot path needs no locks. Randomness is partitioned per row task, which
// makes renders with a fixed seed bit-identical regardless of how rows are
// scheduled across workers.
func (r *Renderer) Render() *image.RGBA {
	width, height := r.config.Width, r.config.Height
	framebuffer := make([]core.Vec3, width*height)

	seed := r.config.Seed
	if seed == 0 {
		seed = core.EntropySeed()
	}

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tracer := integrator.NewPathTracer(r.world)

	rows := make(chan int, height)
	completed := make(chan int, height)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				sampler := core.NewSeededSampler(seed + int64(y))
				r.renderRow(tracer, y, framebuffer, sampler)
				completed <- y
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	// Progress is reported from this goroutine only, one update per
	// completed row. The percentage counts completions rather than echoing
	// row indices, so it reaches 100.00 exactly when the last row finishes
	// whatever order the workers claim rows in.
	spp := 4 * r.config.SamplesPerSubPixel
	for done := 0; done < height; done++ {
		<-completed
		r.logger.Printf("\rRendering (%d spp) %6.2f%%", spp, 100.0*float64(done+1)/float64(height))
	}
	wg.Wait()
	r.logger.Printf("\n")

	return r.assembleImage(framebuffer)
}

// renderRow traces every pixel of row y. Per pixel, each of the four
// sub-pixel cells averages SamplesPerSubPixel independent radiance
// estimates; the cell averages are clamped to [0, 1] and summed with weight
// 0.25 each.
func (r *Renderer) renderRow(tracer *integrator.PathTracer, y int, framebuffer []core.Vec3, sampler core.Sampler) {
	width, height := r.config.Width, r.config.Height
	samples := r.config.SamplesPerSubPixel
	invSamples := 1.0 / float64(samples)

	for x := 0; x < width; x++ {
		var pixel core.Vec3
		for sy := 0; sy < 2; sy++ {
			for sx := 0; sx < 2; sx++ {
				var cell core.Vec3
				for s := 0; s < samples; s++ {
					ray := r.camera.PrimaryRay(x, y, sx, sy, sampler)
					cell = cell.Add(tracer.Radiance(ray, 1, sampler).Multiply(invSamples))
				}
				pixel = pixel.Add(cell.Clamp(0, 1).Multiply(0.25))
			}
		}
		// Row y counts up from the bottom of the image plane; the raster
		// stores the top row first
		framebuffer[(height-1-y)*width+x] = pixel
	}
}

// assembleImage converts the linear framebuffer to an 8-bit RGBA image
func (r *Renderer) assembleImage(framebuffer []core.Vec3) *image.RGBA {
	width, height := r.config.Width, r.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, displayColor(framebuffer[y*width+x]))
		}
	}
	return img
}

// displayColor converts linear radiance to an 8-bit display color: each
// channel is clamped to [0, 1], gamma corrected with exponent 1/2.2, and
// rounded to [0, 255]
func displayColor(v core.Vec3) color.RGBA {
	v = v.Clamp(0, 1).GammaCorrect(2.2)
	return color.RGBA{
		R: uint8(255*v.X + 0.5),
		G: uint8(255*v.Y + 0.5),
		B: uint8(255*v.Z + 0.5),
		A: 255,
	}
}
