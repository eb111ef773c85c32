package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/jmblake/go-pathtracer/pkg/renderer"
	"github.com/jmblake/go-pathtracer/pkg/scene"
)

// subPixelSamples converts a user-facing samples-per-pixel count to the
// per-sub-pixel sample count; four sub-pixel cells are always used
func subPixelSamples(spp int) int {
	return max(1, spp/4)
}

func main() {
	spp := flag.Int("spp", 4, "Total samples per pixel (divided across the 2x2 sub-pixel grid)")
	out := flag.String("out", "image.png", "Output PNG path")
	workers := flag.Int("workers", 0, "Number of worker threads (0 = number of CPUs)")
	flag.Parse()

	desc := scene.Cornell()

	config := renderer.DefaultConfig()
	config.Width = desc.Width
	config.Height = desc.Height
	config.SamplesPerSubPixel = subPixelSamples(*spp)
	config.Workers = *workers

	logger := renderer.NewDefaultLogger()
	r := renderer.NewRenderer(desc.World, desc.Eye, config, logger)

	startTime := time.Now()
	img := r.Render()
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *out)
}
