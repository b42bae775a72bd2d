// Command tridemo renders the canonical red-green-blue triangle to a PNG.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/render"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "triangle.png", "output file")
		useGPU  = flag.Bool("gpu", false, "render on the GPU, falling back to CPU if unavailable")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		tri.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	verts := []tri.VertexInput{
		{Position: tri.Vec3{X: 0.0, Y: 0.5, Z: 0.0}, Color: tri.Vec3{X: 1, Y: 0, Z: 0}},
		{Position: tri.Vec3{X: -0.5, Y: -0.5, Z: 0.0}, Color: tri.Vec3{X: 0, Y: 1, Z: 0}},
		{Position: tri.Vec3{X: 0.5, Y: -0.5, Z: 0.0}, Color: tri.Vec3{X: 0, Y: 0, Z: 1}},
	}

	renderer, backend := pickRenderer(*useGPU)

	target := render.NewPixmapTarget(*width, *height)
	if err := renderer.Render(target, verts); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	pm := tri.NewPixmapFromData(*width, *height, target.Pixels())
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Triangle saved to %s (%dx%d, %s)\n", *output, *width, *height, backend)
}

// pickRenderer returns the requested renderer, falling back to the CPU
// path when no GPU is usable.
func pickRenderer(useGPU bool) (render.Renderer, string) {
	if !useGPU {
		return render.NewSoftwareRenderer(), "cpu"
	}

	gpuRenderer, err := render.NewGPURenderer(render.NullDeviceHandle{})
	if err != nil {
		if errors.Is(err, render.ErrGPUUnavailable) {
			log.Printf("GPU unavailable, falling back to CPU: %v", err)
		} else {
			log.Printf("GPU init failed, falling back to CPU: %v", err)
		}
		return render.NewSoftwareRenderer(), "cpu"
	}
	return gpuRenderer, gpuRenderer.Capabilities().DeviceName
}
