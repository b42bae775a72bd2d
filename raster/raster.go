// Package raster provides a CPU reference implementation of the
// fixed-function stages surrounding the shader program: viewport mapping,
// triangle coverage, and attribute interpolation.
//
// The GPU treats rasterization and interpolation as opaque hardware. This
// package makes that contract executable so the shader stages can be
// verified end to end without a device: each covered pixel runs
// tri.VertexStage outputs through barycentric interpolation and feeds the
// result to tri.FragmentStage, exactly as the hardware would.
//
// Because clip_position.w is always 1.0 in this program, NDC equals the
// clip coordinate and perspective-correct interpolation coincides with
// linear interpolation; the simple barycentric weighting below is exact.
package raster

import (
	"runtime"
	"sync"

	"github.com/gogpu/tri"
)

// parallelRowThreshold is the framebuffer height above which triangle
// shading is split across goroutines. Small targets stay sequential to
// avoid goroutine overhead per draw.
const parallelRowThreshold = 64

// Triangle is one primitive after the vertex stage: three vertex outputs
// in submission order.
type Triangle struct {
	V0, V1, V2 tri.VertexOutput
}

// screenVertex is a vertex position mapped to continuous pixel coordinates.
type screenVertex struct {
	x, y float32
}

// toScreen maps a clip-space position to pixel coordinates for a target of
// the given size. With w fixed at 1.0 there is no perspective divide: x and
// y pass straight from clip space to NDC, then scale to the viewport with
// the usual y flip (clip +y is up, pixel +y is down).
func toScreen(p tri.Vec4, width, height int) screenVertex {
	return screenVertex{
		x: (p.X + 1) * 0.5 * float32(width),
		y: (1 - p.Y) * 0.5 * float32(height),
	}
}

// edgeFunction computes the signed parallelogram area of (b-a) x (p-a).
// Positive for points to the left of the directed edge a->b.
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Interpolate computes the fragment input at continuous pixel position
// (px, py) for the given triangle on a target of size width x height.
//
// The second return value reports coverage: false means the point lies
// outside the triangle (or the triangle is degenerate) and no fragment is
// generated there. Both winding orders are accepted, mirroring a pipeline
// configured with no culling.
func Interpolate(t Triangle, px, py float32, width, height int) (tri.FragmentInput, bool) {
	s0 := toScreen(t.V0.ClipPosition, width, height)
	s1 := toScreen(t.V1.ClipPosition, width, height)
	s2 := toScreen(t.V2.ClipPosition, width, height)

	area := edgeFunction(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area == 0 {
		return tri.FragmentInput{}, false
	}

	w0 := edgeFunction(s1.x, s1.y, s2.x, s2.y, px, py)
	w1 := edgeFunction(s2.x, s2.y, s0.x, s0.y, px, py)
	w2 := edgeFunction(s0.x, s0.y, s1.x, s1.y, px, py)

	// Flip for clockwise triangles so inside is always non-negative.
	if area < 0 {
		area, w0, w1, w2 = -area, -w0, -w1, -w2
	}
	if w0 < 0 || w1 < 0 || w2 < 0 {
		return tri.FragmentInput{}, false
	}

	// Normalized barycentric weights. Linear interpolation is exact here:
	// with w = 1.0 at every vertex there is no perspective correction term.
	invArea := 1 / area
	w0 *= invArea
	w1 *= invArea
	w2 *= invArea

	c0, c1, c2 := t.V0.Color, t.V1.Color, t.V2.Color
	return tri.FragmentInput{
		Color: tri.Vec3{
			X: w0*c0.X + w1*c1.X + w2*c2.X,
			Y: w0*c0.Y + w1*c1.Y + w2*c2.Y,
			Z: w0*c0.Z + w1*c1.Z + w2*c2.Z,
		},
	}, true
}

// DrawTriangles runs the full pipeline for a triangle-list vertex stream:
// the vertex stage per vertex, rasterization and interpolation per covered
// pixel, and the fragment stage per fragment, writing results to pm.
//
// Vertices are consumed three at a time; a trailing partial primitive is
// ignored, matching draw-call semantics. Pixels are sampled at their
// centers. Geometry outside the [-1, 1] clip range in x/y simply falls
// outside the viewport and is never covered.
func DrawTriangles(pm *tri.Pixmap, verts []tri.VertexInput) {
	for i := 0; i+2 < len(verts); i += 3 {
		t := Triangle{
			V0: tri.VertexStage(verts[i]),
			V1: tri.VertexStage(verts[i+1]),
			V2: tri.VertexStage(verts[i+2]),
		}
		drawTriangle(pm, t)
	}
}

// drawTriangle shades every pixel covered by the triangle. Rows are
// independent (each fragment is a pure function of its own input, with no
// shared mutable state), so large targets are shaded row-parallel.
func drawTriangle(pm *tri.Pixmap, t Triangle) {
	width, height := pm.Width(), pm.Height()

	minX, maxX, minY, maxY := bounds(t, width, height)
	if minX >= maxX || minY >= maxY {
		return
	}

	shadeRows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			py := float32(y) + 0.5
			for x := minX; x < maxX; x++ {
				px := float32(x) + 0.5
				frag, ok := Interpolate(t, px, py, width, height)
				if !ok {
					continue
				}
				out := tri.FragmentStage(frag)
				pm.SetPixel(x, y, tri.RGBA{
					R: float64(out.R),
					G: float64(out.G),
					B: float64(out.B),
					A: float64(out.A),
				})
			}
		}
	}

	rows := maxY - minY
	if rows < parallelRowThreshold {
		shadeRows(minY, maxY)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := minY + w*chunk
		y1 := y0 + chunk
		if y1 > maxY {
			y1 = maxY
		}
		if y0 >= y1 {
			break
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			shadeRows(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// bounds returns the clamped pixel bounding box the triangle can cover, so
// shading does O(bbox) work per triangle rather than scanning full rows.
func bounds(t Triangle, width, height int) (minX, maxX, minY, maxY int) {
	s0 := toScreen(t.V0.ClipPosition, width, height)
	s1 := toScreen(t.V1.ClipPosition, width, height)
	s2 := toScreen(t.V2.ClipPosition, width, height)

	loX, hiX := s0.x, s0.x
	loY, hiY := s0.y, s0.y
	for _, s := range []screenVertex{s1, s2} {
		if s.x < loX {
			loX = s.x
		}
		if s.x > hiX {
			hiX = s.x
		}
		if s.y < loY {
			loY = s.y
		}
		if s.y > hiY {
			hiY = s.y
		}
	}

	minX, maxX = int(loX), int(hiX)+1
	minY, maxY = int(loY), int(hiY)+1
	if minX < 0 {
		minX = 0
	}
	if maxX > width {
		maxX = width
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > height {
		maxY = height
	}
	return minX, maxX, minY, maxY
}
