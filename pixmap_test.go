package tri

import (
	"path/filepath"
	"testing"
)

// TestPixmapSetGetPixel round-trips a pixel value through the 8-bit store.
func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, RGBA{R: 1, G: 0, B: 0, A: 1})

	c := pm.GetPixel(5, 5)
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("GetPixel(5,5) = %+v, want opaque red", c)
	}
}

// TestPixmapOutOfBounds verifies out-of-bounds access is silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {-100, 100}} {
		pm.SetPixel(p.x, p.y, Red)
		if got := pm.GetPixel(p.x, p.y); got != Transparent {
			t.Errorf("GetPixel(%d,%d) = %+v, want Transparent", p.x, p.y, got)
		}
	}

	data := pm.Data()
	for i := range data {
		if data[i] != original[i] {
			t.Fatalf("out-of-bounds SetPixel modified data at index %d", i)
		}
	}
}

// TestPixmapStoreRoundsToNearest verifies the 8-bit store rounds instead of
// truncating. Interpolated channel values land just under their exact value
// in float arithmetic (barycentric weights sum to slightly under 1.0), and a
// truncating store would turn a flat 1.0 channel into 254.
func TestPixmapStoreRoundsToNearest(t *testing.T) {
	pm := NewPixmap(1, 1)

	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"just under one", 0.99999988, 255},
		{"exact one", 1.0, 255},
		{"half", 0.5, 128},
		{"small value stays zero", 0.001, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm.SetPixel(0, 0, RGBA{G: tt.in, A: 1})
			if got := pm.Data()[1]; got != tt.want {
				t.Errorf("stored G byte for %v = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	// Clear goes through the same conversion.
	pm.Clear(RGBA{G: 0.99999988, A: 1})
	if got := pm.Data()[1]; got != 255 {
		t.Errorf("cleared G byte = %d, want 255", got)
	}
}

// TestPixmapFromData verifies the wrapped buffer is aliased, not copied.
func TestPixmapFromData(t *testing.T) {
	buf := make([]uint8, 4*4*4)
	pm := NewPixmapFromData(4, 4, buf)

	pm.SetPixel(0, 0, White)
	if buf[0] != 255 || buf[3] != 255 {
		t.Error("NewPixmapFromData should write through to the caller's buffer")
	}

	buf[4] = 128
	if got := pm.GetPixel(1, 0); got.R == 0 {
		t.Error("NewPixmapFromData should read through from the caller's buffer")
	}
}

// TestPixmapClear verifies Clear fills every pixel.
func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(ClearColor)

	want := pm.GetPixel(0, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := pm.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// TestPixmapSavePNG verifies PNG output is written.
func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(ClearColor)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}

// TestPixmapToImage verifies the image copy shares no memory.
func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, White)

	img := pm.ToImage()
	pm.SetPixel(0, 0, Black)

	if img.Pix[0] != 255 {
		t.Error("ToImage() should copy pixel data, not alias it")
	}
}
