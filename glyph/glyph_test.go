package glyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func grayRamp(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * 255) / (w - 1))})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	writePNG(t, path, grayRamp(64, 32))

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, h := m.Size()
	if w != 64 || h != 32 {
		t.Fatalf("Size: got %dx%d, want 64x32", w, h)
	}
	if got := m.Opacity(0, 0); got != 0 {
		t.Errorf("Opacity(0,0): got %d, want 0", got)
	}
	if got := m.Opacity(63, 0); got != 255 {
		t.Errorf("Opacity(63,0): got %d, want 255", got)
	}
}

func TestFromImageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 255})

	m := FromImage(img)
	if got := m.Opacity(0, 0); got != 255 {
		t.Errorf("white pixel: got opacity %d, want 255", got)
	}
	if got := m.Opacity(1, 0); got != 0 {
		t.Errorf("black pixel: got opacity %d, want 0", got)
	}
}

func TestScaledDimensions(t *testing.T) {
	m := FromImage(grayRamp(100, 50))
	scaled := m.Scaled(40, 20)
	b := scaled.Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("Scaled: got %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestScaledUniformStaysUniform(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 50, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 50; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	scaled := FromImage(src).Scaled(17, 11)
	for y := 0; y < 11; y++ {
		for x := 0; x < 17; x++ {
			if a := scaled.AlphaAt(x, y).A; a != 255 {
				t.Fatalf("Scaled(%d,%d): got alpha %d, want 255", x, y, a)
			}
		}
	}
}
