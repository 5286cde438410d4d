// Package glyph loads the extracted "ff" glyph mask and the metrics
// measured against it. The mask is a grayscale image whose intensity
// (white = opaque) acts as per-pixel opacity when the renderer
// composites a color layer through it.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Mask is the single-channel glyph mask. It is immutable once
// constructed; callers pass it to the renderer rather than reloading
// the asset per size.
type Mask struct {
	alpha *image.Alpha
}

// Load decodes the image at path and converts its luminance to an
// alpha mask. The mask file is the only required input of the
// generator; a missing or unreadable file aborts the run.
func Load(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph mask: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode glyph mask %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage builds a Mask from an already decoded image.
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	alpha := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			alpha.SetAlpha(x, y, color.Alpha{A: g.Y})
		}
	}
	return &Mask{alpha: alpha}
}

// Size returns the source glyph dimensions in pixels.
func (m *Mask) Size() (w, h int) {
	b := m.alpha.Bounds()
	return b.Dx(), b.Dy()
}

// Opacity returns the mask intensity at (x, y).
func (m *Mask) Opacity(x, y int) uint8 {
	return m.alpha.AlphaAt(x, y).A
}

// Scaled resamples the mask to w×h with Catmull-Rom interpolation and
// returns a fresh buffer. Aspect fitting is the renderer's job; Scaled
// stretches to exactly the requested box.
func (m *Mask) Scaled(w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), m.alpha, m.alpha.Bounds(), xdraw.Src, nil)
	return dst
}
