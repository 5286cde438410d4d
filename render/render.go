// Package render composites the glyph mask into tray icon buffers:
// the plain "live" logo and the struck-through "muted" variant.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"

	"github.com/barnumbirr/focusmute/glyph"
)

// Palette.
var (
	Gold       = color.RGBA{R: 221, G: 182, B: 105, A: 255}
	Background = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	Red        = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	RedOutline = color.RGBA{R: 60, G: 15, B: 15, A: 255}
)

// Presentation constants, tuned by inspection against the shipped
// mask. Fixed for every size within one run.
const (
	cornerRadiusFrac = 0.09

	// Below this output thickness the crossbar stops reading as a
	// stroke and gets an explicit reinforcement line.
	minCrossbarPx = 1.5

	strikeMarginFrac  = 0.12
	strikeOutlineFrac = 0.055
	strikeLineFrac    = 0.035
	minOutlineWidth   = 3
	minLineWidth      = 2
)

// Renderer renders the logo from one mask and its measured metrics.
type Renderer struct {
	mask    *glyph.Mask
	metrics glyph.Metrics
}

func New(mask *glyph.Mask, metrics glyph.Metrics) *Renderer {
	return &Renderer{mask: mask, metrics: metrics}
}

// Logo renders the plain logo at size×size: rounded-rect background,
// the mask aspect-fitted and centered, gold composited through it, and
// a crossbar reinforcement line when the stroke would otherwise vanish.
// Each call returns a fresh buffer.
func (r *Renderer) Logo(size int) *image.RGBA {
	dc := gg.NewContext(size, size)
	s := float64(size)

	dc.SetColor(Background)
	dc.DrawRoundedRectangle(0, 0, s, s, math.Round(cornerRadiusFrac*s))
	dc.Fill()

	// Fit the glyph into the logo box, preserving aspect ratio. The
	// smaller scale factor wins so the glyph never overflows either
	// dimension.
	srcW, srcH := r.mask.Size()
	targetW := math.Round(r.metrics.LogoWidthFrac * s)
	targetH := math.Round(r.metrics.LogoHeightFrac * s)
	scale := math.Min(targetW/float64(srcW), targetH/float64(srcH))
	glyphW := int(math.Round(float64(srcW) * scale))
	glyphH := int(math.Round(float64(srcH) * scale))

	ox := (size - glyphW) / 2
	oy := (size - glyphH) / 2

	img := dc.Image().(*image.RGBA)
	box := image.Rect(ox, oy, ox+glyphW, oy+glyphH)
	draw.DrawMask(img, box, image.NewUniform(Gold), image.Point{},
		r.mask.Scaled(glyphW, glyphH), image.Point{}, draw.Over)

	// At small sizes the crossbar scales below a pixel and vanishes.
	// Reinforce it with an explicit 1 px line at its measured position.
	if r.metrics.NaturalCrossbarPx(glyphH) < minCrossbarPx {
		cy := oy + int(math.Round(float64(glyphH)*r.metrics.CrossbarYFrac))
		x0 := ox + int(math.Round(float64(glyphW)*r.metrics.CrossbarX0Frac))
		x1 := ox + int(math.Round(float64(glyphW)*r.metrics.CrossbarX1Frac))
		dc.SetColor(Gold)
		dc.SetLineWidth(1)
		dc.SetLineCap(gg.LineCapButt)
		dc.DrawLine(float64(x0), float64(cy)+0.5, float64(x1), float64(cy)+0.5)
		dc.Stroke()
	}

	return img
}

// Strikethrough returns a copy of base with the red diagonal mute
// stroke: a thicker dark outline first, then the red line on top, both
// inset from the corners. The input buffer is not modified.
func Strikethrough(base image.Image) *image.RGBA {
	size := base.Bounds().Dx()
	s := float64(size)

	dc := gg.NewContextForImage(base)
	dc.SetLineCap(gg.LineCapButt)

	margin := strikeMarginFrac * s
	x0, y0 := margin, margin
	x1, y1 := s-margin, s-margin

	dc.SetColor(RedOutline)
	dc.SetLineWidth(math.Max(minOutlineWidth, math.Round(strikeOutlineFrac*s)))
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()

	dc.SetColor(Red)
	dc.SetLineWidth(math.Max(minLineWidth, math.Round(strikeLineFrac*s)))
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()

	return dc.Image().(*image.RGBA)
}
