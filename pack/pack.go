// Package pack writes rendered icon buffers to their on-disk container
// formats and picks entries back out of multi-size ICO files.
package pack

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"sort"

	ico "github.com/sergeymakinen/go-ico"
)

// WriteICO packs same-content renders at different sizes into one
// multi-resolution ICO file. Entries are ordered largest first so the
// biggest render becomes the primary entry and the rest are appended
// as alternates. Buffers are stored as rendered; nothing is resized
// here.
func WriteICO(path string, images []image.Image) error {
	if len(images) == 0 {
		return fmt.Errorf("write %s: no images", path)
	}
	sorted := make([]image.Image, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds().Dx() > sorted[j].Bounds().Dx()
	})

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, sorted); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WritePNG persists one render as a standalone single-resolution file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Nearest decodes a multi-size ICO and returns the entry whose side is
// closest to target pixels. Consumers want this instead of a plain
// decode: that hands back the 256 px primary, and downscaling it to
// tray size loses thin strokes like the crossbar.
func Nearest(data []byte, target int) (image.Image, error) {
	entries, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode ico: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("decode ico: no entries")
	}

	best := entries[0]
	bestDiff := sizeDiff(best, target)
	for _, e := range entries[1:] {
		if d := sizeDiff(e, target); d < bestDiff {
			best, bestDiff = e, d
		}
	}
	return best, nil
}

func sizeDiff(img image.Image, target int) int {
	d := img.Bounds().Dx() - target
	if d < 0 {
		return -d
	}
	return d
}
