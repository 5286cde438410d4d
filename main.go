// Generates the focusmute tray icon set from the extracted "ff" glyph
// mask: a plain "live" variant and a struck-through "muted" variant,
// each as a multi-size ICO plus a standalone 256 px PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/barnumbirr/focusmute/glyph"
	"github.com/barnumbirr/focusmute/pack"
	"github.com/barnumbirr/focusmute/render"
)

// Sizes packed into each ICO. The standalone PNGs ship only the
// largest.
var icoSizes = []int{16, 24, 32, 48, 64, 128, 256}

const pngSize = 256

const (
	maskFile    = "ff-extracted.png"
	metricsFile = "glyph.toml"
)

func main() {
	assetsDir := flag.String("assets", "assets", "directory holding the glyph mask and its metrics sidecar")
	outDir := flag.String("out", "assets", "directory the icon files are written to")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := run(logger, *assetsDir, *outDir); err != nil {
		logger.Fatal().Err(err).Msg("icon generation failed")
	}
}

func run(logger zerolog.Logger, assetsDir, outDir string) error {
	mask, err := glyph.Load(filepath.Join(assetsDir, maskFile))
	if err != nil {
		return err
	}
	metrics, err := glyph.LoadMetrics(filepath.Join(assetsDir, metricsFile))
	if err != nil {
		return err
	}
	renderer := render.New(mask, metrics)

	variants := []struct {
		name  string
		muted bool
	}{
		{"live", false},
		{"muted", true},
	}
	for _, v := range variants {
		logger.Info().Str("variant", v.name).Msg("rendering icons")

		images := make([]image.Image, 0, len(icoSizes))
		for _, size := range icoSizes {
			img := image.Image(renderer.Logo(size))
			if v.muted {
				img = render.Strikethrough(img)
			}
			images = append(images, img)

			if size == pngSize {
				path := filepath.Join(outDir, fmt.Sprintf("icon-%s.png", v.name))
				if err := pack.WritePNG(path, img); err != nil {
					return err
				}
				logger.Info().Str("file", path).Int("size", size).Msg("wrote png")
			}
		}

		path := filepath.Join(outDir, fmt.Sprintf("icon-%s.ico", v.name))
		if err := pack.WriteICO(path, images); err != nil {
			return err
		}
		logger.Info().Str("file", path).Ints("sizes", icoSizes).Msg("wrote ico")
	}
	return nil
}
