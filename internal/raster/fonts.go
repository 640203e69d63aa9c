package raster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache lazily builds font.Face values for the sizes a scene needs.
// Faces are cached because opentype.NewFace allocates per size.
type fontCache struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[fontKey]font.Face
}

type fontKey struct {
	size float64
	bold bool
}

func newFontCache() (*fontCache, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &fontCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[fontKey]font.Face),
	}, nil
}

// face returns a font.Face at the given point size.
func (fc *fontCache) face(size float64, bold bool) (font.Face, error) {
	key := fontKey{size: size, bold: bold}
	if f, ok := fc.faces[key]; ok {
		return f, nil
	}

	src := fc.regular
	if bold {
		src = fc.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building %gpt face: %w", size, err)
	}
	fc.faces[key] = f
	return f, nil
}
