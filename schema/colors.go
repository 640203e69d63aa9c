package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a normalized color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// ParseRGBString converts a CSS-style "rgb(r,g,b)" string with 0-255 channels
// into a normalized RGB value.
func ParseRGBString(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "rgb(") || !strings.HasSuffix(trimmed, ")") {
		return RGB{}, fmt.Errorf("invalid rgb string %q: expected rgb(r,g,b)", s)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "rgb("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid rgb string %q: expected 3 channels, got %d", s, len(parts))
	}

	var channels [3]float64
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid rgb channel %q: %w", p, err)
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("rgb channel %d out of range [0,255]", v)
		}
		channels[i] = float64(v) / 255.0
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Scale multiplies each channel by f and clamps to [0, 1].
// Scale(0.5) yields the 50%-luminance outline color used for completed shapes.
func (c RGB) Scale(f float64) RGB {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return RGB{R: clamp(c.R * f), G: clamp(c.G * f), B: clamp(c.B * f)}
}

// RGBA255 returns the color as 0-255 channels with the given alpha.
func (c RGB) RGBA255(alpha float64) (r, g, b, a uint8) {
	to255 := func(v float64) uint8 {
		return uint8(v*255.0 + 0.5)
	}
	return to255(c.R), to255(c.G), to255(c.B), to255(alpha)
}

// String renders the color back into the rgb(r,g,b) form accepted by
// ParseRGBString.
func (c RGB) String() string {
	r, g, b, _ := c.RGBA255(1)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// Named colors used for fixed chart furniture.
var (
	ColorBlack = RGB{0, 0, 0}
	ColorWhite = RGB{1, 1, 1}
	ColorGray  = RGB{0.5, 0.5, 0.5}
	ColorRed   = RGB{1, 0, 0}
)
