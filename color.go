package liquidglass

import (
	"strconv"
	"strings"
)

// Color is a parsed tint in normalized sRGB components, 0..1 each.
type Color struct {
	R, G, B, A float64
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into normalized
// components. The leading '#' is optional and surrounding whitespace is
// ignored. A six-digit spec gets full alpha.
func ParseHexColor(spec string) (Color, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(spec), "#")

	if len(cleaned) != 6 && len(cleaned) != 8 {
		return Color{}, &InvalidColorError{Spec: spec}
	}

	v, err := strconv.ParseUint(cleaned, 16, 64)
	if err != nil {
		return Color{}, &InvalidColorError{Spec: spec}
	}

	if len(cleaned) == 6 {
		return Color{
			R: float64(v>>16&0xFF) / 255,
			G: float64(v>>8&0xFF) / 255,
			B: float64(v&0xFF) / 255,
			A: 1,
		}, nil
	}
	return Color{
		R: float64(v>>24&0xFF) / 255,
		G: float64(v>>16&0xFF) / 255,
		B: float64(v>>8&0xFF) / 255,
		A: float64(v&0xFF) / 255,
	}, nil
}
