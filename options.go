package liquidglass

import (
	"fmt"
	"math"
)

// Options configures a glass view at creation time.
type Options struct {
	// CornerRadius in points. Must be finite and non-negative.
	CornerRadius float64

	// TintColor as "#RRGGBB" or "#RRGGBBAA". Empty means no tint.
	TintColor string

	// Opaque inserts an opaque, window-background-colored box behind the
	// glass so content under the window does not show through.
	Opaque bool
}

// validate checks ranges and parses the tint, returning the parsed color
// so creation does not parse twice. tint is nil when no tint is set.
// Runs entirely before any native call.
func (o Options) validate() (tint *Color, err error) {
	if math.IsNaN(o.CornerRadius) || math.IsInf(o.CornerRadius, 0) || o.CornerRadius < 0 {
		return nil, fmt.Errorf("%w: corner radius %v", ErrInvalidOptions, o.CornerRadius)
	}
	if o.TintColor == "" {
		return nil, nil
	}
	c, err := ParseHexColor(o.TintColor)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
