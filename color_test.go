package liquidglass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Color
	}{
		{
			name: "six digit white",
			spec: "#ffffff",
			want: Color{R: 1, G: 1, B: 1, A: 1},
		},
		{
			name: "six digit red",
			spec: "#FF0000",
			want: Color{R: 1, G: 0, B: 0, A: 1},
		},
		{
			name: "eight digit with alpha",
			spec: "#FF0000AA",
			want: Color{R: 1, G: 0, B: 0, A: float64(0xAA) / 255},
		},
		{
			name: "no hash prefix",
			spec: "00FF00",
			want: Color{R: 0, G: 1, B: 0, A: 1},
		},
		{
			name: "surrounding whitespace",
			spec: "  #0000ff ",
			want: Color{R: 0, G: 0, B: 1, A: 1},
		},
		{
			name: "mixed case",
			spec: "#AbCdEf",
			want: Color{R: float64(0xAB) / 255, G: float64(0xCD) / 255, B: float64(0xEF) / 255, A: 1},
		},
		{
			name: "fully transparent",
			spec: "#11223300",
			want: Color{R: float64(0x11) / 255, G: float64(0x22) / 255, B: float64(0x33) / 255, A: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.spec)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, spec := range []string{
		"",
		"#",
		"not-a-color",
		"#fff",       // shorthand not supported
		"#fffffff",   // seven digits
		"#ffffffffa", // nine digits
		"#gggggg",    // not hex
		"#12 456",    // interior whitespace
	} {
		t.Run(spec, func(t *testing.T) {
			_, err := ParseHexColor(spec)
			require.Error(t, err)
			assert.True(t, IsInvalidColor(err), "got %v", err)

			var colErr *InvalidColorError
			require.ErrorAs(t, err, &colErr)
			assert.Equal(t, spec, colErr.Spec, "error should carry the original spec")
		})
	}
}
