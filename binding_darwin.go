//go:build darwin && (amd64 || arm64)

package liquidglass

import (
	"errors"

	"github.com/obinnaokechukwu/liquidglass/appkit"
)

// appkitBinding routes primitive operations to the appkit package and
// translates its errors into the liquidglass taxonomy.
type appkitBinding struct{}

func defaultBinding() surfaceBinding {
	return appkitBinding{}
}

func (appkitBinding) Supported() bool {
	return appkit.Supported()
}

func (appkitBinding) Create(surface uintptr, cornerRadius float64, tint *Color, opaque bool) (glassRef, error) {
	var ac *appkit.Color
	if tint != nil {
		ac = &appkit.Color{R: tint.R, G: tint.G, B: tint.B, A: tint.A}
	}
	v, err := appkit.CreateView(surface, cornerRadius, ac, opaque)
	if err != nil {
		return nil, translateAppKit(err)
	}
	return v, nil
}

func (appkitBinding) SetVariant(ref glassRef, id int64) error {
	return translateAppKit(appkit.SetVariant(ref.(appkit.View), id))
}

func (appkitBinding) SetScrim(ref glassRef, level int64) error {
	return translateAppKit(appkit.SetScrim(ref.(appkit.View), level))
}

func (appkitBinding) SetSubdued(ref glassRef, flag int64) error {
	return translateAppKit(appkit.SetSubdued(ref.(appkit.View), flag))
}

func (appkitBinding) Destroy(ref glassRef) error {
	return translateAppKit(appkit.DestroyView(ref.(appkit.View)))
}

// translateAppKit maps appkit's error set onto the public taxonomy.
// Anything the taxonomy has no name for surfaces as a RuntimeError.
func translateAppKit(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, appkit.ErrUnsupported):
		return ErrUnsupportedPlatform
	case errors.Is(err, appkit.ErrInvalidView):
		return ErrInvalidHandle
	case errors.Is(err, appkit.ErrCreateFailed):
		return ErrCreationFailed
	case errors.Is(err, appkit.ErrNotMainThread):
		return &RuntimeError{Reason: "must be called on the main thread"}
	default:
		return &RuntimeError{Reason: err.Error()}
	}
}
