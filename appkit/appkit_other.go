//go:build !darwin || (!amd64 && !arm64)

package appkit

// Supported always returns false; there is no AppKit here.
func Supported() bool {
	return false
}

// CreateView fails with ErrUnsupported on non-macOS hosts.
func CreateView(surface uintptr, cornerRadius float64, tint *Color, opaque bool) (View, error) {
	return View{}, ErrUnsupported
}

// SetVariant fails with ErrUnsupported on non-macOS hosts.
func SetVariant(v View, id int64) error {
	return ErrUnsupported
}

// SetScrim fails with ErrUnsupported on non-macOS hosts.
func SetScrim(v View, level int64) error {
	return ErrUnsupported
}

// SetSubdued fails with ErrUnsupported on non-macOS hosts.
func SetSubdued(v View, flag int64) error {
	return ErrUnsupported
}

// DestroyView fails with ErrUnsupported on non-macOS hosts.
func DestroyView(v View) error {
	return ErrUnsupported
}
