// Package appkit talks to AppKit through the Objective-C runtime using
// purego, exposing the primitive operation set liquidglass needs: create a
// glass-effect view on a window's content view, poke its material
// properties, and tear it down again.
//
// The package holds no state between calls. Everything DestroyView needs
// travels inside the View value returned by CreateView; validity and
// lifetime tracking belong to the caller.
//
// On platforms other than darwin/amd64 and darwin/arm64 every operation
// fails with ErrUnsupported.
package appkit

import "errors"

// Color is a tint in normalized sRGB components, 0..1 each.
type Color struct {
	R, G, B, A float64
}

// View is one glass attachment: the effect view itself plus the optional
// opaque backdrop box inserted behind it. DestroyView detaches both.
type View struct {
	glass    uintptr
	backdrop uintptr
}

// IsZero reports whether v carries no native object.
func (v View) IsZero() bool {
	return v.glass == 0
}

// Errors reported by the native layer.
var (
	// ErrUnsupported indicates the host cannot render glass effects: no objc
	// runtime, or an AppKit build without NSGlassEffectView.
	ErrUnsupported = errors.New("appkit: glass effects unavailable on this host")

	// ErrNotMainThread indicates a view operation was attempted off the main
	// thread. AppKit views may only be touched from the main thread.
	ErrNotMainThread = errors.New("appkit: must be called on the main thread")

	// ErrInvalidView indicates a zero surface pointer or a zero View.
	ErrInvalidView = errors.New("appkit: invalid view")

	// ErrCreateFailed indicates AppKit rejected the view allocation.
	ErrCreateFailed = errors.New("appkit: glass view creation failed")

	// ErrPropertyUnavailable indicates the running AppKit build exposes no
	// setter for the requested property key.
	ErrPropertyUnavailable = errors.New("appkit: property not settable on this AppKit build")
)
