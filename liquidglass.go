// Package liquidglass attaches native macOS glass effects
// (NSGlassEffectView) to existing windows without CGO, using purego to
// talk to the Objective-C runtime.
//
// Windows are identified by opaque NSView pointers supplied by the host
// application (an Electron native addon, a game overlay, any windowing
// layer that can hand out its content view). liquidglass never owns that
// pointer; it owns only the glass objects it creates, and it hides their
// identity behind small stable integer handles so application code never
// routes a call to a dead native object.
//
// Typical use:
//
//	mgr := liquidglass.New()
//	if !mgr.IsSupported() {
//		return // host cannot render glass
//	}
//	h, err := mgr.AddGlassView(contentView, liquidglass.Options{
//		CornerRadius: 16,
//		TintColor:    "#FF0000AA",
//	})
//	...
//	mgr.SetVariant(h, liquidglass.VariantDock)
//	mgr.RemoveView(h)
//
// All Manager operations are synchronous, thread-safe, and return typed
// errors; see errors.go for the taxonomy. View creation must happen on the
// process's main thread, as with everything AppKit.
package liquidglass

// Handle identifies one manager-owned glass attachment. Handles are small
// stable integers, decoupled from the native pointer's identity: a handle
// stays valid exactly from AddGlassView to RemoveView and is never reused
// afterwards.
type Handle int32

// NoHandle is the reserved "no handle" value. It is returned alongside
// errors and is never a live handle.
const NoHandle Handle = -1

// IsSupported reports whether the host can render glass effects, without
// constructing a Manager. Equivalent to New().IsSupported().
func IsSupported() bool {
	return defaultBinding().Supported()
}
