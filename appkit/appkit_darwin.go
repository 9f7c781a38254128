//go:build darwin && (amd64 || arm64)

package appkit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/obinnaokechukwu/liquidglass/internal/bindings"
)

// NSView autoresizing: NSViewWidthSizable | NSViewHeightSizable.
const viewSizableMask = 2 | 16

// addSubview:positioned: ordering. NSWindowBelow keeps the glass behind
// the window's real content.
const windowBelow = -1

// NSBox configuration for the opaque backdrop.
const (
	boxCustom = 4 // NSBoxCustom
	noBorder  = 0 // NSNoBorder
)

var (
	supportOnce sync.Once
	supported   bool
)

// Supported reports whether this process can create glass effects: the
// objc runtime loads and the running AppKit exports NSGlassEffectView
// (macOS 26+). The answer cannot change within a process and is computed
// once. No allocation is attempted.
func Supported() bool {
	supportOnce.Do(func() {
		if err := bindings.Load(); err != nil {
			return
		}
		supported = bindings.Class("NSGlassEffectView") != 0
	})
	return supported
}

// CreateView attaches a glass-effect view to the NSView behind surface and
// returns it. The view autoresizes with its superview. When opaque is set,
// an NSBox filled with the window background color is inserted behind the
// glass. tint may be nil for no tint.
//
// Must be called on the main thread. On failure nothing stays attached to
// the surface.
func CreateView(surface uintptr, cornerRadius float64, tint *Color, opaque bool) (View, error) {
	if !Supported() {
		return View{}, ErrUnsupported
	}
	if surface == 0 {
		return View{}, ErrInvalidView
	}
	if !onMainThread() {
		return View{}, ErrNotMainThread
	}

	bounds := bindings.Bounds(surface)

	var backdrop uintptr
	if opaque {
		var err error
		backdrop, err = newBackdrop(bounds)
		if err != nil {
			return View{}, err
		}
	}

	glass := newView("NSGlassEffectView", bounds)
	if glass == 0 {
		release(backdrop)
		return View{}, ErrCreateFailed
	}
	bindings.SendInt(glass, bindings.Sel("setAutoresizingMask:"), viewSizableMask)

	if backdrop != 0 {
		bindings.SendSubview(surface, bindings.Sel("addSubview:positioned:relativeTo:"),
			backdrop, windowBelow, 0)
	}
	bindings.SendSubview(surface, bindings.Sel("addSubview:positioned:relativeTo:"),
		glass, windowBelow, backdrop)

	if cornerRadius > 0 {
		applyCornerRadius(glass, cornerRadius)
	}
	if tint != nil {
		applyTint(glass, *tint)
	}

	return View{glass: glass, backdrop: backdrop}, nil
}

// SetVariant applies a material variant by its native identifier.
// Reapplying the current value succeeds and changes nothing.
func SetVariant(v View, id int64) error {
	return setIntProperty(v, "variant", id)
}

// SetScrim applies a scrim level (0 none, 1 light, 2 dark).
func SetScrim(v View, level int64) error {
	return setIntProperty(v, "scrimState", level)
}

// SetSubdued applies the subdued state (0 off, 1 on).
func SetSubdued(v View, flag int64) error {
	return setIntProperty(v, "subduedState", flag)
}

// DestroyView detaches the glass view and its backdrop from their
// superview and releases them. Calling it twice on the same View is a
// caller bug; the second call reports ErrInvalidView only when the View is
// zero, otherwise behavior is undefined.
func DestroyView(v View) error {
	if !Supported() {
		return ErrUnsupported
	}
	if v.glass == 0 {
		return ErrInvalidView
	}
	detach(v.glass)
	detach(v.backdrop)
	return nil
}

func newView(class string, bounds bindings.NSRect) uintptr {
	cls := bindings.Class(class)
	if cls == 0 {
		return 0
	}
	obj := bindings.Send(cls, bindings.Sel("alloc"))
	if obj == 0 {
		return 0
	}
	return bindings.SendRect(obj, bindings.Sel("initWithFrame:"), bounds)
}

// newBackdrop builds the opaque NSBox slotted behind the glass so content
// under the window does not bleed through.
func newBackdrop(bounds bindings.NSRect) (uintptr, error) {
	box := newView("NSBox", bounds)
	if box == 0 {
		return 0, ErrCreateFailed
	}

	bindings.SendInt(box, bindings.Sel("setBoxType:"), boxCustom)
	bindings.SendInt(box, bindings.Sel("setBorderType:"), noBorder)

	colorClass := bindings.Class("NSColor")
	if colorClass != 0 {
		fill := bindings.Send(colorClass, bindings.Sel("windowBackgroundColor"))
		bindings.SendPtr(box, bindings.Sel("setFillColor:"), fill)
	}

	bindings.SendInt(box, bindings.Sel("setWantsLayer:"), 1)
	bindings.SendInt(box, bindings.Sel("setAutoresizingMask:"), viewSizableMask)
	return box, nil
}

func applyCornerRadius(view uintptr, radius float64) {
	bindings.SendInt(view, bindings.Sel("setWantsLayer:"), 1)
	layer := bindings.Send(view, bindings.Sel("layer"))
	if layer == 0 {
		return
	}
	bindings.SendFloat(layer, bindings.Sel("setCornerRadius:"), radius)
	bindings.SendInt(layer, bindings.Sel("setMasksToBounds:"), 1)
}

// applyTint prefers the view's own setTintColor:; AppKit builds without it
// get the layer backgroundColor fallback.
func applyTint(view uintptr, tint Color) {
	color := bindings.SendColor(bindings.Class("NSColor"),
		bindings.Sel("colorWithSRGBRed:green:blue:alpha:"),
		tint.R, tint.G, tint.B, tint.A)
	if color == 0 {
		return
	}

	if bindings.RespondsTo(view, bindings.Sel("setTintColor:")) {
		bindings.SendPtr(view, bindings.Sel("setTintColor:"), color)
		return
	}

	layer := bindings.Send(view, bindings.Sel("layer"))
	if layer == 0 {
		return
	}
	cg := bindings.Send(color, bindings.Sel("CGColor"))
	bindings.SendPtr(layer, bindings.Sel("setBackgroundColor:"), cg)
}

// setIntProperty writes an integer property through key-value coding.
// NSGlassEffectView exposes these as private set_key: setters on some
// builds and public setKey: on others; probe both before writing.
func setIntProperty(v View, key string, value int64) error {
	if !Supported() {
		return ErrUnsupported
	}
	if v.glass == 0 {
		return ErrInvalidView
	}
	if !respondsToSetter(v.glass, key) {
		return fmt.Errorf("%w: %q", ErrPropertyUnavailable, key)
	}

	num := bindings.SendInt(bindings.Class("NSNumber"),
		bindings.Sel("numberWithLongLong:"), value)
	bindings.SendPtrPtr(v.glass, bindings.Sel("setValue:forKey:"), num, nsString(key))
	return nil
}

func respondsToSetter(obj uintptr, key string) bool {
	if bindings.RespondsTo(obj, bindings.Sel("set_"+key+":")) {
		return true
	}
	public := "set" + strings.ToUpper(key[:1]) + key[1:] + ":"
	return bindings.RespondsTo(obj, bindings.Sel(public))
}

func nsString(s string) uintptr {
	return bindings.SendStr(bindings.Class("NSString"),
		bindings.Sel("stringWithUTF8String:"), s)
}

func onMainThread() bool {
	return bindings.SendBool(bindings.Class("NSThread"), bindings.Sel("isMainThread"))
}

func detach(obj uintptr) {
	if obj == 0 {
		return
	}
	bindings.Send(obj, bindings.Sel("removeFromSuperview"))
	release(obj)
}

// release balances the alloc in newView; the superview's retain is gone
// once the view is detached.
func release(obj uintptr) {
	if obj == 0 {
		return
	}
	bindings.Send(obj, bindings.Sel("release"))
}
