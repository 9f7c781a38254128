//go:build darwin && (amd64 || arm64)

// Package bindings loads the Objective-C runtime and AppKit and registers
// the objc_msgSend trampolines the appkit package dispatches through.
//
// objc_msgSend has no fixed C prototype; purego's idiom for such an entry
// point is one registered trampoline per call shape actually used. All
// trampolines resolve the same symbol and differ only in signature.
package bindings

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/liquidglass/internal/platform"
)

// ErrNotLoaded is returned when native calls are attempted but the objc
// runtime could not be loaded.
var ErrNotLoaded = errors.New("liquidglass: objc runtime not loaded")

// NSRect mirrors Foundation's NSRect (CGRect on 64-bit platforms).
type NSRect struct {
	X, Y, W, H float64
}

// Library handles
var (
	libObjC   uintptr
	libAppKit uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// Runtime entry points and msgSend trampolines.
var (
	objcGetClass    func(name string) uintptr
	selRegisterName func(name string) uintptr

	send        func(obj, sel uintptr) uintptr
	sendPtr     func(obj, sel, a uintptr) uintptr
	sendPtrPtr  func(obj, sel, a, b uintptr) uintptr
	sendInt     func(obj, sel uintptr, v int64) uintptr
	sendFloat   func(obj, sel uintptr, v float64) uintptr
	sendStr     func(obj, sel uintptr, s string) uintptr
	sendRect    func(obj, sel uintptr, r NSRect) uintptr
	sendRectRet func(obj, sel uintptr) NSRect
	sendColor   func(obj, sel uintptr, r, g, b, a float64) uintptr
	sendSubview func(obj, sel, view uintptr, ordered int64, relative uintptr) uintptr
	sendBoolRet func(obj, sel uintptr) bool
	sendSelRet  func(obj, sel, target uintptr) bool
)

// IsLoaded returns true if the objc runtime and AppKit have been loaded.
func IsLoaded() bool {
	return loaded
}

// Load opens libobjc and AppKit and registers all trampolines.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error

	libObjC, err = purego.Dlopen(platform.ObjCPath(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("loading libobjc: %w", err)
	}

	// AppKit must be resident for NSGlassEffectView and friends to resolve;
	// a pure Go process has no reason to have loaded it already.
	libAppKit, err = purego.Dlopen(platform.AppKitPath(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return fmt.Errorf("loading AppKit: %w", err)
	}

	purego.RegisterLibFunc(&objcGetClass, libObjC, "objc_getClass")
	purego.RegisterLibFunc(&selRegisterName, libObjC, "sel_registerName")

	purego.RegisterLibFunc(&send, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendPtr, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendPtrPtr, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendInt, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendFloat, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendStr, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendRect, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendColor, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendSubview, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendBoolRet, libObjC, "objc_msgSend")
	purego.RegisterLibFunc(&sendSelRet, libObjC, "objc_msgSend")

	// NSRect is a 32-byte struct return. arm64 returns it in registers
	// through the plain entry point; amd64 goes through the hidden-pointer
	// variant.
	rectEntry := "objc_msgSend"
	if runtime.GOARCH == "amd64" {
		rectEntry = "objc_msgSend_stret"
	}
	purego.RegisterLibFunc(&sendRectRet, libObjC, rectEntry)

	return nil
}

// Class resolves a class by name, or 0 if the running AppKit does not
// export it. Requires Load.
func Class(name string) uintptr {
	if objcGetClass == nil {
		return 0
	}
	return objcGetClass(name)
}

// Sel registers and returns a selector. Requires Load.
func Sel(name string) uintptr {
	if selRegisterName == nil {
		return 0
	}
	return selRegisterName(name)
}

// Send dispatches a no-argument message.
func Send(obj, sel uintptr) uintptr {
	return send(obj, sel)
}

// SendPtr dispatches a message with one object/pointer argument.
func SendPtr(obj, sel, a uintptr) uintptr {
	return sendPtr(obj, sel, a)
}

// SendPtrPtr dispatches a message with two object/pointer arguments
// (setValue:forKey: and friends).
func SendPtrPtr(obj, sel, a, b uintptr) uintptr {
	return sendPtrPtr(obj, sel, a, b)
}

// SendInt dispatches a message with one integer (or BOOL) argument.
func SendInt(obj, sel uintptr, v int64) uintptr {
	return sendInt(obj, sel, v)
}

// SendFloat dispatches a message with one CGFloat argument.
func SendFloat(obj, sel uintptr, v float64) uintptr {
	return sendFloat(obj, sel, v)
}

// SendStr dispatches a message with one C string argument
// (stringWithUTF8String:). purego converts the Go string for us.
func SendStr(obj, sel uintptr, s string) uintptr {
	return sendStr(obj, sel, s)
}

// SendRect dispatches a message with one NSRect argument (initWithFrame:).
func SendRect(obj, sel uintptr, r NSRect) uintptr {
	return sendRect(obj, sel, r)
}

// SendColor dispatches colorWithSRGBRed:green:blue:alpha:.
func SendColor(obj, sel uintptr, r, g, b, a float64) uintptr {
	return sendColor(obj, sel, r, g, b, a)
}

// SendSubview dispatches addSubview:positioned:relativeTo:.
func SendSubview(obj, sel, view uintptr, ordered int64, relative uintptr) {
	sendSubview(obj, sel, view, ordered, relative)
}

// SendBool dispatches a no-argument message with a BOOL return
// (isMainThread).
func SendBool(obj, sel uintptr) bool {
	return sendBoolRet(obj, sel)
}

// RespondsTo reports whether obj answers respondsToSelector: for target.
func RespondsTo(obj, target uintptr) bool {
	return sendSelRet(obj, Sel("respondsToSelector:"), target)
}

// Bounds returns the receiver's bounds rectangle.
func Bounds(obj uintptr) NSRect {
	return sendRectRet(obj, Sel("bounds"))
}
