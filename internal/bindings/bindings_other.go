//go:build !darwin || (!amd64 && !arm64)

// Package bindings loads the Objective-C runtime and AppKit and registers
// the objc_msgSend trampolines the appkit package dispatches through.
//
// This stub covers hosts without AppKit; Load always fails.
package bindings

import "errors"

// ErrNotLoaded is returned when native calls are attempted but the objc
// runtime could not be loaded.
var ErrNotLoaded = errors.New("liquidglass: objc runtime not loaded")

// NSRect mirrors Foundation's NSRect (CGRect on 64-bit platforms).
type NSRect struct {
	X, Y, W, H float64
}

// IsLoaded always returns false; there is no objc runtime here.
func IsLoaded() bool {
	return false
}

// Load always fails on platforms without the Objective-C runtime.
func Load() error {
	return ErrNotLoaded
}
