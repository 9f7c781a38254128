// Package platform provides platform detection and native library
// locations for liquidglass. It decides whether the current process can
// host a glass effect at all, before any dlopen is attempted.
package platform

import (
	"os"
	"runtime"
	"unsafe"
)

// CanBind indicates whether this build can reach the Objective-C runtime
// through purego. Glass effects exist only in AppKit, and purego's Darwin
// support covers amd64 and arm64 only.
const CanBind = runtime.GOOS == "darwin" &&
	(runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64")

// Is64Bit indicates whether the platform is 64-bit.
// liquidglass only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// Default dyld locations. On modern macOS both live in the dyld shared
// cache; dlopen still resolves these paths even though no file exists on
// disk.
const (
	DefaultObjCPath   = "/usr/lib/libobjc.A.dylib"
	DefaultAppKitPath = "/System/Library/Frameworks/AppKit.framework/AppKit"
)

// Environment overrides, primarily for tests and unusual installs.
const (
	ObjCPathEnv   = "LIQUIDGLASS_OBJC_PATH"
	AppKitPathEnv = "LIQUIDGLASS_APPKIT_PATH"
)

// ObjCPath returns the libobjc binary to dlopen, honoring the
// LIQUIDGLASS_OBJC_PATH override.
func ObjCPath() string {
	if p := os.Getenv(ObjCPathEnv); p != "" {
		return p
	}
	return DefaultObjCPath
}

// AppKitPath returns the AppKit framework binary to dlopen, honoring the
// LIQUIDGLASS_APPKIT_PATH override. AppKit must be resident in the process
// for the glass effect classes to resolve.
func AppKitPath() string {
	if p := os.Getenv(AppKitPathEnv); p != "" {
		return p
	}
	return DefaultAppKitPath
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
