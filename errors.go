package liquidglass

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match these through errors.Is so
// callers can branch without caring about the payload.
var (
	// ErrUnsupportedPlatform indicates the host cannot render glass effects
	// at all. Reported before any other validation.
	ErrUnsupportedPlatform = errors.New("liquidglass: glass effects are not supported on this platform")

	// ErrInvalidHandle indicates a nil native surface pointer.
	ErrInvalidHandle = errors.New("liquidglass: invalid native surface pointer")

	// ErrCreationFailed indicates AppKit attempted and rejected the glass
	// view creation.
	ErrCreationFailed = errors.New("liquidglass: failed to create glass view")

	// ErrInvalidOptions indicates an out-of-range corner radius or an
	// unknown variant/scrim/subdued value.
	ErrInvalidOptions = errors.New("liquidglass: invalid glass options")

	// ErrViewNotFound is matched by ViewNotFoundError.
	ErrViewNotFound = errors.New("liquidglass: view not found")

	// ErrInvalidColor is matched by InvalidColorError.
	ErrInvalidColor = errors.New("liquidglass: invalid color format")
)

// ViewNotFoundError reports an operation against a handle with no live
// view: never issued, or already removed.
type ViewNotFoundError struct {
	Handle Handle
}

// Error implements the error interface.
func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("liquidglass: view %d not found", e.Handle)
}

// Is makes errors.Is(err, ErrViewNotFound) true.
func (e *ViewNotFoundError) Is(target error) bool {
	return target == ErrViewNotFound
}

// InvalidColorError reports a tint specification that does not parse as
// #RRGGBB or #RRGGBBAA.
type InvalidColorError struct {
	Spec string
}

// Error implements the error interface.
func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("liquidglass: invalid color format: %q", e.Spec)
}

// Is makes errors.Is(err, ErrInvalidColor) true.
func (e *InvalidColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// RuntimeError reports a failure inside the Objective-C runtime, such as a
// view call issued off the main thread or a property the running AppKit
// build does not expose.
type RuntimeError struct {
	Reason string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return "liquidglass: objc runtime error: " + e.Reason
}

// IsViewNotFound returns true if err reports a missing or removed handle.
func IsViewNotFound(err error) bool {
	return errors.Is(err, ErrViewNotFound)
}

// IsInvalidColor returns true if err reports a malformed tint.
func IsInvalidColor(err error) bool {
	return errors.Is(err, ErrInvalidColor)
}

// IsRuntime returns true if err originated inside the objc runtime.
func IsRuntime(err error) bool {
	var re *RuntimeError
	return errors.As(err, &re)
}

// NotFoundHandle returns the handle a ViewNotFoundError carries, or
// (NoHandle, false) for any other error.
func NotFoundHandle(err error) (Handle, bool) {
	var e *ViewNotFoundError
	if errors.As(err, &e) {
		return e.Handle, true
	}
	return NoHandle, false
}
