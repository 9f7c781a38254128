package liquidglass

// glassRef is an opaque reference to one native glass attachment, produced
// by a binding's Create and consumed by its other operations. Each binding
// chooses its own concrete type.
type glassRef any

// surfaceBinding is the primitive capability set the Manager sequences:
// one native call per operation, fully applied or failed, with no state
// held between calls. The production implementation wraps the appkit
// package; tests substitute fakes.
type surfaceBinding interface {
	// Supported reports whether the host can render glass effects. Pure;
	// must not allocate native state.
	Supported() bool

	// Create attaches a glass effect to the window content view behind
	// surface. tint is pre-validated; nil means no tint.
	Create(surface uintptr, cornerRadius float64, tint *Color, opaque bool) (glassRef, error)

	// SetVariant, SetScrim and SetSubdued are idempotent single mutations;
	// reapplying the current value succeeds.
	SetVariant(ref glassRef, id int64) error
	SetScrim(ref glassRef, level int64) error
	SetSubdued(ref glassRef, flag int64) error

	// Destroy detaches and releases the native glass object. Not required
	// to be idempotent; the Manager's registry guards double-destroy.
	Destroy(ref glassRef) error
}
