package liquidglass

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/obinnaokechukwu/liquidglass/internal/registry"
)

// glassInstance is the Manager's record of one live attachment. It lives
// inside the registry and is only ever touched under the registry lock.
type glassInstance struct {
	// surface is the caller-owned NSView pointer the glass is attached to.
	// Kept for routing and diagnostics only; never dereferenced and never
	// freed by this layer.
	surface unsafe.Pointer

	// ref is the native glass object, owned by the Manager until removal.
	ref glassRef

	options Options
	variant MaterialVariant
	scrim   ScrimState
	subdued SubduedState

	alive bool
}

// Manager owns the mapping from handles to live glass views and is the
// only type application code talks to. Multiple goroutines may share one
// Manager; every operation is synchronous and completes before returning.
//
// Each independent Manager has its own handle space, so tests and embedded
// hosts can run several side by side.
type Manager struct {
	binding surfaceBinding
	views   *registry.Registry[*glassInstance]

	supportOnce sync.Once
	supported   bool
}

// New returns an empty Manager backed by the platform's native binding.
// Handles are assigned from 0 upward and never reused; NoHandle (-1) is
// reserved and never returned.
//
// Go has no destructors: a Manager dropped without Close leaks any native
// glass objects still attached.
func New() *Manager {
	return newManager(defaultBinding())
}

func newManager(b surfaceBinding) *Manager {
	return &Manager{
		binding: b,
		views:   registry.New[*glassInstance](),
	}
}

// IsSupported reports whether the host can render glass effects. The
// answer cannot change within a process and is computed once.
func (m *Manager) IsSupported() bool {
	m.supportOnce.Do(func() {
		m.supported = m.binding.Supported()
	})
	return m.supported
}

// AddGlassView attaches a glass effect to the window content view behind
// surface and returns the handle for later mutations. surface stays owned
// by the caller; the Manager owns only the glass object it creates.
//
// All validation runs before any native call: the supported gate first,
// then the surface pointer, then the options. A failed creation registers
// nothing.
func (m *Manager) AddGlassView(surface unsafe.Pointer, opts Options) (Handle, error) {
	if !m.IsSupported() {
		return NoHandle, ErrUnsupportedPlatform
	}
	if surface == nil {
		return NoHandle, ErrInvalidHandle
	}
	tint, err := opts.validate()
	if err != nil {
		return NoHandle, err
	}

	ref, err := m.binding.Create(uintptr(surface), opts.CornerRadius, tint, opts.Opaque)
	if err != nil {
		return NoHandle, err
	}

	inst := &glassInstance{
		surface: surface,
		ref:     ref,
		options: opts,
		variant: VariantRegular,
		scrim:   ScrimNone,
		subdued: SubduedOff,
		alive:   true,
	}
	return Handle(m.views.Insert(inst)), nil
}

// SetVariant switches the glass material preset for h. On native failure
// the stored variant keeps its last successfully applied value.
func (m *Manager) SetVariant(h Handle, v MaterialVariant) error {
	if !v.valid() {
		return fmt.Errorf("%w: unknown material variant %d", ErrInvalidOptions, int64(v))
	}
	found, err := m.views.Mutate(int32(h), func(inst *glassInstance) error {
		if err := m.binding.SetVariant(inst.ref, v.nativeID()); err != nil {
			return err
		}
		inst.variant = v
		return nil
	})
	if !found {
		return &ViewNotFoundError{Handle: h}
	}
	return err
}

// SetScrimState sets the darkening overlay for h. On native failure the
// stored state keeps its last successfully applied value.
func (m *Manager) SetScrimState(h Handle, s ScrimState) error {
	if !s.valid() {
		return fmt.Errorf("%w: unknown scrim state %d", ErrInvalidOptions, int64(s))
	}
	found, err := m.views.Mutate(int32(h), func(inst *glassInstance) error {
		if err := m.binding.SetScrim(inst.ref, s.nativeID()); err != nil {
			return err
		}
		inst.scrim = s
		return nil
	})
	if !found {
		return &ViewNotFoundError{Handle: h}
	}
	return err
}

// SetSubduedState sets reduced prominence for h. On native failure the
// stored state keeps its last successfully applied value.
func (m *Manager) SetSubduedState(h Handle, s SubduedState) error {
	if !s.valid() {
		return fmt.Errorf("%w: unknown subdued state %d", ErrInvalidOptions, int64(s))
	}
	found, err := m.views.Mutate(int32(h), func(inst *glassInstance) error {
		if err := m.binding.SetSubdued(inst.ref, s.nativeID()); err != nil {
			return err
		}
		inst.subdued = s
		return nil
	})
	if !found {
		return &ViewNotFoundError{Handle: h}
	}
	return err
}

// RemoveView detaches the glass behind h and invalidates the handle.
// Removal is terminal: the handle is evicted even when the native teardown
// fails, and that failure is still returned so the caller knows the native
// object may have leaked. A stale-but-reusable handle would be worse than
// a leak, so eviction always wins. There is no retry of a failed teardown;
// a second RemoveView on the same handle reports ViewNotFoundError.
func (m *Manager) RemoveView(h Handle) error {
	found, err := m.views.Evict(int32(h), func(inst *glassInstance) error {
		inst.alive = false
		return m.binding.Destroy(inst.ref)
	})
	if !found {
		return &ViewNotFoundError{Handle: h}
	}
	return err
}

// ViewState is a read-only snapshot of a live view's configuration: the
// creation options plus the last successfully applied variant and states.
type ViewState struct {
	Options Options
	Variant MaterialVariant
	Scrim   ScrimState
	Subdued SubduedState
}

// State returns the current snapshot for h.
func (m *Manager) State(h Handle) (ViewState, error) {
	var st ViewState
	found, _ := m.views.Mutate(int32(h), func(inst *glassInstance) error {
		st = ViewState{
			Options: inst.options,
			Variant: inst.variant,
			Scrim:   inst.scrim,
			Subdued: inst.subdued,
		}
		return nil
	})
	if !found {
		return ViewState{}, &ViewNotFoundError{Handle: h}
	}
	return st, nil
}

// ViewCount returns the number of live glass views.
func (m *Manager) ViewCount() int {
	return m.views.Len()
}

// Close removes every remaining view and returns the first native
// teardown error, if any. The Manager stays usable afterwards; previously
// issued handles are not reissued.
func (m *Manager) Close() error {
	return m.views.Drain(func(_ int32, inst *glassInstance) error {
		inst.alive = false
		return m.binding.Destroy(inst.ref)
	})
}
