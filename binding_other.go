//go:build !darwin || (!amd64 && !arm64)

package liquidglass

// unsupportedBinding is the fallback on hosts without AppKit. The
// Manager's supported gate means only Supported is normally reached; the
// rest exists to satisfy the interface and fails consistently.
type unsupportedBinding struct{}

func defaultBinding() surfaceBinding {
	return unsupportedBinding{}
}

func (unsupportedBinding) Supported() bool {
	return false
}

func (unsupportedBinding) Create(uintptr, float64, *Color, bool) (glassRef, error) {
	return nil, ErrUnsupportedPlatform
}

func (unsupportedBinding) SetVariant(glassRef, int64) error {
	return ErrUnsupportedPlatform
}

func (unsupportedBinding) SetScrim(glassRef, int64) error {
	return ErrUnsupportedPlatform
}

func (unsupportedBinding) SetSubdued(glassRef, int64) error {
	return ErrUnsupportedPlatform
}

func (unsupportedBinding) Destroy(glassRef) error {
	return ErrUnsupportedPlatform
}
