package liquidglass

import "fmt"

// MaterialVariant selects one of the named glass material presets AppKit
// ships. The values track NSGlassEffectView's private variant identifiers
// one-to-one; adding a variant means extending this list and the name
// table, nothing else.
type MaterialVariant int64

// The closed set of material variants.
const (
	VariantRegular MaterialVariant = iota
	VariantClear
	VariantDock
	VariantAppIcons
	VariantWidgets
	VariantText
	VariantAVPlayer
	VariantFaceTime
	VariantControlCenter
	VariantNotificationCenter
	VariantMonogram
	VariantBubbles
	VariantIdentity
	VariantFocusBorder
	VariantFocusPlatter
	VariantKeyboard
	VariantSidebar
	VariantAbuttedSidebar
	VariantInspector
	VariantControl
	VariantLoupe
	VariantSlider
	VariantCamera
	VariantCartouchePopover
)

var variantNames = [...]string{
	"Regular",
	"Clear",
	"Dock",
	"AppIcons",
	"Widgets",
	"Text",
	"AVPlayer",
	"FaceTime",
	"ControlCenter",
	"NotificationCenter",
	"Monogram",
	"Bubbles",
	"Identity",
	"FocusBorder",
	"FocusPlatter",
	"Keyboard",
	"Sidebar",
	"AbuttedSidebar",
	"Inspector",
	"Control",
	"Loupe",
	"Slider",
	"Camera",
	"CartouchePopover",
}

// String returns the variant's name.
func (v MaterialVariant) String() string {
	if !v.valid() {
		return fmt.Sprintf("MaterialVariant(%d)", int64(v))
	}
	return variantNames[v]
}

func (v MaterialVariant) valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

// nativeID maps the variant to the identifier the native layer expects.
// The mapping is total over the valid range.
func (v MaterialVariant) nativeID() int64 {
	return int64(v)
}

// ScrimState is the darkening overlay applied over the glass.
type ScrimState int64

// Scrim levels.
const (
	ScrimNone ScrimState = iota
	ScrimLight
	ScrimDark
)

// String returns the scrim level's name.
func (s ScrimState) String() string {
	switch s {
	case ScrimNone:
		return "None"
	case ScrimLight:
		return "Light"
	case ScrimDark:
		return "Dark"
	}
	return fmt.Sprintf("ScrimState(%d)", int64(s))
}

func (s ScrimState) valid() bool {
	return s >= ScrimNone && s <= ScrimDark
}

func (s ScrimState) nativeID() int64 {
	return int64(s)
}

// SubduedState reduces the glass's prominence without recreating it.
type SubduedState int64

// Subdued states.
const (
	SubduedOff SubduedState = iota
	SubduedOn
)

// String returns the subdued state's name.
func (s SubduedState) String() string {
	switch s {
	case SubduedOff:
		return "Off"
	case SubduedOn:
		return "On"
	}
	return fmt.Sprintf("SubduedState(%d)", int64(s))
}

func (s SubduedState) valid() bool {
	return s == SubduedOff || s == SubduedOn
}

func (s SubduedState) nativeID() int64 {
	return int64(s)
}
