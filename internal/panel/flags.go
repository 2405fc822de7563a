package panel

import "strings"

// Flag names one window-manager capability the panel is configured with.
type Flag uint8

const (
	// FloatingLevel keeps the panel above normal windows.
	FloatingLevel Flag = iota
	// NonActivating lets the panel appear without taking focus from the
	// frontmost application.
	NonActivating
	// FullScreenAuxiliary lets the panel share a space with a full-screen window.
	FullScreenAuxiliary
	// JoinAllSpaces shows the panel on every virtual desktop.
	JoinAllSpaces
)

// PanelFlags is the full set applied by Controller.Configure.
var PanelFlags = []Flag{FloatingLevel, NonActivating, FullScreenAuxiliary, JoinAllSpaces}

func (f Flag) String() string {
	switch f {
	case FloatingLevel:
		return "floating-level"
	case NonActivating:
		return "non-activating"
	case FullScreenAuxiliary:
		return "full-screen-auxiliary"
	case JoinAllSpaces:
		return "join-all-spaces"
	default:
		return "unknown"
	}
}

// AppKit encodings. These never leave this package.
const (
	nsNormalWindowLevel   = 0
	nsFloatingWindowLevel = 4

	nsStyleMaskNonactivatingPanel = 1 << 7

	nsCollectionCanJoinAllSpaces    = 1 << 0
	nsCollectionFullScreenAuxiliary = 1 << 8
)

// attributes is the native form of a flag set.
type attributes struct {
	level      int
	styleMask  uint
	collection uint
}

func encode(flags []Flag) attributes {
	a := attributes{level: nsNormalWindowLevel}
	for _, f := range flags {
		switch f {
		case FloatingLevel:
			a.level = nsFloatingWindowLevel
		case NonActivating:
			a.styleMask |= nsStyleMaskNonactivatingPanel
		case FullScreenAuxiliary:
			a.collection |= nsCollectionFullScreenAuxiliary
		case JoinAllSpaces:
			a.collection |= nsCollectionCanJoinAllSpaces
		}
	}
	return a
}

func flagNames(flags []Flag) string {
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
