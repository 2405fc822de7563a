//go:build !windows

package tray

import _ "embed"

//go:embed assets/icon.png
var defaultIcon []byte

// DefaultIcon returns the embedded monochrome template icon in PNG format.
func DefaultIcon() []byte { return defaultIcon }
