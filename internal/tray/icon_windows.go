//go:build windows

package tray

import _ "embed"

// systray on Windows loads the icon with LoadImage, which needs ICO data.
//
//go:embed assets/icon.ico
var defaultIcon []byte

// DefaultIcon returns the embedded tray icon in ICO format.
func DefaultIcon() []byte { return defaultIcon }
