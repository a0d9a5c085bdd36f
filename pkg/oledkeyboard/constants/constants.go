package constants

import (
	"os"
	"time"
)

const (
	DevModeEnvVar        = "OLEDKB_DEV"
	DebugEnvVar          = "OLEDKB_DEBUG"
	ConfigPathEnvVar     = "OLEDKB_CONFIG"
	MappingPathEnvVar    = "INPUT_MAPPING_PATH"
	DefaultLogFilename   = "oledkb.log"
	DefaultFrameDelay    = 16 * time.Millisecond
	DefaultDisplayWidth  = 128
	DefaultDisplayHeight = 64
)

// Keyboard defaults, matching a 128x64 panel with a 6x10 class font.
const (
	DefaultMaxLength           = 20
	DefaultDebounceDelay       = 200 * time.Millisecond
	DefaultCursorBlinkInterval = 500 * time.Millisecond
	DefaultInputAreaHeight     = 14
	DefaultKeyWidth            = 13
	DefaultKeyHeight           = 11
	DefaultHSpacing            = 2
	DefaultVSpacing            = 2
)

// IsDevMode reports whether the process runs on a workstation rather than the device.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}
