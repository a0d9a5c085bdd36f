package oledkeyboard

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

type Options struct {
	LogFilename string
	// LogDir defaults to "logs". Set NoLogFile to log to stdout only.
	LogDir    string
	NoLogFile bool
	// NoStdout keeps logs off stdout, for backends that draw on the terminal.
	NoStdout bool

	// Emulator pixel colors, 0xRRGGBB. Zero keeps the default white on black.
	PixelOnColorHex  uint32
	PixelOffColorHex uint32
}

// Init configures logging and the emulator theme.
// Call it before creating a keyboard or opening a backend.
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if options.NoStdout {
		internal.SetLogStdout(false)
	}
	if options.NoLogFile {
		internal.SetLogDir("")
	} else if options.LogDir != "" {
		internal.SetLogDir(options.LogDir)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.GetTheme()
	if options.PixelOnColorHex != 0 {
		theme.PixelOnColor = internal.HexToColor(options.PixelOnColorHex)
	}
	if options.PixelOffColorHex != 0 {
		theme.PixelOffColor = internal.HexToColor(options.PixelOffColorHex)
	}
	internal.SetTheme(theme)
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}
