package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

var (
	logFile     *os.File
	logFilename string
	logDir      = "logs"
	logStdout   = true

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogFilename must be called before the first logger is requested.
func SetLogFilename(filename string) {
	logFilename = filename
}

// SetLogDir must be called before the first logger is requested.
// An empty dir disables the log file and logs to stdout only.
func SetLogDir(dir string) {
	logDir = dir
}

// SetLogStdout must be called before the first logger is requested.
// Turning stdout off with no log dir discards all logs.
func SetLogStdout(enabled bool) {
	logStdout = enabled
}

func setup() {
	setupOnce.Do(func() {
		var console io.Writer = io.Discard
		if logStdout {
			console = os.Stdout
		}
		multiWriter = console

		if logDir == "" {
			return
		}

		if err := os.MkdirAll(logDir, 0755); err != nil {
			slog.Error("Failed to create logs directory, logging to stdout only", "dir", logDir, "error", err)
			return
		}

		filename := logFilename
		if filename == "" {
			filename = constants.DefaultLogFilename
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join(logDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			slog.Error("Failed to open log file, logging to stdout only", "file", filename, "error", err)
			return
		}

		multiWriter = io.MultiWriter(console, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger used by the keyboard and its backends.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler).With("component", "oledkeyboard")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	GetLogger()
	levelVar.Set(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
