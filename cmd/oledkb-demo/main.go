// Command oledkb-demo runs the keyboard on a panel, an SDL window or a
// terminal and shows what was typed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/i18n"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/sound"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file (default $"+constants.ConfigPathEnvVar+")")
	backendFlag = flag.String("backend", "", "Display backend: oled, desktop or term")
	langFlag    = flag.String("lang", "", "Language for the demo screens, e.g. en or es")
	initialFlag = flag.String("text", "", "Text to preload into the first prompt")
)

func main() {
	flag.Parse()

	if err := run(); err != nil && !errors.Is(err, oledkeyboard.ErrCancelled) {
		fmt.Fprintf(os.Stderr, "oledkb-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := *configFlag
	if path == "" {
		path = oledkeyboard.ConfigPathFromEnv()
	}

	cfg, unknownKeys, err := loadDemoConfig(path)
	if err != nil {
		return err
	}
	if *backendFlag != "" {
		cfg.Display.Backend = *backendFlag
	}
	if *langFlag != "" {
		cfg.Display.Language = *langFlag
	}

	fg, err := parseHexColor(cfg.Theme.Foreground)
	if err != nil {
		return err
	}
	bg, err := parseHexColor(cfg.Theme.Background)
	if err != nil {
		return err
	}

	oledkeyboard.Init(oledkeyboard.Options{
		LogFilename:      cfg.Logging.Filename,
		LogDir:           cfg.Logging.Dir,
		NoStdout:         cfg.Display.Backend == "term",
		PixelOnColorHex:  fg,
		PixelOffColorHex: bg,
	})
	defer oledkeyboard.Close()
	oledkeyboard.SetRawLogLevel(cfg.Logging.Level)

	logger := oledkeyboard.GetLogger()
	for _, key := range unknownKeys {
		logger.Warn("Ignoring unknown config key", "path", path, "key", key)
	}

	if err := i18n.Init(cfg.Display.Language); err != nil {
		logger.Error("Failed to load translations", "error", err)
	}

	b, err := openBackend(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.Display.Backend, err)
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	display := b.watch(cancel)

	kb := oledkeyboard.NewKeyboard(display, b.buttons, b.clock)
	kb.Begin(display.Size())
	cfg.keyboardConfig().Apply(kb)

	if cfg.Display.Click {
		clicker := sound.NewClicker(cfg.Display.Volume)
		if err := clicker.Initialize(); err != nil {
			logger.Warn("Key click disabled", "error", err)
		} else {
			defer clicker.Close()
			kb.OnKeyPress(clicker.Click)
		}
	}

	logger.Info("Keyboard ready",
		"backend", cfg.Display.Backend,
		"max_length", kb.MaxLength(),
		"debounce", kb.DebounceDelay().String())

	initial := *initialFlag
	for {
		result, err := oledkeyboard.Prompt(ctx, kb, initial, 0)
		if err != nil {
			logger.Info("Prompt ended", "reason", err.Error())
			return err
		}
		initial = ""

		logger.Info("Input complete", "length", len([]rune(result.Text)))

		if err := drawLines(display, resultLines(result.Text)...); err != nil {
			logger.Error("Failed to draw result", "error", err)
		}
		if err := waitForSelect(ctx, display, b.buttons, b.clock, kb.DebounceDelay()); err != nil {
			return err
		}
	}
}
