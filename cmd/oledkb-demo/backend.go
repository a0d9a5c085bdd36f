package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/platform/desktop"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/platform/linuxinput"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/platform/oled"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/platform/term"
)

// backend bundles the collaborators of one environment.
type backend struct {
	display oledkeyboard.Display
	buttons oledkeyboard.Buttons
	clock   oledkeyboard.Clock
	quit    func() bool
	closers []io.Closer
}

func openBackend(cfg demoConfig) (*backend, error) {
	var b *backend

	switch cfg.Display.Backend {
	case "oled":
		dev, err := oled.Open(oled.Options{
			I2CBus: cfg.Display.I2CBus,
			Width:  cfg.Display.Width,
			Height: cfg.Display.Height,
			Pins:   cfg.Buttons.pins(),
		})
		if err != nil {
			return nil, err
		}
		b = &backend{display: dev, buttons: dev, clock: oledkeyboard.SystemClock(), closers: []io.Closer{dev}}
	case "desktop":
		dev, err := desktop.Open(desktop.Options{
			Title:  "oledkb",
			Width:  cfg.Display.Width,
			Height: cfg.Display.Height,
			Scale:  cfg.Display.Scale,
		})
		if err != nil {
			return nil, err
		}
		b = &backend{display: dev, buttons: dev, clock: dev, quit: dev.Quit, closers: []io.Closer{dev}}
	case "term":
		dev, err := term.Open(term.Options{Width: cfg.Display.Width, Height: cfg.Display.Height})
		if err != nil {
			return nil, err
		}
		b = &backend{display: dev, buttons: dev, clock: oledkeyboard.SystemClock(), quit: dev.Quit, closers: []io.Closer{dev}}
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Display.Backend)
	}

	if cfg.Buttons.EvdevDevice != "" {
		input, err := linuxinput.Open(cfg.Buttons.EvdevDevice, cfg.Buttons.Grab)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.buttons = input
		b.closers = append(b.closers, input)
	}

	return b, nil
}

// watch returns a display that cancels ctx once the backend asks to quit.
// The check runs on every frame, on the polling goroutine.
func (b *backend) watch(cancel context.CancelFunc) oledkeyboard.Display {
	if b.quit == nil {
		return b.display
	}
	return &quitWatcher{Display: b.display, quit: b.quit, cancel: cancel}
}

func (b *backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type quitWatcher struct {
	oledkeyboard.Display
	quit   func() bool
	cancel context.CancelFunc
}

func (w *quitWatcher) SendBuffer() error {
	err := w.Display.SendBuffer()
	if w.quit() {
		w.cancel()
	}
	return err
}
