// Package term emulates the panel in a terminal, two pixels per cell.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/atomic"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal/framebuffer"
)

const (
	cellBoth   = '█'
	cellTop    = '▀'
	cellBottom = '▄'
	cellEmpty  = ' '
)

func defaultKeyMap() map[string]constants.VirtualButton {
	return map[string]constants.VirtualButton{
		"Up":      constants.VirtualButtonUp,
		"Rune[k]": constants.VirtualButtonUp,
		"Down":    constants.VirtualButtonDown,
		"Rune[j]": constants.VirtualButtonDown,
		"Enter":   constants.VirtualButtonSelect,
		"Rune[ ]": constants.VirtualButtonSelect,
	}
}

type Options struct {
	Width  int
	Height int
}

// Device draws into a tcell screen. Terminals report key presses but not
// releases, so each press is latched until the keyboard reads it once.
type Device struct {
	*framebuffer.Buffer

	screen  tcell.Screen
	keyMap  map[string]constants.VirtualButton
	latched map[constants.VirtualButton]*atomic.Bool
	quit    *atomic.Bool
	done    chan struct{}
}

// Open takes over the controlling terminal.
func Open(opts Options) (*Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return OpenScreen(screen, opts)
}

// OpenScreen initializes screen and starts reading its events.
func OpenScreen(screen tcell.Screen, opts Options) (*Device, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.HideCursor()

	if opts.Width <= 0 {
		opts.Width = constants.DefaultDisplayWidth
	}
	if opts.Height <= 0 {
		opts.Height = constants.DefaultDisplayHeight
	}

	d := &Device{
		screen:  screen,
		keyMap:  defaultKeyMap(),
		latched: make(map[constants.VirtualButton]*atomic.Bool),
		quit:    atomic.NewBool(false),
		done:    make(chan struct{}),
	}
	for _, button := range constants.Buttons {
		d.latched[button] = atomic.NewBool(false)
	}
	if mapping := internal.GetInputMapping(); mapping.TerminalMap != nil {
		d.keyMap = mapping.TerminalMap
	}

	d.Buffer = framebuffer.New(opts.Width, opts.Height, d.flush)

	go d.pollEvents()

	return d, nil
}

func (d *Device) pollEvents() {
	defer close(d.done)

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		d.handleEvent(ev)
	}
}

func (d *Device) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyEscape {
			d.quit.Store(true)
			return
		}
		button, ok := d.keyMap[e.Name()]
		if !ok {
			internal.GetInternalLogger().Debug("Terminal key not mapped", "key", e.Name())
			return
		}
		d.latched[button].Store(true)
	}
}

func (d *Device) flush(img *image1bit.VerticalLSB) error {
	theme := internal.GetTheme()
	style := tcell.StyleDefault.
		Foreground(toColor(theme.PixelOnColor)).
		Background(toColor(theme.PixelOffColor))

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := bool(img.BitAt(x, y))
			bottom := y+1 < bounds.Max.Y && bool(img.BitAt(x, y+1))
			d.screen.SetContent(x, y/2, cellRune(top, bottom), nil, style)
		}
	}

	d.screen.Show()
	return nil
}

func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return cellBoth
	case top:
		return cellTop
	case bottom:
		return cellBottom
	default:
		return cellEmpty
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Pressed reports and clears a latched press.
func (d *Device) Pressed(button constants.VirtualButton) bool {
	latch, ok := d.latched[button]
	if !ok {
		return false
	}
	return latch.Swap(false)
}

// Quit reports whether escape or ctrl-c was pressed.
func (d *Device) Quit() bool {
	return d.quit.Load()
}

// Close restores the terminal.
func (d *Device) Close() error {
	d.screen.Fini()
	<-d.done
	return nil
}

var (
	_ oledkeyboard.Display = (*Device)(nil)
	_ oledkeyboard.Buttons = (*Device)(nil)
)
