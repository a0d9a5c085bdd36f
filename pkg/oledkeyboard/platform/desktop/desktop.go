// Package desktop emulates the panel and its buttons in an SDL window.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal/framebuffer"
)

func init() {
	// SDL calls must stay on the thread that initialized it.
	runtime.LockOSThread()
}

type Options struct {
	Title  string
	Width  int
	Height int
	Scale  int
}

type Device struct {
	*framebuffer.Buffer

	window      *Window
	input       *processor
	controllers []*sdl.GameController
	rects       []sdl.Rect
}

func Open(opts Options) (*Device, error) {
	if opts.Width <= 0 {
		opts.Width = constants.DefaultDisplayWidth
	}
	if opts.Height <= 0 {
		opts.Height = constants.DefaultDisplayHeight
	}
	if opts.Title == "" {
		opts.Title = "OLED Keyboard"
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	window, err := initWindow(opts.Title, int32(opts.Width), int32(opts.Height), int32(opts.Scale))
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	d := &Device{
		window:      window,
		input:       newProcessor(internal.GetInputMapping()),
		controllers: openControllers(),
	}
	d.Buffer = framebuffer.New(opts.Width, opts.Height, d.flush)

	return d, nil
}

func openControllers() []*sdl.GameController {
	var controllers []*sdl.GameController

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			internal.GetInternalLogger().Error("Failed to open game controller", "index", i)
			continue
		}
		internal.GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
		controllers = append(controllers, controller)
	}

	return controllers
}

// PumpEvents drains the SDL event queue into the button state.
func (d *Device) PumpEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		d.input.processEvent(event)
	}
}

func (d *Device) flush(img *image1bit.VerticalLSB) error {
	theme := internal.GetTheme()
	renderer := d.window.Renderer

	off := theme.PixelOffColor
	if err := renderer.SetDrawColor(off.R, off.G, off.B, off.A); err != nil {
		return err
	}
	if err := renderer.Clear(); err != nil {
		return err
	}

	d.rects = d.rects[:0]
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.BitAt(x, y) {
				d.rects = append(d.rects, sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
			}
		}
	}

	if len(d.rects) > 0 {
		on := theme.PixelOnColor
		if err := renderer.SetDrawColor(on.R, on.G, on.B, on.A); err != nil {
			return err
		}
		if err := renderer.FillRects(d.rects); err != nil {
			return err
		}
	}

	renderer.Present()
	d.PumpEvents()

	return nil
}

func (d *Device) Pressed(button constants.VirtualButton) bool {
	return d.input.pressed(button)
}

// Millis is the SDL tick counter.
func (d *Device) Millis() uint32 {
	return sdl.GetTicks()
}

// Quit reports whether the window was closed.
func (d *Device) Quit() bool {
	return d.input.quit
}

func (d *Device) Close() error {
	for _, controller := range d.controllers {
		controller.Close()
	}
	d.window.closeWindow()
	sdl.Quit()
	return nil
}

var (
	_ oledkeyboard.Display = (*Device)(nil)
	_ oledkeyboard.Buttons = (*Device)(nil)
	_ oledkeyboard.Clock   = (*Device)(nil)
)
