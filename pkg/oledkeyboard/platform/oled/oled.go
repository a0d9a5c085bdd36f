// Package oled drives an SSD1306 panel over I2C with three active low GPIO
// buttons.
package oled

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal/framebuffer"
)

// DefaultPins wires Up, Down and Select to the BCM pins most HATs leave free.
var DefaultPins = map[constants.VirtualButton]string{
	constants.VirtualButtonUp:     "GPIO17",
	constants.VirtualButtonDown:   "GPIO27",
	constants.VirtualButtonSelect: "GPIO22",
}

type Options struct {
	// I2CBus is the bus name, "" for the first available one.
	I2CBus string
	Width  int
	Height int
	// Pins overrides DefaultPins per button.
	Pins map[constants.VirtualButton]string
}

type Device struct {
	*framebuffer.Buffer

	bus  i2c.BusCloser
	dev  *ssd1306.Dev
	pins map[constants.VirtualButton]gpio.PinIn
}

// Open initializes the host drivers, the panel and the button pins.
func Open(opts Options) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	bus, err := i2creg.Open(opts.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %q: %w", opts.I2CBus, err)
	}

	devOpts := ssd1306.DefaultOpts
	if opts.Width > 0 {
		devOpts.W = opts.Width
	}
	if opts.Height > 0 {
		devOpts.H = opts.Height
	}

	dev, err := ssd1306.NewI2C(bus, &devOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to initialize SSD1306: %w", err)
	}

	pins, err := openPins(mergePins(internal.GetInputMapping().GPIOPins, opts.Pins))
	if err != nil {
		dev.Halt()
		bus.Close()
		return nil, err
	}

	d := &Device{bus: bus, dev: dev, pins: pins}
	d.Buffer = framebuffer.New(devOpts.W, devOpts.H, d.flush)

	internal.GetInternalLogger().Debug("OLED opened",
		"bus", bus.String(),
		"width", devOpts.W,
		"height", devOpts.H)

	return d, nil
}

// mergePins layers each override over DefaultPins in order. Empty names are skipped.
func mergePins(layers ...map[constants.VirtualButton]string) map[constants.VirtualButton]string {
	pins := make(map[constants.VirtualButton]string, len(DefaultPins))
	for button, name := range DefaultPins {
		pins[button] = name
	}
	for _, overrides := range layers {
		for button, name := range overrides {
			if name != "" {
				pins[button] = name
			}
		}
	}
	return pins
}

func openPins(names map[constants.VirtualButton]string) (map[constants.VirtualButton]gpio.PinIn, error) {
	pins := make(map[constants.VirtualButton]gpio.PinIn, len(names))
	for button, name := range names {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("no GPIO pin named %s for %s", name, button)
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("failed to configure %s for %s: %w", name, button, err)
		}
		pins[button] = pin
	}
	return pins, nil
}

func (d *Device) flush(img *image1bit.VerticalLSB) error {
	return d.dev.Draw(img.Bounds(), img, img.Bounds().Min)
}

// Pressed reads the pin level. Buttons pull the line to ground.
func (d *Device) Pressed(button constants.VirtualButton) bool {
	pin, ok := d.pins[button]
	if !ok {
		return false
	}
	return pin.Read() == gpio.Low
}

// Close blanks the panel and releases the bus.
func (d *Device) Close() error {
	if err := d.dev.Halt(); err != nil {
		internal.GetInternalLogger().Error("Failed to halt display", "error", err)
	}
	return d.bus.Close()
}

var (
	_ oledkeyboard.Display = (*Device)(nil)
	_ oledkeyboard.Buttons = (*Device)(nil)
)
