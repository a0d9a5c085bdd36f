// Package linuxinput reads the keyboard buttons from a Linux input device,
// such as gpio-keys exposed through /dev/input.
package linuxinput

import (
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

func DefaultCodes() map[evdev.EvCode]constants.VirtualButton {
	return map[evdev.EvCode]constants.VirtualButton{
		evdev.KEY_UP:    constants.VirtualButtonUp,
		evdev.KEY_DOWN:  constants.VirtualButtonDown,
		evdev.KEY_ENTER: constants.VirtualButtonSelect,
		evdev.KEY_OK:    constants.VirtualButtonSelect,
	}
}

// Buttons tracks the held level of each button from EV_KEY events.
type Buttons struct {
	device *evdev.InputDevice
	codes  map[evdev.EvCode]constants.VirtualButton
	held   map[constants.VirtualButton]*atomic.Bool
}

// Open opens the device at path and starts reading it. Grab keeps the events
// from reaching other readers such as the console.
func Open(path string, grab bool) (*Buttons, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", path, err)
	}

	if grab {
		if err := device.Grab(); err != nil {
			device.Close()
			return nil, fmt.Errorf("failed to grab input device %s: %w", path, err)
		}
	}

	name, _ := device.Name()
	internal.GetInternalLogger().Debug("Opened input device", "path", path, "name", name)

	b := newButtons(internal.GetInputMapping())
	b.device = device

	go b.readLoop()

	return b, nil
}

func newButtons(mapping *internal.InputMapping) *Buttons {
	b := &Buttons{
		codes: DefaultCodes(),
		held:  make(map[constants.VirtualButton]*atomic.Bool),
	}

	if mapping != nil && mapping.EvdevMap != nil {
		b.codes = make(map[evdev.EvCode]constants.VirtualButton, len(mapping.EvdevMap))
		for code, button := range mapping.EvdevMap {
			b.codes[evdev.EvCode(code)] = button
		}
	}

	for _, button := range constants.Buttons {
		b.held[button] = atomic.NewBool(false)
	}

	return b
}

func (b *Buttons) readLoop() {
	for {
		event, err := b.device.ReadOne()
		if err != nil {
			internal.GetInternalLogger().Debug("Input device read stopped", "error", err)
			return
		}
		b.handleEvent(event)
	}
}

func (b *Buttons) handleEvent(event *evdev.InputEvent) {
	if event.Type != evdev.EV_KEY {
		return
	}

	button, ok := b.codes[event.Code]
	if !ok {
		internal.GetInternalLogger().Debug("Input code not mapped", "code", event.CodeName())
		return
	}

	switch event.Value {
	case keyPressed, keyRepeated:
		b.held[button].Store(true)
	case keyReleased:
		b.held[button].Store(false)
	}
}

func (b *Buttons) Pressed(button constants.VirtualButton) bool {
	held, ok := b.held[button]
	if !ok {
		return false
	}
	return held.Load()
}

// Close releases the device, which also ends the reader.
func (b *Buttons) Close() error {
	if b.device == nil {
		return nil
	}
	b.device.Ungrab()
	return b.device.Close()
}

var _ oledkeyboard.Buttons = (*Buttons)(nil)
