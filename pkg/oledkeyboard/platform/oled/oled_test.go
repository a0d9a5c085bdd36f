package oled

import (
	"testing"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

func TestMergePins(t *testing.T) {
	pins := mergePins(map[constants.VirtualButton]string{
		constants.VirtualButtonSelect: "GPIO26",
		constants.VirtualButtonUp:     "",
	})

	want := map[constants.VirtualButton]string{
		constants.VirtualButtonUp:     "GPIO17",
		constants.VirtualButtonDown:   "GPIO27",
		constants.VirtualButtonSelect: "GPIO26",
	}
	for button, name := range want {
		if pins[button] != name {
			t.Errorf("pins[%s] = %q, want %q", button, pins[button], name)
		}
	}

	if DefaultPins[constants.VirtualButtonSelect] != "GPIO22" {
		t.Error("mergePins modified DefaultPins")
	}
}

func TestMergePinsMappingThenOptions(t *testing.T) {
	mapping := map[constants.VirtualButton]string{
		constants.VirtualButtonUp:     "GPIO5",
		constants.VirtualButtonSelect: "GPIO6",
	}
	opts := map[constants.VirtualButton]string{
		constants.VirtualButtonSelect: "GPIO26",
	}

	pins := mergePins(mapping, opts)

	want := map[constants.VirtualButton]string{
		constants.VirtualButtonUp:     "GPIO5",
		constants.VirtualButtonDown:   "GPIO27",
		constants.VirtualButtonSelect: "GPIO26",
	}
	for button, name := range want {
		if pins[button] != name {
			t.Errorf("pins[%s] = %q, want %q", button, pins[button], name)
		}
	}
}

func TestMergePinsFromInputMapping(t *testing.T) {
	mapping, err := internal.LoadInputMappingFromBytes([]byte(`{"gpio_pins": {"Down": "GPIO13"}}`))
	if err != nil {
		t.Fatalf("LoadInputMappingFromBytes: %v", err)
	}

	pins := mergePins(mapping.GPIOPins, nil)

	if pins[constants.VirtualButtonDown] != "GPIO13" {
		t.Errorf("Down = %q, want GPIO13 from the input mapping", pins[constants.VirtualButtonDown])
	}
	if pins[constants.VirtualButtonUp] != "GPIO17" {
		t.Errorf("Up = %q, want the default GPIO17", pins[constants.VirtualButtonUp])
	}
}

func TestDefaultPinsUntouched(t *testing.T) {
	mergePins(map[constants.VirtualButton]string{constants.VirtualButtonSelect: "GPIO6"})
	if DefaultPins[constants.VirtualButtonSelect] != "GPIO22" {
		t.Error("mergePins modified DefaultPins")
	}
}

func TestPressedWithoutPin(t *testing.T) {
	d := &Device{}
	if d.Pressed(constants.VirtualButtonUp) {
		t.Error("a button without a pin should never be pressed")
	}
}
