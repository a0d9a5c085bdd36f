package oledkeyboard

import (
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

// DrawColor selects between the two states of a monochrome pixel.
type DrawColor uint8

const (
	DrawColorOff DrawColor = 0
	DrawColorOn  DrawColor = 1
)

// Display is the frame buffer the keyboard draws into. The keyboard only
// supplies coordinates and strings; pixels are the implementation's business.
// Text coordinates are the left edge and the baseline of the string.
type Display interface {
	Size() (width, height int)
	ClearBuffer()
	SetDrawColor(c DrawColor)
	DrawFrame(x, y, w, h int)
	DrawBox(x, y, w, h int)
	DrawStr(x, y int, s string)
	StrWidth(s string) int
	SendBuffer() error
}

// Buttons reports the current level of the three keyboard buttons.
type Buttons interface {
	Pressed(button constants.VirtualButton) bool
}

// Clock is a monotonic millisecond counter. It may wrap.
type Clock interface {
	Millis() uint32
}

// SystemClock counts milliseconds since it was created, for backends that
// bring no tick counter of their own.
func SystemClock() Clock {
	return internal.NewMonotonicClock()
}
