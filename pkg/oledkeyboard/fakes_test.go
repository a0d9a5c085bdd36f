package oledkeyboard

import (
	"os"
	"testing"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

func TestMain(m *testing.M) {
	internal.SetLogDir("")
	os.Exit(m.Run())
}

type drawOp struct {
	op         string
	x, y, w, h int
	s          string
	color      DrawColor
}

// recordingDisplay logs every draw call. Text is 6 pixels per rune.
type recordingDisplay struct {
	width, height int
	color         DrawColor
	ops           []drawOp
	frames        int
	sendErr       error
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{width: 128, height: 64, color: DrawColorOn}
}

func (d *recordingDisplay) Size() (int, int) { return d.width, d.height }

func (d *recordingDisplay) ClearBuffer() { d.ops = d.ops[:0] }

func (d *recordingDisplay) SetDrawColor(c DrawColor) { d.color = c }

func (d *recordingDisplay) DrawFrame(x, y, w, h int) {
	d.ops = append(d.ops, drawOp{op: "frame", x: x, y: y, w: w, h: h, color: d.color})
}

func (d *recordingDisplay) DrawBox(x, y, w, h int) {
	d.ops = append(d.ops, drawOp{op: "box", x: x, y: y, w: w, h: h, color: d.color})
}

func (d *recordingDisplay) DrawStr(x, y int, s string) {
	d.ops = append(d.ops, drawOp{op: "str", x: x, y: y, s: s, color: d.color})
}

func (d *recordingDisplay) StrWidth(s string) int { return 6 * len([]rune(s)) }

func (d *recordingDisplay) SendBuffer() error {
	d.frames++
	return d.sendErr
}

func (d *recordingDisplay) strings() []drawOp {
	var out []drawOp
	for _, op := range d.ops {
		if op.op == "str" {
			out = append(out, op)
		}
	}
	return out
}

type fakeButtons map[constants.VirtualButton]bool

func (b fakeButtons) Pressed(button constants.VirtualButton) bool { return b[button] }

func newTestKeyboard(t *testing.T) (*Keyboard, *recordingDisplay, fakeButtons, *internal.ManualClock) {
	t.Helper()

	display := newRecordingDisplay()
	buttons := fakeButtons{}
	clock := internal.NewManualClock(1000)

	kb := NewKeyboard(display, buttons, clock)
	kb.Begin(display.Size())

	return kb, display, buttons, clock
}

func typeLabels(kb *Keyboard, labels ...string) {
	for _, label := range labels {
		kb.Interpret(label)
	}
}
