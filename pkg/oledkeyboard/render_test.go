package oledkeyboard

import (
	"errors"
	"testing"
)

func TestDrawInputAreaAndCursor(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	kb.SetText("HI")

	kb.Draw()

	if first := display.ops[0]; first != (drawOp{op: "frame", x: 0, y: 0, w: 128, h: 14, color: DrawColorOn}) {
		t.Errorf("first op = %+v, want the input frame", first)
	}

	strs := display.strings()
	if strs[0].s != "HI" || strs[0].x != 2 || strs[0].y != 11 {
		t.Errorf("text drawn as %+v, want HI at (2, 11)", strs[0])
	}
	if strs[1].s != "_" || strs[1].x != 14 || strs[1].y != 11 {
		t.Errorf("cursor drawn as %+v, want _ at (14, 11)", strs[1])
	}
}

func TestDrawHidesCursorWhenComplete(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	kb.Interpret(KeyEnter)

	kb.Draw()

	strs := display.strings()
	if strs[0].s != "" {
		t.Errorf("text = %q, want empty", strs[0].s)
	}
	if strs[1].s == "_" && strs[1].y == 11 {
		t.Error("cursor drawn after input completed")
	}
}

func TestDrawScrollsLongText(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	kb.SetMaxLength(30)
	kb.SetText("ABCDEFGHIJKLMNOPQRSTUVWXY")

	kb.Draw()

	strs := display.strings()
	if want := "...IJKLMNOPQRSTUVWXY"; strs[0].s != want {
		t.Errorf("text = %q, want %q", strs[0].s, want)
	}
	if strs[1].y == 11 {
		t.Error("cursor drawn although the text fills the input area")
	}
}

func TestDrawSelectedKeyInverted(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)

	kb.Draw()

	var box, label, next drawOp
	for i, op := range display.ops {
		if op.op == "box" {
			box, label, next = op, display.ops[i+1], display.ops[i+2]
			break
		}
	}

	if box != (drawOp{op: "box", x: 5, y: 14, w: 13, h: 11, color: DrawColorOn}) {
		t.Errorf("selected key box = %+v", box)
	}
	if label != (drawOp{op: "str", x: 8, y: 23, s: "A", color: DrawColorOff}) {
		t.Errorf("selected key label = %+v", label)
	}
	if next != (drawOp{op: "frame", x: 20, y: 14, w: 13, h: 11, color: DrawColorOn}) {
		t.Errorf("next key = %+v", next)
	}
}

func TestDrawCountsKeys(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	kb.MoveFocus(FocusNext)

	kb.Draw()

	boxes, frames := 0, 0
	for _, op := range display.ops {
		switch op.op {
		case "box":
			boxes++
		case "frame":
			frames++
		}
	}
	if boxes != 1 || frames != KeyCount {
		t.Errorf("boxes = %d, frames = %d, want 1 and %d", boxes, frames, KeyCount)
	}
}

func TestDrawSurvivesSendError(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	display.sendErr = errors.New("i2c: nack")

	kb.Draw()

	if display.frames != 1 {
		t.Errorf("frames = %d, want 1", display.frames)
	}
}

func TestVisibleText(t *testing.T) {
	tests := []struct {
		text     string
		maxChars int
		want     string
	}{
		{"HELLO", 20, "HELLO"},
		{"HELLO", 5, "HELLO"},
		{"HELLO", 4, "...O"},
		{"HELLO", 2, "..."},
	}

	for _, tt := range tests {
		if got := visibleText([]rune(tt.text), tt.maxChars); got != tt.want {
			t.Errorf("visibleText(%q, %d) = %q, want %q", tt.text, tt.maxChars, got, tt.want)
		}
	}
}

func TestTextBaselineFollowsInputAreaHeight(t *testing.T) {
	kb, display, _, _ := newTestKeyboard(t)
	kb.SetInputAreaHeight(20)
	kb.SetText("HI")

	kb.Draw()

	if first := display.ops[0]; first.h != 20 {
		t.Errorf("input frame height = %d, want 20", first.h)
	}
	strs := display.strings()
	if strs[0].y != 17 || strs[1].y != 17 {
		t.Errorf("text and cursor baselines = %d, %d, want 17", strs[0].y, strs[1].y)
	}
}
