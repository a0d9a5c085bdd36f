package framebuffer

import (
	"errors"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
)

func TestDrawBoxAndFrame(t *testing.T) {
	b := New(128, 64, nil)

	b.DrawBox(0, 0, 4, 4)
	if !b.PixelOn(0, 0) || !b.PixelOn(3, 3) {
		t.Error("box corners should be lit")
	}
	if b.PixelOn(4, 4) {
		t.Error("pixel outside the box is lit")
	}

	b.DrawFrame(10, 10, 5, 5)
	if !b.PixelOn(10, 10) || !b.PixelOn(14, 14) || !b.PixelOn(14, 10) {
		t.Error("frame corners should be lit")
	}
	if b.PixelOn(12, 12) {
		t.Error("frame interior is lit")
	}
}

func TestDrawColorOffClears(t *testing.T) {
	b := New(128, 64, nil)

	b.DrawBox(0, 0, 10, 10)
	b.SetDrawColor(oledkeyboard.DrawColorOff)
	b.DrawBox(2, 2, 2, 2)

	if b.PixelOn(2, 2) || b.PixelOn(3, 3) {
		t.Error("pixels drawn with color 0 should be dark")
	}
	if !b.PixelOn(5, 5) {
		t.Error("untouched pixel went dark")
	}
}

func TestClearBuffer(t *testing.T) {
	b := New(128, 64, nil)
	b.DrawBox(0, 0, 128, 64)

	b.ClearBuffer()

	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if b.PixelOn(x, y) {
				t.Fatalf("pixel (%d, %d) lit after clear", x, y)
			}
		}
	}
}

func TestDrawClipsToBounds(t *testing.T) {
	b := New(16, 8, nil)

	b.DrawBox(-4, -4, 40, 40)
	b.DrawFrame(10, 4, 20, 20)

	if !b.PixelOn(15, 7) {
		t.Error("clipped box should still fill the visible area")
	}
	if b.PixelOn(16, 0) || b.PixelOn(-1, 0) {
		t.Error("pixels outside the buffer report lit")
	}
}

func TestDrawStr(t *testing.T) {
	b := New(128, 64, nil)

	width := b.StrWidth("A")
	if width <= 0 {
		t.Fatalf("StrWidth(A) = %d", width)
	}
	if b.StrWidth("AAAA") <= width {
		t.Error("longer strings should be wider")
	}
	if b.StrWidth("") != 0 {
		t.Errorf("StrWidth(\"\") = %d, want 0", b.StrWidth(""))
	}

	b.DrawStr(2, 11, "A")

	lit := false
	for y := 0; y <= 11; y++ {
		for x := 2; x < 2+width; x++ {
			if b.PixelOn(x, y) {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("no pixels lit above the baseline after DrawStr")
	}
}

func TestSendBufferCallsFlusher(t *testing.T) {
	var got *image1bit.VerticalLSB
	b := New(128, 64, func(img *image1bit.VerticalLSB) error {
		got = img
		return nil
	})

	if err := b.SendBuffer(); err != nil {
		t.Fatalf("SendBuffer: %v", err)
	}
	if got != b.Image() {
		t.Error("flusher did not receive the frame")
	}

	want := errors.New("bus closed")
	b = New(128, 64, func(*image1bit.VerticalLSB) error { return want })
	if err := b.SendBuffer(); !errors.Is(err, want) {
		t.Errorf("SendBuffer() = %v, want %v", err, want)
	}
}

func TestSize(t *testing.T) {
	w, h := New(128, 32, nil).Size()
	if w != 128 || h != 32 {
		t.Errorf("Size() = (%d, %d), want (128, 32)", w, h)
	}
}
