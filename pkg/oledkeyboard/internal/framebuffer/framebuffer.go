// Package framebuffer is the monochrome frame buffer shared by the display
// backends. Drawing and text happen here; a backend only supplies the flush.
package framebuffer

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
)

// Flusher pushes a finished frame to the panel or window.
type Flusher func(img *image1bit.VerticalLSB) error

// Buffer implements oledkeyboard.Display over a page ordered 1 bit image,
// the layout SSD1306 class controllers expect.
type Buffer struct {
	img   *image1bit.VerticalLSB
	color oledkeyboard.DrawColor
	font  tinyfont.Fonter
	flush Flusher
}

var (
	pixelOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pixelOff = color.RGBA{A: 0xFF}
)

func New(width, height int, flush Flusher) *Buffer {
	return &Buffer{
		img:   image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
		color: oledkeyboard.DrawColorOn,
		font:  &proggy.TinySZ8pt7b,
		flush: flush,
	}
}

// SetFont replaces the default 6 pixel wide font.
func (b *Buffer) SetFont(font tinyfont.Fonter) {
	b.font = font
}

func (b *Buffer) Size() (int, int) {
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

func (b *Buffer) ClearBuffer() {
	clear(b.img.Pix)
}

func (b *Buffer) SetDrawColor(c oledkeyboard.DrawColor) {
	b.color = c
}

func (b *Buffer) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := x; i < x+w; i++ {
		b.set(i, y)
		b.set(i, y+h-1)
	}
	for j := y; j < y+h; j++ {
		b.set(x, j)
		b.set(x+w-1, j)
	}
}

func (b *Buffer) DrawBox(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			b.set(i, j)
		}
	}
}

// DrawStr draws s with its left edge at x and its baseline at y.
func (b *Buffer) DrawStr(x, y int, s string) {
	if s == "" {
		return
	}
	c := pixelOff
	if b.color == oledkeyboard.DrawColorOn {
		c = pixelOn
	}
	tinyfont.WriteLine(pixelTarget{b}, b.font, int16(x), int16(y), s, c)
}

func (b *Buffer) StrWidth(s string) int {
	_, outbox := tinyfont.LineWidth(b.font, s)
	return int(outbox)
}

func (b *Buffer) SendBuffer() error {
	if b.flush == nil {
		return nil
	}
	return b.flush(b.img)
}

func (b *Buffer) Image() *image1bit.VerticalLSB {
	return b.img
}

// PixelOn reports whether the pixel at x, y is lit. Outside the buffer it is not.
func (b *Buffer) PixelOn(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return false
	}
	return bool(b.img.BitAt(x, y))
}

func (b *Buffer) set(x, y int) {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return
	}
	b.img.SetBit(x, y, image1bit.Bit(b.color == oledkeyboard.DrawColorOn))
}

// pixelTarget adapts the buffer to the tinyfont displayer.
type pixelTarget struct {
	b *Buffer
}

func (p pixelTarget) Size() (int16, int16) {
	w, h := p.b.Size()
	return int16(w), int16(h)
}

func (p pixelTarget) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(p.b.img.Rect) {
		return
	}
	lit := c.R|c.G|c.B != 0
	p.b.img.SetBit(int(x), int(y), image1bit.Bit(lit))
}

func (p pixelTarget) Display() error {
	return nil
}
