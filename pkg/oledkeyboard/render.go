package oledkeyboard

const (
	textPadding      = 2
	fallbackCharW    = 6
	cursorMargin     = 8
	ellipsis         = "..."
	labelBaselineGap = 2
)

// Draw renders the input area and the key grid and sends the frame.
func (kb *Keyboard) Draw() {
	kb.display.ClearBuffer()
	kb.drawInputArea()
	kb.drawKeyboard()

	if err := kb.display.SendBuffer(); err != nil {
		kb.log().Error("Failed to send frame", "error", err)
	}
}

func (kb *Keyboard) drawInputArea() {
	d := kb.display
	g := kb.geometry

	d.SetDrawColor(DrawColorOn)
	d.DrawFrame(0, 0, g.ScreenWidth, g.InputAreaHeight)

	displayText := visibleText(kb.textBuffer, kb.maxVisibleChars())
	baseline := g.InputAreaHeight - 3
	d.DrawStr(textPadding, baseline, displayText)

	if kb.cursorVisible && !kb.inputComplete {
		textWidth := d.StrWidth(displayText)
		if textWidth < g.ScreenWidth-cursorMargin {
			d.DrawStr(textPadding+textWidth, baseline, "_")
		}
	}
}

func (kb *Keyboard) maxVisibleChars() int {
	charWidth := kb.display.StrWidth("0")
	if charWidth <= 0 {
		charWidth = fallbackCharW
	}
	return (kb.geometry.ScreenWidth - 2*textPadding) / charWidth
}

// visibleText keeps the tail of the text when it does not fit, prefixed with
// an ellipsis.
func visibleText(text []rune, maxChars int) string {
	if len(text) <= maxChars {
		return string(text)
	}
	keep := maxChars - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return ellipsis + string(text[len(text)-keep:])
}

func (kb *Keyboard) drawKeyboard() {
	d := kb.display
	layout := LayoutFor(kb.currentMode)

	for i := 0; i < KeyCount; i++ {
		rect := kb.geometry.KeyRect(i)
		label := layout.Label(i)

		labelWidth := d.StrWidth(label)
		labelX := rect.X + (rect.W-labelWidth)/2
		labelY := rect.Y + rect.H - labelBaselineGap

		if i == kb.selectedKeyIndex {
			d.SetDrawColor(DrawColorOn)
			d.DrawBox(rect.X, rect.Y, rect.W, rect.H)
			d.SetDrawColor(DrawColorOff)
			d.DrawStr(labelX, labelY, label)
			d.SetDrawColor(DrawColorOn)
		} else {
			d.DrawFrame(rect.X, rect.Y, rect.W, rect.H)
			d.DrawStr(labelX, labelY, label)
		}
	}
}
