package oledkeyboard

// Interpret applies a key label to the keyboard: special labels change the
// mode, edit the buffer or complete the input, anything else is typed.
// A full buffer silently drops typed keys.
func (kb *Keyboard) Interpret(label string) {
	if IsSpecialKey(label) {
		kb.handleSpecialKey(label)
		return
	}
	kb.insertText(label)
}

func (kb *Keyboard) insertText(text string) {
	if len(kb.textBuffer) < kb.maxInputLength {
		kb.textBuffer = append(kb.textBuffer, []rune(text)...)
	}
}

func (kb *Keyboard) handleSpecialKey(label string) {
	switch label {
	case KeyEnter:
		kb.inputComplete = true
		kb.log().Debug("Input complete", "length", len(kb.textBuffer))
	case KeyBackspace:
		kb.backspace()
	case KeySpace:
		kb.insertText(" ")
	case KeyShift:
		kb.toggleShift()
	case KeySymbols:
		kb.toggleSymbols()
	}
}

func (kb *Keyboard) backspace() {
	if len(kb.textBuffer) > 0 {
		kb.textBuffer = kb.textBuffer[:len(kb.textBuffer)-1]
	}
}

// toggleShift flips between upper and lower case. From symbols it always
// lands on upper case.
func (kb *Keyboard) toggleShift() {
	if kb.currentMode == ModeUpper {
		kb.setMode(ModeLower)
	} else {
		kb.setMode(ModeUpper)
	}
}

// toggleSymbols enters symbols, and leaves them for lower case.
func (kb *Keyboard) toggleSymbols() {
	if kb.currentMode == ModeSymbols {
		kb.setMode(ModeLower)
	} else {
		kb.setMode(ModeSymbols)
	}
}

func (kb *Keyboard) setMode(mode KeyboardMode) {
	kb.log().Debug("Keyboard mode changed", "from", kb.currentMode.String(), "to", mode.String())
	kb.currentMode = mode
}
