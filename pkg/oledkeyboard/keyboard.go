package oledkeyboard

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

// InputState is Editing until enter is selected, then Complete until the
// input is cleared or the keyboard is reset.
type InputState int

const (
	InputStateEditing InputState = iota
	InputStateComplete
)

func (s InputState) String() string {
	if s == InputStateComplete {
		return "complete"
	}
	return "editing"
}

// FocusDirection moves the focused key through the grid.
type FocusDirection int

const (
	FocusPrevious FocusDirection = iota
	FocusNext
)

// Keyboard is an on-screen keyboard driven by up, down and select buttons.
//
// It is not safe for concurrent use: a single polling loop owns it and calls
// Update once per frame.
type Keyboard struct {
	display Display
	buttons Buttons
	clock   Clock
	logger  *slog.Logger

	geometry            Geometry
	maxInputLength      int
	debounce            *Debouncer
	cursorBlinkInterval uint32

	currentMode      KeyboardMode
	textBuffer       []rune
	inputComplete    bool
	cursorVisible    bool
	lastCursorBlink  uint32
	selectedKeyIndex int

	onKeyPress func(label string)
}

// NewKeyboard creates a keyboard with the default geometry and timings.
// Call Begin before the first Update.
func NewKeyboard(display Display, buttons Buttons, clock Clock) *Keyboard {
	return &Keyboard{
		display:             display,
		buttons:             buttons,
		clock:               clock,
		geometry:            DefaultGeometry(),
		maxInputLength:      constants.DefaultMaxLength,
		debounce:            NewDebouncer(constants.DefaultDebounceDelay),
		cursorBlinkInterval: durationToMillis(constants.DefaultCursorBlinkInterval),
		currentMode:         ModeUpper,
		cursorVisible:       true,
	}
}

// Begin sets the screen size and lays out the key grid for it.
func (kb *Keyboard) Begin(screenWidth, screenHeight int) {
	kb.geometry.ScreenWidth = screenWidth
	kb.geometry.ScreenHeight = screenHeight
	kb.geometry.Recompute()

	kb.log().Debug("Keyboard started",
		"screen_width", screenWidth,
		"screen_height", screenHeight,
		"origin_x", kb.geometry.OriginX,
		"origin_y", kb.geometry.OriginY)
}

// Update runs one cycle: buttons, cursor blink, then a frame.
// It returns true once enter has been selected.
func (kb *Keyboard) Update() bool {
	now := kb.clock.Millis()

	kb.handleInput(now)
	kb.updateCursorBlink(now)
	kb.Draw()

	return kb.inputComplete
}

// HandleInput polls the buttons once without drawing.
func (kb *Keyboard) HandleInput() {
	kb.handleInput(kb.clock.Millis())
}

func (kb *Keyboard) handleInput(now uint32) {
	if kb.buttons.Pressed(constants.VirtualButtonUp) && kb.debounce.TryAccept(constants.VirtualButtonUp, now) {
		kb.MoveFocus(FocusPrevious)
	}

	if kb.buttons.Pressed(constants.VirtualButtonDown) && kb.debounce.TryAccept(constants.VirtualButtonDown, now) {
		kb.MoveFocus(FocusNext)
	}

	if kb.buttons.Pressed(constants.VirtualButtonSelect) && kb.debounce.TryAccept(constants.VirtualButtonSelect, now) {
		label := kb.FocusedLabel()
		kb.log().Debug("Key selected", "index", kb.selectedKeyIndex, "mode", kb.currentMode.String())
		kb.Interpret(label)

		if kb.onKeyPress != nil {
			kb.onKeyPress(label)
		}
	}
}

// MoveFocus moves the focused key one step, wrapping at both ends.
func (kb *Keyboard) MoveFocus(direction FocusDirection) {
	switch direction {
	case FocusPrevious:
		kb.selectedKeyIndex = (kb.selectedKeyIndex - 1 + KeyCount) % KeyCount
	case FocusNext:
		kb.selectedKeyIndex = (kb.selectedKeyIndex + 1) % KeyCount
	}
}

func (kb *Keyboard) updateCursorBlink(now uint32) {
	if now-kb.lastCursorBlink > kb.cursorBlinkInterval {
		kb.cursorVisible = !kb.cursorVisible
		kb.lastCursorBlink = now
	}
}

func (kb *Keyboard) IsInputComplete() bool {
	return kb.inputComplete
}

func (kb *Keyboard) State() InputState {
	if kb.inputComplete {
		return InputStateComplete
	}
	return InputStateEditing
}

func (kb *Keyboard) InputText() string {
	return string(kb.textBuffer)
}

// SetText replaces the buffer with initial, truncated to the maximum length,
// and returns to editing.
func (kb *Keyboard) SetText(initial string) {
	runes := []rune(initial)
	if len(runes) > kb.maxInputLength {
		runes = runes[:kb.maxInputLength]
	}
	kb.textBuffer = runes
	kb.inputComplete = false
}

// ClearInput empties the buffer and returns to editing. The mode and the
// focused key are kept.
func (kb *Keyboard) ClearInput() {
	kb.textBuffer = kb.textBuffer[:0]
	kb.inputComplete = false
}

// Reset returns the keyboard to its initial state. Geometry and timing
// settings are kept.
func (kb *Keyboard) Reset() {
	kb.currentMode = ModeUpper
	kb.selectedKeyIndex = 0
	kb.textBuffer = kb.textBuffer[:0]
	kb.inputComplete = false
	kb.cursorVisible = true
	kb.lastCursorBlink = 0
}

func (kb *Keyboard) Mode() KeyboardMode {
	return kb.currentMode
}

func (kb *Keyboard) FocusIndex() int {
	return kb.selectedKeyIndex
}

// FocusedLabel is the label of the focused key in the active layout.
func (kb *Keyboard) FocusedLabel() string {
	return LayoutFor(kb.currentMode).Label(kb.selectedKeyIndex)
}

func (kb *Keyboard) CursorVisible() bool {
	return kb.cursorVisible
}

func (kb *Keyboard) Geometry() Geometry {
	return kb.geometry
}

func (kb *Keyboard) MaxLength() int {
	return kb.maxInputLength
}

func (kb *Keyboard) DebounceDelay() time.Duration {
	return kb.debounce.Threshold()
}

func (kb *Keyboard) CursorBlinkInterval() time.Duration {
	return time.Duration(kb.cursorBlinkInterval) * time.Millisecond
}

// OnKeyPress registers a callback run after every accepted select, with the
// label of the selected key.
func (kb *Keyboard) OnKeyPress(fn func(label string)) {
	kb.onKeyPress = fn
}

func (kb *Keyboard) SetLogger(logger *slog.Logger) {
	kb.logger = logger
}

func (kb *Keyboard) log() *slog.Logger {
	if kb.logger != nil {
		return kb.logger
	}
	return internal.GetInternalLogger()
}

// SetMaxLength caps the buffer. Values below 1 are ignored. A longer buffer
// is truncated.
func (kb *Keyboard) SetMaxLength(maxLen int) {
	if maxLen <= 0 {
		return
	}
	kb.maxInputLength = maxLen
	if len(kb.textBuffer) > maxLen {
		kb.textBuffer = kb.textBuffer[:maxLen]
	}
}

// SetPosition moves the key grid. The position holds until the next size,
// spacing or input area change.
func (kb *Keyboard) SetPosition(x, y int) {
	kb.geometry.OriginX = x
	kb.geometry.OriginY = y
}

// SetDebounceDelay sets the minimum time between accepted presses of one
// button. Negative values are ignored.
func (kb *Keyboard) SetDebounceDelay(delay time.Duration) {
	if delay < 0 {
		return
	}
	kb.debounce.SetThreshold(delay)
}

// SetCursorBlinkInterval sets the cursor blink period. Negative values are ignored.
func (kb *Keyboard) SetCursorBlinkInterval(interval time.Duration) {
	if interval < 0 {
		return
	}
	kb.cursorBlinkInterval = durationToMillis(interval)
}

func (kb *Keyboard) SetInputAreaHeight(height int) {
	if height <= 0 {
		return
	}
	kb.geometry.InputAreaHeight = height
	kb.geometry.Recompute()
}

func (kb *Keyboard) SetKeySize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	kb.geometry.KeyWidth = width
	kb.geometry.KeyHeight = height
	kb.geometry.Recompute()
}

func (kb *Keyboard) SetKeySpacing(horizontal, vertical int) {
	if horizontal < 0 || vertical < 0 {
		return
	}
	kb.geometry.HSpacing = horizontal
	kb.geometry.VSpacing = vertical
	kb.geometry.Recompute()
}
