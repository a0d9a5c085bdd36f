package desktop

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

func defaultKeyboardMap() map[int]constants.VirtualButton {
	return map[int]constants.VirtualButton{
		int(sdl.K_UP):     constants.VirtualButtonUp,
		int(sdl.K_k):      constants.VirtualButtonUp,
		int(sdl.K_DOWN):   constants.VirtualButtonDown,
		int(sdl.K_j):      constants.VirtualButtonDown,
		int(sdl.K_RETURN): constants.VirtualButtonSelect,
		int(sdl.K_SPACE):  constants.VirtualButtonSelect,
	}
}

func defaultControllerButtonMap() map[int]constants.VirtualButton {
	return map[int]constants.VirtualButton{
		int(sdl.CONTROLLER_BUTTON_DPAD_UP):   constants.VirtualButtonUp,
		int(sdl.CONTROLLER_BUTTON_DPAD_DOWN): constants.VirtualButtonDown,
		int(sdl.CONTROLLER_BUTTON_A):         constants.VirtualButtonSelect,
	}
}

// processor turns SDL events into held button levels.
type processor struct {
	keyboardMap   map[int]constants.VirtualButton
	controllerMap map[int]constants.VirtualButton
	held          map[constants.VirtualButton]bool
	quit          bool
}

func newProcessor(mapping *internal.InputMapping) *processor {
	p := &processor{
		keyboardMap:   defaultKeyboardMap(),
		controllerMap: defaultControllerButtonMap(),
		held:          make(map[constants.VirtualButton]bool),
	}

	if mapping != nil && mapping.KeyboardMap != nil {
		p.keyboardMap = mapping.KeyboardMap
	}
	if mapping != nil && mapping.ControllerButtonMap != nil {
		p.controllerMap = mapping.ControllerButtonMap
	}

	return p
}

func (p *processor) processEvent(event sdl.Event) {
	logger := internal.GetInternalLogger()

	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.quit = true
	case *sdl.KeyboardEvent:
		keyCode := int(e.Keysym.Sym)
		button, exists := p.keyboardMap[keyCode]
		if !exists {
			logger.Debug("Keyboard input not mapped", "key_code", keyCode)
			return
		}
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			logger.Debug("Keyboard input mapped", "key_code", keyCode, "virtual_button", button.GetName())
		}
		p.held[button] = e.Type == sdl.KEYDOWN
	case *sdl.ControllerButtonEvent:
		button, exists := p.controllerMap[int(e.Button)]
		if !exists {
			logger.Debug("Controller button not mapped", "button_code", e.Button)
			return
		}
		p.held[button] = e.Type == sdl.CONTROLLERBUTTONDOWN
	}
}

func (p *processor) pressed(button constants.VirtualButton) bool {
	return p.held[button]
}
