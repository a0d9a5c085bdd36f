package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

// InputMapping overrides the raw code to button tables of the backends.
// A nil map means "use the backend default".
type InputMapping struct {
	// SDL keycodes, used by the desktop emulator.
	KeyboardMap map[int]constants.VirtualButton

	// SDL game controller buttons, used by the desktop emulator.
	ControllerButtonMap map[int]constants.VirtualButton

	// Linux input event codes (EV_KEY), used by the evdev source.
	EvdevMap map[int]constants.VirtualButton

	// tcell key names ("Up", "Enter", "Rune[j]"), used by the terminal emulator.
	TerminalMap map[string]constants.VirtualButton

	// periph.io pin names per button, used by the GPIO source.
	GPIOPins map[constants.VirtualButton]string
}

// Mapping is the on-disk form. Buttons are stored by name.
type Mapping struct {
	KeyboardMap         map[int]string    `json:"keyboard_map,omitempty"`
	ControllerButtonMap map[int]string    `json:"controller_button_map,omitempty"`
	EvdevMap            map[int]string    `json:"evdev_map,omitempty"`
	TerminalMap         map[string]string `json:"terminal_map,omitempty"`
	GPIOPins            map[string]string `json:"gpio_pins,omitempty"`
}

// GetInputMapping returns the input mapping from embedded bytes if set,
// from the environment variable if set, otherwise an empty mapping.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	mappingPath := os.Getenv(constants.MappingPathEnvVar)
	if mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return &InputMapping{}
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializableMapping Mapping
	if err := json.Unmarshal(data, &serializableMapping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{}

	if serializableMapping.KeyboardMap != nil {
		mapping.KeyboardMap = make(map[int]constants.VirtualButton)
		for code, name := range serializableMapping.KeyboardMap {
			button, err := parseButton(name)
			if err != nil {
				return nil, fmt.Errorf("keyboard_map[%d]: %w", code, err)
			}
			mapping.KeyboardMap[code] = button
		}
	}

	if serializableMapping.ControllerButtonMap != nil {
		mapping.ControllerButtonMap = make(map[int]constants.VirtualButton)
		for code, name := range serializableMapping.ControllerButtonMap {
			button, err := parseButton(name)
			if err != nil {
				return nil, fmt.Errorf("controller_button_map[%d]: %w", code, err)
			}
			mapping.ControllerButtonMap[code] = button
		}
	}

	if serializableMapping.EvdevMap != nil {
		mapping.EvdevMap = make(map[int]constants.VirtualButton)
		for code, name := range serializableMapping.EvdevMap {
			button, err := parseButton(name)
			if err != nil {
				return nil, fmt.Errorf("evdev_map[%d]: %w", code, err)
			}
			mapping.EvdevMap[code] = button
		}
	}

	if serializableMapping.TerminalMap != nil {
		mapping.TerminalMap = make(map[string]constants.VirtualButton)
		for key, name := range serializableMapping.TerminalMap {
			button, err := parseButton(name)
			if err != nil {
				return nil, fmt.Errorf("terminal_map[%s]: %w", key, err)
			}
			mapping.TerminalMap[key] = button
		}
	}

	if serializableMapping.GPIOPins != nil {
		mapping.GPIOPins = make(map[constants.VirtualButton]string)
		for name, pin := range serializableMapping.GPIOPins {
			button, err := parseButton(name)
			if err != nil {
				return nil, fmt.Errorf("gpio_pins: %w", err)
			}
			mapping.GPIOPins[button] = pin
		}
	}

	return mapping, nil
}

func parseButton(name string) (constants.VirtualButton, error) {
	button, ok := constants.ButtonFromName(name)
	if !ok {
		return constants.VirtualButtonUnassigned, fmt.Errorf("unknown button %q", name)
	}
	return button, nil
}

// ToJSON converts the InputMapping to JSON bytes in the export format.
func (im *InputMapping) ToJSON() ([]byte, error) {
	serializableMapping := &Mapping{}

	if im.KeyboardMap != nil {
		serializableMapping.KeyboardMap = make(map[int]string)
		for code, button := range im.KeyboardMap {
			serializableMapping.KeyboardMap[code] = button.GetName()
		}
	}

	if im.ControllerButtonMap != nil {
		serializableMapping.ControllerButtonMap = make(map[int]string)
		for code, button := range im.ControllerButtonMap {
			serializableMapping.ControllerButtonMap[code] = button.GetName()
		}
	}

	if im.EvdevMap != nil {
		serializableMapping.EvdevMap = make(map[int]string)
		for code, button := range im.EvdevMap {
			serializableMapping.EvdevMap[code] = button.GetName()
		}
	}

	if im.TerminalMap != nil {
		serializableMapping.TerminalMap = make(map[string]string)
		for key, button := range im.TerminalMap {
			serializableMapping.TerminalMap[key] = button.GetName()
		}
	}

	if im.GPIOPins != nil {
		serializableMapping.GPIOPins = make(map[string]string)
		for button, pin := range im.GPIOPins {
			serializableMapping.GPIOPins[button.GetName()] = pin
		}
	}

	return json.MarshalIndent(serializableMapping, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
