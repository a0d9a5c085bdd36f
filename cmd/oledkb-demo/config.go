package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

type demoConfig struct {
	Keyboard oledkeyboard.KeyboardConfig `toml:"keyboard"`
	Display  displayConfig               `toml:"display"`
	Theme    themeConfig                 `toml:"theme"`
	Buttons  buttonsConfig               `toml:"buttons"`
	Logging  loggingConfig               `toml:"logging"`
}

type displayConfig struct {
	// Backend is "oled", "desktop" or "term".
	Backend  string  `toml:"backend"`
	I2CBus   string  `toml:"i2c_bus"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Scale    int     `toml:"scale"`
	Language string  `toml:"language"`
	Click    bool    `toml:"click"`
	Volume   float64 `toml:"volume"`
}

// themeConfig colors the emulators, as "#RRGGBB".
type themeConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

type buttonsConfig struct {
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Select string `toml:"select"`

	// EvdevDevice reads the buttons from /dev/input instead of GPIO.
	EvdevDevice string `toml:"evdev_device"`
	Grab        bool   `toml:"grab"`
}

type loggingConfig struct {
	Level    string `toml:"level"`
	Filename string `toml:"filename"`
	Dir      string `toml:"dir"`
}

func defaultDemoConfig() demoConfig {
	backend := "oled"
	if constants.IsDevMode() {
		backend = "desktop"
	}

	return demoConfig{
		Keyboard: oledkeyboard.DefaultConfig().Keyboard,
		Display: displayConfig{
			Backend:  backend,
			Width:    constants.DefaultDisplayWidth,
			Height:   constants.DefaultDisplayHeight,
			Scale:    4,
			Language: "en",
			Volume:   -2,
		},
		Logging: loggingConfig{
			Level: "info",
		},
	}
}

// loadDemoConfig returns the config and the keys it did not recognize, which
// are logged once logging is set up.
func loadDemoConfig(path string) (demoConfig, []string, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil, nil
	}
	unknown, err := oledkeyboard.DecodeConfigFile(path, &cfg)
	if err != nil {
		return defaultDemoConfig(), nil, err
	}
	return cfg, unknown, nil
}

func (c demoConfig) keyboardConfig() oledkeyboard.Config {
	return oledkeyboard.Config{Keyboard: c.Keyboard}
}

func (c buttonsConfig) pins() map[constants.VirtualButton]string {
	pins := map[constants.VirtualButton]string{}
	if c.Up != "" {
		pins[constants.VirtualButtonUp] = c.Up
	}
	if c.Down != "" {
		pins[constants.VirtualButtonDown] = c.Down
	}
	if c.Select != "" {
		pins[constants.VirtualButtonSelect] = c.Select
	}
	return pins
}

// parseHexColor accepts "#RRGGBB", "RRGGBB" and "0xRRGGBB". Empty is 0.
func parseHexColor(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")

	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q: want 6 hex digits", raw)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return uint32(v), nil
}
