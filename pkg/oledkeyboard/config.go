package oledkeyboard

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

// Config is the [keyboard] section of a configuration file.
//
//	[keyboard]
//	max_length = 32
//	debounce_delay = "150ms"
//	cursor_blink_interval = "400ms"
//	key_width = 15
//	key_height = 11
//	position = { x = 0, y = 16 }
type Config struct {
	Keyboard KeyboardConfig `toml:"keyboard"`
}

type KeyboardConfig struct {
	MaxLength           int           `toml:"max_length"`
	DebounceDelay       time.Duration `toml:"debounce_delay"`
	CursorBlinkInterval time.Duration `toml:"cursor_blink_interval"`
	InputAreaHeight     int           `toml:"input_area_height"`
	KeyWidth            int           `toml:"key_width"`
	KeyHeight           int           `toml:"key_height"`
	HSpacing            int           `toml:"h_spacing"`
	VSpacing            int           `toml:"v_spacing"`
	Position            *Position     `toml:"position"`
}

// Position overrides the computed origin of the key grid.
type Position struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

func DefaultConfig() Config {
	return Config{
		Keyboard: KeyboardConfig{
			MaxLength:           constants.DefaultMaxLength,
			DebounceDelay:       constants.DefaultDebounceDelay,
			CursorBlinkInterval: constants.DefaultCursorBlinkInterval,
			InputAreaHeight:     constants.DefaultInputAreaHeight,
			KeyWidth:            constants.DefaultKeyWidth,
			KeyHeight:           constants.DefaultKeyHeight,
			HSpacing:            constants.DefaultHSpacing,
			VSpacing:            constants.DefaultVSpacing,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	unknown, err := DecodeConfigFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), err
	}
	for _, key := range unknown {
		internal.GetInternalLogger().Warn("Ignoring unknown config key", "path", path, "key", key)
	}
	return cfg, nil
}

// DecodeConfigFile decodes a TOML file into v, which should already hold the
// defaults, and returns the keys that matched no field.
func DecodeConfigFile(path string, v any) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

// ConfigPathFromEnv returns the config path from the environment, or "".
func ConfigPathFromEnv() string {
	return os.Getenv(constants.ConfigPathEnvVar)
}

// Apply pushes the settings through the keyboard's setters, so invalid
// values are ignored the same way. The position goes last since every
// geometry setter recomputes the origin.
func (c Config) Apply(kb *Keyboard) {
	k := c.Keyboard

	kb.SetMaxLength(k.MaxLength)
	kb.SetDebounceDelay(k.DebounceDelay)
	kb.SetCursorBlinkInterval(k.CursorBlinkInterval)
	kb.SetInputAreaHeight(k.InputAreaHeight)
	kb.SetKeySize(k.KeyWidth, k.KeyHeight)
	kb.SetKeySpacing(k.HSpacing, k.VSpacing)

	if k.Position != nil {
		kb.SetPosition(k.Position.X, k.Position.Y)
	}
}
