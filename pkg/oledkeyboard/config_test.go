package oledkeyboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oledkb.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[keyboard]
max_length = 32
debounce_delay = "150ms"
cursor_blink_interval = "400ms"
key_width = 14
position = { x = 0, y = 16 }
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	k := cfg.Keyboard
	if k.MaxLength != 32 {
		t.Errorf("MaxLength = %d, want 32", k.MaxLength)
	}
	if k.DebounceDelay != 150*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 150ms", k.DebounceDelay)
	}
	if k.CursorBlinkInterval != 400*time.Millisecond {
		t.Errorf("CursorBlinkInterval = %v, want 400ms", k.CursorBlinkInterval)
	}
	if k.KeyHeight != 11 {
		t.Errorf("KeyHeight = %d, want the default 11", k.KeyHeight)
	}
	if k.Position == nil || k.Position.Y != 16 {
		t.Errorf("Position = %+v, want y = 16", k.Position)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	cfg, err := LoadConfig(writeConfig(t, "[keyboard\nmax_length = "))
	if err == nil {
		t.Error("expected an error for invalid TOML")
	}
	if cfg != DefaultConfig() {
		t.Error("a failed load should return the defaults")
	}
}

func TestConfigApply(t *testing.T) {
	kb, _, _, _ := newTestKeyboard(t)

	cfg := DefaultConfig()
	cfg.Keyboard.MaxLength = 8
	cfg.Keyboard.DebounceDelay = 120 * time.Millisecond
	cfg.Keyboard.KeyWidth = 14
	cfg.Keyboard.Position = &Position{X: 3, Y: 12}
	cfg.Apply(kb)

	if kb.MaxLength() != 8 {
		t.Errorf("MaxLength() = %d, want 8", kb.MaxLength())
	}
	if kb.DebounceDelay() != 120*time.Millisecond {
		t.Errorf("DebounceDelay() = %v, want 120ms", kb.DebounceDelay())
	}

	g := kb.Geometry()
	if g.KeyWidth != 14 || g.OriginX != 3 || g.OriginY != 12 {
		t.Errorf("geometry = %+v, want key width 14 at (3, 12)", g)
	}
}

func TestConfigApplyIgnoresInvalid(t *testing.T) {
	kb, _, _, _ := newTestKeyboard(t)

	cfg := DefaultConfig()
	cfg.Keyboard.MaxLength = 0
	cfg.Keyboard.KeyHeight = -1
	cfg.Apply(kb)

	if kb.MaxLength() != 20 {
		t.Errorf("MaxLength() = %d, want 20", kb.MaxLength())
	}
	if kb.Geometry().KeyHeight != 11 {
		t.Errorf("KeyHeight = %d, want 11", kb.Geometry().KeyHeight)
	}
}
