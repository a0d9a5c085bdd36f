package oledkeyboard

import "testing"

func TestLayoutsShareSpecialKeys(t *testing.T) {
	special := map[int]string{
		24: KeyShift,
		25: KeySymbols,
		26: KeyBackspace,
		27: KeySpace,
		31: KeyEnter,
	}

	for _, mode := range []KeyboardMode{ModeUpper, ModeLower, ModeSymbols} {
		layout := LayoutFor(mode)
		for index, want := range special {
			if got := layout.Label(index); got != want {
				t.Errorf("%s layout key %d = %q, want %q", mode, index, got, want)
			}
		}
	}
}

func TestLayoutLabels(t *testing.T) {
	tests := []struct {
		mode  KeyboardMode
		index int
		want  string
	}{
		{ModeUpper, 0, "A"},
		{ModeUpper, 23, "X"},
		{ModeUpper, 29, "Y"},
		{ModeLower, 7, "h"},
		{ModeLower, 30, "z"},
		{ModeSymbols, 9, "0"},
		{ModeSymbols, 20, "\\"},
		{ModeSymbols, 29, "?"},
		{ModeSymbols, 30, ","},
		{ModeUpper, 28, "."},
	}

	for _, tt := range tests {
		if got := LayoutFor(tt.mode).Label(tt.index); got != tt.want {
			t.Errorf("%s layout key %d = %q, want %q", tt.mode, tt.index, got, tt.want)
		}
	}
}

func TestLayoutLabelOutOfRange(t *testing.T) {
	layout := LayoutFor(ModeUpper)
	if got := layout.Label(-1); got != "" {
		t.Errorf("Label(-1) = %q, want empty", got)
	}
	if got := layout.Label(KeyCount); got != "" {
		t.Errorf("Label(%d) = %q, want empty", KeyCount, got)
	}
}

func TestLayoutLabelsNonEmpty(t *testing.T) {
	for _, mode := range []KeyboardMode{ModeUpper, ModeLower, ModeSymbols} {
		for i, label := range LayoutFor(mode) {
			if label == "" {
				t.Errorf("%s layout key %d has no label", mode, i)
			}
		}
	}
}

func TestRowCol(t *testing.T) {
	row, col := RowCol(27)
	if row != 3 || col != 3 {
		t.Errorf("RowCol(27) = (%d, %d), want (3, 3)", row, col)
	}
}

func TestIsSpecialKey(t *testing.T) {
	for _, label := range []string{">", "<", "_", "Aa", "?#"} {
		if !IsSpecialKey(label) {
			t.Errorf("IsSpecialKey(%q) = false", label)
		}
	}
	for _, label := range []string{"A", "?", "#", ".", " "} {
		if IsSpecialKey(label) {
			t.Errorf("IsSpecialKey(%q) = true", label)
		}
	}
}
