package oledkeyboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

func TestPromptReturnsText(t *testing.T) {
	kb, _, buttons, _ := newTestKeyboard(t)
	kb.MoveFocus(FocusPrevious)
	buttons[constants.VirtualButtonSelect] = true

	result, err := Prompt(context.Background(), kb, "HELLO", time.Millisecond)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if result.Text != "HELLO" {
		t.Errorf("Text = %q, want %q", result.Text, "HELLO")
	}
	if kb.InputText() != "" || kb.IsInputComplete() {
		t.Error("keyboard should be cleared after Prompt returns")
	}
}

func TestPromptCancelled(t *testing.T) {
	kb, _, _, _ := newTestKeyboard(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Prompt(ctx, kb, "", time.Hour)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}
