package oledkeyboard

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
)

var (
	ErrCancelled = errors.New("operation cancelled by user")
)

// KeyboardResult represents the result of a Prompt.
type KeyboardResult struct {
	Text string
}

// Prompt preloads initialText and drives kb until enter is selected, calling
// Update every frameDelay. The buffer is cleared on return so the keyboard can
// be reused for the next prompt. Returns ErrCancelled if ctx is done first.
func Prompt(ctx context.Context, kb *Keyboard, initialText string, frameDelay time.Duration) (*KeyboardResult, error) {
	if frameDelay <= 0 {
		frameDelay = constants.DefaultFrameDelay
	}

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	kb.SetText(initialText)
	defer kb.ClearInput()

	for {
		if kb.Update() {
			return &KeyboardResult{Text: kb.InputText()}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		case <-ticker.C:
		}
	}
}
