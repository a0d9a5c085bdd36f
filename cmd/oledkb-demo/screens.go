package main

import (
	"context"
	"time"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/i18n"
)

const lineHeight = 12

// drawLines clears the screen and draws one string per line from the top.
func drawLines(display oledkeyboard.Display, lines ...string) error {
	display.ClearBuffer()
	display.SetDrawColor(oledkeyboard.DrawColorOn)
	for i, line := range lines {
		display.DrawStr(2, (i+1)*lineHeight-2, line)
	}
	return display.SendBuffer()
}

func resultLines(text string) []string {
	shown := text
	if shown == "" {
		shown = i18n.GetString("empty_input")
	}
	return []string{
		i18n.GetString("result_heading"),
		shown,
		i18n.GetPluralString("result_length", len([]rune(text))),
		"",
		i18n.GetString("result_again"),
	}
}

// waitForSelect polls until select is pressed again, or ctx is done.
// The press that completed the input does not count.
func waitForSelect(ctx context.Context, display oledkeyboard.Display, buttons oledkeyboard.Buttons, clock oledkeyboard.Clock, debounce time.Duration) error {
	d := oledkeyboard.NewDebouncer(debounce)
	d.TryAccept(constants.VirtualButtonSelect, clock.Millis())

	ticker := time.NewTicker(constants.DefaultFrameDelay)
	defer ticker.Stop()

	for {
		if buttons.Pressed(constants.VirtualButtonSelect) && d.TryAccept(constants.VirtualButtonSelect, clock.Millis()) {
			return nil
		}

		// Frames keep the emulators responsive.
		if err := display.SendBuffer(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return oledkeyboard.ErrCancelled
		case <-ticker.C:
		}
	}
}
