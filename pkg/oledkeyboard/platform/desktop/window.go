package desktop

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"
	"github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/internal"
)

const defaultScale = 4

type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string
	Scale    int32
}

// initWindow opens a window showing a width x height panel, each panel pixel
// drawn as a scale x scale square. WINDOW_SCALE overrides the scale in dev mode.
func initWindow(title string, width, height, scale int32) (*Window, error) {
	if scale <= 0 {
		scale = defaultScale
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		x, y = int32(50), int32(50)
		if v := os.Getenv("WINDOW_SCALE"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
				scale = int32(n)
			} else {
				internal.GetInternalLogger().Warn("Invalid WINDOW_SCALE; using default", "value", v, "error", err)
			}
		}
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width*scale, "height", height*scale)

	window, err := sdl.CreateWindow(title, x, y, width*scale, height*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		Scale:    scale,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}
