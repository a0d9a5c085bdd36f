package oledkeyboard

import "github.com/BrandonKowalski/oledkeyboard/pkg/oledkeyboard/constants"

// Rect is a screen space bounding box in pixels.
type Rect struct {
	X, Y, W, H int
}

// Geometry is the pixel placement of the input area and the key grid.
type Geometry struct {
	ScreenWidth     int
	ScreenHeight    int
	InputAreaHeight int
	KeyWidth        int
	KeyHeight       int
	HSpacing        int
	VSpacing        int

	// Top left corner of the key grid.
	OriginX int
	OriginY int
}

func DefaultGeometry() Geometry {
	g := Geometry{
		ScreenWidth:     constants.DefaultDisplayWidth,
		ScreenHeight:    constants.DefaultDisplayHeight,
		InputAreaHeight: constants.DefaultInputAreaHeight,
		KeyWidth:        constants.DefaultKeyWidth,
		KeyHeight:       constants.DefaultKeyHeight,
		HSpacing:        constants.DefaultHSpacing,
		VSpacing:        constants.DefaultVSpacing,
	}
	g.Recompute()
	return g
}

// Recompute centers the key grid horizontally and places it right below the
// input area.
func (g *Geometry) Recompute() {
	g.OriginX = GridOriginX(g.ScreenWidth, KeyCols, g.KeyWidth, g.HSpacing)
	g.OriginY = g.InputAreaHeight
}

// GridOriginX is the left edge of a grid of cols keys centered on the screen.
// The result is negative when the grid is wider than the screen.
func GridOriginX(screenWidth, cols, keyWidth, hSpacing int) int {
	return (screenWidth - (cols*keyWidth + (cols-1)*hSpacing)) / 2
}

func (g Geometry) KeyRect(index int) Rect {
	row, col := RowCol(index)
	return Rect{
		X: g.OriginX + col*(g.KeyWidth+g.HSpacing),
		Y: g.OriginY + row*(g.KeyHeight+g.VSpacing),
		W: g.KeyWidth,
		H: g.KeyHeight,
	}
}

func (g Geometry) InputRect() Rect {
	return Rect{X: 0, Y: 0, W: g.ScreenWidth, H: g.InputAreaHeight}
}

// GridRect is the bounding box of the whole key grid.
func (g Geometry) GridRect() Rect {
	return Rect{
		X: g.OriginX,
		Y: g.OriginY,
		W: KeyCols*g.KeyWidth + (KeyCols-1)*g.HSpacing,
		H: KeyRows*g.KeyHeight + (KeyRows-1)*g.VSpacing,
	}
}
