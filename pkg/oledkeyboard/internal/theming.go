package internal

import "image/color"

// Theme is how the emulators paint a monochrome panel.
type Theme struct {
	PixelOnColor  color.RGBA // lit pixel (draw color 1)
	PixelOffColor color.RGBA // dark pixel (draw color 0)
}

var DefaultTheme = Theme{
	PixelOnColor:  HexToColor(0xFFFFFF),
	PixelOffColor: HexToColor(0x000000),
}

var currentTheme = DefaultTheme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}

func HexToColor(hex uint32) color.RGBA {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
