package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Each color maps to an ANSI 256-color code for terminals and to an RGBA
// value for pixel frontends.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorTeal
	ColorIndigo
	ColorPink
)

type paletteEntry struct {
	ansi uint8
	rgba color.RGBA
}

var palette = map[Color]paletteEntry{
	ColorDefault:       {ansi: 7, rgba: color.RGBA{0xdd, 0xdd, 0xee, 0xff}},
	ColorRed:           {ansi: 1, rgba: color.RGBA{0xcc, 0x00, 0x00, 0xff}},
	ColorGreen:         {ansi: 2, rgba: color.RGBA{0x00, 0xaa, 0x00, 0xff}},
	ColorYellow:        {ansi: 3, rgba: color.RGBA{0xcc, 0xaa, 0x00, 0xff}},
	ColorBlue:          {ansi: 4, rgba: color.RGBA{0x00, 0x44, 0xcc, 0xff}},
	ColorMagenta:       {ansi: 5, rgba: color.RGBA{0xaa, 0x00, 0xaa, 0xff}},
	ColorCyan:          {ansi: 6, rgba: color.RGBA{0x00, 0xaa, 0xaa, 0xff}},
	ColorWhite:         {ansi: 7, rgba: color.RGBA{0xdd, 0xdd, 0xdd, 0xff}},
	ColorBrightRed:     {ansi: 9, rgba: color.RGBA{0xff, 0x55, 0x55, 0xff}},
	ColorBrightGreen:   {ansi: 10, rgba: color.RGBA{0x55, 0xff, 0x55, 0xff}},
	ColorBrightYellow:  {ansi: 11, rgba: color.RGBA{0xff, 0xff, 0x55, 0xff}},
	ColorBrightBlue:    {ansi: 12, rgba: color.RGBA{0x55, 0x55, 0xff, 0xff}},
	ColorBrightMagenta: {ansi: 13, rgba: color.RGBA{0xff, 0x55, 0xff, 0xff}},
	ColorBrightCyan:    {ansi: 14, rgba: color.RGBA{0x55, 0xff, 0xff, 0xff}},
	ColorBrightWhite:   {ansi: 15, rgba: color.RGBA{0xff, 0xff, 0xff, 0xff}},
	ColorOrange:        {ansi: 208, rgba: color.RGBA{0xff, 0x87, 0x00, 0xff}},
	ColorGray:          {ansi: 245, rgba: color.RGBA{0x8a, 0x8a, 0x8a, 0xff}},
	ColorBlack:         {ansi: 240, rgba: color.RGBA{0x00, 0x00, 0x00, 0xff}},
	ColorTeal:          {ansi: 30, rgba: color.RGBA{0x00, 0x80, 0x7a, 0xff}},
	ColorIndigo:        {ansi: 55, rgba: color.RGBA{0x46, 0x00, 0xbd, 0xff}},
	ColorPink:          {ansi: 201, rgba: color.RGBA{0xff, 0x33, 0xde, 0xff}},
}

// ANSI returns the 256-color terminal code for c.
// Black maps to a dark gray so it stays visible on dark terminals.
func (c Color) ANSI() uint8 {
	if p, ok := palette[c]; ok {
		return p.ansi
	}
	return palette[ColorDefault].ansi
}

// RGBA returns the pixel color for c.
func (c Color) RGBA() color.RGBA {
	if p, ok := palette[c]; ok {
		return p.rgba
	}
	return palette[ColorDefault].rgba
}
