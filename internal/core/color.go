package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorSky
	ColorPink
	ColorSkyBlue
	ColorLightPink
	ColorPurple
	ColorGold
	ColorPaleGreen
	ColorSalmon
	ColorPlum
	ColorBrown
)

// RGB is a 24-bit color used by pixel renderers.
type RGB struct {
	R, G, B uint8
}

// rgbTable maps palette colors to their true-color values.
var rgbTable = map[Color]RGB{
	ColorDefault:   {0, 0, 0},
	ColorWhite:     {0xFF, 0xFF, 0xFF},
	ColorGray:      {0x66, 0x66, 0x66},
	ColorSky:       {0x4A, 0x9F, 0xD8},
	ColorPink:      {0xFF, 0x6B, 0x9D},
	ColorSkyBlue:   {0x87, 0xCE, 0xEB},
	ColorLightPink: {0xFF, 0xB6, 0xC1},
	ColorPurple:    {0x93, 0x70, 0xDB},
	ColorGold:      {0xFF, 0xD7, 0x00},
	ColorPaleGreen: {0x98, 0xFB, 0x98},
	ColorSalmon:    {0xFF, 0xA0, 0x7A},
	ColorPlum:      {0xDD, 0xA0, 0xDD},
	ColorBrown:     {0xA0, 0x6A, 0x3C},
}

// RGB returns the true-color value of c.
func (c Color) RGB() RGB {
	return rgbTable[c]
}

// Hex returns c as a "#RRGGBB" string.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	v := c.RGB()
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, ch := range []uint8{v.R, v.G, v.B} {
		b[1+i*2] = digits[ch>>4]
		b[2+i*2] = digits[ch&0x0F]
	}
	return string(b)
}

// BalloonPalette is the fixed set of colors balloons are drawn from.
var BalloonPalette = []Color{
	ColorPink,
	ColorSkyBlue,
	ColorLightPink,
	ColorPurple,
	ColorGold,
	ColorPaleGreen,
	ColorSalmon,
	ColorPlum,
}
