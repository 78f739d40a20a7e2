package img2palette

import (
	"fmt"
	"math"
)

const (
	ESC = "\u001b"

	// swatchBlock is the run of full blocks drawn for each palette entry.
	swatchBlock = "██████████"
)

// Mode selects how palette colors are encoded for the terminal.
type Mode int

const (
	// ModeTruecolor emits 24-bit "38;2;r;g;b" escapes.
	ModeTruecolor Mode = iota
	// ModeANSI256 approximates each color with an index into the xterm
	// 256-color palette.
	ModeANSI256
)

// String returns the mode name as accepted on the command line.
func (m Mode) String() string {
	if m == ModeANSI256 {
		return "ANSI"
	}
	return "Truecolor"
}

// ParseMode maps the optional second command line argument to a Mode. Only
// the exact literal "ANSI" selects 256-color mode.
func ParseMode(arg string) Mode {
	if arg == "ANSI" {
		return ModeANSI256
	}
	return ModeTruecolor
}

// TruecolorCode returns the SGR parameters that set the foreground to the
// exact color c.
func TruecolorCode(c RGB) string {
	return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
}

// ANSI256Code returns the SGR parameters that set the foreground to the
// 256-color palette entry closest to c.
func ANSI256Code(c RGB) string {
	return fmt.Sprintf("38;5;%d", ANSI256Index(c))
}

// ANSI256Index approximates c with an xterm 256-color index.
//
// Achromatic colors (r == g == b) use the grayscale ramp at 232-255, with
// the darkest values mapped to cube black (16) and the brightest to cube
// white (231). All other colors use the 6x6x6 cube at 16-231, rounding each
// channel to the nearest of six steps.
func ANSI256Index(c RGB) uint8 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return 16
		case c.R > 248:
			return 231
		}
		return uint8(math.Round((float64(c.R)-8)/247*24)) + 232
	}
	return 16 +
		36*cubeStep(c.R) +
		6*cubeStep(c.G) +
		cubeStep(c.B)
}

// cubeStep quantizes a channel to one of the six color cube levels.
func cubeStep(v uint8) uint8 {
	return uint8(math.Round(float64(v) / 255 * 5))
}

// Code returns the SGR parameters for c in the given mode.
func (m Mode) Code(c RGB) string {
	if m == ModeANSI256 {
		return ANSI256Code(c)
	}
	return TruecolorCode(c)
}

// reset returns the escape that ends a swatch in the given mode.
func (m Mode) reset() string {
	if m == ModeANSI256 {
		return ESC + "[0;00m"
	}
	return ESC + "[0m"
}
