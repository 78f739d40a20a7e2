package img2palette

import "github.com/wbrown/img2palette/imageutil"

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. There is no alpha channel;
// it is discarded by the pixel source.
type RGB = imageutil.RGB

// Channel identifies one of the three color channels of an RGB pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// String returns the lower case channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// component returns the value of the given channel of an RGB color.
func component(c RGB, ch Channel) uint8 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	default:
		return c.B
	}
}
