package imageutil

import "math"

// ColorBars are the eight colors drawn by CreateColorBarsImage, left to
// right.
var ColorBars = []RGB{
	{255, 255, 255}, // White
	{255, 255, 0},   // Yellow
	{0, 255, 255},   // Cyan
	{0, 255, 0},     // Green
	{255, 0, 255},   // Magenta
	{255, 0, 0},     // Red
	{0, 0, 255},     // Blue
	{0, 0, 0},       // Black
}

// CreateImageFromPixels builds an image from a row-major pixel sequence.
// It is the inverse of RGBAImage.Pixels; len(pixels) must equal
// width*height.
func CreateImageFromPixels(width, height int, pixels []RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for i, p := range pixels {
		img.SetRGB(i%width, i/width, p)
	}
	return img
}

// CreateGradientImage creates a horizontal gray gradient from black on the
// left to white on the right. A one pixel wide image is black.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(1, width-1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates a two color checkerboard.
func CreateCheckerboardImage(width, height, squareSize int, a, b RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, a)
			} else {
				img.SetRGB(x, y, b)
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateColorBarsImage creates vertical bars of ColorBars. The last bar
// absorbs any remainder when width is not a multiple of eight.
func CreateColorBarsImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	barWidth := max(1, width/len(ColorBars))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := min(x/barWidth, len(ColorBars)-1)
			img.SetRGB(x, y, ColorBars[idx])
		}
	}
	return img
}

// CalculateMSE calculates the per-channel Mean Squared Error between two
// images. Images of different sizes compare as math.MaxFloat64.
func CalculateMSE(img1, img2 *RGBAImage) float64 {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return math.MaxFloat64
	}

	p1, p2 := img1.Pixels(), img2.Pixels()
	var sumSq float64
	for i := range p1 {
		dr := float64(p1[i].R) - float64(p2[i].R)
		dg := float64(p1[i].G) - float64(p2[i].G)
		db := float64(p1[i].B) - float64(p2[i].B)
		sumSq += dr*dr + dg*dg + db*db
	}
	return sumSq / float64(len(p1)*3)
}
