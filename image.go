package img2palette

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/img2palette/imageutil"
)

// SwatchOptions controls the layout of a swatch sheet.
type SwatchOptions struct {
	// Width of the sheet in pixels.
	Width int
	// BandHeight is the height of each palette band in pixels.
	BandHeight int
	// FontSize of the hex labels in points at 72 DPI. Zero disables labels.
	FontSize float64
}

// DefaultSwatchOptions returns a 320 pixel wide sheet with 48 pixel bands
// and 18 point labels.
func DefaultSwatchOptions() SwatchOptions {
	return SwatchOptions{
		Width:      320,
		BandHeight: 48,
		FontSize:   18,
	}
}

// labelLightnessThreshold is the CIE L* above which a swatch gets a dark
// label.
const labelLightnessThreshold = 0.55

// DrawSwatches renders the palette as a stack of horizontal color bands,
// one per entry in palette order, each labelled with its hex value.
func DrawSwatches(palette []RGB, opts SwatchOptions) (*imageutil.RGBAImage, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if opts.Width <= 0 || opts.BandHeight <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", opts.Width, opts.BandHeight)
	}

	img := imageutil.NewRGBAImage(opts.Width, opts.BandHeight*len(palette))
	for i, c := range palette {
		band := image.Rect(0, i*opts.BandHeight, opts.Width, (i+1)*opts.BandHeight)
		draw.Draw(img.RGBA, band, image.NewUniform(c.ToColor()), image.Point{}, draw.Src)
	}

	if opts.FontSize <= 0 {
		return img, nil
	}
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	if err := drawLabels(img, palette, ttf, opts); err != nil {
		return nil, err
	}
	return img, nil
}

// drawLabels writes each band's hex value near its left edge, vertically
// centred, in black or white depending on the band's lightness.
func drawLabels(img *imageutil.RGBAImage, palette []RGB, ttf *truetype.Font, opts SwatchOptions) error {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.RGBA)
	ctx.SetHinting(font.HintingFull)

	margin := opts.BandHeight / 4
	for i, c := range palette {
		ctx.SetSrc(image.NewUniform(labelColor(c)))
		baseline := i*opts.BandHeight + (opts.BandHeight+ascent-descent)/2
		if _, err := ctx.DrawString(hexString(c), freetype.Pt(margin, baseline)); err != nil {
			return fmt.Errorf("failed to draw label for %s: %w", hexString(c), err)
		}
	}
	return nil
}

// labelColor picks black text for light swatches and white text for dark
// ones.
func labelColor(c RGB) color.Color {
	l, _, _ := toColorful(c).Lab()
	if l > labelLightnessThreshold {
		return color.Black
	}
	return color.White
}

// SaveSwatchesToPNG draws the palette with DrawSwatches and writes it to
// filename as a PNG.
func SaveSwatchesToPNG(palette []RGB, filename string, opts SwatchOptions) error {
	img, err := DrawSwatches(palette, opts)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(img.RGBA, filename)
}
