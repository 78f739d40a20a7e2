package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest, and never invents colors that are not in the source.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeToFit shrinks an image so that neither side exceeds maxDim,
// preserving aspect ratio. Images that already fit, and a maxDim of zero
// or less, are returned unchanged. Sides never shrink below one pixel.
func ResizeToFit(img *RGBAImage, maxDim int, interp Interpolation) *RGBAImage {
	width, height := img.Width(), img.Height()
	if maxDim <= 0 || (width <= maxDim && height <= maxDim) {
		return img
	}
	if width >= height {
		height = max(1, height*maxDim/width)
		width = maxDim
	} else {
		width = max(1, width*maxDim/height)
		height = maxDim
	}
	return Resize(img, width, height, interp)
}
