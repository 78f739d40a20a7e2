package img2palette

import (
	"fmt"

	"github.com/wbrown/img2palette/imageutil"
)

// LoadPixels decodes the image at path and returns its pixels in row-major
// order along with the dimensions they came from. When maxDim is positive,
// larger images are first shrunk with nearest-neighbor sampling so that
// neither side exceeds it; the sampling never introduces new colors.
//
// Every failure, including an image with no pixels, wraps ErrImageLoad.
func LoadPixels(path string, maxDim int) (pixels []RGB, width, height int, err error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w %q: %w", ErrImageLoad, path, err)
	}
	if img.Width() <= 0 || img.Height() <= 0 {
		return nil, 0, 0, fmt.Errorf("%w %q: image has no pixels", ErrImageLoad, path)
	}
	img = imageutil.ResizeToFit(img, maxDim, imageutil.InterpolationNearest)
	return img.Pixels(), img.Width(), img.Height(), nil
}
