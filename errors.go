package img2palette

import "errors"

var (
	// ErrArgument is returned when the command line is missing required
	// arguments.
	ErrArgument = errors.New("invalid number of arguments")

	// ErrImageLoad is returned when an image file is missing, unreadable,
	// in an unsupported format, or decodes to zero pixels.
	ErrImageLoad = errors.New("failed to load image")

	// ErrInvalidTargetCount is returned when fewer than one palette color
	// is requested.
	ErrInvalidTargetCount = errors.New("target color count must be at least 1")

	// ErrNoPixels is returned when partitioning is asked to work on an
	// empty pixel sequence.
	ErrNoPixels = errors.New("no pixels to partition")
)
