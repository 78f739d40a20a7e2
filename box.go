package img2palette

import (
	"fmt"
	"sort"
)

// scoreState records whether a Box's range score has been computed. A zero
// range is a legitimate score for a monochrome box, so it cannot double as
// the "not yet computed" marker.
type scoreState uint8

const (
	unscored scoreState = iota
	scored
)

// Ranges holds the per-channel spread (max - min) of a set of pixels.
type Ranges struct {
	R, G, B uint8
}

// Max returns the greatest of the three channel ranges.
func (r Ranges) Max() uint8 {
	return max(r.R, r.G, r.B)
}

// Dominant returns the channel to split on for these ranges. See
// DominantChannel.
func (r Ranges) Dominant() Channel {
	return DominantChannel(r.R, r.G, r.B)
}

// DominantChannel picks the channel with the greatest range. Exact ties are
// resolved with the fixed priority red, then green, then blue: red wins if
// its range is at least both others, otherwise green wins if its range is at
// least blue's.
func DominantChannel(rRange, gRange, bRange uint8) Channel {
	if rRange >= gRange && rRange >= bRange {
		return Red
	}
	if gRange >= bRange {
		return Green
	}
	return Blue
}

// Box is a subset of an image's pixels that median cut treats as a single
// partition. Boxes are created by Partition and are never empty.
type Box struct {
	Pixels []RGB

	ranges Ranges
	score  uint8
	state  scoreState
}

func newBox(pixels []RGB) *Box {
	return &Box{Pixels: pixels}
}

// Len returns the number of pixels in the box.
func (b *Box) Len() int {
	return len(b.Pixels)
}

// Ranges computes the per-channel spread of the box's pixels. An empty box
// has zero ranges.
func (b *Box) Ranges() Ranges {
	if len(b.Pixels) == 0 {
		return Ranges{}
	}
	lo, hi := b.Pixels[0], b.Pixels[0]
	for _, p := range b.Pixels[1:] {
		lo.R, hi.R = min(lo.R, p.R), max(hi.R, p.R)
		lo.G, hi.G = min(lo.G, p.G), max(hi.G, p.G)
		lo.B, hi.B = min(lo.B, p.B), max(hi.B, p.B)
	}
	return Ranges{R: hi.R - lo.R, G: hi.G - lo.G, B: hi.B - lo.B}
}

// Score returns the box's range score, computing and caching it on first
// use. A box is scored exactly once between creation and being split.
func (b *Box) Score() uint8 {
	if b.state == unscored {
		b.ranges = b.Ranges()
		b.score = b.ranges.Max()
		b.state = scored
	}
	return b.score
}

// Scored reports whether the box's range score has been computed.
func (b *Box) Scored() bool {
	return b.state == scored
}

// splittable reports whether the box can be split without producing an
// empty child.
func (b *Box) splittable() bool {
	return len(b.Pixels) >= 2
}

// split sorts the box's pixels along its dominant channel and cuts them at
// floor(n/2). The left child receives the lower half. Sorting is stable, so
// pixels with equal channel values keep their relative order.
func (b *Box) split() (left, right *Box) {
	b.Score()
	ch := b.ranges.Dominant()
	pixels := b.Pixels
	sort.SliceStable(pixels, func(i, j int) bool {
		return component(pixels[i], ch) < component(pixels[j], ch)
	})
	mid := len(pixels) / 2
	return newBox(pixels[:mid:mid]), newBox(pixels[mid:])
}

// Partition runs median cut over pixels, returning at most target disjoint,
// non-empty boxes whose pixels together are exactly the input sequence.
//
// While there are fewer than target boxes, the splittable box with the
// greatest range score is removed and replaced by its two halves, which are
// appended to the end of the list. Ties go to the box that was added first.
// A box with a single pixel is terminal; if every box is terminal the
// partition stops early, so asking for more colors than there are pixels
// yields one box per pixel.
//
// The input slice is not modified.
func Partition(pixels []RGB, target int) ([]Box, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTargetCount, target)
	}
	if len(pixels) == 0 {
		return nil, ErrNoPixels
	}

	root := make([]RGB, len(pixels))
	copy(root, pixels)
	boxes := []*Box{newBox(root)}

	for len(boxes) < target {
		for _, b := range boxes {
			b.Score()
		}

		best := -1
		for i, b := range boxes {
			if !b.splittable() {
				continue
			}
			if best < 0 || b.score > boxes[best].score {
				best = i
			}
		}
		if best < 0 {
			break
		}

		left, right := boxes[best].split()
		boxes = append(boxes[:best], boxes[best+1:]...)
		boxes = append(boxes, left, right)
	}

	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = *b
	}
	return out, nil
}
