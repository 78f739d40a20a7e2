package img2palette

// DefaultColorCount is the number of boxes median cut aims for when no
// count is given.
const DefaultColorCount = 8

// Extract reduces each box to the channel-wise mean of its pixels, in box
// order. Means use truncating integer division and are clamped to 255.
func Extract(boxes []Box) []RGB {
	palette := make([]RGB, 0, len(boxes))
	for _, box := range boxes {
		palette = append(palette, meanColor(box.Pixels))
	}
	return palette
}

// meanColor averages a non-empty set of pixels.
func meanColor(pixels []RGB) RGB {
	if len(pixels) == 0 {
		return RGB{}
	}
	var rAccum, gAccum, bAccum uint64
	for _, p := range pixels {
		rAccum += uint64(p.R)
		gAccum += uint64(p.G)
		bAccum += uint64(p.B)
	}
	n := uint64(len(pixels))
	return RGB{
		R: uint8(min(rAccum/n, 255)),
		G: uint8(min(gAccum/n, 255)),
		B: uint8(min(bAccum/n, 255)),
	}
}

// Dedup removes exact duplicate colors, keeping the first occurrence of
// each and preserving order.
func Dedup(colors []RGB) []RGB {
	seen := make(map[RGB]struct{}, len(colors))
	unique := make([]RGB, 0, len(colors))
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// GeneratePalette runs median cut over pixels and returns up to n unique
// representative colors.
func GeneratePalette(pixels []RGB, n int) ([]RGB, error) {
	boxes, err := Partition(pixels, n)
	if err != nil {
		return nil, err
	}
	return Dedup(Extract(boxes)), nil
}
