package img2palette

import (
	"reflect"
	"testing"

	"github.com/wbrown/img2palette/imageutil"
)

func TestExtractTruncatesMean(t *testing.T) {
	boxes := []Box{
		{Pixels: []RGB{{1, 2, 3}, {2, 2, 4}}},
		{Pixels: []RGB{{255, 255, 255}, {255, 255, 254}, {255, 254, 254}}},
		{Pixels: []RGB{{9, 8, 7}}},
	}
	want := []RGB{{1, 2, 3}, {255, 254, 254}, {9, 8, 7}}
	if got := Extract(boxes); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractLargeBoxDoesNotOverflow(t *testing.T) {
	pixels := make([]RGB, 100000)
	for i := range pixels {
		pixels[i] = RGB{R: 255, G: 128, B: 1}
	}
	got := Extract([]Box{{Pixels: pixels}})
	if got[0] != (RGB{R: 255, G: 128, B: 1}) {
		t.Errorf("Expected {255 128 1}, got %v", got[0])
	}
}

func TestExtractStaysWithinBoxRange(t *testing.T) {
	boxes, err := Partition(testPixels(), 24)
	if err != nil {
		t.Fatal(err)
	}
	palette := Extract(boxes)
	if len(palette) != len(boxes) {
		t.Fatalf("Expected %d entries, got %d", len(boxes), len(palette))
	}
	for i, box := range boxes {
		for _, ch := range []Channel{Red, Green, Blue} {
			lo, hi := uint8(255), uint8(0)
			for _, p := range box.Pixels {
				lo = min(lo, component(p, ch))
				hi = max(hi, component(p, ch))
			}
			v := component(palette[i], ch)
			if v < lo || v > hi {
				t.Errorf("Box %d %s: mean %d outside [%d, %d]", i, ch, v, lo, hi)
			}
		}
	}
}

func TestDedup(t *testing.T) {
	tests := []struct {
		name string
		in   []RGB
		want []RGB
	}{
		{"empty", nil, []RGB{}},
		{"unique", []RGB{{1, 2, 3}, {3, 2, 1}}, []RGB{{1, 2, 3}, {3, 2, 1}}},
		{
			"keeps first occurrence",
			[]RGB{{5, 5, 5}, {1, 2, 3}, {5, 5, 5}, {3, 2, 1}, {1, 2, 3}},
			[]RGB{{5, 5, 5}, {1, 2, 3}, {3, 2, 1}},
		},
		{"exact match only", []RGB{{10, 10, 10}, {10, 10, 11}}, []RGB{{10, 10, 10}, {10, 10, 11}}},
		{"all same", []RGB{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, []RGB{{0, 0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			once := Dedup(tc.in)
			if !reflect.DeepEqual(once, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, once)
			}
			if twice := Dedup(once); !reflect.DeepEqual(twice, once) {
				t.Errorf("Dedup is not idempotent: %v then %v", once, twice)
			}
		})
	}
}

func TestGeneratePaletteColorBars(t *testing.T) {
	// Eight equally sized bars on the corners of the RGB cube split cleanly
	// into one box per bar.
	pixels := imageutil.CreateColorBarsImage(64, 8).Pixels()

	palette, err := GeneratePalette(pixels, DefaultColorCount)
	if err != nil {
		t.Fatal(err)
	}
	want := []RGB{
		{0, 0, 0},
		{0, 0, 255},
		{0, 255, 0},
		{0, 255, 255},
		{255, 0, 0},
		{255, 0, 255},
		{255, 255, 0},
		{255, 255, 255},
	}
	if !reflect.DeepEqual(palette, want) {
		t.Errorf("Expected %v, got %v", want, palette)
	}
}

func TestGeneratePaletteRemovesDuplicates(t *testing.T) {
	pixels := imageutil.CreateSolidImage(4, 4, RGB{R: 30, G: 60, B: 90}).Pixels()

	palette, err := GeneratePalette(pixels, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(palette, []RGB{{30, 60, 90}}) {
		t.Errorf("Expected a single color, got %v", palette)
	}
}

func TestGeneratePaletteRejectsBadCount(t *testing.T) {
	if _, err := GeneratePalette([]RGB{{1, 1, 1}}, 0); err == nil {
		t.Error("Expected error for zero colors")
	}
}
