package img2palette

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderTruecolor(t *testing.T) {
	palette := []RGB{{255, 0, 0}, {0, 128, 255}}
	r := NewRenderer()

	var buf bytes.Buffer
	if err := r.Render(&buf, palette); err != nil {
		t.Fatal(err)
	}
	want := "\n" +
		"\x1b[38;2;255;0;0m██████████\x1b[0m\t255 0 0\n" +
		"\x1b[38;2;0;128;255m██████████\x1b[0m\t0 128 255\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderANSI256(t *testing.T) {
	palette := []RGB{{255, 0, 0}, {128, 128, 128}}
	r := NewRenderer(WithMode(ModeANSI256))

	got := r.RenderToString(palette)
	want := "\n" +
		"\x1b[38;5;196m██████████\x1b[0;00m\t255 0 0\n" +
		"\x1b[38;5;244m██████████\x1b[0;00m\t128 128 128\n" +
		"\nANSI\n"
	if got != want {
		t.Errorf("Unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderLineShape(t *testing.T) {
	palette := []RGB{{1, 2, 3}, {40, 50, 60}, {200, 100, 0}}
	out := NewRenderer(WithBlock("##")).RenderToString(palette)

	lines := strings.Split(strings.TrimPrefix(out, "\n"), "\n")
	lines = lines[:len(lines)-1]
	if len(lines) != len(palette) {
		t.Fatalf("Expected %d lines, got %d", len(palette), len(lines))
	}
	for i, line := range lines {
		swatch, values, ok := strings.Cut(line, "\t")
		if !ok {
			t.Fatalf("Line %d has no tab: %q", i, line)
		}
		if !strings.Contains(swatch, "##") {
			t.Errorf("Line %d swatch missing custom block: %q", i, swatch)
		}
		if fields := strings.Fields(values); len(fields) != 3 {
			t.Errorf("Line %d: expected 3 channel values, got %q", i, values)
		}
	}
}

func TestRenderEmptyPalette(t *testing.T) {
	if got := NewRenderer().RenderToString(nil); got != "\n" {
		t.Errorf("Expected a lone newline, got %q", got)
	}
}

func TestRenderJSON(t *testing.T) {
	palette := []RGB{{255, 0, 0}, {18, 52, 86}}
	r := NewRenderer(WithFormat(FormatJSON), WithMode(ModeANSI256))

	var buf bytes.Buffer
	if err := r.Render(&buf, palette); err != nil {
		t.Fatal(err)
	}
	var entries []PaletteEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	want := []PaletteEntry{
		{R: 255, G: 0, B: 0, Hex: "#ff0000", ANSI256: 196},
		{R: 18, G: 52, B: 86, Hex: "#123456", ANSI256: ANSI256Index(RGB{18, 52, 86})},
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"xml", FormatText, true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := map[RGB]string{
		{0, 0, 0}:       "#000000",
		{255, 255, 255}: "#ffffff",
		{1, 128, 254}:   "#0180fe",
	}
	for c, want := range tests {
		if got := hexString(c); got != want {
			t.Errorf("hexString(%v) = %q, want %q", c, got, want)
		}
	}
}
