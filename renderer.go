package img2palette

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Format selects the shape of the rendered palette listing.
type Format int

const (
	// FormatText writes one colored swatch line per palette entry.
	FormatText Format = iota
	// FormatJSON writes the palette as a JSON array.
	FormatJSON
)

// ParseFormat parses a format name ("text" or "json").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q", name)
}

// Renderer writes a palette to a terminal. It carries configuration only
// and may be reused for any number of palettes.
type Renderer struct {
	Mode   Mode
	Format Format
	Block  string
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer. By default it writes Truecolor text
// swatches made of ten full blocks.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Mode:   ModeTruecolor,
		Format: FormatText,
		Block:  swatchBlock,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithMode sets the terminal color encoding.
func WithMode(mode Mode) RendererOption {
	return func(r *Renderer) {
		r.Mode = mode
	}
}

// WithFormat sets the listing format.
func WithFormat(format Format) RendererOption {
	return func(r *Renderer) {
		r.Format = format
	}
}

// WithBlock sets the string drawn in each swatch's color.
func WithBlock(block string) RendererOption {
	return func(r *Renderer) {
		r.Block = block
	}
}

// Render writes the palette to w in the renderer's format.
func (r *Renderer) Render(w io.Writer, palette []RGB) error {
	if r.Format == FormatJSON {
		return r.renderJSON(w, palette)
	}
	_, err := io.WriteString(w, r.RenderToString(palette))
	return err
}

// RenderToString renders the palette as swatch lines. Each line is the
// colored block, a tab, and the decimal red, green and blue values. The
// listing starts with a blank line; in 256-color mode it ends with an
// "ANSI" footer.
func (r *Renderer) RenderToString(palette []RGB) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, c := range palette {
		sb.WriteString(r.Swatch(c))
		fmt.Fprintf(&sb, "\t%d %d %d\n", c.R, c.G, c.B)
	}
	if r.Mode == ModeANSI256 {
		sb.WriteString("\nANSI\n")
	}
	return sb.String()
}

// Swatch returns the escape-coded block for a single color.
func (r *Renderer) Swatch(c RGB) string {
	return ESC + "[" + r.Mode.Code(c) + "m" + r.Block + r.Mode.reset()
}

// PaletteEntry is the JSON form of a palette color.
type PaletteEntry struct {
	R       uint8  `json:"r"`
	G       uint8  `json:"g"`
	B       uint8  `json:"b"`
	Hex     string `json:"hex"`
	ANSI256 uint8  `json:"ansi256"`
}

// NewPaletteEntry describes c for JSON output.
func NewPaletteEntry(c RGB) PaletteEntry {
	return PaletteEntry{
		R:       c.R,
		G:       c.G,
		B:       c.B,
		Hex:     hexString(c),
		ANSI256: ANSI256Index(c),
	}
}

func (r *Renderer) renderJSON(w io.Writer, palette []RGB) error {
	entries := make([]PaletteEntry, len(palette))
	for i, c := range palette {
		entries[i] = NewPaletteEntry(c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode palette: %w", err)
	}
	return nil
}

// hexString formats c as a lower case "#rrggbb" web color.
func hexString(c RGB) string {
	return toColorful(c).Hex()
}

// toColorful converts c to a go-colorful color.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
