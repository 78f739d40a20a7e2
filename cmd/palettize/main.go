package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/wbrown/img2palette"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args (excluding the program name) and
// returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetDefaultsForClientTools()
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("palettize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: palettize [flags] <image> [ANSI]\n")
		fs.PrintDefaults()
	}
	colors := fs.Int("colors", img2palette.DefaultColorCount,
		"Number of median cut boxes (palette size before duplicates are removed)")
	maxDim := fs.Int("maxdim", 0,
		"Shrink the image so neither side exceeds this many pixels, 0 to disable")
	format := fs.String("format", "text",
		"Output format: text or json")
	pngPath := fs.String("png", "",
		"Also write a labelled swatch sheet to this PNG file")
	verbose := fs.Bool("v", false,
		"Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *verbose {
		log.SetLogLevel(log.Debug)
	} else {
		log.SetLogLevel(log.Info)
	}

	// Flags after the image path are not parsed; reject them rather than
	// silently reading one as the mode word.
	if fs.NArg() < 1 || fs.NArg() > 2 || strings.HasPrefix(fs.Arg(1), "-") {
		log.Errf("%v: expected [flags] <image> [ANSI], got %q",
			img2palette.ErrArgument, fs.Args())
		fs.Usage()
		return 1
	}
	outputFormat, err := img2palette.ParseFormat(*format)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	mode := img2palette.ParseMode(fs.Arg(1))

	filename := fs.Arg(0)
	pixels, width, height, err := img2palette.LoadPixels(filename, *maxDim)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	log.Debugf("Loaded %s: %dx%d, %d pixels", filename, width, height, len(pixels))

	palette, err := img2palette.GeneratePalette(pixels, *colors)
	if err != nil {
		if errors.Is(err, img2palette.ErrInvalidTargetCount) {
			log.Errf("%v (use -colors)", err)
		} else {
			log.Errf("%v", err)
		}
		return 1
	}
	log.Debugf("Palette: %d unique colors from %d boxes requested, mode %s",
		len(palette), *colors, mode)

	renderer := img2palette.NewRenderer(
		img2palette.WithMode(mode),
		img2palette.WithFormat(outputFormat),
	)
	if err := renderer.Render(stdout, palette); err != nil {
		log.Errf("Error writing palette: %v", err)
		return 1
	}

	if *pngPath != "" {
		err := img2palette.SaveSwatchesToPNG(palette, *pngPath,
			img2palette.DefaultSwatchOptions())
		if err != nil {
			log.Errf("Error writing PNG: %v", err)
			return 1
		}
		log.Infof("Swatch sheet written to %s", *pngPath)
	}
	return 0
}
