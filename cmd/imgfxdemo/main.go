// Command imgfxdemo demonstrates embedding the imgfx filter engine in
// a host program. The engine itself does no file I/O; this host reads
// the input bytes, invokes one filter, and writes the PNG result.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/imgfx/imgfx"
)

func main() {
	var (
		input   = flag.String("input", "", "input image file (PNG, JPEG, GIF, BMP, TIFF, WebP)")
		output  = flag.String("output", "out.png", "output PNG file")
		filter  = flag.String("filter", "sepia", "filter token (grayscale, blur, huerotate, invert, sepia, pixelate, emboss, sharpen, posterize)")
		levels  = flag.Int("levels", 4, "posterize quantization levels")
		factor  = flag.Int("factor", 10, "pixelate downscale factor")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		imgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}

	result, err := imgfx.Process(data, *filter,
		imgfx.WithPosterizeLevels(*levels),
		imgfx.WithPixelateFactor(*factor),
	)
	if err != nil {
		log.Fatalf("apply %s: %v", *filter, err)
	}

	if err := os.WriteFile(*output, result, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}

	fmt.Printf("%s -> %s (%s, %d bytes)\n", *input, *output, *filter, len(result))
}
