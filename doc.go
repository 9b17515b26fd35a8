// Package imgfx provides an in-memory image-filter engine for Go.
//
// # Overview
//
// imgfx decodes an encoded raster image into an RGBA pixel buffer,
// applies one of a fixed set of pixel- or neighborhood-based filters,
// and re-encodes the result as PNG. It is designed for embedding: the
// host supplies raw bytes and a filter-name token and gets bytes back.
//
// # Quick Start
//
//	import "github.com/imgfx/imgfx"
//
//	// data is PNG or JPEG bytes from anywhere (file, network, wasm host)
//	out, err := imgfx.Process(data, "sepia")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out is PNG bytes, 8-bit RGBA
//
// Hosts that own their own decode can work on a PixBuf directly:
//
//	buf := imgfx.FromImage(img)
//	result, err := imgfx.Apply(buf, imgfx.FilterSharpen)
//
// # Filters
//
// Recognized filter tokens: grayscale, blur, huerotate, invert, sepia,
// pixelate, emboss, sharpen, posterize. Tokens are case-sensitive. An
// unrecognized token is not an error: the image passes through
// unchanged. See [ParseFilter] and [Filter].
//
// # Architecture
//
// The library is organized into:
//   - Public API: Process, Apply, Filter, PixBuf, Kernel
//   - Filters: convolution (sharpen, emboss), per-pixel color
//     transforms (grayscale, invert, sepia, posterize), resampling
//     (pixelate), and gift-backed collaborators (blur, huerotate)
//   - codec/: container decode (PNG, JPEG, GIF, BMP, TIFF, WebP) and
//     RGBA PNG encode
//
// # Concurrency
//
// The engine keeps no state between invocations. Each call allocates
// its own buffers and transfers ownership of the result to the caller,
// so independent images may be processed concurrently.
package imgfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
