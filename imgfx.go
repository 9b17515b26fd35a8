package imgfx

import "github.com/imgfx/imgfx/codec"

// Process is the engine's boundary contract: it decodes encoded image
// bytes (container auto-detected by signature), applies the filter
// named by the given token, and returns the result as PNG bytes with
// four 8-bit channels.
//
// Tokens are matched exactly and case-sensitively against the set in
// [ParseFilter]; an unrecognized token is not an error and yields the
// decoded image re-encoded unchanged. Options override the fixed
// reference parameters of individual filters.
//
// Process holds no state between calls and transfers ownership of the
// returned bytes to the caller, so it may be invoked concurrently on
// independent images.
//
// Errors: codec.ErrDecode (or codec.ErrEmptyData) when the input
// cannot be decoded, codec.ErrEncode when the result cannot be
// re-encoded, ErrInvalidLevels for an invalid posterize override. All
// are fatal for the invocation; no partial output is produced.
func Process(data []byte, name string, opts ...Option) ([]byte, error) {
	img, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	buf, err := Apply(FromImage(img), ParseFilter(name), opts...)
	if err != nil {
		return nil, err
	}

	return codec.EncodePNG(buf.ToImage())
}
