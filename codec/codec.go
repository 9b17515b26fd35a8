package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Codec errors.
var (
	// ErrEmptyData is returned when the input byte slice is empty.
	ErrEmptyData = errors.New("codec: empty data")

	// ErrDecode is returned when the input bytes cannot be decoded as
	// any supported image container.
	ErrDecode = errors.New("codec: decode failed")

	// ErrEncode is returned when the processed image cannot be
	// re-encoded.
	ErrEncode = errors.New("codec: encode failed")
)

// Decode decodes encoded image bytes, auto-detecting the container
// format from its signature. The error wraps ErrDecode (or is
// ErrEmptyData for empty input); no partial image is ever returned.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes an image from r, auto-detecting the container
// format.
func DecodeReader(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	Logger().Debug("decoded image",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return img, nil
}

// EncodePNG encodes img as PNG bytes with four 8-bit channels (RGBA
// color type), regardless of the source color model. The error wraps
// ErrEncode.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNGTo(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNGTo encodes img as RGBA PNG to w.
func EncodePNGTo(w io.Writer, img image.Image) error {
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		// Force 8-bit straight-alpha RGBA so the PNG encoder emits
		// color type 6 for every input.
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	if err := png.Encode(w, nrgba); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
