package imgfx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/imgfx/imgfx/codec"
)

// encodePNG encodes a buffer to PNG bytes for end-to-end tests.
func encodePNG(t *testing.T, p *PixBuf) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.ToImage()); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// decodePNG decodes Process output back into a buffer.
func decodePNG(t *testing.T, data []byte) *PixBuf {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return FromImage(img)
}

func TestProcessSharpenWhiteSquare(t *testing.T) {
	src := newUniformBuf(4, 4, 255, 255, 255, 255)

	out, err := Process(encodePNG(t, src), "sharpen")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	result := decodePNG(t, out)
	if result.Width() != 4 || result.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", result.Width(), result.Height())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 0 || x == 3 || y == 0 || y == 3 {
				assertPixel(t, result, x, y, 0, 0, 0, 0)
			} else {
				assertPixel(t, result, x, y, 255, 255, 255, 255)
			}
		}
	}
}

func TestProcessUnknownFilterPassthrough(t *testing.T) {
	src := NewPixBuf(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			src.SetRGBA(x, y, uint8(x*40), uint8(y*40), uint8(x+y), 255)
		}
	}

	out, err := Process(encodePNG(t, src), "definitely-not-a-filter")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	result := decodePNG(t, out)
	if !buffersEqual(src, result) {
		t.Error("unknown filter did not pass pixels through unchanged")
	}
}

func TestProcessSepia(t *testing.T) {
	src := newUniformBuf(2, 2, 200, 150, 100, 255)

	out, err := Process(encodePNG(t, src), "sepia")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	result := decodePNG(t, out)
	assertPixel(t, result, 1, 1, 211, 185, 148, 255)
}

func TestProcessJPEGInput(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: 99, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}

	out, err := Process(buf.Bytes(), "grayscale")
	if err != nil {
		t.Fatalf("Process(JPEG) error = %v", err)
	}

	result := decodePNG(t, out)
	if result.Width() != 12 || result.Height() != 12 {
		t.Errorf("dimensions = %dx%d, want 12x12", result.Width(), result.Height())
	}
	// JPEG is lossy, so only the structural grayscale property is
	// checked: equal channels, opaque alpha.
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			r, g, b, a := result.GetRGBA(x, y)
			if r != g || g != b || a != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want gray and opaque", x, y, r, g, b, a)
			}
		}
	}
}

func TestProcessOutputIsRGBAPNG(t *testing.T) {
	src := newUniformBuf(3, 3, 10, 200, 30, 255)

	out, err := Process(encodePNG(t, src), "grayscale")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("output decodes as %T, want *image.NRGBA (8-bit RGBA)", img)
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	_, err := Process([]byte("not an image"), "sepia")
	if !errors.Is(err, codec.ErrDecode) {
		t.Errorf("error = %v, want codec.ErrDecode", err)
	}

	_, err = Process(nil, "sepia")
	if !errors.Is(err, codec.ErrEmptyData) {
		t.Errorf("error = %v, want codec.ErrEmptyData", err)
	}
}

func TestProcessInvalidPosterizeOption(t *testing.T) {
	src := newUniformBuf(2, 2, 50, 50, 50, 255)

	_, err := Process(encodePNG(t, src), "posterize", WithPosterizeLevels(1))
	if !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("error = %v, want ErrInvalidLevels", err)
	}
}

func TestProcessGrayscaleForcesOpacity(t *testing.T) {
	// A fully transparent source must come out fully opaque.
	src := newUniformBuf(4, 4, 90, 90, 90, 0)

	out, err := Process(encodePNG(t, src), "grayscale")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	result := decodePNG(t, out)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, a := result.GetRGBA(x, y)
			if a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestProcessConcurrent(t *testing.T) {
	src := newUniformBuf(16, 16, 120, 60, 30, 255)
	data := encodePNG(t, src)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		name := []string{"sepia", "invert", "pixelate", "sharpen"}[i%4]
		go func(n string) {
			_, err := Process(data, n)
			done <- err
		}(name)
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Process error = %v", err)
		}
	}
}
