package imgfx

import "errors"

// ErrInvalidLevels is returned by Posterize when the level count is
// too small to define a quantization step.
var ErrInvalidLevels = errors.New("imgfx: posterize levels must be at least 2")

// Grayscale converts src to grayscale and returns a new buffer.
//
// Each pixel is collapsed to a single luma value L using the standard
// BT.601 weights (0.299 R + 0.587 G + 0.114 B) and emitted as
// (L, L, L, 255). Source transparency is discarded: the output is
// always fully opaque.
func Grayscale(src *PixBuf) *PixBuf {
	out := NewPixBuf(src.Width(), src.Height())
	data := src.Data()
	outData := out.Data()

	for i := 0; i < len(data); i += 4 {
		// The weights sum to exactly 1000, so white maps to white.
		l := uint8((299*int(data[i+0]) + 587*int(data[i+1]) + 114*int(data[i+2])) / 1000)
		outData[i+0] = l
		outData[i+1] = l
		outData[i+2] = l
		outData[i+3] = 255
	}

	return out
}

// Invert returns a new buffer with every color channel replaced by its
// complement (255 - v). Alpha is untouched. Applying Invert twice
// reproduces the original buffer exactly.
func Invert(src *PixBuf) *PixBuf {
	out := NewPixBuf(src.Width(), src.Height())
	data := src.Data()
	outData := out.Data()

	for i := 0; i < len(data); i += 4 {
		outData[i+0] = 255 - data[i+0]
		outData[i+1] = 255 - data[i+1]
		outData[i+2] = 255 - data[i+2]
		outData[i+3] = data[i+3]
	}

	return out
}

// Sepia applies the classic sepia tone matrix and returns a new buffer:
//
//	R' = 0.393 R + 0.769 G + 0.189 B
//	G' = 0.349 R + 0.686 G + 0.168 B
//	B' = 0.272 R + 0.534 G + 0.131 B
//
// Results are clamped to 255 and truncated; the sums are never
// negative so no lower clamp is needed. Alpha is untouched.
func Sepia(src *PixBuf) *PixBuf {
	out := NewPixBuf(src.Width(), src.Height())
	data := src.Data()
	outData := out.Data()

	for i := 0; i < len(data); i += 4 {
		r := float32(data[i+0])
		g := float32(data[i+1])
		b := float32(data[i+2])

		outData[i+0] = clampChannel(0.393*r + 0.769*g + 0.189*b)
		outData[i+1] = clampChannel(0.349*r + 0.686*g + 0.168*b)
		outData[i+2] = clampChannel(0.272*r + 0.534*g + 0.131*b)
		outData[i+3] = data[i+3]
	}

	return out
}

// Posterize quantizes every color channel down to a reduced set of
// discrete levels and returns a new buffer.
//
// The step size is 255/(levels-1) using integer division, and each
// channel is truncated to the nearest lower multiple of the step, so
// output channels never exceed their inputs. Alpha is untouched.
//
// Returns ErrInvalidLevels if levels is smaller than 2: a single level
// has no defined step.
func Posterize(src *PixBuf, levels int) (*PixBuf, error) {
	if levels < 2 {
		return nil, ErrInvalidLevels
	}

	step := uint8(255 / (levels - 1))
	if step == 0 {
		// More levels than channel values: quantization is identity.
		step = 1
	}

	out := NewPixBuf(src.Width(), src.Height())
	data := src.Data()
	outData := out.Data()

	for i := 0; i < len(data); i += 4 {
		outData[i+0] = (data[i+0] / step) * step
		outData[i+1] = (data[i+1] / step) * step
		outData[i+2] = (data[i+2] / step) * step
		outData[i+3] = data[i+3]
	}

	return out, nil
}

// Sharpen convolves src with the sharpening kernel. See Convolve for
// the border policy.
func Sharpen(src *PixBuf) *PixBuf {
	return Convolve(src, SharpenKernel())
}

// Emboss convolves src with the embossing kernel. See Convolve for the
// border policy.
func Emboss(src *PixBuf) *PixBuf {
	return Convolve(src, EmbossKernel())
}
