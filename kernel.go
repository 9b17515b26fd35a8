package imgfx

// Kernel is a fixed 3x3 convolution matrix of signed weights, row-major
// with the center at [1][1].
//
// No normalization is performed: the weights must already sum to the
// intended gain. SharpenKernel sums to 1 and preserves overall
// brightness; EmbossKernel is directional and makes no such guarantee.
type Kernel [3][3]float32

// SharpenKernel returns the sharpening kernel. Its weights sum to 1,
// so uniform regions pass through unchanged while local contrast is
// amplified.
func SharpenKernel() Kernel {
	return Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
}

// EmbossKernel returns the embossing kernel, which produces a
// directional relief effect along the top-left to bottom-right
// diagonal.
func EmbossKernel() Kernel {
	return Kernel{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	}
}

// Convolve applies a 3x3 kernel to every interior pixel of src and
// returns a new buffer of identical dimensions.
//
// For each pixel with 1 <= x <= width-2 and 1 <= y <= height-2 the
// four channels are computed independently as the kernel-weighted sum
// of the 3x3 neighborhood, clamped to [0, 255] and truncated. Alpha is
// convolved exactly like the color channels, which can produce edge
// artifacts in translucent inputs.
//
// The one-pixel border is not computed and stays at the output
// buffer's zero value, transparent black. If either dimension is
// smaller than 3 there are no interior pixels and the whole output is
// transparent black.
func Convolve(src *PixBuf, k Kernel) *PixBuf {
	width := src.Width()
	height := src.Height()
	out := NewPixBuf(width, height)

	data := src.Data()
	outData := out.Data()

	for y := 1; y <= height-2; y++ {
		for x := 1; x <= width-2; x++ {
			var sumR, sumG, sumB, sumA float32

			for ky := 0; ky < 3; ky++ {
				row := (y + ky - 1) * width
				for kx := 0; kx < 3; kx++ {
					i := (row + x + kx - 1) * 4
					w := k[ky][kx]
					sumR += w * float32(data[i+0])
					sumG += w * float32(data[i+1])
					sumB += w * float32(data[i+2])
					sumA += w * float32(data[i+3])
				}
			}

			o := (y*width + x) * 4
			outData[o+0] = clampChannel(sumR)
			outData[o+1] = clampChannel(sumG)
			outData[o+2] = clampChannel(sumB)
			outData[o+3] = clampChannel(sumA)
		}
	}

	return out
}

// clampChannel clamps a channel sum to [0, 255] and truncates it to a
// uint8.
func clampChannel(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
