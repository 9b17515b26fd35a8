package imgfx

// ResizeNearest resamples src to the given dimensions using
// nearest-neighbor sampling and returns a new buffer.
//
// Destination pixel (dx, dy) takes the source pixel at
// (dx*srcWidth/dstWidth, dy*srcHeight/dstHeight), integer math with no
// interpolation or blending. Dimensions smaller than 1 are floored
// at 1.
func ResizeNearest(src *PixBuf, width, height int) *PixBuf {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	srcWidth := src.Width()
	srcHeight := src.Height()
	out := NewPixBuf(width, height)

	data := src.Data()
	outData := out.Data()

	for dy := 0; dy < height; dy++ {
		sy := dy * srcHeight / height
		for dx := 0; dx < width; dx++ {
			sx := dx * srcWidth / width
			si := (sy*srcWidth + sx) * 4
			di := (dy*width + dx) * 4
			copy(outData[di:di+4], data[si:si+4])
		}
	}

	return out
}

// Pixelate produces a blockized version of src: a nearest-neighbor
// downscale to (width/factor, height/factor) followed by a
// nearest-neighbor upscale back to the original dimensions. Fine
// detail is lost while overall color blocks survive, with block
// boundaries aligned to the downscale factor.
//
// Dimensions that divide to zero are floored at 1, so inputs smaller
// than the factor collapse to a single uniform color. Factors smaller
// than 1 are treated as 1 (identity resample).
func Pixelate(src *PixBuf, factor int) *PixBuf {
	if factor < 1 {
		factor = 1
	}

	width := src.Width()
	height := src.Height()

	small := ResizeNearest(src, width/factor, height/factor)
	return ResizeNearest(small, width, height)
}
