package imgfx

import (
	"image"
	"image/color"
)

// PixBuf is a dense, row-major RGBA pixel buffer.
//
// Each pixel is four independent 8-bit channels (R, G, B, A) with
// straight (non-premultiplied) alpha. The buffer length is always
// width*height*4 and dimensions are fixed at construction.
type PixBuf struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixBuf creates a new pixel buffer with the given dimensions.
// All channels are zero-initialized, so every pixel starts as
// transparent black.
func NewPixBuf(width, height int) *PixBuf {
	return &PixBuf{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the buffer in pixels.
func (p *PixBuf) Width() int {
	return p.width
}

// Height returns the height of the buffer in pixels.
func (p *PixBuf) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format, 4 bytes per pixel).
// Modifying the slice modifies the buffer.
func (p *PixBuf) Data() []uint8 {
	return p.data
}

// GetRGBA returns the four channels of the pixel at (x, y).
// Returns (0, 0, 0, 0) if the coordinates are out of bounds.
func (p *PixBuf) GetRGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetRGBA sets the four channels of the pixel at (x, y).
// Out-of-bounds coordinates are ignored.
func (p *PixBuf) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Clone returns a deep copy of the buffer. The copy shares no data
// with the original.
func (p *PixBuf) Clone() *PixBuf {
	out := NewPixBuf(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// FromImage creates a pixel buffer from a standard library image.
// Premultiplied source formats are converted to straight alpha.
func FromImage(img image.Image) *PixBuf {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	p := NewPixBuf(width, height)

	// Fast path for NRGBA images (the common PNG decode result).
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowLen := width * 4
		for y := 0; y < height; y++ {
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+rowLen]
			copy(p.data[y*rowLen:(y+1)*rowLen], src)
		}
		return p
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			p.data[i+0] = c.R
			p.data[i+1] = c.G
			p.data[i+2] = c.B
			p.data[i+3] = c.A
		}
	}

	return p
}

// ToImage converts the buffer to an image.NRGBA sharing no data with
// the buffer.
func (p *PixBuf) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *PixBuf) At(x, y int) color.Color {
	r, g, b, a := p.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *PixBuf) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixBuf) ColorModel() color.Model {
	return color.NRGBAModel
}
