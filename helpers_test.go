package imgfx

import "testing"

// Test helper functions shared across filter tests.

// newUniformBuf creates a buffer filled with the given channel values.
func newUniformBuf(w, h int, r, g, b, a uint8) *PixBuf {
	p := NewPixBuf(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetRGBA(x, y, r, g, b, a)
		}
	}
	return p
}

// buffersEqual reports whether two buffers have identical dimensions
// and pixel data.
func buffersEqual(a, b *PixBuf) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

// assertPixel fails the test if the pixel at (x, y) does not hold the
// expected channel values.
func assertPixel(t *testing.T, p *PixBuf, x, y int, r, g, b, a uint8) {
	t.Helper()
	gr, gg, gb, ga := p.GetRGBA(x, y)
	if gr != r || gg != g || gb != b || ga != a {
		t.Errorf("pixel (%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)", x, y, gr, gg, gb, ga, r, g, b, a)
	}
}
