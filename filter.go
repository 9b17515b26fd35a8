package imgfx

import (
	"image"

	"github.com/disintegration/gift"
)

// Filter identifies one of the supported image filters.
//
// Filter-name tokens are resolved to a Filter exactly once, by
// ParseFilter; dispatch then switches on the closed set of variants so
// the recognized set is compiler-checked.
type Filter int

const (
	// FilterNone is the zero variant: an unrecognized token. Applying
	// it passes the buffer through unchanged.
	FilterNone Filter = iota

	// FilterGrayscale collapses each pixel to its luma and forces
	// full opacity.
	FilterGrayscale

	// FilterBlur applies a Gaussian blur with a fixed sigma.
	FilterBlur

	// FilterHueRotate rotates the hue of every pixel by a fixed angle.
	FilterHueRotate

	// FilterInvert replaces each color channel with its complement.
	FilterInvert

	// FilterSepia applies the classic sepia tone matrix.
	FilterSepia

	// FilterPixelate blockizes the image via down- and upscaling.
	FilterPixelate

	// FilterEmboss convolves with the embossing kernel.
	FilterEmboss

	// FilterSharpen convolves with the sharpening kernel.
	FilterSharpen

	// FilterPosterize quantizes channels down to discrete levels.
	FilterPosterize
)

// ParseFilter resolves a filter-name token to its Filter variant.
// Matching is exact and case-sensitive. Unrecognized tokens map to
// FilterNone; by design this is not an error.
func ParseFilter(name string) Filter {
	switch name {
	case "grayscale":
		return FilterGrayscale
	case "blur":
		return FilterBlur
	case "huerotate":
		return FilterHueRotate
	case "invert":
		return FilterInvert
	case "sepia":
		return FilterSepia
	case "pixelate":
		return FilterPixelate
	case "emboss":
		return FilterEmboss
	case "sharpen":
		return FilterSharpen
	case "posterize":
		return FilterPosterize
	default:
		return FilterNone
	}
}

// String returns the filter-name token, or "none" for FilterNone.
func (f Filter) String() string {
	switch f {
	case FilterGrayscale:
		return "grayscale"
	case FilterBlur:
		return "blur"
	case FilterHueRotate:
		return "huerotate"
	case FilterInvert:
		return "invert"
	case FilterSepia:
		return "sepia"
	case FilterPixelate:
		return "pixelate"
	case FilterEmboss:
		return "emboss"
	case FilterSharpen:
		return "sharpen"
	case FilterPosterize:
		return "posterize"
	default:
		return "none"
	}
}

// Apply runs a single filter over src and returns the result.
//
// Every filter that writes pixels returns a freshly allocated buffer;
// the input is never modified or aliased by it. The one exception is
// FilterNone, which returns src itself unchanged — the silent
// passthrough for unrecognized filter names.
//
// The only possible error is ErrInvalidLevels from FilterPosterize
// with a level override below 2.
func Apply(src *PixBuf, f Filter, opts ...Option) (*PixBuf, error) {
	o := defaultFilterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Debug("applying filter",
		"filter", f.String(),
		"width", src.Width(),
		"height", src.Height())

	switch f {
	case FilterGrayscale:
		return Grayscale(src), nil
	case FilterBlur:
		return giftApply(src, gift.GaussianBlur(o.blurSigma)), nil
	case FilterHueRotate:
		return giftApply(src, gift.Hue(o.hueAngle)), nil
	case FilterInvert:
		return Invert(src), nil
	case FilterSepia:
		return Sepia(src), nil
	case FilterPixelate:
		return Pixelate(src, o.pixelateFactor), nil
	case FilterEmboss:
		return Emboss(src), nil
	case FilterSharpen:
		return Sharpen(src), nil
	case FilterPosterize:
		return Posterize(src, o.posterizeLevels)
	default:
		return src, nil
	}
}

// giftApply runs a single gift primitive over src. PixBuf implements
// image.Image, so the buffer feeds gift directly; the result comes
// back as a new buffer.
func giftApply(src *PixBuf, f gift.Filter) *PixBuf {
	g := gift.New(f)
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return FromImage(dst)
}
