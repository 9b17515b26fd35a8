package imgfx

// Option configures filter parameters for Apply and Process.
// Use functional options to override the reference defaults.
//
// Example:
//
//	// Reference behavior
//	out, err := imgfx.Process(data, "posterize")
//
//	// Coarser quantization
//	out, err := imgfx.Process(data, "posterize", imgfx.WithPosterizeLevels(2))
type Option func(*filterOptions)

// filterOptions holds the tunable filter parameters.
type filterOptions struct {
	posterizeLevels int
	blurSigma       float32
	hueAngle        float32
	pixelateFactor  int
}

// defaultFilterOptions returns the parameters of the reference
// surface: posterize at 4 levels, Gaussian blur with sigma 5, hue
// rotation by 90 degrees, pixelation with a factor of 10.
func defaultFilterOptions() filterOptions {
	return filterOptions{
		posterizeLevels: 4,
		blurSigma:       5,
		hueAngle:        90,
		pixelateFactor:  10,
	}
}

// WithPosterizeLevels sets the number of quantization levels used by
// the posterize filter. Values smaller than 2 make Apply and Process
// fail with ErrInvalidLevels.
func WithPosterizeLevels(levels int) Option {
	return func(o *filterOptions) {
		o.posterizeLevels = levels
	}
}

// WithBlurSigma sets the standard deviation of the Gaussian blur
// filter, in pixels.
func WithBlurSigma(sigma float32) Option {
	return func(o *filterOptions) {
		o.blurSigma = sigma
	}
}

// WithHueAngle sets the hue rotation angle in degrees for the
// huerotate filter.
func WithHueAngle(degrees float32) Option {
	return func(o *filterOptions) {
		o.hueAngle = degrees
	}
}

// WithPixelateFactor sets the downscale divisor used by the pixelate
// filter. The image is shrunk to 1/factor of its size in each
// dimension and scaled back up.
func WithPixelateFactor(factor int) Option {
	return func(o *filterOptions) {
		o.pixelateFactor = factor
	}
}
