// Package codec handles the container boundary of the filter engine:
// sniff-decoding encoded image bytes into a standard image and
// re-encoding processed pixels as 8-bit RGBA PNG.
//
// Decoding auto-detects the container from its signature. PNG, JPEG,
// GIF, BMP, TIFF and WebP are supported. Encoding always produces PNG with
// four 8-bit channels regardless of the input's original color depth
// or alpha presence.
//
// Decode and encode failures are the engine's only fatal conditions;
// they are classified under ErrDecode and ErrEncode so hosts can tell
// them apart with errors.Is.
package codec
