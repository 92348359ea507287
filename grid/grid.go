// Package grid maps between domain coordinates and pixel coordinates.
//
// The visible window is a fixed 10x10 unit square drawn at 50 pixels
// per unit. Domain y grows upward, pixel y grows downward, so the
// vertical axis is inverted by the transform. Both directions are
// defined over all reals; the window only bounds what gets drawn.
package grid

const (
	// Scale is the pixel length of one domain unit.
	Scale = 50.0

	// Units is the side length of the domain window.
	Units = 10.0

	// PixelSpan is the pixel side length of the window.
	PixelSpan = Scale * Units
)

// ToPixel converts a domain coordinate to pixel space.
func ToPixel(x, y float64) (px, py float64) {
	return x * Scale, (Units - y) * Scale
}

// ToDomain converts a pixel coordinate back to domain space. It is
// the exact inverse of ToPixel for every input.
func ToDomain(px, py float64) (x, y float64) {
	return px / Scale, Units - py/Scale
}
