package reportkit

// RGBColor represents an RGB color value with 0-255 components.
type RGBColor struct {
	R, G, B int
}
