package reportkit

import "image"

// FontFamily selects one of the three resolved font variants a report uses.
type FontFamily string

const (
	FontRegular FontFamily = "regular"
	FontBold    FontFamily = "bold"
	FontMono    FontFamily = "mono"
)

// TextMeasurer reports the rendered width of a string at a given size.
// Measurement must agree exactly with how the paired Canvas draws text,
// since the layout engine wraps and paginates based on these widths.
type TextMeasurer interface {
	TextWidth(text string, family FontFamily, size float64) float64
}

// Page is a single drawable page. Coordinates use a bottom-left origin with
// y increasing upward; text is positioned by its baseline.
type Page interface {
	// FillRect fills the rectangle whose lower-left corner is (x, y).
	FillRect(x, y, w, h float64, color RGBColor)
	// StrokeRect outlines the rectangle whose lower-left corner is (x, y).
	StrokeRect(x, y, w, h, lineWidth float64, color RGBColor)
	// Line draws a straight line between two points.
	Line(x1, y1, x2, y2, width float64, color RGBColor)
	// Text draws a single line of text with its baseline at (x, y).
	Text(x, y float64, text string, family FontFamily, size float64, color RGBColor)
	// RotatedText draws a single line of translucent text horizontally
	// centered on (x, y) and rotated by angle degrees counterclockwise
	// around that point. Used for watermarks.
	RotatedText(x, y float64, text string, family FontFamily, size float64, color RGBColor, angle, opacity float64)
	// Image places an image with its lower-left corner at (x, y), scaled to
	// w by h.
	Image(img image.Image, x, y, w, h float64)
}

// Canvas is a growing multi-page document. AddPage appends a fresh page and
// makes it current; Pages enumerates every page created so far, in order,
// so a finalize pass can revisit earlier pages once the total count is known.
type Canvas interface {
	AddPage() Page
	Pages() []Page
}
