package pdfcanvas

import (
	"image"

	"github.com/jung-kurt/gofpdf"

	reportkit "github.com/paperstack/reportkit"
)

var _ reportkit.Page = (*Page)(nil)

// Page draws onto one page of its parent Canvas. The layout engine works
// in bottom-left coordinates; every operation flips into the top-left
// system the PDF generator uses.
type Page struct {
	canvas *Canvas
	num    int
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.num }

func (p *Page) flip(y float64) float64 { return p.canvas.pageH - y }

// FillRect fills the rectangle whose lower-left corner is (x, y).
func (p *Page) FillRect(x, y, w, h float64, color reportkit.RGBColor) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	pdf.SetFillColor(color.R, color.G, color.B)
	pdf.Rect(x, p.flip(y)-h, w, h, "F")
}

// StrokeRect outlines the rectangle whose lower-left corner is (x, y).
func (p *Page) StrokeRect(x, y, w, h, lineWidth float64, color reportkit.RGBColor) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	pdf.SetDrawColor(color.R, color.G, color.B)
	pdf.SetLineWidth(lineWidth)
	pdf.Rect(x, p.flip(y)-h, w, h, "D")
}

// Line strokes a segment from (x1, y1) to (x2, y2).
func (p *Page) Line(x1, y1, x2, y2, lineWidth float64, color reportkit.RGBColor) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	pdf.SetDrawColor(color.R, color.G, color.B)
	pdf.SetLineWidth(lineWidth)
	pdf.Line(x1, p.flip(y1), x2, p.flip(y2))
}

// Text draws a single line with its baseline at (x, y).
func (p *Page) Text(x, y float64, text string, family reportkit.FontFamily, size float64, color reportkit.RGBColor) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	p.canvas.setFont(family, size)
	pdf.SetTextColor(color.R, color.G, color.B)
	pdf.Text(x, p.flip(y), text)
}

// RotatedText draws a line centered on (x, y), rotated by angle degrees
// counterclockwise around that point, blended at the given opacity.
func (p *Page) RotatedText(x, y float64, text string, family reportkit.FontFamily, size float64, color reportkit.RGBColor, angle, opacity float64) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	p.canvas.setFont(family, size)
	pdf.SetTextColor(color.R, color.G, color.B)

	cx, cy := x, p.flip(y)
	pdf.SetAlpha(opacity, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(angle, cx, cy)
	// Center the run on the pivot; the vertical nudge keeps the visual
	// middle of the glyphs, not the baseline, on cy.
	pdf.Text(cx-pdf.GetStringWidth(text)/2, cy+size/3, text)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
}

// Image draws img with its lower-left corner at (x, y), scaled to w by h.
func (p *Page) Image(img image.Image, x, y, w, h float64) {
	pdf := p.canvas.pdf
	pdf.SetPage(p.num)
	name := p.canvas.registerImage(img)
	if name == "" {
		return
	}
	pdf.ImageOptions(name, x, p.flip(y)-h, w, h, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}
