// Package fakecanvas provides recording drawing surfaces for layout tests.
//
// The fake page stores every operation it receives, so tests can assert on
// exact geometry instead of inspecting rendered PDF bytes. The measurer
// gives every rune a fixed fraction of the font size, which keeps expected
// widths easy to compute by hand.
package fakecanvas

import (
	"image"
	"unicode/utf8"

	reportkit "github.com/paperstack/reportkit"
)

var (
	_ reportkit.Canvas       = (*Canvas)(nil)
	_ reportkit.Page         = (*Page)(nil)
	_ reportkit.TextMeasurer = (*Measurer)(nil)
)

// TextOp records a Text call.
type TextOp struct {
	Text   string
	X, Y   float64
	Family reportkit.FontFamily
	Size   float64
	Color  reportkit.RGBColor
}

// RotatedTextOp records a RotatedText call.
type RotatedTextOp struct {
	Text    string
	X, Y    float64
	Family  reportkit.FontFamily
	Size    float64
	Color   reportkit.RGBColor
	Angle   float64
	Opacity float64
}

// RectOp records a FillRect or StrokeRect call.
type RectOp struct {
	X, Y, W, H float64
	LineWidth  float64
	Color      reportkit.RGBColor
	Filled     bool
}

// LineOp records a Line call.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64
	Color          reportkit.RGBColor
}

// ImageOp records an Image call.
type ImageOp struct {
	Img        image.Image
	X, Y, W, H float64
}

// Page records every drawing operation in call order.
type Page struct {
	Texts   []TextOp
	Rotated []RotatedTextOp
	Rects   []RectOp
	Lines   []LineOp
	Images  []ImageOp
}

func (p *Page) FillRect(x, y, w, h float64, color reportkit.RGBColor) {
	p.Rects = append(p.Rects, RectOp{X: x, Y: y, W: w, H: h, Color: color, Filled: true})
}

func (p *Page) StrokeRect(x, y, w, h, lineWidth float64, color reportkit.RGBColor) {
	p.Rects = append(p.Rects, RectOp{X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: color})
}

func (p *Page) Line(x1, y1, x2, y2, lineWidth float64, color reportkit.RGBColor) {
	p.Lines = append(p.Lines, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, LineWidth: lineWidth, Color: color})
}

func (p *Page) Text(x, y float64, text string, family reportkit.FontFamily, size float64, color reportkit.RGBColor) {
	p.Texts = append(p.Texts, TextOp{Text: text, X: x, Y: y, Family: family, Size: size, Color: color})
}

func (p *Page) RotatedText(x, y float64, text string, family reportkit.FontFamily, size float64, color reportkit.RGBColor, angle, opacity float64) {
	p.Rotated = append(p.Rotated, RotatedTextOp{
		Text: text, X: x, Y: y, Family: family, Size: size,
		Color: color, Angle: angle, Opacity: opacity,
	})
}

func (p *Page) Image(img image.Image, x, y, w, h float64) {
	p.Images = append(p.Images, ImageOp{Img: img, X: x, Y: y, W: w, H: h})
}

// TextAt returns the first recorded text op whose content equals text and
// reports whether one was found.
func (p *Page) TextAt(text string) (TextOp, bool) {
	for _, op := range p.Texts {
		if op.Text == text {
			return op, true
		}
	}
	return TextOp{}, false
}

// Canvas collects fake pages.
type Canvas struct {
	pages []*Page
}

// New returns an empty fake canvas.
func New() *Canvas { return &Canvas{} }

func (c *Canvas) AddPage() reportkit.Page {
	p := &Page{}
	c.pages = append(c.pages, p)
	return p
}

func (c *Canvas) Pages() []reportkit.Page {
	out := make([]reportkit.Page, len(c.pages))
	for i, p := range c.pages {
		out[i] = p
	}
	return out
}

// Page returns the i-th recorded page.
func (c *Canvas) Page(i int) *Page { return c.pages[i] }

// PageCount returns the number of pages added so far.
func (c *Canvas) PageCount() int { return len(c.pages) }

// Measurer is a deterministic TextMeasurer: every rune advances by
// Advance times the font size regardless of family. The zero value is not
// usable; construct with NewMeasurer.
type Measurer struct {
	Advance float64
}

// NewMeasurer returns a measurer with a 0.5 em advance per rune.
func NewMeasurer() *Measurer { return &Measurer{Advance: 0.5} }

func (m *Measurer) TextWidth(text string, _ reportkit.FontFamily, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * m.Advance
}
