// Package layout is the paginated report layout engine.
//
// A Context owns the growing page list and a mutable cursor for one report.
// Callers create a Context, issue primitive calls (header band, sections,
// paragraphs, key/value rows, metric grids, images) in the order content
// should appear, render tables through the table package, and finish with
// FinalizeFooters once the total page count is known. Every primitive routes
// its space requirement through EnsureSpace before drawing, so content never
// overflows the page content rectangle.
//
// Layout is pure computation: fonts, logos and all content values must be
// resolved by the caller before layout begins, and a Context must not be
// shared between concurrently generated reports.
package layout

import (
	reportkit "github.com/paperstack/reportkit"
	"github.com/paperstack/reportkit/format"
)

// Context is the mutable layout state for a single report. Create one with
// NewContext, discard it after the report is serialized.
type Context struct {
	canvas reportkit.Canvas
	fonts  reportkit.TextMeasurer
	format format.ReportFormat

	page reportkit.Page

	// cursor: y is the next drawable top; minX/maxX/minY/maxY bound the
	// content rectangle of the current page. minY <= y <= maxY holds
	// before every draw call.
	y    float64
	minX float64
	maxX float64
	minY float64
	maxY float64
}

// NewContext creates a layout context bound to the given canvas, measurer
// and format, and opens the first page.
func NewContext(canvas reportkit.Canvas, fonts reportkit.TextMeasurer, f format.ReportFormat) *Context {
	c := &Context{
		canvas: canvas,
		fonts:  fonts,
		format: f,
	}
	c.AddPage()
	return c
}

// AddPage appends a fresh page, makes it current and resets the cursor to
// the top of the format's content rectangle.
func (c *Context) AddPage() reportkit.Page {
	c.page = c.canvas.AddPage()
	c.minX = c.format.Margin.Left
	c.maxX = c.format.PageWidth - c.format.Margin.Right
	c.minY = c.format.Margin.Bottom
	c.maxY = c.format.PageHeight - c.format.Margin.Top
	c.y = c.maxY
	return c.page
}

// EnsureSpace guarantees at least h points of vertical room below the cursor
// on return, adding a page if the current one cannot fit it. A height taller
// than a whole fresh page still adds exactly one page; bounding content so it
// fits is the caller's responsibility.
func (c *Context) EnsureSpace(h float64) {
	if c.y-h >= c.minY {
		return
	}
	c.AddPage()
}

// RemainingHeight reports the vertical space left between the cursor and the
// bottom of the content rectangle.
func (c *Context) RemainingHeight() float64 {
	return c.y - c.minY
}

// ContentWidth returns the usable width between the page margins.
func (c *Context) ContentWidth() float64 {
	return c.maxX - c.minX
}

// Advance moves the cursor down by h points. It does not check space;
// callers must have routed h through EnsureSpace first.
func (c *Context) Advance(h float64) {
	c.y -= h
}

// Page returns the current page.
func (c *Context) Page() reportkit.Page { return c.page }

// PageCount returns the number of pages created so far.
func (c *Context) PageCount() int { return len(c.canvas.Pages()) }

// Format returns the immutable report format this context lays out against.
func (c *Context) Format() format.ReportFormat { return c.format }

// Y returns the cursor's vertical position.
func (c *Context) Y() float64 { return c.y }

// MinX returns the left edge of the content rectangle.
func (c *Context) MinX() float64 { return c.minX }

// MaxX returns the right edge of the content rectangle.
func (c *Context) MaxX() float64 { return c.maxX }

// MinY returns the bottom edge of the content rectangle.
func (c *Context) MinY() float64 { return c.minY }

// TextWidth reports the rendered width of a single line of text.
func (c *Context) TextWidth(text string, family reportkit.FontFamily, size float64) float64 {
	return c.fonts.TextWidth(text, family, size)
}
