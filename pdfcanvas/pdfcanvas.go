// Package pdfcanvas implements the reportkit drawing and measurement
// abstractions on top of a PDF generator.
//
// It is the concrete backend the report assembly code hands to the layout
// engine: a Canvas collects pages, supports revisiting earlier pages for
// the footer finalize pass, and serializes the finished document with
// Output. Text is measured by the same PDF core fonts that draw it, so
// layout decisions and rendered output always agree.
package pdfcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	xdraw "golang.org/x/image/draw"

	reportkit "github.com/paperstack/reportkit"
)

var (
	_ reportkit.Canvas       = (*Canvas)(nil)
	_ reportkit.TextMeasurer = (*Canvas)(nil)
)

// Canvas is a growing PDF document. Create one with New, pass it (as both
// reportkit.Canvas and reportkit.TextMeasurer) to layout.NewContext, and
// call Output once layout is finished. A Canvas is not safe for concurrent
// use; generate parallel reports with one Canvas each.
type Canvas struct {
	pdf    *gofpdf.Fpdf
	imp    *gofpdi.Importer
	tpl    int
	cfg    config
	pageW  float64
	pageH  float64
	pages  []*Page
	images map[image.Image]string
	seq    int
}

// New creates an empty canvas with the given page size in points.
func New(pageWidth, pageHeight float64, opts ...Option) *Canvas {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)

	c := &Canvas{
		pdf:    pdf,
		cfg:    cfg,
		pageW:  pageWidth,
		pageH:  pageHeight,
		images: make(map[image.Image]string),
	}
	if cfg.stationeryPath != "" {
		c.imp = gofpdi.NewImporter()
		c.tpl = c.imp.ImportPage(pdf, cfg.stationeryPath, cfg.stationeryPage, "/MediaBox")
	}
	return c
}

// AddPage appends a fresh page and makes it current. When a stationery
// template is configured it is stamped under the new page first.
func (c *Canvas) AddPage() reportkit.Page {
	c.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: c.pageW, Ht: c.pageH})
	if c.imp != nil {
		c.imp.UseImportedTemplate(c.pdf, c.tpl, 0, 0, c.pageW, c.pageH)
	}
	p := &Page{canvas: c, num: c.pdf.PageNo()}
	c.pages = append(c.pages, p)
	return p
}

// Pages returns every page created so far, in order.
func (c *Canvas) Pages() []reportkit.Page {
	out := make([]reportkit.Page, len(c.pages))
	for i, p := range c.pages {
		out[i] = p
	}
	return out
}

// PageCount returns the number of pages created so far.
func (c *Canvas) PageCount() int { return len(c.pages) }

// TextWidth implements reportkit.TextMeasurer using the PDF core font
// metrics, so measurement matches rendering exactly.
func (c *Canvas) TextWidth(text string, family reportkit.FontFamily, size float64) float64 {
	c.setFont(family, size)
	return c.pdf.GetStringWidth(text)
}

// Output serializes the finished document to w.
func (c *Canvas) Output(w io.Writer) error {
	if c.pdf.Err() {
		return fmt.Errorf("pdfcanvas: %w", c.pdf.Error())
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfcanvas: writing output: %w", err)
	}
	return nil
}

// setFont maps the report font families onto the PDF core fonts.
func (c *Canvas) setFont(family reportkit.FontFamily, size float64) {
	switch family {
	case reportkit.FontBold:
		c.pdf.SetFont("Helvetica", "B", size)
	case reportkit.FontMono:
		c.pdf.SetFont("Courier", "", size)
	default:
		c.pdf.SetFont("Helvetica", "", size)
	}
}

// registerImage encodes the image as PNG once and returns its registered
// name, downscaling first when an edge limit is configured. Registration is
// cached per image value, so a logo stamped on every page embeds once.
func (c *Canvas) registerImage(img image.Image) string {
	if name, ok := c.images[img]; ok {
		return name
	}
	if c.cfg.maxImageEdge > 0 {
		img = downscale(img, c.cfg.maxImageEdge)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.pdf.SetError(fmt.Errorf("pdfcanvas: encoding image: %w", err))
		return ""
	}
	c.seq++
	name := fmt.Sprintf("img-%d", c.seq)
	c.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	c.images[img] = name
	return name
}

// downscale resizes img so its longest edge is at most maxEdge pixels.
func downscale(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	if longest <= maxEdge {
		return img
	}
	scale := float64(maxEdge) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
