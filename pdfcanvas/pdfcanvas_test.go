package pdfcanvas_test

import (
	"bytes"
	"image"
	"strings"
	"testing"

	reportkit "github.com/paperstack/reportkit"
	"github.com/paperstack/reportkit/format"
	"github.com/paperstack/reportkit/layout"
	"github.com/paperstack/reportkit/pdfcanvas"
)

func TestOutputProducesPDF(t *testing.T) {
	c := pdfcanvas.New(612, 792)
	p := c.AddPage()
	p.Text(72, 720, "hello", reportkit.FontRegular, 12, reportkit.RGBColor{})

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
	t.Logf("PDF: %d bytes", buf.Len())
}

func TestPagesAccumulate(t *testing.T) {
	c := pdfcanvas.New(612, 792)
	for i := 0; i < 3; i++ {
		c.AddPage()
	}
	if got := c.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}
	if got := len(c.Pages()); got != 3 {
		t.Errorf("len(Pages()) = %d, want 3", got)
	}
}

func TestTextWidthMonotonic(t *testing.T) {
	c := pdfcanvas.New(612, 792)

	w := c.TextWidth("abc", reportkit.FontRegular, 12)
	if w <= 0 {
		t.Fatalf("width %g, want positive", w)
	}
	if longer := c.TextWidth("abcd", reportkit.FontRegular, 12); longer <= w {
		t.Errorf("longer string measured %g, not wider than %g", longer, w)
	}
	if mono := c.TextWidth("abc", reportkit.FontMono, 12); mono <= 0 {
		t.Errorf("mono width %g, want positive", mono)
	}
}

func TestDrawOnEarlierPage(t *testing.T) {
	c := pdfcanvas.New(612, 792)
	first := c.AddPage()
	c.AddPage()

	// Stamping the first page after the second exists is how the footer
	// finalize pass works.
	first.Text(72, 36, "Page 1 of 2", reportkit.FontRegular, 8, reportkit.RGBColor{})

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestRotatedTextAndImage(t *testing.T) {
	c := pdfcanvas.New(612, 792)
	p := c.AddPage()

	p.RotatedText(306, 396, "DRAFT", reportkit.FontBold, 84, reportkit.RGBColor{R: 160, G: 160, B: 160}, 45, 0.1)
	p.Image(image.NewRGBA(image.Rect(0, 0, 16, 16)), 72, 600, 64, 64)

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestImageDownscaleOption(t *testing.T) {
	c := pdfcanvas.New(612, 792, pdfcanvas.WithImageDownscale(32))
	p := c.AddPage()
	p.Image(image.NewRGBA(image.Rect(0, 0, 300, 200)), 72, 600, 96, 64)

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}

func TestFullReportSmoke(t *testing.T) {
	f := format.V3()
	c := pdfcanvas.New(f.PageWidth, f.PageHeight)
	ctx := layout.NewContext(c, c, f)

	ctx.DrawHeader(layout.Header{
		Eyebrow: "Compliance",
		Title:   "Quarterly Access Audit",
		Brand:   "Paperstack",
	})
	ctx.DrawSection("Findings", "Events flagged by the policy engine")
	ctx.DrawParagraph("Three events violated the standing access policy during the review period.")
	ctx.DrawMetricGrid([]layout.Metric{
		{Label: "Events reviewed", Value: "48,112"},
		{Label: "Violations", Value: "3"},
	}, 2)
	ctx.StampWatermark("SPECIMEN", "")
	ctx.FinalizeFooters(layout.Footer{Label: "audit-q2", Brand: "Paperstack"})

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	t.Logf("full report PDF: %d bytes, %d page(s)", buf.Len(), ctx.PageCount())
}
