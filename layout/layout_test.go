package layout_test

import (
	reportkit "github.com/paperstack/reportkit"
	"github.com/paperstack/reportkit/format"
	"github.com/paperstack/reportkit/internal/fakecanvas"
	"github.com/paperstack/reportkit/layout"
)

// testFormat is a compact format with round numbers: a 400x500 page with
// 50pt margins leaves a 300x400 content rectangle, and the 1.5 line factor
// gives a 15pt body line. The palette uses distinct R values so assertions
// can identify which element drew a given op.
func testFormat() format.ReportFormat {
	return format.ReportFormat{
		Version:    "test",
		PageWidth:  400,
		PageHeight: 500,
		Margin:     format.Margin{Top: 50, Right: 50, Bottom: 50, Left: 50},
		Type: format.Typography{
			TitleSize:   20,
			HeadingSize: 14,
			BodySize:    10,
			SmallSize:   8,
			LineFactor:  1.5,
		},
		Layout: format.Layout{
			Gutter:              10,
			SectionGap:          20,
			KeyColumnWidth:      100,
			HeaderBandHeight:    60,
			FooterBandHeight:    30,
			MinMetricCardHeight: 50,
			WidowOrphanMinLines: 3,
		},
		Palette: format.Palette{
			Text:         reportkit.RGBColor{R: 1},
			Muted:        reportkit.RGBColor{R: 2},
			Subtle:       reportkit.RGBColor{R: 3},
			Border:       reportkit.RGBColor{R: 4},
			BorderStrong: reportkit.RGBColor{R: 5},
			Panel:        reportkit.RGBColor{R: 6},
			PanelAlt:     reportkit.RGBColor{R: 7},
			FooterPanel:  reportkit.RGBColor{R: 8},
			Accent:       reportkit.RGBColor{R: 9},
			White:        reportkit.RGBColor{R: 255, G: 255, B: 255},
		},
		Watermark: format.Watermark{
			Angle:       45,
			Size:        80,
			TextOpacity: 0.1,
			NoteOpacity: 0.2,
		},
	}
}

// newTestContext pairs a recording canvas with the fixed-advance measurer,
// where every rune is half the font size wide: 5pt per rune at body size.
func newTestContext() (*layout.Context, *fakecanvas.Canvas) {
	canvas := fakecanvas.New()
	ctx := layout.NewContext(canvas, fakecanvas.NewMeasurer(), testFormat())
	return ctx, canvas
}
