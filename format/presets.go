package format

import reportkit "github.com/paperstack/reportkit"

// Letter page geometry in points. Reports are generated for US Letter in
// both format versions; the geometry is part of the theme, not caller input.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// V3 returns the current report format.
func V3() ReportFormat {
	return ReportFormat{
		Version:    "v3",
		PageWidth:  letterWidth,
		PageHeight: letterHeight,
		Margin:     Margin{Top: 56, Right: 48, Bottom: 56, Left: 48},
		Type: Typography{
			TitleSize:   20,
			HeadingSize: 13,
			BodySize:    10,
			SmallSize:   8,
			LineFactor:  1.45,
		},
		Layout: Layout{
			Gutter:              12,
			SectionGap:          18,
			KeyColumnWidth:      140,
			HeaderBandHeight:    64,
			FooterBandHeight:    36,
			MinMetricCardHeight: 54,
			WidowOrphanMinLines: 3,
		},
		Tables: Tables{
			Default: TablePreset{
				FontSize:       9.5,
				HeaderFontSize: 8,
				LineHeight:     13,
				CellPaddingX:   8,
				CellPaddingY:   6,
				MaxCellLines:   4,
				Striped:        true,
			},
			Evidence: TablePreset{
				FontSize:       8.5,
				HeaderFontSize: 7.5,
				LineHeight:     12,
				CellPaddingX:   6,
				CellPaddingY:   5,
				MaxCellLines:   3,
				Striped:        true,
			},
			Analytics: TablePreset{
				FontSize:       9,
				HeaderFontSize: 8,
				LineHeight:     13,
				CellPaddingX:   7,
				CellPaddingY:   5,
				MaxCellLines:   2,
				Striped:        true,
			},
			Receipts: TablePreset{
				FontSize:       8.5,
				HeaderFontSize: 7.5,
				LineHeight:     11.5,
				CellPaddingX:   6,
				CellPaddingY:   4,
				MaxCellLines:   2,
				Striped:        false,
			},
		},
		Palette: Palette{
			Text:         reportkit.RGBColor{R: 26, G: 32, B: 44},
			Muted:        reportkit.RGBColor{R: 100, G: 108, B: 122},
			Subtle:       reportkit.RGBColor{R: 148, G: 155, B: 166},
			Border:       reportkit.RGBColor{R: 224, G: 227, B: 232},
			BorderStrong: reportkit.RGBColor{R: 178, G: 184, B: 192},
			Panel:        reportkit.RGBColor{R: 244, G: 246, B: 249},
			PanelAlt:     reportkit.RGBColor{R: 249, G: 250, B: 252},
			FooterPanel:  reportkit.RGBColor{R: 240, G: 242, B: 246},
			Accent:       reportkit.RGBColor{R: 47, G: 102, B: 255},
			White:        reportkit.RGBColor{R: 255, G: 255, B: 255},
		},
		Watermark: Watermark{
			Angle:       45,
			Size:        84,
			TextOpacity: 0.12,
			NoteOpacity: 0.18,
		},
	}
}

// V2 returns the previous report format, kept for reports that must render
// byte-identically to the theme they were first issued under.
func V2() ReportFormat {
	return ReportFormat{
		Version:    "v2",
		PageWidth:  letterWidth,
		PageHeight: letterHeight,
		Margin:     Margin{Top: 60, Right: 54, Bottom: 60, Left: 54},
		Type: Typography{
			TitleSize:   18,
			HeadingSize: 12.5,
			BodySize:    10,
			SmallSize:   8,
			LineFactor:  1.4,
		},
		Layout: Layout{
			Gutter:              10,
			SectionGap:          16,
			KeyColumnWidth:      150,
			HeaderBandHeight:    56,
			FooterBandHeight:    32,
			MinMetricCardHeight: 50,
			WidowOrphanMinLines: 2,
		},
		Tables: Tables{
			Default: TablePreset{
				FontSize:       9.5,
				HeaderFontSize: 8.5,
				LineHeight:     13.5,
				CellPaddingX:   8,
				CellPaddingY:   6,
				MaxCellLines:   4,
				Striped:        true,
			},
			Evidence: TablePreset{
				FontSize:       9,
				HeaderFontSize: 8,
				LineHeight:     12.5,
				CellPaddingX:   7,
				CellPaddingY:   5,
				MaxCellLines:   3,
				Striped:        true,
			},
			Analytics: TablePreset{
				FontSize:       9,
				HeaderFontSize: 8.5,
				LineHeight:     13,
				CellPaddingX:   7,
				CellPaddingY:   5,
				MaxCellLines:   2,
				Striped:        false,
			},
			Receipts: TablePreset{
				FontSize:       9,
				HeaderFontSize: 8,
				LineHeight:     12,
				CellPaddingX:   7,
				CellPaddingY:   5,
				MaxCellLines:   2,
				Striped:        false,
			},
		},
		Palette: Palette{
			Text:         reportkit.RGBColor{R: 33, G: 37, B: 41},
			Muted:        reportkit.RGBColor{R: 108, G: 117, B: 125},
			Subtle:       reportkit.RGBColor{R: 160, G: 166, B: 173},
			Border:       reportkit.RGBColor{R: 222, G: 226, B: 230},
			BorderStrong: reportkit.RGBColor{R: 173, G: 181, B: 189},
			Panel:        reportkit.RGBColor{R: 241, G: 243, B: 245},
			PanelAlt:     reportkit.RGBColor{R: 248, G: 249, B: 250},
			FooterPanel:  reportkit.RGBColor{R: 233, G: 236, B: 239},
			Accent:       reportkit.RGBColor{R: 51, G: 92, B: 173},
			White:        reportkit.RGBColor{R: 255, G: 255, B: 255},
		},
		Watermark: Watermark{
			Angle:       45,
			Size:        72,
			TextOpacity: 0.15,
			NoteOpacity: 0.2,
		},
	}
}
