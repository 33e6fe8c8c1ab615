package layout

import (
	"fmt"
	"image"

	reportkit "github.com/paperstack/reportkit"
)

const footerLogoHeight = 10.0

// Footer describes the footer band stamped onto every page by
// FinalizeFooters.
type Footer struct {
	Label string // left-aligned caller label, e.g. the report reference
	Brand string // brand name in the centered "Powered by" group
	Logo  image.Image
}

// FinalizeFooters stamps the footer band, the caller label, the centered
// "Powered by" group and the "Page i of N" counter onto every page.
//
// This is a terminal pass: it needs the final page count, so it must run
// exactly once, after all content has been laid out. Content drawn after it
// would be missing its footer.
func (c *Context) FinalizeFooters(ft Footer) {
	f := c.format
	pal := f.Palette
	bandH := f.Layout.FooterBandHeight
	baseline := (bandH - f.Type.SmallSize) / 2

	pages := c.canvas.Pages()
	total := len(pages)
	for i, page := range pages {
		page.FillRect(0, 0, f.PageWidth, bandH, pal.FooterPanel)
		page.Line(0, bandH, f.PageWidth, bandH, 0.5, pal.Border)

		if ft.Label != "" {
			page.Text(c.minX, baseline, ft.Label, reportkit.FontRegular, f.Type.SmallSize, pal.Muted)
		}

		c.drawPoweredBy(page, ft, baseline, bandH)

		counter := fmt.Sprintf("Page %d of %d", i+1, total)
		counterW := c.fonts.TextWidth(counter, reportkit.FontRegular, f.Type.SmallSize)
		page.Text(c.maxX-counterW, baseline, counter, reportkit.FontRegular, f.Type.SmallSize, pal.Muted)
	}
}

func (c *Context) drawPoweredBy(page reportkit.Page, ft Footer, baseline, bandH float64) {
	if ft.Brand == "" {
		return
	}
	f := c.format
	text := "Powered by " + ft.Brand
	textW := c.fonts.TextWidth(text, reportkit.FontRegular, f.Type.SmallSize)

	logoW := 0.0
	logoH := 0.0
	if ft.Logo != nil {
		logoW, logoH = scaleLogo(ft.Logo, footerLogoHeight, 0)
	}
	groupW := textW
	if logoW > 0 {
		groupW += logoW + 4
	}

	x := (f.PageWidth - groupW) / 2
	if ft.Logo != nil {
		page.Image(ft.Logo, x, (bandH-logoH)/2, logoW, logoH)
		x += logoW + 4
	}
	page.Text(x, baseline, text, reportkit.FontRegular, f.Type.SmallSize, f.Palette.Subtle)
}
