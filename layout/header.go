package layout

import (
	"image"
	"strings"

	reportkit "github.com/paperstack/reportkit"
)

// headerLogoHeight is the target logo height inside the header band.
const headerLogoHeight = 22.0

// Header describes the report header band. Title is required; every other
// field is optional and skipped when empty. When Logo is nil the Brand text
// is drawn in its place.
type Header struct {
	Title    string
	Subtitle string
	Eyebrow  string // short label drawn above the title, uppercased
	Meta     string // right-aligned metadata, e.g. "Generated 2026-08-31"
	Brand    string
	Logo     image.Image
	// LogoWidth clamps the logo's scaled width, in points. Zero means no
	// clamp beyond the aspect-preserving scale to the target height.
	LogoWidth float64
}

// DrawHeader draws the header band at the top of the current page and moves
// the cursor below it. Callers invoke it immediately after NewContext or
// AddPage, while the cursor is still at the top of a fresh page.
func (c *Context) DrawHeader(h Header) {
	f := c.format
	pal := f.Palette
	bandH := f.Layout.HeaderBandHeight
	bandBottom := f.PageHeight - bandH

	c.page.FillRect(0, bandBottom, f.PageWidth, bandH, pal.Panel)
	c.page.FillRect(0, bandBottom-3, f.PageWidth, 3, pal.Accent)

	// Brand area: logo with aspect-preserving scale to the target height,
	// or the brand name as a text fallback.
	brandBaseline := f.PageHeight - bandH/2 - f.Type.HeadingSize/2
	if h.Logo != nil {
		w, lh := scaleLogo(h.Logo, headerLogoHeight, h.LogoWidth)
		logoY := f.PageHeight - (bandH+lh)/2
		c.page.Image(h.Logo, c.minX, logoY, w, lh)
	} else if h.Brand != "" {
		c.page.Text(c.minX, brandBaseline, h.Brand, reportkit.FontBold, f.Type.HeadingSize, pal.Text)
	}

	if h.Meta != "" {
		metaW := c.fonts.TextWidth(h.Meta, reportkit.FontRegular, f.Type.SmallSize)
		c.page.Text(c.maxX-metaW, brandBaseline, h.Meta, reportkit.FontRegular, f.Type.SmallSize, pal.Muted)
	}

	c.y = bandBottom - 3 - f.Layout.Gutter

	if h.Eyebrow != "" {
		eyebrow := strings.ToUpper(h.Eyebrow)
		c.y = c.DrawTextBlock(TextBlock{
			Text:     eyebrow,
			X:        c.minX,
			Y:        c.y,
			MaxWidth: c.ContentWidth(),
			Font:     reportkit.FontBold,
			Size:     f.Type.SmallSize,
			Color:    &pal.Accent,
		}) - 2
	}

	c.y = c.DrawTextBlock(TextBlock{
		Text:     h.Title,
		X:        c.minX,
		Y:        c.y,
		MaxWidth: c.ContentWidth(),
		Font:     reportkit.FontBold,
		Size:     f.Type.TitleSize,
	})

	if h.Subtitle != "" {
		c.y = c.DrawTextBlock(TextBlock{
			Text:     h.Subtitle,
			X:        c.minX,
			Y:        c.y - 2,
			MaxWidth: c.ContentWidth(),
			Font:     reportkit.FontRegular,
			Size:     f.Type.BodySize,
			Color:    &pal.Muted,
		})
	}

	ruleY := c.y - 6
	c.page.Line(c.minX, ruleY, c.maxX, ruleY, 0.75, pal.Border)
	c.y = ruleY - f.Layout.SectionGap
}

// scaleLogo scales a logo to the target height preserving aspect ratio,
// then clamps the width to maxWidth (when positive), rescaling the height
// to keep the aspect.
func scaleLogo(img image.Image, targetHeight, maxWidth float64) (w, h float64) {
	bounds := img.Bounds()
	if bounds.Dy() == 0 {
		return 0, 0
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	h = targetHeight
	w = h * aspect
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
		h = w / aspect
	}
	return w, h
}
