package layout

import (
	reportkit "github.com/paperstack/reportkit"
)

// DrawSection draws a section heading: an accent tick, the wrapped label,
// an optional subtitle and an underline rule. When the remaining page space
// could strand the heading alone at the page bottom, the section breaks to
// a fresh page first.
func (c *Context) DrawSection(label, subtitle string) {
	f := c.format
	pal := f.Palette

	labelBlock := TextBlock{
		Text:     label,
		X:        c.minX + 10,
		MaxWidth: c.ContentWidth() - 10,
		Font:     reportkit.FontBold,
		Size:     f.Type.HeadingSize,
	}
	labelH := c.MeasureTextBlock(labelBlock)

	subtitleH := 0.0
	subtitleBlock := TextBlock{
		Text:     subtitle,
		X:        c.minX + 10,
		MaxWidth: c.ContentWidth() - 10,
		Font:     reportkit.FontRegular,
		Size:     f.Type.SmallSize,
		Color:    &pal.Muted,
	}
	if subtitle != "" {
		subtitleH = c.MeasureTextBlock(subtitleBlock)
	}

	// The heading plus the minimum body lines that keep it from being
	// stranded at the page bottom must fit, or the section starts fresh.
	headingH := labelH + subtitleH + 8 // label, subtitle, underline offset
	minBody := float64(f.Layout.WidowOrphanMinLines) * f.LineHeight(f.Type.BodySize)
	c.breakForWidow(headingH + minBody)

	// Accent tick beside the first label line.
	tickH := f.Type.HeadingSize
	c.page.FillRect(c.minX, c.y-tickH-1, 3, tickH, pal.Accent)

	labelBlock.Y = c.y
	c.y = c.DrawTextBlock(labelBlock)
	if subtitle != "" {
		subtitleBlock.Y = c.y
		c.y = c.DrawTextBlock(subtitleBlock)
	}

	ruleY := c.y - 4
	c.page.Line(c.minX, ruleY, c.maxX, ruleY, 0.5, pal.Border)
	c.y = ruleY - f.Layout.Gutter
}

// DrawParagraph wraps text to the content width and draws it, flowing
// across pages line by line when the block is taller than the remaining
// space. The widow/orphan pre-check moves the whole block to a fresh page
// when too few of its lines would fit below the current cursor.
func (c *Context) DrawParagraph(text string) {
	c.DrawParagraphWidth(text, c.ContentWidth())
}

// DrawParagraphWidth is DrawParagraph with a caller-supplied wrap width.
func (c *Context) DrawParagraphWidth(text string, width float64) {
	f := c.format
	lh := f.LineHeight(f.Type.BodySize)
	lines := c.WrapText(text, width, reportkit.FontRegular, f.Type.BodySize)

	if min := f.Layout.WidowOrphanMinLines; min > 0 {
		protected := len(lines)
		if protected > min {
			protected = min
		}
		c.breakForWidow(float64(protected) * lh)
	}

	for _, line := range lines {
		c.EnsureSpace(lh)
		c.page.Text(c.minX, c.y-f.Type.BodySize, line, reportkit.FontRegular, f.Type.BodySize, f.Palette.Text)
		c.y -= lh
	}
	c.y -= f.Layout.Gutter
}

// DrawKeyValue draws one label/value row using the format's default label
// column width.
func (c *Context) DrawKeyValue(label, value string) {
	c.DrawKeyValueWidth(label, value, c.format.Layout.KeyColumnWidth)
}

// DrawKeyValueWidth draws one label/value row. The label column is
// labelWidth points wide; the value column gets the remaining content
// width. The row is as tall as the taller of the two wrapped sides.
func (c *Context) DrawKeyValueWidth(label, value string, labelWidth float64) {
	f := c.format
	pal := f.Palette

	labelBlock := TextBlock{
		Text:     label,
		X:        c.minX,
		MaxWidth: labelWidth - f.Layout.Gutter,
		Font:     reportkit.FontRegular,
		Size:     f.Type.SmallSize,
		Color:    &pal.Muted,
	}
	valueBlock := TextBlock{
		Text:     value,
		X:        c.minX + labelWidth,
		MaxWidth: c.ContentWidth() - labelWidth,
		Font:     reportkit.FontRegular,
		Size:     f.Type.BodySize,
	}

	rowH := c.MeasureTextBlock(labelBlock)
	if vh := c.MeasureTextBlock(valueBlock); vh > rowH {
		rowH = vh
	}
	c.EnsureSpace(rowH + 4)

	labelBlock.Y = c.y
	valueBlock.Y = c.y
	c.DrawTextBlock(labelBlock)
	c.DrawTextBlock(valueBlock)
	c.y -= rowH + 4
}

// breakForWidow forces a page break when less than needed space remains,
// unless the cursor already sits at the top of a fresh page.
func (c *Context) breakForWidow(needed float64) {
	if c.y >= c.maxY {
		return
	}
	if c.RemainingHeight() < needed {
		c.AddPage()
	}
}
