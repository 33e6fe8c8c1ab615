package layout

import (
	reportkit "github.com/paperstack/reportkit"
)

const (
	metricCardPadding = 10.0
	metricLabelLines  = 2
	metricValueLines  = 3
)

// Metric is one labeled value in a metric-card grid.
type Metric struct {
	Label string
	Value string
}

// DrawMetricGrid arranges metrics into a grid of cards with the given column
// count. Zero or negative columns places all metrics on one row. Cards in
// the same row share the height of the tallest card in that row; rows are
// sized independently. The grid reserves its full height up front and the
// cursor advances past the whole grid in one step.
func (c *Context) DrawMetricGrid(metrics []Metric, columns int) {
	if len(metrics) == 0 {
		return
	}
	if columns <= 0 {
		columns = len(metrics)
	}
	f := c.format

	cardW := (c.ContentWidth() - float64(columns-1)*f.Layout.Gutter) / float64(columns)
	innerW := cardW - 2*metricCardPadding

	heights := make([]float64, len(metrics))
	for i, m := range metrics {
		heights[i] = c.metricCardHeight(m, innerW)
	}

	rows := (len(metrics) + columns - 1) / columns
	rowHeights := make([]float64, rows)
	for i := range metrics {
		r := i / columns
		if heights[i] > rowHeights[r] {
			rowHeights[r] = heights[i]
		}
	}

	total := float64(rows-1) * f.Layout.Gutter
	for _, h := range rowHeights {
		total += h
	}
	c.EnsureSpace(total)

	top := c.y
	for r := 0; r < rows; r++ {
		rowH := rowHeights[r]
		for col := 0; col < columns; col++ {
			i := r*columns + col
			if i >= len(metrics) {
				break
			}
			x := c.minX + float64(col)*(cardW+f.Layout.Gutter)
			c.drawMetricCard(metrics[i], x, top, cardW, rowH)
		}
		top -= rowH + f.Layout.Gutter
	}
	c.y -= total + f.Layout.SectionGap
}

// metricCardHeight computes the height one card needs for its own wrapped
// label and value plus padding, floored at the format minimum.
func (c *Context) metricCardHeight(m Metric, innerW float64) float64 {
	f := c.format
	labelH := c.MeasureTextBlock(TextBlock{
		Text:     m.Label,
		MaxWidth: innerW,
		Font:     reportkit.FontRegular,
		Size:     f.Type.SmallSize,
		MaxLines: metricLabelLines,
	})
	valueH := c.MeasureTextBlock(TextBlock{
		Text:     m.Value,
		MaxWidth: innerW,
		Font:     reportkit.FontBold,
		Size:     f.Type.HeadingSize,
		MaxLines: metricValueLines,
	})
	h := 2*metricCardPadding + labelH + 4 + valueH
	if h < f.Layout.MinMetricCardHeight {
		h = f.Layout.MinMetricCardHeight
	}
	return h
}

// drawMetricCard draws one card with top at the given y. The card height is
// the row height, which may exceed the card's own required height.
func (c *Context) drawMetricCard(m Metric, x, top, w, h float64) {
	f := c.format
	pal := f.Palette

	c.page.StrokeRect(x, top-h, w, h, 0.5, pal.Border)
	c.page.FillRect(x, top-2.5, w, 2.5, pal.Accent)

	innerX := x + metricCardPadding
	innerW := w - 2*metricCardPadding
	labelBottom := c.DrawTextBlock(TextBlock{
		Text:     m.Label,
		X:        innerX,
		Y:        top - metricCardPadding,
		MaxWidth: innerW,
		Font:     reportkit.FontRegular,
		Size:     f.Type.SmallSize,
		MaxLines: metricLabelLines,
		Color:    &pal.Muted,
	})
	c.DrawTextBlock(TextBlock{
		Text:     m.Value,
		X:        innerX,
		Y:        labelBottom - 4,
		MaxWidth: innerW,
		Font:     reportkit.FontBold,
		Size:     f.Type.HeadingSize,
		MaxLines: metricValueLines,
	})
}
