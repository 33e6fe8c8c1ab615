package table

import (
	reportkit "github.com/paperstack/reportkit"
	"github.com/paperstack/reportkit/format"
	"github.com/paperstack/reportkit/layout"
)

// Table is a fluent builder for one paginated table over rows of type Row.
type Table[Row any] struct {
	columns      []Column[Row]
	preset       format.TablePresetName
	repeatHeader bool
	striped      *bool // nil: follow the preset
	width        float64
}

// New creates a table with the given columns. Headers repeat across page
// breaks by default and the default preset is active until Preset is called.
func New[Row any](cols ...Column[Row]) *Table[Row] {
	return &Table[Row]{
		columns:      cols,
		preset:       format.TableDefault,
		repeatHeader: true,
	}
}

// Preset selects the density preset for this table.
func (t *Table[Row]) Preset(name format.TablePresetName) *Table[Row] {
	t.preset = name
	return t
}

// RepeatHeader controls whether the header row is redrawn at the top of
// every page the table spills onto.
func (t *Table[Row]) RepeatHeader(on bool) *Table[Row] {
	t.repeatHeader = on
	return t
}

// Striped overrides the preset's row striping.
func (t *Table[Row]) Striped(on bool) *Table[Row] {
	t.striped = &on
	return t
}

// Width sets the total table width. Zero (the default) uses the content
// width of the layout context.
func (t *Table[Row]) Width(w float64) *Table[Row] {
	t.width = w
	return t
}

// cell is one wrapped cell, ready to draw.
type cell struct {
	lines []string
	font  reportkit.FontFamily
	align Align
}

// Draw lays the table out at the context's cursor and advances past it.
// A table with zero columns draws nothing. Zero rows draw the header only.
func (t *Table[Row]) Draw(ctx *layout.Context, rows []Row) {
	if len(t.columns) == 0 {
		return
	}
	f := ctx.Format()
	preset := f.TablePreset(t.preset)
	striped := preset.Striped
	if t.striped != nil {
		striped = *t.striped
	}

	avail := t.width
	if avail <= 0 {
		avail = ctx.ContentWidth()
	}
	widths := ResolveWidths(t.columns, avail)

	headerH := t.headerHeight(ctx, widths, preset)
	ctx.EnsureSpace(headerH + preset.LineHeight + 2*preset.CellPaddingY)
	t.drawHeader(ctx, widths, preset, headerH)

	for idx, row := range rows {
		cells, rowH := t.measureRow(ctx, row, widths, preset)
		if ctx.RemainingHeight() < rowH {
			ctx.AddPage()
			if t.repeatHeader {
				t.drawHeader(ctx, widths, preset, headerH)
			}
		}
		t.drawRow(ctx, cells, widths, preset, rowH, idx, striped)
	}
	ctx.Advance(f.Layout.Gutter)
}

// headerHeight computes the header row height from the tallest wrapped
// header label.
func (t *Table[Row]) headerHeight(ctx *layout.Context, widths []float64, preset format.TablePreset) float64 {
	maxLines := 1
	for i, col := range t.columns {
		innerW := widths[i] - 2*preset.CellPaddingX
		n := len(ctx.WrapText(col.Header, innerW, reportkit.FontBold, preset.HeaderFontSize))
		if n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*preset.LineHeight + 2*preset.CellPaddingY
}

func (t *Table[Row]) drawHeader(ctx *layout.Context, widths []float64, preset format.TablePreset, headerH float64) {
	pal := ctx.Format().Palette
	page := ctx.Page()
	top := ctx.Y()
	tableW := totalWidth(widths)

	page.FillRect(ctx.MinX(), top-headerH, tableW, headerH, pal.Panel)

	x := ctx.MinX()
	for i, col := range t.columns {
		innerW := widths[i] - 2*preset.CellPaddingX
		lines := ctx.WrapText(col.Header, innerW, reportkit.FontBold, preset.HeaderFontSize)
		drawCellLines(ctx, page, lines, reportkit.FontBold, col.align(), preset.HeaderFontSize,
			x, top, widths[i], preset, pal.Muted)
		x += widths[i]
	}

	page.Line(ctx.MinX(), top-headerH, ctx.MinX()+tableW, top-headerH, 0.75, pal.BorderStrong)
	ctx.Advance(headerH)
}

// measureRow wraps every cell of the row to its column width and returns
// the prepared cells plus the row height: the max wrapped (and capped) line
// count across columns times the preset line height, plus vertical padding.
func (t *Table[Row]) measureRow(ctx *layout.Context, row Row, widths []float64, preset format.TablePreset) ([]cell, float64) {
	cells := make([]cell, len(t.columns))
	maxLines := 1
	for i, col := range t.columns {
		innerW := widths[i] - 2*preset.CellPaddingX
		lines := ctx.WrapText(col.Value(row), innerW, col.font(), preset.FontSize)
		if n := col.maxLines(preset.MaxCellLines); n > 0 && len(lines) > n {
			lines = lines[:n]
		}
		cells[i] = cell{lines: lines, font: col.font(), align: col.align()}
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return cells, float64(maxLines)*preset.LineHeight + 2*preset.CellPaddingY
}

func (t *Table[Row]) drawRow(ctx *layout.Context, cells []cell, widths []float64, preset format.TablePreset, rowH float64, idx int, striped bool) {
	pal := ctx.Format().Palette
	page := ctx.Page()
	top := ctx.Y()
	tableW := totalWidth(widths)

	// Striping keys off the logical row index, not the position on the
	// current page, so alternation continues across page breaks.
	if striped && idx%2 == 1 {
		page.FillRect(ctx.MinX(), top-rowH, tableW, rowH, pal.PanelAlt)
	}

	x := ctx.MinX()
	for i, cl := range cells {
		drawCellLines(ctx, page, cl.lines, cl.font, cl.align, preset.FontSize,
			x, top, widths[i], preset, pal.Text)
		x += widths[i]
	}

	page.Line(ctx.MinX(), top-rowH, ctx.MinX()+tableW, top-rowH, 0.5, pal.Border)
	ctx.Advance(rowH)
}

func drawCellLines(ctx *layout.Context, page reportkit.Page, lines []string, font reportkit.FontFamily, align Align, size float64, x, top, colW float64, preset format.TablePreset, color reportkit.RGBColor) {
	for j, line := range lines {
		baseline := top - preset.CellPaddingY - size - float64(j)*preset.LineHeight
		lx := x + preset.CellPaddingX
		if align == AlignRight {
			lx = x + colW - preset.CellPaddingX - ctx.TextWidth(line, font, size)
		}
		page.Text(lx, baseline, line, font, size, color)
	}
}

func totalWidth(widths []float64) float64 {
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	return sum
}
