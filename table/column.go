// Package table lays report data out as paginated tables.
//
// It builds on the layout package's cursor and page flow: a Table reserves
// space row by row, repeats its header at the top of every page it spills
// onto, and stripes rows by their logical index so striping stays continuous
// across page breaks. Column widths are resolved up front by ResolveWidths
// and always sum exactly to the available width.
package table

import (
	reportkit "github.com/paperstack/reportkit"
)

// Semantic classifies a column's content and supplies alignment, font and
// line-cap defaults. Explicit column settings always win over semantic
// defaults.
type Semantic string

const (
	SemanticText       Semantic = "text"
	SemanticIdentifier Semantic = "identifier" // monospace font
	SemanticMetric     Semantic = "metric"     // right-aligned
	SemanticStatus     Semantic = "status"     // single line
	SemanticDatetime   Semantic = "datetime"   // single line
)

// Align is a horizontal cell alignment.
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// WidthMode controls how a column's width is resolved.
type WidthMode int

const (
	// WidthFlex columns share the slack left after fixed columns are sized.
	WidthFlex WidthMode = iota
	// WidthFixed columns grow toward their requested Width before any
	// slack is distributed.
	WidthFixed
)

// Column describes one table column over rows of type Row. Value extracts
// the cell text for a row; it must be non-nil.
type Column[Row any] struct {
	Key      string
	Header   string
	Width    float64 // requested width for fixed columns, in points
	MinWidth float64 // floor; zero means the package minimum
	Mode     WidthMode
	Align    Align
	MaxLines int // per-column cap; zero falls back to semantic/preset caps
	Font     reportkit.FontFamily
	Semantic Semantic

	Value func(Row) string
}

// fixed reports whether the column takes part in fixed-width growth.
// An explicit Width implies fixed mode.
func (c Column[Row]) fixed() bool {
	return c.Mode == WidthFixed || c.Width > 0
}

// font returns the column's effective font after semantic defaults.
func (c Column[Row]) font() reportkit.FontFamily {
	if c.Font != "" {
		return c.Font
	}
	if c.Semantic == SemanticIdentifier {
		return reportkit.FontMono
	}
	return reportkit.FontRegular
}

// align returns the column's effective alignment after semantic defaults.
func (c Column[Row]) align() Align {
	if c.Align != "" {
		return c.Align
	}
	if c.Semantic == SemanticMetric {
		return AlignRight
	}
	return AlignLeft
}

// maxLines returns the column's effective line cap. presetCap is the
// table-wide cap from the active preset.
func (c Column[Row]) maxLines(presetCap int) int {
	if c.MaxLines > 0 {
		return c.MaxLines
	}
	if c.Semantic == SemanticStatus || c.Semantic == SemanticDatetime {
		return 1
	}
	return presetCap
}
