// Package format defines the immutable typographic themes a report is laid
// out against.
//
// A ReportFormat bundles page geometry, type sizes, layout constants, table
// density presets, a color palette and watermark parameters. Formats are
// versioned: callers select one by tag ("v2", "v3") when a report is
// generated and the format never changes for the lifetime of that report.
package format

import (
	"errors"
	"fmt"

	reportkit "github.com/paperstack/reportkit"
)

// ErrUnknownVersion is returned by Version for an unrecognized format tag.
var ErrUnknownVersion = errors.New("format: unknown format version")

// Margin defines the page content margins in points.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Typography holds the font sizes used by the layout primitives, in points,
// plus the base line-height multiplier applied to them.
type Typography struct {
	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	SmallSize   float64
	LineFactor  float64 // line height = size * LineFactor
}

// Layout holds the spacing constants shared by all layout primitives.
type Layout struct {
	Gutter              float64 // horizontal/vertical gap between sibling blocks
	SectionGap          float64 // vertical gap after section-level elements
	KeyColumnWidth      float64 // default label column width for key/value rows
	HeaderBandHeight    float64
	FooterBandHeight    float64
	MinMetricCardHeight float64
	WidowOrphanMinLines int // body lines that must fit below a heading
}

// TablePreset is a named bundle of table density defaults. Presets let a
// caller pick a report "voice" for a table without repeating typographic
// constants per call site.
type TablePreset struct {
	FontSize       float64
	HeaderFontSize float64
	LineHeight     float64
	CellPaddingX   float64
	CellPaddingY   float64
	MaxCellLines   int
	Striped        bool
}

// TablePresetName selects one of the built-in table presets.
type TablePresetName string

const (
	TableDefault   TablePresetName = "default"
	TableEvidence  TablePresetName = "evidence"
	TableAnalytics TablePresetName = "analytics"
	TableReceipts  TablePresetName = "receipts"
)

// Tables holds the per-format table presets.
type Tables struct {
	Default   TablePreset
	Evidence  TablePreset
	Analytics TablePreset
	Receipts  TablePreset
}

// Palette is the report color scheme.
type Palette struct {
	Text         reportkit.RGBColor
	Muted        reportkit.RGBColor
	Subtle       reportkit.RGBColor
	Border       reportkit.RGBColor
	BorderStrong reportkit.RGBColor
	Panel        reportkit.RGBColor
	PanelAlt     reportkit.RGBColor
	FooterPanel  reportkit.RGBColor
	Accent       reportkit.RGBColor
	White        reportkit.RGBColor
}

// Watermark holds the parameters of the diagonal watermark overlay.
type Watermark struct {
	Angle       float64 // rotation in degrees, counterclockwise
	Size        float64 // font size of the main watermark text, in points
	TextOpacity float64 // opacity of the main text
	NoteOpacity float64 // opacity of the smaller note line beneath it
}

// ReportFormat is a complete, immutable report theme. Callers must treat a
// ReportFormat as read-only; it is passed and stored by value.
type ReportFormat struct {
	Version    string
	PageWidth  float64 // in points
	PageHeight float64 // in points
	Margin     Margin
	Type       Typography
	Layout     Layout
	Tables     Tables
	Palette    Palette
	Watermark  Watermark
}

// ContentWidth returns the horizontal space available between the left and
// right margins.
func (f ReportFormat) ContentWidth() float64 {
	return f.PageWidth - f.Margin.Left - f.Margin.Right
}

// LineHeight returns the baseline-to-baseline distance for the given font
// size under this format.
func (f ReportFormat) LineHeight(size float64) float64 {
	return size * f.Type.LineFactor
}

// TablePreset returns the preset registered under name. Unknown names fall
// back to the default preset so a typo degrades to the standard density
// rather than failing a report.
func (f ReportFormat) TablePreset(name TablePresetName) TablePreset {
	switch name {
	case TableEvidence:
		return f.Tables.Evidence
	case TableAnalytics:
		return f.Tables.Analytics
	case TableReceipts:
		return f.Tables.Receipts
	default:
		return f.Tables.Default
	}
}

// Version returns the format registered under the given tag.
func Version(tag string) (ReportFormat, error) {
	switch tag {
	case "v2":
		return V2(), nil
	case "v3":
		return V3(), nil
	default:
		return ReportFormat{}, fmt.Errorf("%w: %q", ErrUnknownVersion, tag)
	}
}

// Latest returns the newest report format.
func Latest() ReportFormat {
	return V3()
}
