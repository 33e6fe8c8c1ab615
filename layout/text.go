package layout

import (
	"strings"

	reportkit "github.com/paperstack/reportkit"
)

// wordBreakChars are the characters an over-long token may be split after
// when it exceeds the wrap width on its own. Identifiers, paths and
// timestamps in audit content break at these rather than mid-word.
var wordBreakChars = []rune{'-', '/', '_', '.', ','}

// TextBlock describes one wrapped block of text to measure or draw.
// X and Y are the block origin: X is the left edge, Y the top. The zero
// LineHeight means the format's line height for Size; the zero Color means
// the palette text color.
type TextBlock struct {
	Text       string
	X, Y       float64
	MaxWidth   float64
	Font       reportkit.FontFamily
	Size       float64
	LineHeight float64
	MaxLines   int // 0 = unlimited
	Color      *reportkit.RGBColor
}

// WrapText greedily packs words onto lines no wider than maxWidth at the
// given font and size. A single token wider than maxWidth is force-split at
// a word-break character, or rune by rune when none helps, so that no
// returned line ever exceeds maxWidth. Explicit newlines in text start new
// lines.
func (c *Context) WrapText(text string, maxWidth float64, font reportkit.FontFamily, size float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, c.wrapParagraph(paragraph, maxWidth, font, size)...)
	}
	return lines
}

func (c *Context) wrapParagraph(text string, maxWidth float64, font reportkit.FontFamily, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if c.fonts.TextWidth(word, font, size) > maxWidth {
			// Over-long token: flush the current line, then hard-split.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			pieces := c.splitToken(word, maxWidth, font, size)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if c.fonts.TextWidth(candidate, font, size) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitToken breaks a token wider than maxWidth into pieces that each fit.
// It prefers the longest prefix ending at a word-break character; when no
// break character produces a fitting prefix it falls back to the longest
// fitting run of runes. Every piece makes progress of at least one rune, so
// splitting terminates even for degenerate widths.
func (c *Context) splitToken(token string, maxWidth float64, font reportkit.FontFamily, size float64) []string {
	var pieces []string
	runes := []rune(token)
	for len(runes) > 0 {
		if c.fonts.TextWidth(string(runes), font, size) <= maxWidth {
			pieces = append(pieces, string(runes))
			break
		}
		cut := 0
		breakCut := 0
		for i := 1; i <= len(runes); i++ {
			if c.fonts.TextWidth(string(runes[:i]), font, size) > maxWidth {
				break
			}
			cut = i
			if isBreakRune(runes[i-1]) {
				breakCut = i
			}
		}
		if breakCut > 0 {
			cut = breakCut
		}
		if cut == 0 {
			cut = 1 // a single rune wider than maxWidth; emit it to make progress
		}
		pieces = append(pieces, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(pieces) == 0 {
		pieces = []string{""}
	}
	return pieces
}

func isBreakRune(r rune) bool {
	for _, b := range wordBreakChars {
		if r == b {
			return true
		}
	}
	return false
}

// lineCount returns the number of lines the block wraps to, after the
// MaxLines cap.
func (c *Context) lineCount(b TextBlock) int {
	n := len(c.WrapText(b.Text, b.MaxWidth, b.Font, b.Size))
	if b.MaxLines > 0 && n > b.MaxLines {
		n = b.MaxLines
	}
	return n
}

func (c *Context) blockLineHeight(b TextBlock) float64 {
	if b.LineHeight > 0 {
		return b.LineHeight
	}
	return c.format.LineHeight(b.Size)
}

// MeasureTextBlock computes the total height the block occupies when drawn,
// without drawing it. Measurement uses the same wrapping as DrawTextBlock,
// so the result equals the vertical distance DrawTextBlock advances.
func (c *Context) MeasureTextBlock(b TextBlock) float64 {
	return float64(c.lineCount(b)) * c.blockLineHeight(b)
}

// DrawTextBlock wraps and draws the block onto the current page and returns
// the y coordinate immediately below it. Lines beyond MaxLines are dropped
// without an indicator; the truncated height is what MeasureTextBlock
// reported.
func (c *Context) DrawTextBlock(b TextBlock) float64 {
	lines := c.WrapText(b.Text, b.MaxWidth, b.Font, b.Size)
	if b.MaxLines > 0 && len(lines) > b.MaxLines {
		lines = lines[:b.MaxLines]
	}
	lh := c.blockLineHeight(b)
	color := c.format.Palette.Text
	if b.Color != nil {
		color = *b.Color
	}
	for i, line := range lines {
		baseline := b.Y - b.Size - float64(i)*lh
		c.page.Text(b.X, baseline, line, b.Font, b.Size, color)
	}
	return b.Y - float64(len(lines))*lh
}
