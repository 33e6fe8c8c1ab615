// Package typeface measures text against parsed OpenType fonts.
//
// It implements reportkit.TextMeasurer without any drawing backend, which
// lets callers lay out a report (or verify layout in tests) using the same
// glyph advances a renderer would use. GoFonts returns a ready measurer
// over the Go fonts embedded in golang.org/x/image, so no file I/O is
// needed for the default setup.
package typeface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	reportkit "github.com/paperstack/reportkit"
)

type face struct {
	font *sfnt.Font
	upem float64
}

// Measurer reports text widths for the regular/bold/mono variants of a
// report font set. It is safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	buf   sfnt.Buffer
	faces map[reportkit.FontFamily]*face
}

// New parses the three font variants from raw TTF/OTF bytes.
func New(regular, bold, mono []byte) (*Measurer, error) {
	m := &Measurer{faces: make(map[reportkit.FontFamily]*face, 3)}
	for _, v := range []struct {
		family reportkit.FontFamily
		data   []byte
	}{
		{reportkit.FontRegular, regular},
		{reportkit.FontBold, bold},
		{reportkit.FontMono, mono},
	} {
		f, err := sfnt.Parse(v.data)
		if err != nil {
			return nil, fmt.Errorf("typeface: parsing %s font: %w", v.family, err)
		}
		m.faces[v.family] = &face{font: f, upem: float64(f.UnitsPerEm())}
	}
	return m, nil
}

// GoFonts returns a measurer over the embedded Go fonts (Go Regular, Go
// Bold, Go Mono). The font data ships with the module, so this never fails;
// it panics only if the embedded data were corrupted.
func GoFonts() *Measurer {
	m, err := New(goregular.TTF, gobold.TTF, gomono.TTF)
	if err != nil {
		panic(err)
	}
	return m
}

// TextWidth returns the advance width of text at the given size, in the
// same units as size. Unknown families fall back to the regular face;
// unmapped runes measure as the font's notdef glyph.
func (m *Measurer) TextWidth(text string, family reportkit.FontFamily, size float64) float64 {
	f, ok := m.faces[family]
	if !ok {
		f = m.faces[reportkit.FontRegular]
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Query advances at ppem == unitsPerEm so they come back in font
	// units, then scale once by size/upem.
	ppem := fixed.I(int(f.upem))
	var total fixed.Int26_6
	for _, r := range text {
		gi, err := f.font.GlyphIndex(&m.buf, r)
		if err != nil {
			continue
		}
		adv, err := f.font.GlyphAdvance(&m.buf, gi, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
	}
	return float64(total) / 64 * size / f.upem
}
