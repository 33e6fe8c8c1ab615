package layout

import (
	reportkit "github.com/paperstack/reportkit"
)

// StampWatermark overlays a diagonal translucent watermark on every page
// created so far, using the format's watermark parameters. An optional note
// (e.g. an issue reference) is drawn smaller beneath the main text. Like
// FinalizeFooters, this runs after content layout; pages added later are
// not stamped.
func (c *Context) StampWatermark(text, note string) {
	if text == "" {
		return
	}
	f := c.format
	wm := f.Watermark
	cx := f.PageWidth / 2
	cy := f.PageHeight / 2

	for _, page := range c.canvas.Pages() {
		page.RotatedText(cx, cy, text, reportkit.FontBold, wm.Size, f.Palette.Subtle, wm.Angle, wm.TextOpacity)
		if note != "" {
			noteSize := wm.Size * 0.22
			page.RotatedText(cx, cy-wm.Size*0.75, note, reportkit.FontRegular, noteSize, f.Palette.Subtle, wm.Angle, wm.NoteOpacity)
		}
	}
}
