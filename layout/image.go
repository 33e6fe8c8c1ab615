package layout

import "image"

// DrawImage places an image at the current cursor position, scaled to w by
// h points, and advances the cursor past it. Zero h derives the height from
// the image's aspect ratio; zero w uses the full content width. Used for
// caller-supplied content images such as verification stamps.
func (c *Context) DrawImage(img image.Image, w, h float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	if w <= 0 {
		w = c.ContentWidth()
	}
	if h <= 0 {
		h = w / aspect
	}

	c.EnsureSpace(h)
	c.page.Image(img, c.minX, c.y-h, w, h)
	c.y -= h + c.format.Layout.Gutter
}
