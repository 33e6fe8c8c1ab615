package pdfcanvas

type config struct {
	stationeryPath string
	stationeryPage int
	maxImageEdge   int
}

// Option configures a Canvas.
type Option func(*config)

// WithStationery underlays the given page of an existing PDF beneath every
// page of the report, typically corporate letterhead. The file is imported
// once and reused as a template.
func WithStationery(path string, page int) Option {
	return func(c *config) {
		c.stationeryPath = path
		if page < 1 {
			page = 1
		}
		c.stationeryPage = page
	}
}

// WithImageDownscale caps the longest edge of embedded raster images at
// maxEdge pixels. Oversized logos and screenshots are resampled before
// embedding, which keeps report files small without visible loss at
// report render sizes.
func WithImageDownscale(maxEdge int) Option {
	return func(c *config) {
		if maxEdge > 0 {
			c.maxImageEdge = maxEdge
		}
	}
}
